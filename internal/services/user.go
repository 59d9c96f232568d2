package services

import (
	"context"
	"errors"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// UserService handles identity, registration and role operations.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

// Register inserts a user unless the email already exists. Re-registering
// an existing email is a no-op reporting an empty inserted id, so clients
// see insertedId: null.
func (s *UserService) Register(ctx context.Context, u *model.User) (*model.InsertResult, error) {
	existing, err := s.store.Users().FindByEmail(ctx, u.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return &model.InsertResult{}, nil
	}
	if u.Role == "" {
		u.Role = model.RoleGuest
	}
	return s.store.Users().Insert(ctx, u)
}

// IsAdmin implements the role authority lookup. An absent record is simply
// non-admin, not an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.store.Users().FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// PromoteToAdmin sets the role unconditionally; repeated calls are no-ops.
func (s *UserService) PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	return s.store.Users().UpdateRole(ctx, id, model.RoleAdmin)
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.store.Users().List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.store.Users().Delete(ctx, id)
}
