package services

import (
	"context"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// MenuService handles menu browsing and administration.
type MenuService struct {
	store store.Store
}

func NewMenuService(s store.Store) *MenuService { return &MenuService{store: s} }

func (s *MenuService) Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	return s.store.Menu().Insert(ctx, item)
}

func (s *MenuService) List(ctx context.Context) ([]*model.MenuItem, error) {
	return s.store.Menu().List(ctx)
}

func (s *MenuService) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	return s.store.Menu().FindByID(ctx, id)
}

func (s *MenuService) Update(ctx context.Context, id string, patch *model.MenuItemPatch) (*model.UpdateResult, error) {
	return s.store.Menu().Update(ctx, id, patch)
}

func (s *MenuService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.store.Menu().Delete(ctx, id)
}
