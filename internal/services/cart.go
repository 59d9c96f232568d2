package services

import (
	"context"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// CartService handles the per-owner shopping cart.
type CartService struct {
	store store.Store
}

func NewCartService(s store.Store) *CartService { return &CartService{store: s} }

func (s *CartService) Add(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	return s.store.Carts().Insert(ctx, item)
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	return s.store.Carts().ListByEmail(ctx, email)
}

func (s *CartService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return s.store.Carts().Delete(ctx, id)
}
