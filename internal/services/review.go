package services

import (
	"context"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// ReviewService handles customer reviews.
type ReviewService struct {
	store store.Store
}

func NewReviewService(s store.Store) *ReviewService { return &ReviewService{store: s} }

func (s *ReviewService) Create(ctx context.Context, r *model.Review) (*model.InsertResult, error) {
	return s.store.Reviews().Insert(ctx, r)
}

func (s *ReviewService) List(ctx context.Context) ([]*model.Review, error) {
	return s.store.Reviews().List(ctx)
}
