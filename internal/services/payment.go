package services

import (
	"context"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// PaymentService records payments and serves the revenue aggregations.
type PaymentService struct {
	store store.Store
}

func NewPaymentService(s store.Store) *PaymentService { return &PaymentService{store: s} }

// PaymentOutcome bundles the results of the two store calls a payment
// performs, echoed back to the client together.
type PaymentOutcome struct {
	PaymentResult *model.InsertResult `json:"paymentResult"`
	DeleteResult  *model.DeleteResult `json:"deleteResult"`
}

// Record inserts the payment and then deletes the cart entries it covers.
// The two calls are sequential and independent; there is no transaction
// and no compensation. A failure after the insert leaves the payment
// recorded with its carts intact, and the caller sees the error.
func (s *PaymentService) Record(ctx context.Context, p *model.Payment) (*PaymentOutcome, error) {
	payRes, err := s.store.Payments().Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	delRes, err := s.store.Carts().DeleteByIDs(ctx, p.CartIDs)
	if err != nil {
		return nil, err
	}
	return &PaymentOutcome{PaymentResult: payRes, DeleteResult: delRes}, nil
}

// HistoryByEmail lists the payments owned by an email.
func (s *PaymentService) HistoryByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return s.store.Payments().ListByEmail(ctx, email)
}

// AdminStats returns the revenue summary.
func (s *PaymentService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	return s.store.Payments().AdminStats(ctx)
}

// OrderStats returns the category-wise order aggregation.
func (s *PaymentService) OrderStats(ctx context.Context) ([]*model.OrderStat, error) {
	return s.store.Payments().OrderStats(ctx)
}
