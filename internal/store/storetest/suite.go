package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// Run exercises a minimal compliance suite against a store.Store
// implementation. Implementations should provide a clean, isolated store
// and return it from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	email := "suite-" + uuid.New().String() + "@example.test"

	// Users
	ures, err := s.Users().Insert(ctx, &model.User{Name: "Suite User", Email: email, Role: model.RoleGuest})
	if err != nil || ures.InsertedID == "" {
		t.Fatalf("InsertUser: res=%v err=%v", ures, err)
	}
	if got, err := s.Users().FindByEmail(ctx, email); err != nil || got.Email != email {
		t.Fatalf("FindUserByEmail: got=%v err=%v", got, err)
	}
	if got, err := s.Users().FindByID(ctx, ures.InsertedID); err != nil || got.ID != ures.InsertedID {
		t.Fatalf("FindUserByID: got=%v err=%v", got, err)
	}
	if _, err := s.Users().FindByEmail(ctx, "nobody@example.test"); err != model.ErrNotFound {
		t.Fatalf("FindUserByEmail absent: want ErrNotFound, got %v", err)
	}
	if lst, err := s.Users().List(ctx); err != nil || len(lst) == 0 {
		t.Fatalf("ListUsers: n=%d err=%v", len(lst), err)
	}
	if res, err := s.Users().UpdateRole(ctx, ures.InsertedID, model.RoleAdmin); err != nil || res.MatchedCount != 1 {
		t.Fatalf("UpdateRole: res=%v err=%v", res, err)
	}
	if got, _ := s.Users().FindByID(ctx, ures.InsertedID); !got.IsAdmin() {
		t.Fatalf("UpdateRole: role not persisted: %+v", got)
	}
	// Promotion is idempotent: second call matches but modifies nothing.
	if res, err := s.Users().UpdateRole(ctx, ures.InsertedID, model.RoleAdmin); err != nil || res.MatchedCount != 1 || res.ModifiedCount != 0 {
		t.Fatalf("UpdateRole repeat: res=%v err=%v", res, err)
	}

	// Menu
	mres, err := s.Menu().Insert(ctx, &model.MenuItem{Name: "Suite Salad", Category: "salad", Price: 10.5})
	if err != nil || mres.InsertedID == "" {
		t.Fatalf("InsertMenu: res=%v err=%v", mres, err)
	}
	if got, err := s.Menu().FindByID(ctx, mres.InsertedID); err != nil || got.Name != "Suite Salad" {
		t.Fatalf("FindMenuByID: got=%v err=%v", got, err)
	}
	newPrice := 12.0
	if res, err := s.Menu().Update(ctx, mres.InsertedID, &model.MenuItemPatch{Price: &newPrice}); err != nil || res.MatchedCount != 1 {
		t.Fatalf("UpdateMenu: res=%v err=%v", res, err)
	}
	if got, _ := s.Menu().FindByID(ctx, mres.InsertedID); got.Price != newPrice {
		t.Fatalf("UpdateMenu: price not persisted: %+v", got)
	}
	if lst, err := s.Menu().List(ctx); err != nil || len(lst) == 0 {
		t.Fatalf("ListMenu: n=%d err=%v", len(lst), err)
	}

	// Reviews
	if res, err := s.Reviews().Insert(ctx, &model.Review{Name: "Suite", Details: "tasty", Rating: 5}); err != nil || res.InsertedID == "" {
		t.Fatalf("InsertReview: res=%v err=%v", res, err)
	}
	if lst, err := s.Reviews().List(ctx); err != nil || len(lst) == 0 {
		t.Fatalf("ListReviews: n=%d err=%v", len(lst), err)
	}

	// Carts
	c1, err := s.Carts().Insert(ctx, &model.CartItem{Email: email, MenuItemID: mres.InsertedID, Name: "Suite Salad", Price: 12.0})
	if err != nil {
		t.Fatalf("InsertCart c1: %v", err)
	}
	c2, err := s.Carts().Insert(ctx, &model.CartItem{Email: email, MenuItemID: mres.InsertedID, Name: "Suite Salad", Price: 12.0})
	if err != nil {
		t.Fatalf("InsertCart c2: %v", err)
	}
	if lst, err := s.Carts().ListByEmail(ctx, email); err != nil || len(lst) != 2 {
		t.Fatalf("ListCarts: n=%d err=%v", len(lst), err)
	}

	// Payments: insert then delete the referenced carts, the two-step
	// flow the payment service performs.
	pres, err := s.Payments().Insert(ctx, &model.Payment{
		Email:       email,
		Price:       24.0,
		CartIDs:     []string{c1.InsertedID, c2.InsertedID},
		MenuItemIDs: []string{mres.InsertedID, mres.InsertedID},
		Status:      "pending",
	})
	if err != nil || pres.InsertedID == "" {
		t.Fatalf("InsertPayment: res=%v err=%v", pres, err)
	}
	if res, err := s.Carts().DeleteByIDs(ctx, []string{c1.InsertedID, c2.InsertedID}); err != nil || res.DeletedCount != 2 {
		t.Fatalf("DeleteCartsByIDs: res=%v err=%v", res, err)
	}
	if lst, err := s.Carts().ListByEmail(ctx, email); err != nil || len(lst) != 0 {
		t.Fatalf("ListCarts after payment: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.Payments().ListByEmail(ctx, email); err != nil || len(lst) != 1 {
		t.Fatalf("ListPayments: n=%d err=%v", len(lst), err)
	}

	// Deletes
	if res, err := s.Menu().Delete(ctx, mres.InsertedID); err != nil || res.DeletedCount != 1 {
		t.Fatalf("DeleteMenu: res=%v err=%v", res, err)
	}
	if res, err := s.Users().Delete(ctx, ures.InsertedID); err != nil || res.DeletedCount != 1 {
		t.Fatalf("DeleteUser: res=%v err=%v", res, err)
	}
	if res, err := s.Users().Delete(ctx, ures.InsertedID); err != nil || res.DeletedCount != 0 {
		t.Fatalf("DeleteUser repeat: res=%v err=%v", res, err)
	}
}
