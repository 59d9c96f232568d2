package memstore

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
	"github.com/bistroboss/server/internal/store/storetest"
)

func TestCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

func TestAdminStatsEmpty(t *testing.T) {
	s := New()
	stats, err := s.Payments().AdminStats(context.Background())
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if stats.Revenue != 0 || stats.Orders != 0 {
		t.Fatalf("empty store stats: %+v", stats)
	}
}

func TestAdminStatsRevenueSum(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, price := range []float64{10, 20.5} {
		if _, err := s.Payments().Insert(ctx, &model.Payment{Email: "a@b.test", Price: price}); err != nil {
			t.Fatalf("InsertPayment: %v", err)
		}
	}
	stats, err := s.Payments().AdminStats(ctx)
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if stats.Revenue != 30.5 {
		t.Fatalf("revenue: want 30.5, got %v", stats.Revenue)
	}
	if stats.Orders != 2 {
		t.Fatalf("orders: want 2, got %d", stats.Orders)
	}
}

func TestOrderStatsGrouping(t *testing.T) {
	s := New()
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for _, item := range []*model.MenuItem{
		{Name: "m1", Category: "A", Price: 5},
		{Name: "m2", Category: "A", Price: 7},
		{Name: "m3", Category: "B", Price: 9},
	} {
		res, err := s.Menu().Insert(ctx, item)
		if err != nil {
			t.Fatalf("InsertMenu: %v", err)
		}
		ids = append(ids, res.InsertedID)
	}

	// Two payments spanning three line items in categories {A, A, B}.
	if _, err := s.Payments().Insert(ctx, &model.Payment{Email: "a@b.test", MenuItemIDs: ids[:2]}); err != nil {
		t.Fatalf("InsertPayment: %v", err)
	}
	if _, err := s.Payments().Insert(ctx, &model.Payment{Email: "a@b.test", MenuItemIDs: ids[2:]}); err != nil {
		t.Fatalf("InsertPayment: %v", err)
	}

	stats, err := s.Payments().OrderStats(ctx)
	if err != nil {
		t.Fatalf("OrderStats: %v", err)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })

	if len(stats) != 2 {
		t.Fatalf("groups: want 2, got %d", len(stats))
	}
	if stats[0].Category != "A" || stats[0].Quantity != 2 || stats[0].Revenue != 12 {
		t.Fatalf("group A: %+v", stats[0])
	}
	if stats[1].Category != "B" || stats[1].Quantity != 1 || stats[1].Revenue != 9 {
		t.Fatalf("group B: %+v", stats[1])
	}
}

func TestConcurrentCartMutations(t *testing.T) {
	s := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.Carts().Insert(ctx, &model.CartItem{Email: "c@d.test", Price: 1})
			if err != nil {
				t.Errorf("InsertCart: %v", err)
				return
			}
			if _, err := s.Carts().Delete(ctx, res.InsertedID); err != nil {
				t.Errorf("DeleteCart: %v", err)
			}
		}()
	}
	wg.Wait()

	lst, err := s.Carts().ListByEmail(ctx, "c@d.test")
	if err != nil || len(lst) != 0 {
		t.Fatalf("leftover carts: n=%d err=%v", len(lst), err)
	}
}
