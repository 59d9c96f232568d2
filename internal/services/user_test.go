package services

import (
	"context"
	"testing"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store/memstore"
)

func TestRegisterIsIdempotent(t *testing.T) {
	svc := NewUserService(memstore.New())
	ctx := context.Background()

	first, err := svc.Register(ctx, &model.User{Name: "Ana", Email: "ana@example.test"})
	if err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if first.InsertedID == "" {
		t.Fatalf("first Register: expected an inserted id")
	}

	second, err := svc.Register(ctx, &model.User{Name: "Ana Again", Email: "ana@example.test"})
	if err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if second.InsertedID != "" {
		t.Fatalf("second Register: want empty inserted id, got %q", second.InsertedID)
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("want exactly one record, got %d", len(users))
	}
}

func TestRegisterDefaultsRole(t *testing.T) {
	st := memstore.New()
	svc := NewUserService(st)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &model.User{Name: "Bo", Email: "bo@example.test"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	u, err := st.Users().FindByEmail(ctx, "bo@example.test")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u.Role != model.RoleGuest {
		t.Fatalf("role: want guest, got %q", u.Role)
	}
}

func TestIsAdmin(t *testing.T) {
	st := memstore.New()
	svc := NewUserService(st)
	ctx := context.Background()

	// Unknown callers are simply non-admin.
	if ok, err := svc.IsAdmin(ctx, "ghost@example.test"); err != nil || ok {
		t.Fatalf("IsAdmin absent: ok=%v err=%v", ok, err)
	}

	res, err := svc.Register(ctx, &model.User{Name: "Cy", Email: "cy@example.test"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if ok, _ := svc.IsAdmin(ctx, "cy@example.test"); ok {
		t.Fatalf("fresh user must not be admin")
	}

	if _, err := svc.PromoteToAdmin(ctx, res.InsertedID); err != nil {
		t.Fatalf("PromoteToAdmin: %v", err)
	}
	if ok, _ := svc.IsAdmin(ctx, "cy@example.test"); !ok {
		t.Fatalf("promoted user must be admin")
	}

	// Promotion is unconditional and idempotent.
	upd, err := svc.PromoteToAdmin(ctx, res.InsertedID)
	if err != nil || upd.MatchedCount != 1 || upd.ModifiedCount != 0 {
		t.Fatalf("repeat promotion: res=%v err=%v", upd, err)
	}
}
