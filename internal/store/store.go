package store

import (
	"context"

	"github.com/bistroboss/server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (mongo, memstore).
// Implementations must be safe for concurrent use by many simultaneous
// requests; each individual operation is atomic at the single-record
// level, and no multi-record transaction is offered.
type Store interface {
	Users() Users
	Menu() Menu
	Reviews() Reviews
	Carts() Carts
	Payments() Payments

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	Insert(ctx context.Context, u *model.User) (*model.InsertResult, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	UpdateRole(ctx context.Context, id string, role model.Role) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type Menu interface {
	Insert(ctx context.Context, m *model.MenuItem) (*model.InsertResult, error)
	List(ctx context.Context) ([]*model.MenuItem, error)
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	Update(ctx context.Context, id string, patch *model.MenuItemPatch) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type Reviews interface {
	Insert(ctx context.Context, r *model.Review) (*model.InsertResult, error)
	List(ctx context.Context) ([]*model.Review, error)
}

type Carts interface {
	Insert(ctx context.Context, c *model.CartItem) (*model.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
	DeleteByIDs(ctx context.Context, ids []string) (*model.DeleteResult, error)
}

type Payments interface {
	Insert(ctx context.Context, p *model.Payment) (*model.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Payment, error)

	// AdminStats sums payment prices and counts users, menu items and
	// payments. Revenue is 0 over an empty payments collection.
	AdminStats(ctx context.Context) (*model.AdminStats, error)

	// OrderStats expands each payment's menu item ids, joins them to the
	// menu collection and groups by category. The returned groups carry
	// no defined ordering.
	OrderStats(ctx context.Context) ([]*model.OrderStat, error)
}
