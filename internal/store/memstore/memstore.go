// Package memstore implements store.Store in process memory.
//
// It backs tests and local development where no Mongo instance is
// available. All methods are safe for concurrent use via a single RWMutex;
// each operation is atomic the way a single-document database call is.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// New returns an empty in-memory store.
func New() store.Store {
	return &memStore{
		users:    map[string]*model.User{},
		menu:     map[string]*model.MenuItem{},
		reviews:  map[string]*model.Review{},
		carts:    map[string]*model.CartItem{},
		payments: map[string]*model.Payment{},
	}
}

type memStore struct {
	mu       sync.RWMutex
	users    map[string]*model.User
	menu     map[string]*model.MenuItem
	reviews  map[string]*model.Review
	carts    map[string]*model.CartItem
	payments map[string]*model.Payment
}

func (s *memStore) Users() store.Users       { return &users{s} }
func (s *memStore) Menu() store.Menu         { return &menu{s} }
func (s *memStore) Reviews() store.Reviews   { return &reviews{s} }
func (s *memStore) Carts() store.Carts       { return &carts{s} }
func (s *memStore) Payments() store.Payments { return &payments{s} }

func (s *memStore) Ping(ctx context.Context) error { return nil }

func newID() string { return uuid.New().String() }

// --- Users ---

type users struct{ s *memStore }

func (u *users) Insert(ctx context.Context, m *model.User) (*model.InsertResult, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	id := m.ID
	if id == "" {
		id = newID()
	}
	cp := *m
	cp.ID = id
	u.s.users[id] = &cp
	return &model.InsertResult{InsertedID: id}, nil
}

func (u *users) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, m := range u.s.users {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (u *users) FindByID(ctx context.Context, id string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	m, ok := u.s.users[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	out := []*model.User{}
	for _, m := range u.s.users {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (u *users) UpdateRole(ctx context.Context, id string, role model.Role) (*model.UpdateResult, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	m, ok := u.s.users[id]
	if !ok {
		return &model.UpdateResult{}, nil
	}
	res := &model.UpdateResult{MatchedCount: 1}
	if m.Role != role {
		m.Role = role
		res.ModifiedCount = 1
	}
	return res, nil
}

func (u *users) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if _, ok := u.s.users[id]; !ok {
		return &model.DeleteResult{}, nil
	}
	delete(u.s.users, id)
	return &model.DeleteResult{DeletedCount: 1}, nil
}

// --- Menu ---

type menu struct{ s *memStore }

func (m *menu) Insert(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	id := item.ID
	if id == "" {
		id = newID()
	}
	cp := *item
	cp.ID = id
	m.s.menu[id] = &cp
	return &model.InsertResult{InsertedID: id}, nil
}

func (m *menu) List(ctx context.Context) ([]*model.MenuItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	out := []*model.MenuItem{}
	for _, item := range m.s.menu {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (m *menu) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	item, ok := m.s.menu[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *menu) Update(ctx context.Context, id string, patch *model.MenuItemPatch) (*model.UpdateResult, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	item, ok := m.s.menu[id]
	if !ok {
		return &model.UpdateResult{}, nil
	}
	res := &model.UpdateResult{MatchedCount: 1}
	apply := func(changed bool) {
		if changed {
			res.ModifiedCount = 1
		}
	}
	if patch.Name != nil {
		apply(item.Name != *patch.Name)
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		apply(item.Category != *patch.Category)
		item.Category = *patch.Category
	}
	if patch.Price != nil {
		apply(item.Price != *patch.Price)
		item.Price = *patch.Price
	}
	if patch.Recipe != nil {
		apply(item.Recipe != *patch.Recipe)
		item.Recipe = *patch.Recipe
	}
	if patch.Image != nil {
		apply(item.Image != *patch.Image)
		item.Image = *patch.Image
	}
	return res, nil
}

func (m *menu) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.menu[id]; !ok {
		return &model.DeleteResult{}, nil
	}
	delete(m.s.menu, id)
	return &model.DeleteResult{DeletedCount: 1}, nil
}

// --- Reviews ---

type reviews struct{ s *memStore }

func (r *reviews) Insert(ctx context.Context, rev *model.Review) (*model.InsertResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id := rev.ID
	if id == "" {
		id = newID()
	}
	cp := *rev
	cp.ID = id
	r.s.reviews[id] = &cp
	return &model.InsertResult{InsertedID: id}, nil
}

func (r *reviews) List(ctx context.Context) ([]*model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []*model.Review{}
	for _, rev := range r.s.reviews {
		cp := *rev
		out = append(out, &cp)
	}
	return out, nil
}

// --- Carts ---

type carts struct{ s *memStore }

func (c *carts) Insert(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	id := item.ID
	if id == "" {
		id = newID()
	}
	cp := *item
	cp.ID = id
	c.s.carts[id] = &cp
	return &model.InsertResult{InsertedID: id}, nil
}

func (c *carts) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	out := []*model.CartItem{}
	for _, item := range c.s.carts {
		if item.Email == email {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (c *carts) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.carts[id]; !ok {
		return &model.DeleteResult{}, nil
	}
	delete(c.s.carts, id)
	return &model.DeleteResult{DeletedCount: 1}, nil
}

func (c *carts) DeleteByIDs(ctx context.Context, ids []string) (*model.DeleteResult, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := c.s.carts[id]; ok {
			delete(c.s.carts, id)
			n++
		}
	}
	return &model.DeleteResult{DeletedCount: n}, nil
}

// --- Payments ---

type payments struct{ s *memStore }

func (p *payments) Insert(ctx context.Context, pay *model.Payment) (*model.InsertResult, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	id := pay.ID
	if id == "" {
		id = newID()
	}
	cp := *pay
	cp.ID = id
	cp.CartIDs = append([]string(nil), pay.CartIDs...)
	cp.MenuItemIDs = append([]string(nil), pay.MenuItemIDs...)
	p.s.payments[id] = &cp
	return &model.InsertResult{InsertedID: id}, nil
}

func (p *payments) ListByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := []*model.Payment{}
	for _, pay := range p.s.payments {
		if pay.Email == email {
			cp := *pay
			cp.CartIDs = append([]string(nil), pay.CartIDs...)
			cp.MenuItemIDs = append([]string(nil), pay.MenuItemIDs...)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (p *payments) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	stats := &model.AdminStats{
		Users:     int64(len(p.s.users)),
		MenuItems: int64(len(p.s.menu)),
		Orders:    int64(len(p.s.payments)),
	}
	for _, pay := range p.s.payments {
		stats.Revenue += pay.Price
	}
	return stats, nil
}

func (p *payments) OrderStats(ctx context.Context) ([]*model.OrderStat, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	// Unwind menu item ids across payments, join each to its menu record
	// and group by category; ids with no matching menu record drop out,
	// matching the $lookup+$unwind pipeline.
	groups := map[string]*model.OrderStat{}
	for _, pay := range p.s.payments {
		for _, menuID := range pay.MenuItemIDs {
			item, ok := p.s.menu[menuID]
			if !ok {
				continue
			}
			g, ok := groups[item.Category]
			if !ok {
				g = &model.OrderStat{Category: item.Category}
				groups[item.Category] = g
			}
			g.Quantity++
			g.Revenue += item.Price
		}
	}

	out := make([]*model.OrderStat, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	return out, nil
}
