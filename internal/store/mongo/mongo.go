// Package mongo implements store.Store over a MongoDB database.
//
// Domain ids are opaque hex strings; the ObjectID conversion is confined
// to this package. Payment menuItemIds are persisted as ObjectIDs so the
// order-stats $lookup joins directly against menu._id.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
)

// Open connects a Mongo client and verifies connectivity with a ping.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// New constructs a Mongo-backed store over the named database. The client
// is safe for concurrent use; one client serves all requests for the
// process lifetime.
func New(client *mongo.Client, database string) store.Store {
	db := client.Database(database)
	return &mongoStore{
		client:   client,
		users:    db.Collection("users"),
		menu:     db.Collection("menu"),
		reviews:  db.Collection("reviews"),
		carts:    db.Collection("carts"),
		payments: db.Collection("payments"),
	}
}

type mongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	menu     *mongo.Collection
	reviews  *mongo.Collection
	carts    *mongo.Collection
	payments *mongo.Collection
}

func (s *mongoStore) Users() store.Users       { return &users{c: s.users} }
func (s *mongoStore) Menu() store.Menu         { return &menu{c: s.menu} }
func (s *mongoStore) Reviews() store.Reviews   { return &reviews{c: s.reviews} }
func (s *mongoStore) Carts() store.Carts       { return &carts{c: s.carts} }
func (s *mongoStore) Payments() store.Payments { return &payments{c: s.payments, menu: s.menu, users: s.users} }

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// idFilter builds an _id filter, accepting hex ObjectID strings and
// falling back to raw string ids.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

func toObjectIDs(ids []string) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		} else {
			out = append(out, id)
		}
	}
	return out
}

// --- Users ---

type userDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Role  string             `bson:"role"`
}

func (d *userDoc) toModel() *model.User {
	return &model.User{ID: d.ID.Hex(), Name: d.Name, Email: d.Email, Role: model.Role(d.Role)}
}

type users struct{ c *mongo.Collection }

func (u *users) Insert(ctx context.Context, m *model.User) (*model.InsertResult, error) {
	res, err := u.c.InsertOne(ctx, userDoc{Name: m.Name, Email: m.Email, Role: string(m.Role)})
	if err != nil {
		return nil, err
	}
	return &model.InsertResult{InsertedID: insertedHex(res.InsertedID)}, nil
}

func (u *users) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var doc userDoc
	err := u.c.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (u *users) FindByID(ctx context.Context, id string) (*model.User, error) {
	var doc userDoc
	err := u.c.FindOne(ctx, idFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	cur, err := u.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*model.User{}
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}

func (u *users) UpdateRole(ctx context.Context, id string, role model.Role) (*model.UpdateResult, error) {
	res, err := u.c.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"role": string(role)}})
	if err != nil {
		return nil, err
	}
	return &model.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (u *users) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := u.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return nil, err
	}
	return &model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// --- Menu ---

type menuDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Recipe   string             `bson:"recipe"`
	Image    string             `bson:"image"`
}

func (d *menuDoc) toModel() *model.MenuItem {
	return &model.MenuItem{
		ID: d.ID.Hex(), Name: d.Name, Category: d.Category,
		Price: d.Price, Recipe: d.Recipe, Image: d.Image,
	}
}

type menu struct{ c *mongo.Collection }

func (m *menu) Insert(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	res, err := m.c.InsertOne(ctx, menuDoc{
		Name: item.Name, Category: item.Category, Price: item.Price,
		Recipe: item.Recipe, Image: item.Image,
	})
	if err != nil {
		return nil, err
	}
	return &model.InsertResult{InsertedID: insertedHex(res.InsertedID)}, nil
}

func (m *menu) List(ctx context.Context) ([]*model.MenuItem, error) {
	cur, err := m.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*model.MenuItem{}
	for cur.Next(ctx) {
		var doc menuDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}

func (m *menu) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var doc menuDoc
	err := m.c.FindOne(ctx, idFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (m *menu) Update(ctx context.Context, id string, patch *model.MenuItemPatch) (*model.UpdateResult, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Recipe != nil {
		set["recipe"] = *patch.Recipe
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if len(set) == 0 {
		return &model.UpdateResult{}, nil
	}
	res, err := m.c.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &model.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (m *menu) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := m.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return nil, err
	}
	return &model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// --- Reviews ---

type reviewDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Details string             `bson:"details"`
	Rating  float64            `bson:"rating"`
}

type reviews struct{ c *mongo.Collection }

func (r *reviews) Insert(ctx context.Context, rev *model.Review) (*model.InsertResult, error) {
	res, err := r.c.InsertOne(ctx, reviewDoc{Name: rev.Name, Details: rev.Details, Rating: rev.Rating})
	if err != nil {
		return nil, err
	}
	return &model.InsertResult{InsertedID: insertedHex(res.InsertedID)}, nil
}

func (r *reviews) List(ctx context.Context) ([]*model.Review, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*model.Review{}
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, &model.Review{ID: doc.ID.Hex(), Name: doc.Name, Details: doc.Details, Rating: doc.Rating})
	}
	return out, cur.Err()
}

// --- Carts ---

type cartDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	MenuItemID string             `bson:"menuItemId"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image"`
	Price      float64            `bson:"price"`
}

func (d *cartDoc) toModel() *model.CartItem {
	return &model.CartItem{
		ID: d.ID.Hex(), Email: d.Email, MenuItemID: d.MenuItemID,
		Name: d.Name, Image: d.Image, Price: d.Price,
	}
}

type carts struct{ c *mongo.Collection }

func (ca *carts) Insert(ctx context.Context, item *model.CartItem) (*model.InsertResult, error) {
	res, err := ca.c.InsertOne(ctx, cartDoc{
		Email: item.Email, MenuItemID: item.MenuItemID,
		Name: item.Name, Image: item.Image, Price: item.Price,
	})
	if err != nil {
		return nil, err
	}
	return &model.InsertResult{InsertedID: insertedHex(res.InsertedID)}, nil
}

func (ca *carts) ListByEmail(ctx context.Context, email string) ([]*model.CartItem, error) {
	cur, err := ca.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*model.CartItem{}
	for cur.Next(ctx) {
		var doc cartDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toModel())
	}
	return out, cur.Err()
}

func (ca *carts) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := ca.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return nil, err
	}
	return &model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (ca *carts) DeleteByIDs(ctx context.Context, ids []string) (*model.DeleteResult, error) {
	if len(ids) == 0 {
		return &model.DeleteResult{}, nil
	}
	res, err := ca.c.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": toObjectIDs(ids)}})
	if err != nil {
		return nil, err
	}
	return &model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// --- Payments ---

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transactionId"`
	Date          string             `bson:"date"`
	CartIDs       []string           `bson:"cartIds"`
	MenuItemIDs   []any              `bson:"menuItemIds"`
	Status        string             `bson:"status"`
}

type payments struct {
	c     *mongo.Collection
	menu  *mongo.Collection
	users *mongo.Collection
}

func (p *payments) Insert(ctx context.Context, pay *model.Payment) (*model.InsertResult, error) {
	res, err := p.c.InsertOne(ctx, paymentDoc{
		Email:         pay.Email,
		Price:         pay.Price,
		TransactionID: pay.TransactionID,
		Date:          pay.Date,
		CartIDs:       pay.CartIDs,
		MenuItemIDs:   toObjectIDs(pay.MenuItemIDs),
		Status:        pay.Status,
	})
	if err != nil {
		return nil, err
	}
	return &model.InsertResult{InsertedID: insertedHex(res.InsertedID)}, nil
}

func (p *payments) ListByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	cur, err := p.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*model.Payment{}
	for cur.Next(ctx) {
		var doc paymentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		menuIDs := make([]string, 0, len(doc.MenuItemIDs))
		for _, id := range doc.MenuItemIDs {
			switch v := id.(type) {
			case primitive.ObjectID:
				menuIDs = append(menuIDs, v.Hex())
			case string:
				menuIDs = append(menuIDs, v)
			}
		}
		out = append(out, &model.Payment{
			ID: doc.ID.Hex(), Email: doc.Email, Price: doc.Price,
			TransactionID: doc.TransactionID, Date: doc.Date,
			CartIDs: doc.CartIDs, MenuItemIDs: menuIDs, Status: doc.Status,
		})
	}
	return out, cur.Err()
}

func (p *payments) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	userCount, err := p.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	menuCount, err := p.menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	orderCount, err := p.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := p.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	revenue := 0.0
	if cur.Next(ctx) {
		var agg struct {
			Total float64 `bson:"total"`
		}
		if err := cur.Decode(&agg); err != nil {
			return nil, err
		}
		revenue = agg.Total
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return &model.AdminStats{
		Users:     userCount,
		MenuItems: menuCount,
		Orders:    orderCount,
		Revenue:   revenue,
	}, nil
}

func (p *payments) OrderStats(ctx context.Context) ([]*model.OrderStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
	}

	cur, err := p.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := []*model.OrderStat{}
	for cur.Next(ctx) {
		var stat model.OrderStat
		if err := cur.Decode(&stat); err != nil {
			return nil, err
		}
		out = append(out, &stat)
	}
	return out, cur.Err()
}

func insertedHex(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
