package model

// Role is the privilege level attached to a user record.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// User is an account keyed by email. Registration is idempotent on email.
type User struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Role  Role   `json:"role" bson:"role"`
}

// IsAdmin reports whether the user holds elevated privileges.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// MenuItem is a dish on the menu. Mutable only by administrators.
type MenuItem struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
	Recipe   string  `json:"recipe" bson:"recipe"`
	Image    string  `json:"image" bson:"image"`
}

// MenuItemPatch carries the updatable subset of MenuItem fields.
// Nil fields are left untouched.
type MenuItemPatch struct {
	Name     *string  `json:"name,omitempty" bson:"name,omitempty"`
	Category *string  `json:"category,omitempty" bson:"category,omitempty"`
	Price    *float64 `json:"price,omitempty" bson:"price,omitempty"`
	Recipe   *string  `json:"recipe,omitempty" bson:"recipe,omitempty"`
	Image    *string  `json:"image,omitempty" bson:"image,omitempty"`
}

// Review is customer feedback. Readable by anyone.
type Review struct {
	ID      string  `json:"id" bson:"_id,omitempty"`
	Name    string  `json:"name" bson:"name"`
	Details string  `json:"details" bson:"details"`
	Rating  float64 `json:"rating" bson:"rating"`
}

// CartItem is a menu item staged for purchase, scoped to its owner's email.
type CartItem struct {
	ID         string  `json:"id" bson:"_id,omitempty"`
	Email      string  `json:"email" bson:"email"`
	MenuItemID string  `json:"menuItemId" bson:"menuItemId"`
	Name       string  `json:"name" bson:"name"`
	Image      string  `json:"image" bson:"image"`
	Price      float64 `json:"price" bson:"price"`
}

// Payment records a completed charge together with the cart and menu ids
// it covered. The referenced carts are deleted right after the insert;
// the two store calls are not wrapped in a transaction.
type Payment struct {
	ID            string   `json:"id" bson:"_id,omitempty"`
	Email         string   `json:"email" bson:"email"`
	Price         float64  `json:"price" bson:"price"`
	TransactionID string   `json:"transactionId" bson:"transactionId"`
	Date          string   `json:"date" bson:"date"`
	CartIDs       []string `json:"cartIds" bson:"cartIds"`
	MenuItemIDs   []string `json:"menuItemIds" bson:"menuItemIds"`
	Status        string   `json:"status" bson:"status"`
}

// AdminStats is the revenue summary aggregation result.
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// OrderStat is one category group of the order-stats aggregation.
// Groups carry no defined ordering.
type OrderStat struct {
	Category string  `json:"category" bson:"category"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Revenue  float64 `json:"revenue" bson:"revenue"`
}

// InsertResult reports the id assigned by an insert. ID is empty when the
// insert was skipped (idempotent registration).
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult mirrors the driver's matched/modified counts.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many records a delete removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
