package api

import (
	"github.com/gorilla/mux"

	"github.com/bistroboss/server/internal/api/recovery"
	"github.com/bistroboss/server/internal/auth"
	"github.com/bistroboss/server/internal/payments"
	"github.com/bistroboss/server/internal/services"
	"github.com/bistroboss/server/internal/store"
)

// Deps carries everything the router needs, constructed once at startup
// and injected here; no package-level state.
type Deps struct {
	Store          store.Store
	Tokens         *auth.TokenService
	Intents        payments.IntentCreator
	Health         HealthReporter
	AllowedOrigins []string
}

// NewRouter wires every route to its handler behind the middleware chain
// applied in a fixed order: recovery, CORS, then per-route authenticate →
// authorize-role → (in-handler) authorize-ownership.
func NewRouter(d Deps) *mux.Router {
	userSvc := services.NewUserService(d.Store)
	menuSvc := services.NewMenuService(d.Store)
	reviewSvc := services.NewReviewService(d.Store)
	cartSvc := services.NewCartService(d.Store)
	paymentSvc := services.NewPaymentService(d.Store)

	guard := auth.NewGuard(d.Tokens, userSvc)

	tokenHandler := NewTokenHandler(d.Tokens)
	userHandler := NewUserHandler(userSvc)
	menuHandler := NewMenuHandler(menuSvc)
	reviewHandler := NewReviewHandler(reviewSvc)
	cartHandler := NewCartHandler(cartSvc)
	paymentHandler := NewPaymentHandler(paymentSvc, d.Intents)
	statsHandler := NewStatsHandler(paymentSvc)
	healthHandler := NewHealthHandler(d.Store, d.Health)

	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(CORSMiddleware(d.AllowedOrigins))

	root.HandleFunc("/", Welcome).Methods("GET")
	root.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	// Credentials
	root.HandleFunc("/jwt", tokenHandler.IssueToken).Methods("POST")

	// Users
	root.Handle("/users", guard.ProtectAdmin(userHandler.ListUsers)).Methods("GET")
	root.HandleFunc("/users", userHandler.Register).Methods("POST")
	root.Handle("/users/admin/{email}", guard.Protect(userHandler.CheckAdmin)).Methods("GET")
	root.Handle("/users/admin/{id}", guard.ProtectAdmin(userHandler.PromoteAdmin)).Methods("PATCH")
	root.Handle("/users/{id}", guard.ProtectAdmin(userHandler.DeleteUser)).Methods("DELETE")

	// Menu
	root.HandleFunc("/menu", menuHandler.ListMenu).Methods("GET")
	root.HandleFunc("/menu/{id}", menuHandler.GetMenuItem).Methods("GET")
	root.Handle("/menu", guard.ProtectAdmin(menuHandler.CreateMenuItem)).Methods("POST")
	root.Handle("/menu/{id}", guard.ProtectAdmin(menuHandler.UpdateMenuItem)).Methods("PATCH")
	root.Handle("/menu/{id}", guard.ProtectAdmin(menuHandler.DeleteMenuItem)).Methods("DELETE")

	// Reviews
	root.HandleFunc("/reviews", reviewHandler.ListReviews).Methods("GET")
	root.HandleFunc("/reviews", reviewHandler.CreateReview).Methods("POST")

	// Carts
	root.HandleFunc("/carts", cartHandler.ListCarts).Methods("GET")
	root.HandleFunc("/carts", cartHandler.AddToCart).Methods("POST")
	root.Handle("/carts/{id}", guard.Protect(cartHandler.DeleteCart)).Methods("DELETE")

	// Payments
	root.HandleFunc("/create-payment-intent", paymentHandler.CreatePaymentIntent).Methods("POST")
	root.Handle("/payments/{email}", guard.Protect(paymentHandler.PaymentHistory)).Methods("GET")
	root.HandleFunc("/payments", paymentHandler.RecordPayment).Methods("POST")

	// Analytics
	root.Handle("/admin-stats", guard.ProtectAdmin(statsHandler.AdminStats)).Methods("GET")
	root.Handle("/order-stats", guard.ProtectAdmin(statsHandler.OrderStats)).Methods("GET")

	return root
}
