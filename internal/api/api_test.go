package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bistroboss/server/internal/auth"
	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/store"
	"github.com/bistroboss/server/internal/store/memstore"
)

// stubIntents records the amount forwarded to the payment provider.
type stubIntents struct {
	amount int64
	secret string
}

func (s *stubIntents) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	s.amount = amountCents
	return s.secret, nil
}

type testEnv struct {
	router  http.Handler
	store   store.Store
	tokens  *auth.TokenService
	intents *stubIntents
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := memstore.New()
	tokens := auth.NewTokenService([]byte("api-test-secret"), 1)
	intents := &stubIntents{secret: "pi_test_secret"}
	router := NewRouter(Deps{
		Store:          st,
		Tokens:         tokens,
		Intents:        intents,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return &testEnv{router: router, store: st, tokens: tokens, intents: intents}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) mint(t *testing.T, email string) string {
	t.Helper()
	token, err := e.tokens.Mint(email)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	return token
}

// seedAdmin registers an admin user directly in the store and returns a
// credential for it.
func (e *testEnv) seedAdmin(t *testing.T, email string) string {
	t.Helper()
	_, err := e.store.Users().Insert(context.Background(), &model.User{
		Name: "Boss", Email: email, Role: model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return e.mint(t, email)
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func TestIssueToken(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, "POST", "/jwt", "", map[string]string{"email": "guest@example.test"})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /jwt: %d %s", rr.Code, rr.Body.String())
	}
	body := decode[map[string]string](t, rr)
	if body["token"] == "" {
		t.Fatalf("missing token in %v", body)
	}

	claims, err := e.tokens.Validate(body["token"])
	if err != nil || claims.Email != "guest@example.test" {
		t.Fatalf("issued token invalid: claims=%v err=%v", claims, err)
	}
}

func TestRegisterTwiceReportsNullInsertedID(t *testing.T) {
	e := newTestEnv(t)
	payload := map[string]string{"name": "Ana", "email": "ana@example.test"}

	rr := e.do(t, "POST", "/users", "", payload)
	if rr.Code != http.StatusOK {
		t.Fatalf("first register: %d %s", rr.Code, rr.Body.String())
	}
	first := decode[map[string]any](t, rr)
	if first["insertedId"] == nil || first["insertedId"] == "" {
		t.Fatalf("first register: want inserted id, got %v", first)
	}

	rr = e.do(t, "POST", "/users", "", payload)
	if rr.Code != http.StatusOK {
		t.Fatalf("second register: %d %s", rr.Code, rr.Body.String())
	}
	second := decode[map[string]any](t, rr)
	if second["insertedId"] != nil {
		t.Fatalf("second register: want insertedId null, got %v", second["insertedId"])
	}

	users, err := e.store.Users().List(context.Background())
	if err != nil || len(users) != 1 {
		t.Fatalf("want exactly one record, got n=%d err=%v", len(users), err)
	}
}

func TestAdminGatedRoutes(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.seedAdmin(t, "boss@example.test")

	if _, err := e.store.Users().Insert(context.Background(), &model.User{
		Name: "Guest", Email: "guest@example.test", Role: model.RoleGuest,
	}); err != nil {
		t.Fatalf("seed guest: %v", err)
	}
	guestToken := e.mint(t, "guest@example.test")

	adminRoutes := []struct {
		method, path string
		body         any
	}{
		{"GET", "/users", nil},
		{"GET", "/admin-stats", nil},
		{"GET", "/order-stats", nil},
		{"POST", "/menu", map[string]any{"name": "Soup", "category": "soup", "price": 4.5}},
	}
	for _, route := range adminRoutes {
		// No credential at all.
		if rr := e.do(t, route.method, route.path, "", route.body); rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s anonymous: want 401, got %d", route.method, route.path, rr.Code)
		}
		// Verified but not admin.
		if rr := e.do(t, route.method, route.path, guestToken, route.body); rr.Code != http.StatusForbidden {
			t.Fatalf("%s %s guest: want 403, got %d", route.method, route.path, rr.Code)
		}
		// Admin proceeds.
		if rr := e.do(t, route.method, route.path, adminToken, route.body); rr.Code != http.StatusOK {
			t.Fatalf("%s %s admin: want 200, got %d %s", route.method, route.path, rr.Code, rr.Body.String())
		}
	}
}

func TestCheckAdminSelfOnly(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.seedAdmin(t, "boss@example.test")

	rr := e.do(t, "GET", "/users/admin/boss@example.test", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("self check: %d %s", rr.Code, rr.Body.String())
	}
	body := decode[map[string]bool](t, rr)
	if !body["admin"] {
		t.Fatalf("self check: want admin true, got %v", body)
	}

	// A mismatched path email is forbidden even for an administrator.
	rr = e.do(t, "GET", "/users/admin/someone-else@example.test", adminToken, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("foreign check: want 403, got %d", rr.Code)
	}
}

func TestPromoteAndDeleteUser(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.seedAdmin(t, "boss@example.test")

	res, err := e.store.Users().Insert(context.Background(), &model.User{
		Name: "Newbie", Email: "newbie@example.test", Role: model.RoleGuest,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	rr := e.do(t, "PATCH", "/users/admin/"+res.InsertedID, adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("promote: %d %s", rr.Code, rr.Body.String())
	}
	upd := decode[model.UpdateResult](t, rr)
	if upd.MatchedCount != 1 {
		t.Fatalf("promote: %+v", upd)
	}
	u, _ := e.store.Users().FindByID(context.Background(), res.InsertedID)
	if !u.IsAdmin() {
		t.Fatalf("promotion not persisted: %+v", u)
	}

	rr = e.do(t, "DELETE", "/users/"+res.InsertedID, adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", rr.Code, rr.Body.String())
	}
	del := decode[model.DeleteResult](t, rr)
	if del.DeletedCount != 1 {
		t.Fatalf("delete: %+v", del)
	}
}

func TestMenuReadAndNotFound(t *testing.T) {
	e := newTestEnv(t)

	res, err := e.store.Menu().Insert(context.Background(), &model.MenuItem{
		Name: "Caesar Salad", Category: "salad", Price: 8.5,
	})
	if err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	rr := e.do(t, "GET", "/menu", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /menu: %d", rr.Code)
	}
	items := decode[[]model.MenuItem](t, rr)
	if len(items) != 1 || items[0].Name != "Caesar Salad" {
		t.Fatalf("GET /menu: %+v", items)
	}

	rr = e.do(t, "GET", "/menu/"+res.InsertedID, "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /menu/{id}: %d", rr.Code)
	}

	rr = e.do(t, "GET", "/menu/does-not-exist", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("GET absent menu item: want 404, got %d", rr.Code)
	}
}

func TestMenuPatchIsAdminGated(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.seedAdmin(t, "boss@example.test")

	res, err := e.store.Menu().Insert(context.Background(), &model.MenuItem{
		Name: "Pasta", Category: "pasta", Price: 11,
	})
	if err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	patch := map[string]any{"price": 12.5}
	if rr := e.do(t, "PATCH", "/menu/"+res.InsertedID, "", patch); rr.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous patch: want 401, got %d", rr.Code)
	}

	rr := e.do(t, "PATCH", "/menu/"+res.InsertedID, adminToken, patch)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin patch: %d %s", rr.Code, rr.Body.String())
	}
	item, _ := e.store.Menu().FindByID(context.Background(), res.InsertedID)
	if item.Price != 12.5 {
		t.Fatalf("patch not applied: %+v", item)
	}
	if item.Name != "Pasta" {
		t.Fatalf("patch clobbered untouched field: %+v", item)
	}
}

func TestCartFlow(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, "POST", "/carts", "", map[string]any{
		"email": "ana@example.test", "menuItemId": "m1", "name": "Soup", "price": 4.5,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /carts: %d %s", rr.Code, rr.Body.String())
	}
	ins := decode[model.InsertResult](t, rr)

	rr = e.do(t, "GET", "/carts?email=ana@example.test", "", nil)
	carts := decode[[]model.CartItem](t, rr)
	if len(carts) != 1 {
		t.Fatalf("GET /carts: %+v", carts)
	}

	// Deleting needs a credential but no ownership check runs.
	if rr := e.do(t, "DELETE", "/carts/"+ins.InsertedID, "", nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous cart delete: want 401, got %d", rr.Code)
	}
	otherToken := e.mint(t, "somebody-else@example.test")
	rr = e.do(t, "DELETE", "/carts/"+ins.InsertedID, otherToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("verified cart delete: %d %s", rr.Code, rr.Body.String())
	}
	del := decode[model.DeleteResult](t, rr)
	if del.DeletedCount != 1 {
		t.Fatalf("cart delete: %+v", del)
	}
}

func TestCreatePaymentIntentAmount(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, "POST", "/create-payment-intent", "", map[string]float64{"price": 12.5})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /create-payment-intent: %d %s", rr.Code, rr.Body.String())
	}
	body := decode[map[string]string](t, rr)
	if body["clientSecret"] != "pi_test_secret" {
		t.Fatalf("client secret: %v", body)
	}
	if e.intents.amount != 1250 {
		t.Fatalf("amount forwarded to provider: want 1250, got %d", e.intents.amount)
	}
}

func TestPaymentRemovesCartsAndAppearsInHistory(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	c1, _ := e.store.Carts().Insert(ctx, &model.CartItem{Email: "ana@example.test", Price: 10})
	c2, _ := e.store.Carts().Insert(ctx, &model.CartItem{Email: "ana@example.test", Price: 20.5})

	rr := e.do(t, "POST", "/payments", "", map[string]any{
		"email":   "ana@example.test",
		"price":   30.5,
		"cartIds": []string{c1.InsertedID, c2.InsertedID},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /payments: %d %s", rr.Code, rr.Body.String())
	}
	out := decode[map[string]map[string]any](t, rr)
	if id, _ := out["paymentResult"]["insertedId"].(string); id == "" {
		t.Fatalf("payment result: %v", out)
	}
	if n, _ := out["deleteResult"]["deletedCount"].(float64); n != 2 {
		t.Fatalf("delete result: %v", out)
	}

	rr = e.do(t, "GET", "/carts?email=ana@example.test", "", nil)
	if carts := decode[[]model.CartItem](t, rr); len(carts) != 0 {
		t.Fatalf("carts still listable after payment: %+v", carts)
	}

	ownerToken := e.mint(t, "ana@example.test")
	rr = e.do(t, "GET", "/payments/ana@example.test", ownerToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /payments/{email}: %d %s", rr.Code, rr.Body.String())
	}
	history := decode[[]model.Payment](t, rr)
	if len(history) != 1 || history[0].Price != 30.5 {
		t.Fatalf("history: %+v", history)
	}
}

func TestPaymentHistoryOwnershipNotBypassedByAdmin(t *testing.T) {
	e := newTestEnv(t)
	adminToken := e.seedAdmin(t, "boss@example.test")

	rr := e.do(t, "GET", "/payments/ana@example.test", adminToken, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("admin reading foreign history: want 403, got %d", rr.Code)
	}
}

func TestReviews(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, "POST", "/reviews", "", map[string]any{
		"name": "Ana", "details": "great soup", "rating": 5,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("POST /reviews: %d %s", rr.Code, rr.Body.String())
	}

	rr = e.do(t, "GET", "/reviews", "", nil)
	reviews := decode[[]model.Review](t, rr)
	if len(reviews) != 1 || reviews[0].Details != "great soup" {
		t.Fatalf("GET /reviews: %+v", reviews)
	}
}

func TestAdminStatsOverSeededData(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	adminToken := e.seedAdmin(t, "boss@example.test")

	for _, price := range []float64{10, 20.5} {
		if _, err := e.store.Payments().Insert(ctx, &model.Payment{Email: "ana@example.test", Price: price}); err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}

	rr := e.do(t, "GET", "/admin-stats", adminToken, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /admin-stats: %d %s", rr.Code, rr.Body.String())
	}
	stats := decode[model.AdminStats](t, rr)
	if stats.Revenue != 30.5 || stats.Orders != 2 || stats.Users != 1 {
		t.Fatalf("stats: %+v", stats)
	}
}
