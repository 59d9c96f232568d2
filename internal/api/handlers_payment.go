package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/bistroboss/server/internal/api/respond"
	"github.com/bistroboss/server/internal/api/validate"
	"github.com/bistroboss/server/internal/auth"
	"github.com/bistroboss/server/internal/model"
	"github.com/bistroboss/server/internal/payments"
	"github.com/bistroboss/server/internal/services"
)

// PaymentHandler provides HTTP transport for payment intents, payment
// recording and payment history.
type PaymentHandler struct {
	svc     *services.PaymentService
	intents payments.IntentCreator
}

func NewPaymentHandler(svc *services.PaymentService, intents payments.IntentCreator) *PaymentHandler {
	return &PaymentHandler{svc: svc, intents: intents}
}

// CreatePaymentIntent POST /create-payment-intent
// The decimal price converts to the provider's integer minor unit:
// round(price × 100).
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.Price(in.Price); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	secret, err := h.intents.CreateIntent(r.Context(), payments.AmountCents(in.Price))
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

// RecordPayment POST /payments
// Inserts the payment, then deletes the referenced cart entries; the two
// results are echoed together. No transaction spans the pair.
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var in model.Payment
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.Email(in.Email); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Price(in.Price); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if in.TransactionID == "" {
		in.TransactionID = uuid.New().String()
	}
	if in.Date == "" {
		in.Date = time.Now().UTC().Format(time.RFC3339)
	}
	if in.Status == "" {
		in.Status = "pending"
	}

	out, err := h.svc.Record(r.Context(), &in)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// PaymentHistory GET /payments/{email} (verified, self-only)
// Ownership is checked against the verified identity; elevated privileges
// do not bypass it on this route.
func (h *PaymentHandler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if err := auth.CheckOwnership(r.Context(), email); err != nil {
		respond.WriteForbidden(w)
		return
	}

	history, err := h.svc.HistoryByEmail(r.Context(), email)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, history)
}
