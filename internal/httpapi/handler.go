package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"storepay/internal/config"
	"storepay/internal/logger"
	"storepay/internal/payment"
	"storepay/internal/utils"
	"storepay/internal/view"
)

// OrderLookupFunc resolves a checkout session id to the storefront's
// persisted order record. Nil result with nil error means "no order yet".
type OrderLookupFunc func(ctx context.Context, sessionID string) (*payment.StoreOrder, error)

// OrderByIDFunc resolves an order id to the persisted order record.
type OrderByIDFunc func(ctx context.Context, orderID string) (*payment.StoreOrder, error)

// Handler exposes the payment operations over HTTP. Durable state stays
// with the caller: order and inventory access happen only through the
// injected callbacks.
type Handler struct {
	processor payment.Processor
	cfg       *config.Config
	renderer  *view.Renderer

	OrderLookup OrderLookupFunc
	OrderByID   OrderByIDFunc
	StockUpdate payment.StockUpdateFunc
}

func NewHandler(processor payment.Processor, cfg *config.Config, renderer *view.Renderer) *Handler {
	return &Handler{
		processor: processor,
		cfg:       cfg,
		renderer:  renderer,
	}
}

func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var data payment.CheckoutData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	res, err := h.processor.Checkout().CreateCheckoutSession(r.Context(), data)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) GetCheckoutSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		utils.WriteJSONError(w, "missing session id", http.StatusBadRequest)
		return
	}

	data, err := h.processor.Checkout().GetCheckoutSession(r.Context(), sessionID)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, data)
}

// RebuildOrder reconstructs order items from a completed session's line
// items, decrementing stock through the injected callback per line.
func (h *Handler) RebuildOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		utils.WriteJSONError(w, "missing session id", http.StatusBadRequest)
		return
	}

	rebuilt, err := payment.LineToOrderItems(r.Context(), h.processor.Checkout(), sessionID, h.StockUpdate)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, rebuilt)
}

func (h *Handler) GetPaymentIntent(w http.ResponseWriter, r *http.Request) {
	intentID := r.PathValue("id")
	if intentID == "" {
		utils.WriteJSONError(w, "missing payment intent id", http.StatusBadRequest)
		return
	}

	data, err := h.processor.Transaction().GetPaymentIntent(r.Context(), intentID)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, data)
}

func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var props payment.CreatePaymentIntentProps
	if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	if props.Amount <= 0 {
		utils.WriteJSONError(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	data, err := h.processor.Transaction().CreatePaymentIntent(r.Context(), props)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, data)
}

func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var data payment.InvoiceData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	if data.Email == "" && data.Customer.Metadata["stripeCustomerId"] == "" {
		utils.WriteJSONError(w, "email or known customer required", http.StatusBadRequest)
		return
	}
	if len(data.Items) == 0 {
		utils.WriteJSONError(w, "at least one item required", http.StatusBadRequest)
		return
	}

	res, err := h.processor.Invoice().CreateInvoice(r.Context(), data)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	var data payment.PaymentLinkData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	if len(data.Items) == 0 {
		utils.WriteJSONError(w, "at least one item required", http.StatusBadRequest)
		return
	}

	res, err := h.processor.CreatePaymentLink(r.Context(), data)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, res)
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var data payment.CreateCustomerData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		utils.WriteJSONError(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}
	if data.Email == "" {
		utils.WriteJSONError(w, "email required", http.StatusBadRequest)
		return
	}

	metadata, err := h.processor.CreateCustomer(r.Context(), data)
	if err != nil {
		h.writeProcessorError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, metadata)
}

// writeProcessorError maps processor failures to API responses without
// leaking backend internals.
func (h *Handler) writeProcessorError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromCtx(r.Context())

	switch {
	case errors.Is(err, payment.ErrCheckoutSource):
		utils.WriteJSONError(w, "exactly one of cart or order must be set", http.StatusBadRequest)
	case errors.Is(err, payment.ErrNotInitialized), errors.Is(err, payment.ErrMissingCredentials):
		log.Error("payment processor unavailable", zap.Error(err))
		utils.WriteJSONError(w, "payment processor unavailable", http.StatusInternalServerError)
	default:
		log.Error("payment backend error", zap.Error(err))
		utils.WriteJSONError(w, "payment backend error", http.StatusBadGateway)
	}
}
