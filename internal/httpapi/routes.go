package httpapi

import "net/http"

// Routes wires every handler onto a mux. Middleware is layered by the
// caller so tests can exercise handlers bare.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/checkout/sessions", h.CreateCheckoutSession)
	mux.HandleFunc("GET /api/checkout/sessions/{id}", h.GetCheckoutSession)
	mux.HandleFunc("POST /api/checkout/sessions/{id}/order", h.RebuildOrder)

	mux.HandleFunc("GET /api/payment-intents/{id}", h.GetPaymentIntent)
	mux.HandleFunc("POST /api/payment-intents", h.CreatePaymentIntent)

	mux.HandleFunc("POST /api/invoices", h.CreateInvoice)
	mux.HandleFunc("POST /api/payment-links", h.CreatePaymentLink)
	mux.HandleFunc("POST /api/customers", h.CreateCustomer)

	mux.HandleFunc("GET /orders/confirmation", h.Confirmation)

	return mux
}
