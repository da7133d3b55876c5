package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"storepay/internal/logger"
	"storepay/internal/middleware"
	"storepay/internal/payment"
	"storepay/internal/utils"
	"storepay/internal/view"
)

// processingErrorMessage is the user-facing text for any failure on our
// side of the confirmation flow. Backend details never reach the page.
const processingErrorMessage = "There was an error processing your payment. Please try again."

// Confirmation renders the order confirmation page. A session id drives the
// processor-session view when the active processor supports checkout
// sessions; otherwise the persisted order record drives the view.
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromCtx(ctx)

	sessionID := r.URL.Query().Get("session_id")
	orderID := r.URL.Query().Get("order_id")

	_, authenticated := middleware.CustomerFrom(ctx)
	opts := view.Options{
		BackToAccount: authenticated,
		SupportEmail:  h.supportEmail(),
	}

	var c view.Confirmation
	if h.processor.Type() == payment.TypeStripe && sessionID != "" {
		data, err := h.processor.Checkout().GetCheckoutSession(ctx, sessionID)
		if err != nil {
			log.Error("confirmation session retrieval failed",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
			data = nil
			opts.LocalError = processingErrorMessage
		}

		var order *payment.StoreOrder
		if data != nil && h.OrderLookup != nil {
			order, err = h.OrderLookup(ctx, sessionID)
			if err != nil {
				// A paid session with a failed lookup falls through to the
				// escalation state rather than a hard error.
				log.Error("order lookup failed",
					zap.String("session_id", sessionID),
					zap.Error(err),
				)
				order = nil
			}
		}

		c = view.BuildSessionConfirmation(data, order, opts)
	} else {
		var order *payment.StoreOrder
		if orderID != "" && h.OrderByID != nil {
			var err error
			order, err = h.OrderByID(ctx, orderID)
			if err != nil {
				log.Error("order retrieval failed",
					zap.String("order_id", orderID),
					zap.Error(err),
				)
				order = nil
			}
		}

		c = view.BuildOrderConfirmation(order, opts)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, c); err != nil {
		log.Error("confirmation render failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) supportEmail() string {
	domain, err := utils.EmailDomain(h.cfg.PublicHostname)
	if err != nil {
		return ""
	}
	return "support@" + domain
}
