package payment

import (
	"context"

	"github.com/stripe/stripe-go/v80"
)

// Processor is the capability contract every payment backend satisfies.
// Capability groups mirror how the storefront consumes payments: customer
// creation, hosted checkout, invoicing and transaction lookups.
type Processor interface {
	// Type identifies the backend, e.g. "stripe". Downstream rendering
	// receives this explicitly instead of reading process-wide state.
	Type() string

	CreateCustomer(ctx context.Context, data CreateCustomerData) (map[string]string, error)
	CreatePaymentLink(ctx context.Context, data PaymentLinkData) (*SessionResult, error)

	Checkout() CheckoutProcessor
	Invoice() InvoiceProcessor
	Transaction() TransactionProcessor
}

type CheckoutProcessor interface {
	CreateCheckoutSession(ctx context.Context, data CheckoutData) (*SessionResult, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*FormattedCheckoutSessionData, error)
	GetLineItems(ctx context.Context, sessionID string) ([]SessionLineItem, error)
}

type InvoiceProcessor interface {
	// CreateInvoice creates a draft invoice with 30-day terms, one backend
	// product and invoice line per item, then finalizes and sends it.
	CreateInvoice(ctx context.Context, data InvoiceData) (*InvoiceResult, error)
}

type TransactionProcessor interface {
	GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntentData, error)
	CreatePaymentIntent(ctx context.Context, props CreatePaymentIntentProps) (*CreatePaymentIntentData, error)
}

// SessionFormatter is satisfied by checkout processors that can project an
// already-retrieved Stripe session without another backend round trip.
type SessionFormatter interface {
	FormatCheckoutSessionData(session *stripe.CheckoutSession) *FormattedCheckoutSessionData
}
