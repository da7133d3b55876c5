package payment

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoiceBackend scripts the full invoice call sequence. Product and
// invoice-item calls arrive concurrently, so counters are mutex-guarded.
type invoiceBackend struct {
	mu           sync.Mutex
	customers    int
	products     int
	invoiceItems int
	finalized    bool
	sent         bool

	failProducts bool
}

func (b *invoiceBackend) roundTrip(req *http.Request) *http.Response {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case req.URL.Path == "/v1/customers":
		b.customers++
		return jsonResponse(`{"id":"cus_new"}`)
	case req.URL.Path == "/v1/invoices" && req.Method == http.MethodPost:
		return jsonResponse(`{"id":"in_1"}`)
	case req.URL.Path == "/v1/products":
		b.products++
		if b.failProducts {
			resp := jsonResponse(`{"error":{"type":"invalid_request_error","message":"bad product"}}`)
			resp.StatusCode = http.StatusBadRequest
			return resp
		}
		return jsonResponse(`{"id":"prod_1"}`)
	case req.URL.Path == "/v1/invoiceitems":
		b.invoiceItems++
		return jsonResponse(`{"id":"ii_1"}`)
	case req.URL.Path == "/v1/invoices/in_1/finalize":
		b.finalized = true
		return jsonResponse(`{"id":"in_1","hosted_invoice_url":"https://invoice.stripe.com/i/in_1"}`)
	case req.URL.Path == "/v1/invoices/in_1/send":
		b.sent = true
		return jsonResponse(`{"id":"in_1"}`)
	}
	return jsonResponse(`{}`)
}

func TestStripeInvoice_CreateInvoice(t *testing.T) {
	items := []InvoiceItemData{
		{Name: "Custom engraving", AmountInCents: 4500, Quantity: 1, VariantID: "var-1"},
		{Name: "Rush fee", AmountInCents: 1500, Quantity: 1, ProductRequestID: "req-2"},
	}

	t.Run("NewCustomer", func(t *testing.T) {
		backend := &invoiceBackend{}
		p := newTestProcessor(mockRoundTripper(backend.roundTrip))

		res, err := p.Invoice().CreateInvoice(context.Background(), InvoiceData{
			Email:   "buyer@example.com",
			Items:   items,
			OrderID: "order-1",
			StoreID: "store-1",
		})
		require.NoError(t, err)

		assert.Equal(t, "in_1", res.InvoiceID)
		assert.Equal(t, "https://invoice.stripe.com/i/in_1", res.InvoiceURL)
		assert.Equal(t, "cus_new", res.CustomerMetadata["stripeCustomerId"])

		assert.Equal(t, 1, backend.customers)
		assert.Equal(t, 2, backend.products)
		assert.Equal(t, 2, backend.invoiceItems)
		assert.True(t, backend.finalized)
		assert.True(t, backend.sent)
	})

	t.Run("ExistingCustomer", func(t *testing.T) {
		backend := &invoiceBackend{}
		p := newTestProcessor(mockRoundTripper(backend.roundTrip))

		res, err := p.Invoice().CreateInvoice(context.Background(), InvoiceData{
			Email:   "buyer@example.com",
			Items:   items[:1],
			OrderID: "order-2",
			Customer: InvoiceCustomer{
				ID:       "cust-local",
				Metadata: map[string]string{"stripeCustomerId": "cus_existing"},
			},
		})
		require.NoError(t, err)

		assert.Zero(t, backend.customers)
		assert.Equal(t, "cus_existing", res.CustomerMetadata["stripeCustomerId"])
	})

	t.Run("ItemFailureAbortsBatch", func(t *testing.T) {
		backend := &invoiceBackend{failProducts: true}
		p := newTestProcessor(mockRoundTripper(backend.roundTrip))

		_, err := p.Invoice().CreateInvoice(context.Background(), InvoiceData{
			Email:   "buyer@example.com",
			Items:   items,
			OrderID: "order-3",
		})
		require.Error(t, err)
		assert.False(t, backend.finalized)
		assert.False(t, backend.sent)
	})

	t.Run("CustomerCreationFails", func(t *testing.T) {
		p := newTestProcessor(mockRoundTripperWithError(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("network down")
		}))

		_, err := p.Invoice().CreateInvoice(context.Background(), InvoiceData{
			Email: "buyer@example.com",
			Items: items,
		})
		require.Error(t, err)
	})

	t.Run("NotInitialized", func(t *testing.T) {
		inv := &stripeInvoice{}
		_, err := inv.CreateInvoice(context.Background(), InvoiceData{})
		assert.ErrorIs(t, err, ErrNotInitialized)
	})
}
