package payment

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v80"

	"storepay/internal/config"
)

// mockRoundTripper lets tests script the Stripe backend's HTTP responses.
type mockRoundTripper func(req *http.Request) *http.Response

func (f mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type mockRoundTripperWithError func(req *http.Request) (*http.Response, error)

func (f mockRoundTripperWithError) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestProcessor builds a stripe processor whose backend talks to the
// given transport instead of the network.
func newTestProcessor(rt http.RoundTripper) *stripeProcessor {
	cfg := &config.Config{
		ProcessorType:    TypeStripe,
		StripeSecretKey:  "sk_test_123",
		PublicHostname:   "https://shop.example.com",
		PublicStorageURL: "https://cdn.example.com",
	}
	backends := stripe.NewBackends(&http.Client{Transport: rt})
	p, err := newStripeProcessor(cfg, backends)
	if err != nil {
		panic(err)
	}
	return p.(*stripeProcessor)
}

// fakeProcessor satisfies Processor for factory registry tests.
type fakeProcessor struct{}

func (f *fakeProcessor) Type() string { return "fake" }
func (f *fakeProcessor) CreateCustomer(ctx context.Context, data CreateCustomerData) (map[string]string, error) {
	return nil, nil
}
func (f *fakeProcessor) CreatePaymentLink(ctx context.Context, data PaymentLinkData) (*SessionResult, error) {
	return nil, nil
}
func (f *fakeProcessor) Checkout() CheckoutProcessor       { return nil }
func (f *fakeProcessor) Invoice() InvoiceProcessor         { return nil }
func (f *fakeProcessor) Transaction() TransactionProcessor { return nil }

// MockCheckoutProcessor is a testify mock of the checkout capability group.
type MockCheckoutProcessor struct {
	mock.Mock
}

func (m *MockCheckoutProcessor) CreateCheckoutSession(ctx context.Context, data CheckoutData) (*SessionResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SessionResult), args.Error(1)
}

func (m *MockCheckoutProcessor) GetCheckoutSession(ctx context.Context, sessionID string) (*FormattedCheckoutSessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FormattedCheckoutSessionData), args.Error(1)
}

func (m *MockCheckoutProcessor) GetLineItems(ctx context.Context, sessionID string) ([]SessionLineItem, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SessionLineItem), args.Error(1)
}
