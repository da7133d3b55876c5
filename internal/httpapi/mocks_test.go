package httpapi

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storepay/internal/payment"
)

type MockProcessor struct {
	mock.Mock
	checkout      *MockCheckout
	invoice       *MockInvoice
	transaction   *MockTransaction
	processorType string
}

func newMockProcessor() *MockProcessor {
	return &MockProcessor{
		checkout:      new(MockCheckout),
		invoice:       new(MockInvoice),
		transaction:   new(MockTransaction),
		processorType: payment.TypeStripe,
	}
}

func (m *MockProcessor) Type() string { return m.processorType }

func (m *MockProcessor) CreateCustomer(ctx context.Context, data payment.CreateCustomerData) (map[string]string, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockProcessor) CreatePaymentLink(ctx context.Context, data payment.PaymentLinkData) (*payment.SessionResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SessionResult), args.Error(1)
}

func (m *MockProcessor) Checkout() payment.CheckoutProcessor       { return m.checkout }
func (m *MockProcessor) Invoice() payment.InvoiceProcessor         { return m.invoice }
func (m *MockProcessor) Transaction() payment.TransactionProcessor { return m.transaction }

type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) CreateCheckoutSession(ctx context.Context, data payment.CheckoutData) (*payment.SessionResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SessionResult), args.Error(1)
}

func (m *MockCheckout) GetCheckoutSession(ctx context.Context, sessionID string) (*payment.FormattedCheckoutSessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.FormattedCheckoutSessionData), args.Error(1)
}

func (m *MockCheckout) GetLineItems(ctx context.Context, sessionID string) ([]payment.SessionLineItem, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.SessionLineItem), args.Error(1)
}

type MockInvoice struct {
	mock.Mock
}

func (m *MockInvoice) CreateInvoice(ctx context.Context, data payment.InvoiceData) (*payment.InvoiceResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.InvoiceResult), args.Error(1)
}

type MockTransaction struct {
	mock.Mock
}

func (m *MockTransaction) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*payment.PaymentIntentData, error) {
	args := m.Called(ctx, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.PaymentIntentData), args.Error(1)
}

func (m *MockTransaction) CreatePaymentIntent(ctx context.Context, props payment.CreatePaymentIntentProps) (*payment.CreatePaymentIntentData, error) {
	args := m.Called(ctx, props)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.CreatePaymentIntentData), args.Error(1)
}
