package payment

import (
	"context"
	"time"

	"storepay/internal/address"
)

// All monetary amounts in this package are integer minor-currency units
// (cents). Floats never carry money.

// CheckoutData describes one checkout-session request. Exactly one of
// Cart or Order drives line-item construction.
type CheckoutData struct {
	CartID     string `json:"cartId,omitempty"`
	OrderID    string `json:"orderId,omitempty"`
	CustomerID string `json:"customerId,omitempty"`
	CouponCode string `json:"couponCode,omitempty"`
	ReturnURL  string `json:"returnUrl,omitempty"`
	SuccessURL string `json:"successUrl,omitempty"`
	StoreID    string `json:"storeId,omitempty"`

	Order *Order `json:"order,omitempty"`
	Cart  *Cart  `json:"cart,omitempty"`

	StoreFlatRateAmount int64 `json:"storeFlatRateAmount,omitempty"`
}

// Order is a read-only projection of an external commerce order.
type Order struct {
	ID              string      `json:"id"`
	OrderItems      []OrderItem `json:"orderItems"`
	DiscountInCents int64       `json:"discountInCents,omitempty"`
}

type OrderItem struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       *string           `json:"description,omitempty"`
	Variant           *OrderItemVariant `json:"variant,omitempty"`
	TotalPriceInCents int64             `json:"totalPriceInCents"`
	Quantity          int64             `json:"quantity"`
}

type OrderItemVariant struct {
	ID      string     `json:"id"`
	Product ProductRef `json:"product"`
}

type ProductRef struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	FeaturedImage string `json:"featuredImage,omitempty"`
}

// Cart is a read-only projection of an external shopping cart.
type Cart struct {
	ID        string     `json:"id"`
	CartItems []CartItem `json:"cartItems"`
}

type CartItem struct {
	ID        string  `json:"id"`
	VariantID string  `json:"variantId"`
	Variant   Variant `json:"variant"`
	Quantity  int64   `json:"quantity"`
}

type Variant struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	PriceInCents          int64      `json:"priceInCents"`
	CompareAtPriceInCents *int64     `json:"compareAtPriceInCents,omitempty"`
	Product               ProductRef `json:"product"`
}

// SessionResult is what every session-creating operation hands back to the
// caller: the backend's session id and the URL to redirect the shopper to.
type SessionResult struct {
	SessionID  string `json:"sessionId"`
	SessionURL string `json:"sessionUrl"`
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

type SessionCustomer struct {
	ID       string            `json:"id,omitempty"`
	Email    string            `json:"email"`
	Name     string            `json:"name"`
	Phone    string            `json:"phone,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// PaymentDetails carries the payment-attempt fields the presentation layer
// needs, so views never touch SDK types.
type PaymentDetails struct {
	Status               string `json:"status"`
	IntentID             string `json:"intentId,omitempty"`
	IntentStatus         string `json:"intentStatus,omitempty"`
	LastErrorMessage     string `json:"lastErrorMessage,omitempty"`
	ChargeFailureMessage string `json:"chargeFailureMessage,omitempty"`
	ReceiptURL           string `json:"receiptUrl,omitempty"`
}

// FormattedCheckoutSessionData is the de-SDK-ified projection of a
// completed checkout session.
type FormattedCheckoutSessionData struct {
	Totals          Totals            `json:"totals"`
	Customer        SessionCustomer   `json:"customer"`
	ShippingAddress address.Address   `json:"shippingAddress"`
	BillingAddress  address.Address   `json:"billingAddress"`
	StoreID         string            `json:"storeId,omitempty"`
	SessionID       string            `json:"sessionId"`
	CreatedAt       time.Time         `json:"createdAt"`
	OrderMetadata   map[string]string `json:"orderMetadata,omitempty"`
	LineItems       []LineItemData    `json:"lineItems,omitempty"`
	Payment         PaymentDetails    `json:"payment"`
}

type LineItemData struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
	PriceInCents int64  `json:"priceInCents"`
}

// SessionLineItem is one purchased line as recorded by the payment backend,
// with the reconciliation metadata the mappers attached at session creation.
type SessionLineItem struct {
	ID                string            `json:"id"`
	Description       string            `json:"description"`
	Quantity          int64             `json:"quantity"`
	UnitAmountInCents int64             `json:"unitAmountInCents"`
	TotalInCents      int64             `json:"totalInCents"`
	ProductMetadata   map[string]string `json:"productMetadata,omitempty"`
}

type PaymentIntentData struct {
	IntentID       string `json:"intentId"`
	AmountPaid     int64  `json:"amountPaid"`
	ProcessorFee   int64  `json:"processorFee"`
	PaymentReceipt string `json:"paymentReceipt,omitempty"`
	Status         string `json:"status,omitempty"`
}

type CreatePaymentIntentData struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

type CreatePaymentIntentProps struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

type CreateCustomerData struct {
	Email   string           `json:"email"`
	Name    string           `json:"name"`
	Address *address.Address `json:"address,omitempty"`
}

type InvoiceData struct {
	Email            string            `json:"email"`
	Items            []InvoiceItemData `json:"items"`
	OrderID          string            `json:"orderId"`
	StoreID          string            `json:"storeId"`
	Customer         InvoiceCustomer   `json:"customer"`
	HasTaxCollection bool              `json:"hasTaxCollection,omitempty"`
}

type InvoiceItemData struct {
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	AmountInCents    int64   `json:"amountInCents"`
	Quantity         int64   `json:"quantity"`
	VariantID        string  `json:"variantId,omitempty"`
	ProductRequestID string  `json:"productRequestId,omitempty"`
}

type InvoiceCustomer struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type InvoiceResult struct {
	InvoiceID        string            `json:"invoiceId"`
	InvoiceURL       string            `json:"invoiceUrl"`
	CustomerMetadata map[string]string `json:"customerMetadata,omitempty"`
}

type PaymentLinkData struct {
	Items      []PaymentLinkItem `json:"items"`
	CustomerID string            `json:"customerId,omitempty"`
	CouponCode string            `json:"couponCode,omitempty"`
	ReturnURL  string            `json:"returnUrl,omitempty"`
	SuccessURL string            `json:"successUrl,omitempty"`
	StoreID    string            `json:"storeId,omitempty"`
}

type PaymentLinkItem struct {
	Name          string   `json:"name"`
	Description   *string  `json:"description,omitempty"`
	AmountInCents int64    `json:"amountInCents"`
	Quantity      int64    `json:"quantity"`
	VariantID     string   `json:"variantId,omitempty"`
	Variant       *Variant `json:"variant,omitempty"`
}

// StoreOrder is the storefront's persisted order projection, supplied by the
// caller for order-record-driven confirmation views.
type StoreOrder struct {
	ID                string           `json:"id"`
	OrderNumber       string           `json:"orderNumber"`
	CreatedAt         time.Time        `json:"createdAt"`
	FulfillmentStatus string           `json:"fulfillmentStatus"`
	ShippingAddress   address.Address  `json:"shippingAddress"`
	BillingAddress    address.Address  `json:"billingAddress"`
	CustomerEmail     string           `json:"customerEmail"`
	OrderItems        []StoreOrderItem `json:"orderItems"`
	SubtotalInCents   int64            `json:"subtotalInCents"`
	ShippingInCents   int64            `json:"shippingInCents"`
	TotalInCents      int64            `json:"totalInCents"`
}

type StoreOrderItem struct {
	ID                string `json:"id"`
	Description       string `json:"description"`
	Quantity          int64  `json:"quantity"`
	TotalPriceInCents int64  `json:"totalPriceInCents"`
}

// StockUpdate is the caller's answer to a stock-update callback: the
// authoritative unit price for the decremented variant, when it has one.
type StockUpdate struct {
	PriceInCents int64 `json:"priceInCents"`
}

// StockUpdateFunc decrements inventory for one purchased line item and may
// return the authoritative price. A nil result means "no price override".
// Inventory ownership stays entirely with the caller.
type StockUpdateFunc func(ctx context.Context, variantID string, quantity int64) (*StockUpdate, error)

// RebuiltOrder is the outcome of reconstructing order items from a
// completed payment session.
type RebuiltOrder struct {
	Items           []OrderItem `json:"items"`
	SubtotalInCents int64       `json:"subtotalInCents"`
	TotalInCents    int64       `json:"totalInCents"`
}
