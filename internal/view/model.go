package view

import (
	"time"

	"storepay/internal/address"
)

// State selects which confirmation screen gets rendered.
type State string

const (
	// StateSuccess is a completed payment with a presentable order.
	StateSuccess State = "success"
	// StateFailed is a payment that did not go through.
	StateFailed State = "failed"
	// StateMissingOrder is a paid session whose order record could not be
	// resolved; the shopper is pointed at support with the session id.
	StateMissingOrder State = "missing_order"
	// StateNotFound means no order record exists for an order-driven view.
	StateNotFound State = "not_found"
)

// Confirmation is the single view model behind every confirmation screen.
// Only the fields relevant to the selected State are populated.
type Confirmation struct {
	State         State
	BackToAccount bool

	// StateFailed
	FailureReason string

	// StateMissingOrder
	SessionID    string
	SupportEmail string

	// StateSuccess
	OrderNumber       string
	CreatedAt         time.Time
	FulfillmentStatus string
	Email             string
	ShippingAddress   *address.Address
	BillingAddress    *address.Address
	Items             []Item
	SubtotalInCents   int64
	ShippingInCents   int64
	TotalInCents      int64
}

// Item is one purchased line on the order summary.
type Item struct {
	ID           string
	Name         string
	Quantity     int64
	PriceInCents int64
}

// Options carries the per-request display knobs the builders cannot derive
// from payment data.
type Options struct {
	// BackToAccount switches the header link from storefront to account.
	BackToAccount bool
	// SupportEmail is shown in the missing-order escalation state.
	SupportEmail string
	// LocalError records a processing failure that happened on our side
	// before or while fetching the session, e.g. a backend retrieval error.
	LocalError string
}
