package payment

import "errors"

var (
	// ErrNotInitialized means the backend client was never configured.
	// Every processor method fails fast with it before touching the network.
	ErrNotInitialized = errors.New("payment client not initialized")

	// ErrUnsupportedProcessor is returned by the factory for an unknown type.
	ErrUnsupportedProcessor = errors.New("unsupported payment processor type")

	// ErrMissingCredentials is returned by the factory when the selected
	// processor's credentials are absent or empty.
	ErrMissingCredentials = errors.New("missing payment processor credentials")

	// ErrCheckoutSource is returned when a checkout request does not carry
	// exactly one of cart or order.
	ErrCheckoutSource = errors.New("checkout requires exactly one of cart or order")
)
