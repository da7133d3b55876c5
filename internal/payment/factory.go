package payment

import (
	"fmt"

	"storepay/internal/config"
)

// BuilderFunc constructs a processor from configuration. Builders validate
// their own credentials and must not perform network calls.
type BuilderFunc func(cfg *config.Config) (Processor, error)

var registry = map[string]BuilderFunc{}

// Register makes a processor type available to CreatePaymentService.
// Registration happens at init time; re-registering a name replaces it.
func Register(name string, build BuilderFunc) {
	registry[name] = build
}

func init() {
	Register(TypeStripe, NewStripeProcessor)
}

// CreatePaymentService selects and constructs the processor named by
// cfg.ProcessorType. Unknown types and missing credentials are
// configuration errors raised here, before any backend traffic.
func CreatePaymentService(cfg *config.Config) (Processor, error) {
	build, ok := registry[cfg.ProcessorType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProcessor, cfg.ProcessorType)
	}
	return build(cfg)
}
