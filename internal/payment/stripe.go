package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storepay/internal/config"
	"storepay/internal/currency"
	"storepay/internal/logger"
)

// TypeStripe is the registry name of the Stripe-backed processor.
const TypeStripe = "stripe"

type stripeProcessor struct {
	client *client.API
	origin string

	checkout    *stripeCheckout
	invoice     *stripeInvoice
	transaction *stripeTransaction
}

// NewStripeProcessor validates credentials and builds the Stripe processor.
// No network traffic happens here; the first backend call is the first
// processor method invocation.
func NewStripeProcessor(cfg *config.Config) (Processor, error) {
	return newStripeProcessor(cfg, nil)
}

func newStripeProcessor(cfg *config.Config, backends *stripe.Backends) (Processor, error) {
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("%w: STRIPE_SECRET_KEY", ErrMissingCredentials)
	}

	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, backends)

	p := &stripeProcessor{
		client: sc,
		origin: cfg.PublicHostname,
	}
	p.checkout = &stripeCheckout{
		client:     sc,
		origin:     cfg.PublicHostname,
		storageURL: cfg.PublicStorageURL,
	}
	p.invoice = &stripeInvoice{client: sc}
	p.transaction = &stripeTransaction{client: sc}

	return p, nil
}

func (p *stripeProcessor) Type() string { return TypeStripe }

func (p *stripeProcessor) Checkout() CheckoutProcessor       { return p.checkout }
func (p *stripeProcessor) Invoice() InvoiceProcessor         { return p.invoice }
func (p *stripeProcessor) Transaction() TransactionProcessor { return p.transaction }

func (p *stripeProcessor) CreateCustomer(ctx context.Context, data CreateCustomerData) (map[string]string, error) {
	if p.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	log := logger.FromCtx(ctx).With(
		zap.String("processor", TypeStripe),
		zap.String("method", "CreateCustomer"),
	)

	params := &stripe.CustomerParams{
		Email: stripe.String(data.Email),
		Name:  stripe.String(data.Name),
	}
	params.Context = ctx

	if data.Address != nil {
		var additional string
		if data.Address.Additional != nil {
			additional = *data.Address.Additional
		}
		params.Address = &stripe.AddressParams{
			Line1:      stripe.String(data.Address.Street),
			Line2:      stripe.String(additional),
			City:       stripe.String(data.Address.City),
			State:      stripe.String(data.Address.State),
			PostalCode: stripe.String(data.Address.PostalCode),
			Country:    stripe.String(data.Address.Country),
		}
	}

	customer, err := p.client.Customers.New(params)
	if err != nil {
		log.Error("customer creation failed", zap.Error(err))
		return nil, err
	}

	log.Info("customer created", zap.String("customer_id", customer.ID))
	return map[string]string{"stripeCustomerId": customer.ID}, nil
}

func (p *stripeProcessor) CreatePaymentLink(ctx context.Context, data PaymentLinkData) (*SessionResult, error) {
	if p.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	log := logger.FromCtx(ctx).With(
		zap.String("processor", TypeStripe),
		zap.String("method", "CreatePaymentLink"),
		zap.Int("items", len(data.Items)),
	)

	// Ad-hoc prices are created concurrently; a failure in any one aborts
	// the batch and may leave already-created prices behind. Stripe prices
	// are inert until attached, so no compensation is attempted.
	lineItems := make([]*stripe.PaymentLinkLineItemParams, len(data.Items))
	g, gctx := errgroup.WithContext(ctx)

	for i, item := range data.Items {
		g.Go(func() error {
			priceParams := &stripe.PriceParams{
				UnitAmount: stripe.Int64(item.AmountInCents),
				Currency:   stripe.String(currency.Code),
				ProductData: &stripe.PriceProductDataParams{
					Name:     stripe.String(paymentLinkProductName(item)),
					Metadata: paymentLinkProductMetadata(item),
				},
			}
			priceParams.Context = gctx

			price, err := p.client.Prices.New(priceParams)
			if err != nil {
				return err
			}

			lineItems[i] = &stripe.PaymentLinkLineItemParams{
				Price:    stripe.String(price.ID),
				Quantity: stripe.Int64(item.Quantity),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("payment link price creation failed", zap.Error(err))
		return nil, err
	}

	successURL := data.SuccessURL
	if successURL == "" {
		successURL = p.origin + "/success?session_id={CHECKOUT_SESSION_ID}"
	}

	params := &stripe.PaymentLinkParams{
		LineItems:          lineItems,
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Currency:           stripe.String(currency.Code),
		AfterCompletion: &stripe.PaymentLinkAfterCompletionParams{
			Type: stripe.String(string(stripe.PaymentLinkAfterCompletionTypeRedirect)),
			Redirect: &stripe.PaymentLinkAfterCompletionRedirectParams{
				URL: stripe.String(successURL),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("storeId", data.StoreID)

	link, err := p.client.PaymentLinks.New(params)
	if err != nil {
		log.Error("payment link creation failed", zap.Error(err))
		return nil, err
	}

	log.Info("payment link created", zap.String("link_id", link.ID))
	return &SessionResult{SessionID: link.ID, SessionURL: link.URL}, nil
}

func paymentLinkProductName(item PaymentLinkItem) string {
	if item.Name != "" {
		return item.Name
	}
	if item.Variant != nil && item.Variant.Product.Name != "" {
		return item.Variant.Product.Name
	}
	return "Product"
}

// paymentLinkProductMetadata records both the variant's current price and
// the negotiated amount so downstream reconciliation can tell them apart.
func paymentLinkProductMetadata(item PaymentLinkItem) map[string]string {
	md := map[string]string{
		"productId": "",
		"variantId": item.VariantID,
	}
	if item.Variant != nil {
		md["productId"] = item.Variant.Product.ID
		md["variantId"] = item.Variant.ID
		md["price"] = fmt.Sprintf("%d", item.Variant.PriceInCents)
		if item.Variant.CompareAtPriceInCents != nil {
			md["compareAtPrice"] = fmt.Sprintf("%d", *item.Variant.CompareAtPriceInCents)
		}
	}
	return md
}
