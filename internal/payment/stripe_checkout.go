package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"

	"storepay/internal/address"
	"storepay/internal/currency"
	"storepay/internal/logger"
)

type stripeCheckout struct {
	client     *client.API
	origin     string
	storageURL string
}

// allowed shipping destinations for hosted checkout.
var shippingCountries = []string{"US", "CA"}

func (c *stripeCheckout) CreateCheckoutSession(ctx context.Context, data CheckoutData) (*SessionResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	log := logger.FromCtx(ctx).With(
		zap.String("processor", TypeStripe),
		zap.String("method", "CreateCheckoutSession"),
		zap.String("order_id", data.OrderID),
		zap.String("cart_id", data.CartID),
	)

	if (data.Order == nil) == (data.Cart == nil) {
		return nil, ErrCheckoutSource
	}

	var lineItems []*stripe.CheckoutSessionLineItemParams
	var couponParams *stripe.CouponParams

	if data.Order != nil {
		lineItems = OrderToLineItems(c.storageURL, data.Order.ID, data.Order.OrderItems)
		couponParams = OrderToCoupon(data.Order.ID, data.Order.DiscountInCents)
	} else {
		lineItems = CartToLineItems(c.storageURL, data.Cart.ID, data.Cart.CartItems)
		// Cart discounts are settled upstream; no coupon from this side.
		couponParams = CartToCoupon(data.Cart.ID, 0)
	}

	var discounts []*stripe.CheckoutSessionDiscountParams
	if couponParams != nil {
		couponParams.Context = ctx
		coupon, err := c.client.Coupons.New(couponParams)
		if err != nil {
			log.Error("coupon creation failed", zap.Error(err))
			return nil, err
		}
		discounts = []*stripe.CheckoutSessionDiscountParams{{Coupon: stripe.String(coupon.ID)}}
	}

	successURL := data.SuccessURL
	if successURL == "" {
		successURL = c.origin + "/success?session_id={CHECKOUT_SESSION_ID}"
	}
	cancelURL := data.ReturnURL
	if cancelURL == "" {
		cancelURL = c.origin + "/cart?cancel=true"
	}

	sessionMetadata := map[string]string{
		"orderId": data.OrderID,
		"storeId": data.StoreID,
		"cartId":  data.CartID,
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		LineItems:                lineItems,
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		SuccessURL:               stripe.String(successURL),
		CancelURL:                stripe.String(cancelURL),
		Discounts:                discounts,
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(shippingCountries),
		},
		AutomaticTax: &stripe.CheckoutSessionAutomaticTaxParams{
			Enabled: stripe.Bool(true),
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: sessionMetadata,
		},
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
			{
				ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
					DisplayName: stripe.String("Standard shipping"),
					Type:        stripe.String("fixed_amount"),
					FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripe.Int64(data.StoreFlatRateAmount),
						Currency: stripe.String(currency.Code),
					},
				},
			},
		},
	}
	params.Context = ctx
	for k, v := range sessionMetadata {
		params.AddMetadata(k, v)
	}

	session, err := c.client.CheckoutSessions.New(params)
	if err != nil {
		log.Error("checkout session creation failed", zap.Error(err))
		return nil, err
	}

	log.Info("checkout session created", zap.String("session_id", session.ID))
	return &SessionResult{SessionID: session.ID, SessionURL: session.URL}, nil
}

func (c *stripeCheckout) GetCheckoutSession(ctx context.Context, sessionID string) (*FormattedCheckoutSessionData, error) {
	if c.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items")
	params.AddExpand("customer")
	params.AddExpand("payment_intent.latest_charge")

	session, err := c.client.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		logger.FromCtx(ctx).Error("checkout session retrieval failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	return c.FormatCheckoutSessionData(session), nil
}

func (c *stripeCheckout) GetLineItems(ctx context.Context, sessionID string) ([]SessionLineItem, error) {
	if c.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	params.Context = ctx
	params.AddExpand("data.price.product")

	var lines []SessionLineItem
	iter := c.client.CheckoutSessions.ListLineItems(params)
	for iter.Next() {
		li := iter.LineItem()

		line := SessionLineItem{
			ID:           li.ID,
			Description:  li.Description,
			Quantity:     li.Quantity,
			TotalInCents: li.AmountTotal,
		}
		if li.Price != nil {
			line.UnitAmountInCents = li.Price.UnitAmount
			if li.Price.Product != nil {
				line.ProductMetadata = li.Price.Product.Metadata
			}
		}
		lines = append(lines, line)
	}
	if err := iter.Err(); err != nil {
		logger.FromCtx(ctx).Error("line item listing failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, err
	}

	return lines, nil
}

// FormatCheckoutSessionData projects a Stripe session into the package's
// normalized shape. Pure; tolerates partially-populated sessions by
// defaulting every missing field.
func (c *stripeCheckout) FormatCheckoutSessionData(session *stripe.CheckoutSession) *FormattedCheckoutSessionData {
	data := &FormattedCheckoutSessionData{
		SessionID: session.ID,
		CreatedAt: time.Unix(session.Created, 0).UTC(),
		Totals: Totals{
			Subtotal: session.AmountSubtotal,
			Total:    session.AmountTotal,
		},
		OrderMetadata: map[string]string{
			"stripeCheckoutSessionId": session.ID,
		},
		Payment: PaymentDetails{
			Status: string(session.PaymentStatus),
		},
	}

	if session.TotalDetails != nil {
		data.Totals.Tax = session.TotalDetails.AmountTax
		data.Totals.Shipping = session.TotalDetails.AmountShipping
	}

	if session.Metadata != nil {
		data.StoreID = session.Metadata["storeId"]
	}

	var shippingName string
	if session.ShippingDetails != nil {
		shippingName = session.ShippingDetails.Name
		data.ShippingAddress = sessionAddress(shippingName, session.ShippingDetails.Address)
	}

	if cd := session.CustomerDetails; cd != nil {
		data.Customer = SessionCustomer{
			Name:  cd.Name,
			Email: cd.Email,
			Phone: cd.Phone,
		}
		data.BillingAddress = sessionAddress(cd.Name, cd.Address)
	}
	if data.Customer.Name == "" {
		// Shipping name is the only fallback when billing details are bare.
		data.Customer.Name = shippingName
	}

	if li := session.LineItems; li != nil {
		data.LineItems = make([]LineItemData, 0, len(li.Data))
		for _, item := range li.Data {
			data.LineItems = append(data.LineItems, LineItemData{
				ID:           item.ID,
				Name:         item.Description,
				Quantity:     item.Quantity,
				PriceInCents: item.AmountTotal,
			})
		}
	}

	if pi := session.PaymentIntent; pi != nil {
		data.Payment.IntentID = pi.ID
		data.Payment.IntentStatus = string(pi.Status)
		if pi.LastPaymentError != nil {
			data.Payment.LastErrorMessage = pi.LastPaymentError.Msg
		}
		if ch := pi.LatestCharge; ch != nil {
			data.Payment.ChargeFailureMessage = ch.FailureMessage
			data.Payment.ReceiptURL = ch.ReceiptURL
		}
	}

	return data
}

// sessionAddress converts a Stripe address plus a single display name into
// the package's address shape. The name splits at the first space; names
// with more or fewer tokens lose information here (known limitation).
func sessionAddress(name string, a *stripe.Address) address.Address {
	first, last := splitName(name)
	out := address.Address{
		Name:      name,
		FirstName: first,
		LastName:  last,
	}
	if a != nil {
		out.Street = a.Line1
		if a.Line2 != "" {
			line2 := a.Line2
			out.Additional = &line2
		}
		out.City = a.City
		out.State = a.State
		out.PostalCode = a.PostalCode
		out.Country = a.Country
	}
	return out
}

func splitName(name string) (first, last string) {
	idx := strings.IndexByte(name, ' ')
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
