package payment

import (
	"github.com/stripe/stripe-go/v80"

	"storepay/internal/currency"
)

// CartToCoupon builds a single-redemption fixed-amount coupon for a cart
// discount. A non-positive discount produces no coupon.
func CartToCoupon(cartID string, discountInCents int64) *stripe.CouponParams {
	if discountInCents <= 0 {
		return nil
	}

	params := &stripe.CouponParams{
		AmountOff:      stripe.Int64(discountInCents),
		Currency:       stripe.String(currency.Code),
		MaxRedemptions: stripe.Int64(1),
	}
	params.AddMetadata("cartId", cartID)
	return params
}

// OrderToCoupon is the order-side counterpart of CartToCoupon.
func OrderToCoupon(orderID string, discountInCents int64) *stripe.CouponParams {
	if discountInCents <= 0 {
		return nil
	}

	params := &stripe.CouponParams{
		AmountOff:      stripe.Int64(discountInCents),
		Currency:       stripe.String(currency.Code),
		MaxRedemptions: stripe.Int64(1),
	}
	params.AddMetadata("orderId", orderID)
	return params
}
