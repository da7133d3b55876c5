package view

import (
	"storepay/internal/address"
	"storepay/internal/payment"
)

const (
	// fallbackFailureReason is shown when the backend gave us nothing better.
	fallbackFailureReason = "Your payment was not successful. Please try again."

	defaultFulfillmentStatus = "PENDING"
)

// BuildSessionConfirmation maps a retrieved checkout session (and the order
// record resolved from it, when there is one) to a confirmation view model.
//
// The payment counts as successful only when the session reports "paid" AND
// the payment intent reached "succeeded". Anything else is a failure, with
// the reason taken from the intent's last error, then the charge failure
// message, then a locally recorded error, then a generic fallback.
func BuildSessionConfirmation(data *payment.FormattedCheckoutSessionData, order *payment.StoreOrder, opts Options) Confirmation {
	if data == nil {
		return Confirmation{
			State:         StateFailed,
			BackToAccount: opts.BackToAccount,
			FailureReason: failureReason("", "", opts.LocalError),
		}
	}

	paid := data.Payment.Status == "paid" && data.Payment.IntentStatus == "succeeded"
	if !paid {
		return Confirmation{
			State:         StateFailed,
			BackToAccount: opts.BackToAccount,
			FailureReason: failureReason(
				data.Payment.LastErrorMessage,
				data.Payment.ChargeFailureMessage,
				opts.LocalError,
			),
		}
	}

	if order == nil {
		return Confirmation{
			State:         StateMissingOrder,
			BackToAccount: opts.BackToAccount,
			SessionID:     data.SessionID,
			SupportEmail:  opts.SupportEmail,
		}
	}

	c := Confirmation{
		State:             StateSuccess,
		BackToAccount:     opts.BackToAccount,
		OrderNumber:       order.OrderNumber,
		CreatedAt:         data.CreatedAt,
		FulfillmentStatus: fulfillmentStatus(order.FulfillmentStatus),
		Email:             data.Customer.Email,
		SubtotalInCents:   data.Totals.Subtotal,
		ShippingInCents:   data.Totals.Shipping,
		TotalInCents:      data.Totals.Total,
	}
	if c.OrderNumber == "" {
		c.OrderNumber = data.SessionID
	}

	if data.ShippingAddress.Street != "" || data.ShippingAddress.Name != "" {
		addr := data.ShippingAddress
		c.ShippingAddress = &addr
	}
	if data.BillingAddress.Street != "" || data.BillingAddress.Name != "" {
		addr := data.BillingAddress
		c.BillingAddress = &addr
	}

	for _, li := range data.LineItems {
		c.Items = append(c.Items, Item{
			ID:           li.ID,
			Name:         li.Name,
			Quantity:     li.Quantity,
			PriceInCents: li.PriceInCents,
		})
	}

	return c
}

// BuildOrderConfirmation maps a persisted order record to a confirmation
// view model. Used when the active processor has no session to consult.
func BuildOrderConfirmation(order *payment.StoreOrder, opts Options) Confirmation {
	if order == nil {
		return Confirmation{
			State:         StateNotFound,
			BackToAccount: opts.BackToAccount,
		}
	}

	c := Confirmation{
		State:             StateSuccess,
		BackToAccount:     opts.BackToAccount,
		OrderNumber:       order.OrderNumber,
		CreatedAt:         order.CreatedAt,
		FulfillmentStatus: fulfillmentStatus(order.FulfillmentStatus),
		Email:             order.CustomerEmail,
		SubtotalInCents:   order.SubtotalInCents,
		ShippingInCents:   order.ShippingInCents,
		TotalInCents:      order.TotalInCents,
	}

	if order.ShippingAddress.Street != "" || address.DisplayName(&order.ShippingAddress) != "" {
		addr := order.ShippingAddress
		c.ShippingAddress = &addr
	}
	if order.BillingAddress.Street != "" || address.DisplayName(&order.BillingAddress) != "" {
		addr := order.BillingAddress
		c.BillingAddress = &addr
	}

	for _, item := range order.OrderItems {
		c.Items = append(c.Items, Item{
			ID:           item.ID,
			Name:         item.Description,
			Quantity:     item.Quantity,
			PriceInCents: item.TotalPriceInCents,
		})
	}

	return c
}

func failureReason(intentErr, chargeErr, localErr string) string {
	switch {
	case intentErr != "":
		return intentErr
	case chargeErr != "":
		return chargeErr
	case localErr != "":
		return localErr
	}
	return fallbackFailureReason
}

func fulfillmentStatus(s string) string {
	if s == "" {
		return defaultFulfillmentStatus
	}
	return s
}
