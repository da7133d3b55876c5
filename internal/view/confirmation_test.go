package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepay/internal/address"
	"storepay/internal/payment"
)

func paidSession() *payment.FormattedCheckoutSessionData {
	return &payment.FormattedCheckoutSessionData{
		SessionID: "cs_123",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Totals:    payment.Totals{Subtotal: 5000, Shipping: 200, Total: 5600},
		Customer:  payment.SessionCustomer{Name: "Jane Doe", Email: "jane@example.com"},
		ShippingAddress: address.Address{
			Name:      "Jane Doe",
			FirstName: "Jane",
			LastName:  "Doe",
			Street:    "1 Main St",
			City:      "Toronto",
		},
		LineItems: []payment.LineItemData{
			{ID: "li_1", Name: "Blue Tee", Quantity: 2, PriceInCents: 5000},
		},
		Payment: payment.PaymentDetails{Status: "paid", IntentStatus: "succeeded"},
	}
}

func TestBuildSessionConfirmation(t *testing.T) {
	order := &payment.StoreOrder{
		ID:                "order-1",
		OrderNumber:       "1042",
		FulfillmentStatus: "SHIPPED",
	}

	t.Run("Success", func(t *testing.T) {
		c := BuildSessionConfirmation(paidSession(), order, Options{BackToAccount: true})

		assert.Equal(t, StateSuccess, c.State)
		assert.True(t, c.BackToAccount)
		assert.Equal(t, "1042", c.OrderNumber)
		assert.Equal(t, "SHIPPED", c.FulfillmentStatus)
		assert.Equal(t, "jane@example.com", c.Email)
		assert.Equal(t, int64(5600), c.TotalInCents)
		require.NotNil(t, c.ShippingAddress)
		assert.Equal(t, "1 Main St", c.ShippingAddress.Street)
		assert.Nil(t, c.BillingAddress)
		require.Len(t, c.Items, 1)
		assert.Equal(t, "Blue Tee", c.Items[0].Name)
	})

	t.Run("OrderNumberFallsBackToSessionID", func(t *testing.T) {
		c := BuildSessionConfirmation(paidSession(), &payment.StoreOrder{}, Options{})
		assert.Equal(t, StateSuccess, c.State)
		assert.Equal(t, "cs_123", c.OrderNumber)
		assert.Equal(t, "PENDING", c.FulfillmentStatus)
	})

	t.Run("PaidButIntentNotSucceeded", func(t *testing.T) {
		data := paidSession()
		data.Payment.IntentStatus = "processing"

		c := BuildSessionConfirmation(data, order, Options{})
		assert.Equal(t, StateFailed, c.State)
		assert.Equal(t, "Your payment was not successful. Please try again.", c.FailureReason)
	})

	t.Run("FailureReasonPriority", func(t *testing.T) {
		data := paidSession()
		data.Payment.Status = "unpaid"
		data.Payment.LastErrorMessage = "Your card was declined."
		data.Payment.ChargeFailureMessage = "card_declined"

		c := BuildSessionConfirmation(data, order, Options{LocalError: "lookup failed"})
		assert.Equal(t, StateFailed, c.State)
		assert.Equal(t, "Your card was declined.", c.FailureReason)

		data.Payment.LastErrorMessage = ""
		c = BuildSessionConfirmation(data, order, Options{LocalError: "lookup failed"})
		assert.Equal(t, "card_declined", c.FailureReason)

		data.Payment.ChargeFailureMessage = ""
		c = BuildSessionConfirmation(data, order, Options{LocalError: "lookup failed"})
		assert.Equal(t, "lookup failed", c.FailureReason)

		c = BuildSessionConfirmation(data, order, Options{})
		assert.Equal(t, "Your payment was not successful. Please try again.", c.FailureReason)
	})

	t.Run("NilSession", func(t *testing.T) {
		c := BuildSessionConfirmation(nil, order, Options{LocalError: "session retrieval failed"})
		assert.Equal(t, StateFailed, c.State)
		assert.Equal(t, "session retrieval failed", c.FailureReason)
	})

	t.Run("PaidWithoutOrderEscalates", func(t *testing.T) {
		c := BuildSessionConfirmation(paidSession(), nil, Options{SupportEmail: "support@shop.example.com"})

		assert.Equal(t, StateMissingOrder, c.State)
		assert.Equal(t, "cs_123", c.SessionID)
		assert.Equal(t, "support@shop.example.com", c.SupportEmail)
	})
}

func TestBuildOrderConfirmation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		order := &payment.StoreOrder{
			ID:          "order-2",
			OrderNumber: "2001",
			CreatedAt:   time.Date(2025, 7, 4, 9, 0, 0, 0, time.UTC),
			ShippingAddress: address.Address{
				FirstName: "Sam",
				LastName:  "Lee",
				Street:    "9 Pine Rd",
			},
			CustomerEmail: "sam@example.com",
			OrderItems: []payment.StoreOrderItem{
				{ID: "oi-1", Description: "Red Mug", Quantity: 1, TotalPriceInCents: 1800},
			},
			SubtotalInCents: 1800,
			ShippingInCents: 500,
			TotalInCents:    2300,
		}

		c := BuildOrderConfirmation(order, Options{})
		assert.Equal(t, StateSuccess, c.State)
		assert.Equal(t, "2001", c.OrderNumber)
		assert.Equal(t, "PENDING", c.FulfillmentStatus)
		require.NotNil(t, c.ShippingAddress)
		assert.Equal(t, "9 Pine Rd", c.ShippingAddress.Street)
		assert.Nil(t, c.BillingAddress)
		require.Len(t, c.Items, 1)
		assert.Equal(t, int64(2300), c.TotalInCents)
	})

	t.Run("NilOrder", func(t *testing.T) {
		c := BuildOrderConfirmation(nil, Options{})
		assert.Equal(t, StateNotFound, c.State)
	})
}
