package payment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeTransaction_GetPaymentIntent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		p := newTestProcessor(mockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/v1/payment_intents/pi_123", req.URL.Path)
			assert.Contains(t, req.URL.RawQuery, "latest_charge")

			return jsonResponse(`{
				"id": "pi_123",
				"amount": 5600,
				"status": "succeeded",
				"latest_charge": {
					"id": "ch_1",
					"receipt_url": "https://pay.stripe.com/receipts/r1",
					"balance_transaction": {"id": "txn_1", "fee": 192}
				}
			}`)
		}))

		data, err := p.Transaction().GetPaymentIntent(context.Background(), "pi_123")
		require.NoError(t, err)
		assert.Equal(t, "pi_123", data.IntentID)
		assert.Equal(t, int64(5600), data.AmountPaid)
		assert.Equal(t, "succeeded", data.Status)
		assert.Equal(t, "https://pay.stripe.com/receipts/r1", data.PaymentReceipt)
		assert.Equal(t, int64(192), data.ProcessorFee)
	})

	t.Run("NoCharge", func(t *testing.T) {
		p := newTestProcessor(mockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(`{"id":"pi_124","amount":1000,"status":"requires_payment_method"}`)
		}))

		data, err := p.Transaction().GetPaymentIntent(context.Background(), "pi_124")
		require.NoError(t, err)
		assert.Empty(t, data.PaymentReceipt)
		assert.Zero(t, data.ProcessorFee)
	})

	t.Run("BackendError", func(t *testing.T) {
		p := newTestProcessor(mockRoundTripperWithError(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		}))

		_, err := p.Transaction().GetPaymentIntent(context.Background(), "pi_123")
		require.Error(t, err)
	})

	t.Run("NotInitialized", func(t *testing.T) {
		tr := &stripeTransaction{}
		_, err := tr.GetPaymentIntent(context.Background(), "pi_123")
		assert.ErrorIs(t, err, ErrNotInitialized)
	})
}

func TestStripeTransaction_CreatePaymentIntent(t *testing.T) {
	t.Run("DefaultCurrency", func(t *testing.T) {
		p := newTestProcessor(mockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/v1/payment_intents", req.URL.Path)

			body, _ := io.ReadAll(req.Body)
			form := string(body)
			assert.Contains(t, form, "amount=2500")
			assert.Contains(t, form, "currency=usd")

			return jsonResponse(`{"id":"pi_200","client_secret":"pi_200_secret"}`)
		}))

		data, err := p.Transaction().CreatePaymentIntent(context.Background(), CreatePaymentIntentProps{Amount: 2500})
		require.NoError(t, err)
		assert.Equal(t, "pi_200", data.IntentID)
		assert.Equal(t, "pi_200_secret", data.ClientSecret)
	})

	t.Run("ExplicitCurrency", func(t *testing.T) {
		p := newTestProcessor(mockRoundTripper(func(req *http.Request) *http.Response {
			body, _ := io.ReadAll(req.Body)
			assert.Contains(t, string(body), "currency=cad")
			return jsonResponse(`{"id":"pi_201","client_secret":"pi_201_secret"}`)
		}))

		_, err := p.Transaction().CreatePaymentIntent(context.Background(), CreatePaymentIntentProps{
			Amount:   900,
			Currency: "cad",
		})
		require.NoError(t, err)
	})

	t.Run("NotInitialized", func(t *testing.T) {
		tr := &stripeTransaction{}
		_, err := tr.CreatePaymentIntent(context.Background(), CreatePaymentIntentProps{Amount: 100})
		assert.ErrorIs(t, err, ErrNotInitialized)
	})
}
