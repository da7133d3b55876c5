package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"

	"storepay/internal/currency"
	"storepay/internal/logger"
)

type stripeTransaction struct {
	client *client.API
}

func (t *stripeTransaction) GetPaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntentData, error) {
	if t.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("latest_charge")
	params.AddExpand("latest_charge.balance_transaction")

	intent, err := t.client.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		logger.FromCtx(ctx).Error("payment intent retrieval failed",
			zap.String("intent_id", paymentIntentID),
			zap.Error(err),
		)
		return nil, err
	}

	data := &PaymentIntentData{
		IntentID:   intent.ID,
		AmountPaid: intent.Amount,
		Status:     string(intent.Status),
	}
	if ch := intent.LatestCharge; ch != nil {
		data.PaymentReceipt = ch.ReceiptURL
		if ch.BalanceTransaction != nil {
			data.ProcessorFee = ch.BalanceTransaction.Fee
		}
	}

	return data, nil
}

func (t *stripeTransaction) CreatePaymentIntent(ctx context.Context, props CreatePaymentIntentProps) (*CreatePaymentIntentData, error) {
	if t.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	code := props.Currency
	if code == "" {
		code = currency.Code
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(props.Amount),
		Currency: stripe.String(code),
	}
	params.Context = ctx

	intent, err := t.client.PaymentIntents.New(params)
	if err != nil {
		logger.FromCtx(ctx).Error("payment intent creation failed", zap.Error(err))
		return nil, err
	}

	return &CreatePaymentIntentData{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
