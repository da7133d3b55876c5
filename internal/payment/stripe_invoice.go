package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"storepay/internal/currency"
	"storepay/internal/logger"
	"storepay/internal/utils"
)

type stripeInvoice struct {
	client *client.API
}

const invoiceDaysUntilDue = 30

func (v *stripeInvoice) CreateInvoice(ctx context.Context, data InvoiceData) (*InvoiceResult, error) {
	if v.client == nil {
		return nil, fmt.Errorf("stripe: %w", ErrNotInitialized)
	}

	log := logger.FromCtx(ctx).With(
		zap.String("processor", TypeStripe),
		zap.String("method", "CreateInvoice"),
		zap.String("order_id", data.OrderID),
		zap.Int("items", len(data.Items)),
	)

	customerID := data.Customer.Metadata["stripeCustomerId"]
	if customerID == "" {
		customerParams := &stripe.CustomerParams{
			Email:       stripe.String(data.Email),
			Description: stripe.String("Customer to invoice"),
		}
		customerParams.Context = ctx

		customer, err := v.client.Customers.New(customerParams)
		if err != nil {
			log.Error("invoice customer creation failed", zap.Error(err))
			return nil, err
		}
		customerID = customer.ID
	}

	invoiceParams := &stripe.InvoiceParams{
		Customer:         stripe.String(customerID),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:     stripe.Int64(invoiceDaysUntilDue),
	}
	if data.HasTaxCollection {
		invoiceParams.AutomaticTax = &stripe.InvoiceAutomaticTaxParams{
			Enabled: stripe.Bool(true),
		}
	}
	invoiceParams.Context = ctx

	invoice, err := v.client.Invoices.New(invoiceParams)
	if err != nil {
		log.Error("draft invoice creation failed", zap.Error(err))
		return nil, err
	}

	// One product and one invoice line per item, created concurrently.
	// The first failure aborts the batch; products already created on the
	// backend are left as-is (no compensation).
	g, gctx := errgroup.WithContext(ctx)
	for _, item := range data.Items {
		g.Go(func() error {
			productParams := &stripe.ProductParams{
				Name: stripe.String(item.Name),
			}
			if desc := utils.PtrString(item.Description); desc != "" {
				productParams.Description = stripe.String(desc)
			}
			productParams.Context = gctx
			productParams.AddMetadata("variantId", item.VariantID)
			productParams.AddMetadata("productRequestId", item.ProductRequestID)
			productParams.AddMetadata("stripeInvoiceId", invoice.ID)

			product, err := v.client.Products.New(productParams)
			if err != nil {
				return err
			}

			itemParams := &stripe.InvoiceItemParams{
				Customer: stripe.String(customerID),
				Invoice:  stripe.String(invoice.ID),
				PriceData: &stripe.InvoiceItemPriceDataParams{
					Currency:   stripe.String(currency.Code),
					Product:    stripe.String(product.ID),
					UnitAmount: stripe.Int64(item.AmountInCents),
				},
				Quantity: stripe.Int64(item.Quantity),
			}
			itemParams.Context = gctx
			itemParams.AddMetadata("variantId", item.VariantID)
			itemParams.AddMetadata("productRequestId", item.ProductRequestID)

			_, err = v.client.InvoiceItems.New(itemParams)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("invoice line creation failed", zap.Error(err))
		return nil, err
	}

	finalizeParams := &stripe.InvoiceFinalizeInvoiceParams{}
	finalizeParams.Context = ctx
	finalized, err := v.client.Invoices.FinalizeInvoice(invoice.ID, finalizeParams)
	if err != nil {
		log.Error("invoice finalization failed", zap.Error(err))
		return nil, err
	}

	sendParams := &stripe.InvoiceSendInvoiceParams{}
	sendParams.Context = ctx
	if _, err := v.client.Invoices.SendInvoice(invoice.ID, sendParams); err != nil {
		log.Error("invoice send failed", zap.Error(err))
		return nil, err
	}

	log.Info("invoice sent",
		zap.String("invoice_id", finalized.ID),
		zap.String("customer_id", customerID),
	)

	return &InvoiceResult{
		InvoiceID:        finalized.ID,
		InvoiceURL:       finalized.HostedInvoiceURL,
		CustomerMetadata: map[string]string{"stripeCustomerId": customerID},
	}, nil
}
