package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storepay/internal/logger"
)

// LineToOrderItems rebuilds order items from a completed payment session.
// For every purchased line it invokes the caller's stock-update callback,
// which owns the inventory decrement and may return the authoritative unit
// price; otherwise the price recorded in the payment session stands.
//
// There is no idempotency guard here — calling this twice decrements stock
// twice. The external order-creation workflow is responsible for invoking
// it exactly once per session.
func LineToOrderItems(ctx context.Context, checkout CheckoutProcessor, sessionID string, updateStock StockUpdateFunc) (*RebuiltOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "LineToOrderItems"),
		zap.String("session_id", sessionID),
	)

	lines, err := checkout.GetLineItems(ctx, sessionID)
	if err != nil {
		log.Error("failed to list session line items", zap.Error(err))
		return nil, err
	}

	rebuilt := &RebuiltOrder{Items: make([]OrderItem, 0, len(lines))}

	for _, line := range lines {
		variantID := line.ProductMetadata["variantId"]
		unitPrice := line.UnitAmountInCents

		if updateStock != nil {
			update, err := updateStock(ctx, variantID, line.Quantity)
			if err != nil {
				log.Error("stock update callback failed",
					zap.String("variant_id", variantID),
					zap.Error(err),
				)
				return nil, fmt.Errorf("stock update for variant %q: %w", variantID, err)
			}
			if update != nil {
				unitPrice = update.PriceInCents
			}
		}

		item := OrderItem{
			ID:                line.ID,
			Name:              line.Description,
			TotalPriceInCents: unitPrice,
			Quantity:          line.Quantity,
		}
		if variantID != "" {
			item.Variant = &OrderItemVariant{
				ID:      variantID,
				Product: ProductRef{ID: line.ProductMetadata["productId"]},
			}
		}

		rebuilt.Items = append(rebuilt.Items, item)
		rebuilt.SubtotalInCents += unitPrice * line.Quantity
	}

	// Discounts were already settled inside the payment session, so the
	// rebuilt total matches the subtotal.
	rebuilt.TotalInCents = rebuilt.SubtotalInCents

	log.Info("rebuilt order items from session",
		zap.Int("items", len(rebuilt.Items)),
		zap.Int64("subtotal_cents", rebuilt.SubtotalInCents),
	)

	return rebuilt, nil
}
