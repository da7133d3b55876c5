package payment

import (
	"github.com/stripe/stripe-go/v80"

	"storepay/internal/currency"
	"storepay/internal/utils"
)

const placeholderImagePath = "misc/placeholder-image.webp"

// productImageURL builds the public URL for a product image, falling back
// to the storefront placeholder when no image is set.
func productImageURL(storageURL, featuredImage string) string {
	if featuredImage == "" {
		return storageURL + "/" + placeholderImagePath
	}
	return storageURL + "/products/" + featuredImage
}

// CartToLineItems maps cart lines to checkout line items. Metadata carries
// the product, variant and cart identifiers needed to reconcile the session
// back to the cart afterwards.
func CartToLineItems(storageURL, cartID string, items []CartItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		name := item.Variant.Product.Name
		if name == "" {
			name = "Custom Product"
		}
		description := item.Variant.Name
		if description == "" {
			description = "Default"
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency.Code),
				UnitAmount: stripe.Int64(item.Variant.PriceInCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(name),
					Description: stripe.String(description),
					Images: stripe.StringSlice([]string{
						productImageURL(storageURL, item.Variant.Product.FeaturedImage),
					}),
					Metadata: map[string]string{
						"productId":  item.Variant.Product.ID,
						"variantId":  item.Variant.ID,
						"cartItemId": item.ID,
						"cartId":     cartID,
					},
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	return lineItems
}

// OrderToLineItems maps order lines to checkout line items; the unit amount
// is the order line's recorded total price in cents.
func OrderToLineItems(storageURL, orderID string, items []OrderItem) []*stripe.CheckoutSessionLineItemParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		name := item.Name
		if name == "" {
			name = "Custom Product"
		}

		var variantID, productID, featuredImage string
		if item.Variant != nil {
			variantID = item.Variant.ID
			productID = item.Variant.Product.ID
			featuredImage = item.Variant.Product.FeaturedImage
		}

		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(name),
			Images: stripe.StringSlice([]string{
				productImageURL(storageURL, featuredImage),
			}),
			Metadata: map[string]string{
				"productId":   productID,
				"variantId":   variantID,
				"orderItemId": item.ID,
				"orderId":     orderID,
			},
		}
		// The backend rejects empty-string descriptions.
		if desc := utils.PtrString(item.Description); desc != "" {
			productData.Description = stripe.String(desc)
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency.Code),
				UnitAmount:  stripe.Int64(item.TotalPriceInCents),
				ProductData: productData,
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	return lineItems
}
