// Package pricing computes the order total breakdown for a cart. Totals are
// never stored; every read recomputes them from the current items and coupon,
// so a total can never go stale.
package pricing

import (
	"github.com/paramatmakhadka/ecommerce-frontend/internal/models"
)

// TaxRate is applied to the discounted subtotal.
const TaxRate = 0.13

// Shipping is currently free for every order.
const Shipping = 0.0

type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	Shipping       float64 `json:"shipping"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// Compute is a pure function of (items, coupon).
//
//	subtotal = Σ(price × qty)
//	discount = subtotal × value/100 for Percentage coupons, the flat value for
//	           Amount coupons, capped at the subtotal
//	tax      = (subtotal − discount) × TaxRate
//	total    = subtotal − discount + shipping + tax
func Compute(items []models.CartItem, coupon *models.AppliedCoupon) Totals {

	var subtotal float64

	for _, item := range items {
		subtotal += item.Price * float64(item.Qty)
	}

	var discount float64

	if coupon != nil {
		switch coupon.DiscountType {
		case models.DiscountPercentage:
			discount = subtotal * (coupon.DiscountValue / 100)
		case models.DiscountAmount:
			discount = coupon.DiscountValue
		}

		// An Amount coupon larger than the subtotal would drive the pre-tax
		// amount negative; the order can at best be free.
		if discount > subtotal {
			discount = subtotal
		}
	}

	tax := (subtotal - discount) * TaxRate

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Shipping:       Shipping,
		Tax:            tax,
		Total:          subtotal - discount + Shipping + tax,
	}
}
