package models

type DiscountType string

const (
	DiscountPercentage DiscountType = "Percentage"
	DiscountAmount     DiscountType = "Amount"
)

type Coupon struct {
	ID            string       `json:"_id"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	ExpiryDate    string       `json:"expiryDate"`
	IsActive      bool         `json:"isActive"`
}

// AppliedCoupon is the client-side resolution of a successful validate call.
// The backend owns validity; we trust its answer.
type AppliedCoupon struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

type CreateCouponRequest struct {
	Code          string       `json:"code"          validate:"required,max=64"`
	DiscountType  DiscountType `json:"discountType"  validate:"required,oneof=Percentage Amount"`
	DiscountValue float64      `json:"discountValue" validate:"min=0"`
	ExpiryDate    string       `json:"expiryDate"    validate:"required"`
	IsActive      bool         `json:"isActive"`
}
