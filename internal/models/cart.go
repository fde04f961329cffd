package models

import "time"

type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
	Image     string  `json:"image"`
}

// Cart is the session-scoped shopping state. Items keep insertion order so the
// cart renders the same way on every read.
type Cart struct {
	SessionID   string         `json:"session_id"`
	Items       []CartItem     `json:"items"`
	Coupon      *AppliedCoupon `json:"coupon,omitempty"`
	SpecialNote string         `json:"special_note,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Item returns the line for productID, or nil when absent.
func (c *Cart) Item(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}

	return nil
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int    `json:"qty"        validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Qty int `json:"qty" validate:"min=0"`
}

type CartNoteRequest struct {
	Note string `json:"note" validate:"max=1000"`
}
