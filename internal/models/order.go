package models

import "time"

type Order struct {
	ID          string    `json:"_id"`
	UserName    string    `json:"userName"`
	TotalPrice  float64   `json:"totalPrice"`
	Status      string    `json:"status"`
	IsPaid      bool      `json:"isPaid"`
	IsDelivered bool      `json:"isDelivered"`
	CreatedAt   time.Time `json:"createdAt"`
}
