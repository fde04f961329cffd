package models

// Product mirrors the commerce backend's document shape, hence the "_id" key.
type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
}

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
