package model

import "github.com/shopspring/decimal"

// Product is a catalog item as returned by the remote catalog API.
// Products are immutable once fetched.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating holds the average review score and the number of reviews.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CartItem pairs a product with a quantity. Quantity is always >= 1
// while the item is in a cart; items never persist with quantity <= 0.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
