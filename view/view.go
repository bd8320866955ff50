// Package view maps catalog and cart state to renderable view models.
// Everything here is a pure function of its inputs; no state is retained.
package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/FARiDHAMiD/shop-ecommerce/cart"
	"github.com/FARiDHAMiD/shop-ecommerce/model"
)

// PageState distinguishes the grid placeholders from a rendered product list.
type PageState string

const (
	StateOK      PageState = "ok"
	StateLoading PageState = "loading"
	StateError   PageState = "error"
	StateEmpty   PageState = "empty"
)

const (
	msgLoading  = "Loading products..."
	msgError    = "Error loading products. Please try again later."
	msgNoMatch  = "No products found."
	msgCartNone = "Your cart is empty"
)

// Card is one product tile in the grid.
type Card struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Stars       string `json:"stars"`
	ReviewCount int    `json:"review_count"`
}

// Grid is the home page product grid, or its loading/error/empty placeholder.
type Grid struct {
	State   PageState `json:"state"`
	Message string    `json:"message,omitempty"`
	Cards   []Card    `json:"cards,omitempty"`
}

// Detail is the single-product panel.
type Detail struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Rating      string `json:"rating"`
}

// CartLine is one row of the cart list.
type CartLine struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// Cart is the checkout page cart list plus order totals.
type Cart struct {
	State    PageState  `json:"state"`
	Message  string     `json:"message,omitempty"`
	Lines    []CartLine `json:"lines,omitempty"`
	Subtotal string     `json:"subtotal"`
	Shipping string     `json:"shipping"`
	Total    string     `json:"total"`
}

// Stars renders the star string for a rating: one star per rounded whole
// point of rate, clamped to 0..5.
func Stars(rate float64) string {
	n := int(math.Round(rate))
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n)
}

// Money formats a decimal amount the way the pages show it.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// RenderGrid builds the product grid. An empty product list renders the
// "no products" placeholder.
func RenderGrid(products []model.Product) Grid {
	if len(products) == 0 {
		return Grid{State: StateEmpty, Message: msgNoMatch}
	}
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, Card{
			ID:          p.ID,
			Title:       p.Title,
			Category:    p.Category,
			Price:       Money(p.Price),
			Image:       p.Image,
			Stars:       Stars(p.Rating.Rate),
			ReviewCount: p.Rating.Count,
		})
	}
	return Grid{State: StateOK, Cards: cards}
}

// RenderLoading is the grid placeholder shown while the catalog fetch is in
// flight.
func RenderLoading() Grid {
	return Grid{State: StateLoading, Message: msgLoading}
}

// RenderLoadError is the grid placeholder shown when the catalog fetch
// failed. Recovery is a user-initiated reload.
func RenderLoadError() Grid {
	return Grid{State: StateError, Message: msgError}
}

// RenderDetail builds the product detail panel.
func RenderDetail(p model.Product) Detail {
	return Detail{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Price:       Money(p.Price),
		Description: p.Description,
		Image:       p.Image,
		Rating:      fmt.Sprintf("%s (%d reviews)", Stars(p.Rating.Rate), p.Rating.Count),
	}
}

// RenderCart builds the cart list with totals. An empty cart renders the
// "cart is empty" placeholder with zero totals.
func RenderCart(items []model.CartItem, totals cart.Totals) Cart {
	out := Cart{
		Subtotal: Money(totals.Subtotal),
		Shipping: Money(totals.Shipping),
		Total:    Money(totals.Total),
	}
	if len(items) == 0 {
		out.State = StateEmpty
		out.Message = msgCartNone
		return out
	}
	out.State = StateOK
	out.Lines = make([]CartLine, 0, len(items))
	for _, it := range items {
		out.Lines = append(out.Lines, CartLine{
			ID:       it.ID,
			Title:    it.Title,
			Price:    Money(it.Price),
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}
	return out
}
