package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/FARiDHAMiD/shop-ecommerce/cart"
	"github.com/FARiDHAMiD/shop-ecommerce/catalog"
	"github.com/FARiDHAMiD/shop-ecommerce/model"
	"github.com/FARiDHAMiD/shop-ecommerce/view"
)

// Handler is the page controller: it dispatches user actions to the cart and
// catalog and re-renders the affected view.
type Handler struct {
	catalog *catalog.Catalog
	cart    *cart.Store
	log     *logrus.Logger
}

func New(c *catalog.Catalog, s *cart.Store, log *logrus.Logger) *Handler {
	return &Handler{catalog: c, cart: s, log: log}
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Pages
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/product", h.ProductDetail).Methods("GET")
	r.HandleFunc("/cart", h.Cart).Methods("GET")

	// Cart mutations
	r.HandleFunc("/cart/add", h.AddToCart).Methods("POST")
	r.HandleFunc("/cart/remove", h.RemoveFromCart).Methods("POST")
	r.HandleFunc("/cart/quantity", h.UpdateQuantity).Methods("POST")

	// Checkout
	r.HandleFunc("/checkout", h.Checkout).Methods("POST")
}

// --- request / response shapes ---

type cartMutationReq struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity,omitempty"` // optional for remove; defaults to 1 on add
}

type checkoutReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// gridPage is the home page payload: the grid plus the persistent cart badge.
type gridPage struct {
	CartCount int       `json:"cart_count"`
	Grid      view.Grid `json:"grid"`
}

type detailPage struct {
	CartCount int         `json:"cart_count"`
	Product   view.Detail `json:"product"`
}

type cartPage struct {
	CartCount int       `json:"cart_count"`
	Cart      view.Cart `json:"cart"`
	Message   string    `json:"message,omitempty"`
	Warning   string    `json:"warning,omitempty"`
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// persistWarning logs a failed storage write and returns the user-facing
// warning. The in-memory mutation already happened; it must not be reported
// as lost.
func (h *Handler) persistWarning(err error) string {
	if err == nil {
		return ""
	}
	h.log.WithError(err).Warn("cart could not be persisted")
	return "your cart changed but could not be saved; it may not survive a restart"
}

func (h *Handler) cartPage(message, warning string) cartPage {
	return cartPage{
		CartCount: h.cart.ItemCount(),
		Cart:      view.RenderCart(h.cart.Items(), h.cart.Totals()),
		Message:   message,
		Warning:   warning,
	}
}

// --- Pages ---

// Home handles GET /. The catalog is fetched once per page load; a failed
// fetch renders the inline error placeholder instead of the grid. At most one
// filter is active per request: a text query wins over a category.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Load(r.Context()); err != nil {
		h.log.WithError(err).Error("catalog fetch failed")
		writeJSON(w, http.StatusOK, gridPage{
			CartCount: h.cart.ItemCount(),
			Grid:      view.RenderLoadError(),
		})
		return
	}

	var products []model.Product
	q := r.URL.Query()
	switch {
	case q.Get("q") != "":
		products = h.catalog.FilterByText(q.Get("q"))
	case q.Get("category") != "":
		products = h.catalog.FilterByCategory(q.Get("category"))
	default:
		products = h.catalog.Products()
	}

	writeJSON(w, http.StatusOK, gridPage{
		CartCount: h.cart.ItemCount(),
		Grid:      view.RenderGrid(products),
	})
}

// ProductDetail handles GET /product?id=N. A missing or invalid id, or a
// product the upstream does not know, redirects back to the home view rather
// than rendering an error.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil || id <= 0 {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	p, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			h.log.WithError(err).WithField("product_id", id).Error("product fetch failed")
		}
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	writeJSON(w, http.StatusOK, detailPage{
		CartCount: h.cart.ItemCount(),
		Product:   view.RenderDetail(p),
	})
}

// Cart handles GET /cart.
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartPage("", ""))
}

// --- Cart mutations ---

// AddToCart handles POST /cart/add
// body: { "product_id": 1, "quantity": 2 }
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartMutationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID <= 0 {
		writeErr(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		writeErr(w, http.StatusBadRequest, "quantity must be > 0")
		return
	}

	p, err := h.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "product not found")
			return
		}
		writeErr(w, http.StatusBadGateway, "could not fetch product")
		return
	}

	persistErr := h.cart.AddItem(p, req.Quantity)
	msg := fmt.Sprintf("%d %s added to cart!", req.Quantity, p.Title)
	writeJSON(w, http.StatusOK, h.cartPage(msg, h.persistWarning(persistErr)))
}

// RemoveFromCart handles POST /cart/remove
// body: { "product_id": 1 }
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartMutationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID <= 0 {
		writeErr(w, http.StatusBadRequest, "product_id is required")
		return
	}
	persistErr := h.cart.RemoveItem(req.ProductID)
	writeJSON(w, http.StatusOK, h.cartPage("", h.persistWarning(persistErr)))
}

// UpdateQuantity handles POST /cart/quantity
// body: { "product_id": 1, "quantity": 3 } — a quantity <= 0 removes the item
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartMutationReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID <= 0 {
		writeErr(w, http.StatusBadRequest, "product_id is required")
		return
	}
	persistErr := h.cart.SetQuantity(req.ProductID, req.Quantity)
	writeJSON(w, http.StatusOK, h.cartPage("", h.persistWarning(persistErr)))
}

// --- Checkout ---

type checkoutResp struct {
	Message string      `json:"message"`
	Order   model.Order `json:"order"`
	Warning string      `json:"warning,omitempty"`
}

// Checkout handles POST /checkout. An empty cart is rejected with a
// user-visible message and no state change. Otherwise the purchase is a
// simulated success: the confirmation is returned and the cart is cleared
// and persisted empty.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	items := h.cart.Items()
	if len(items) == 0 {
		writeErr(w, http.StatusBadRequest, "Your cart is empty!")
		return
	}

	totals := h.cart.Totals()
	order := model.Order{
		ID:        uuid.NewString(),
		Items:     items,
		Subtotal:  totals.Subtotal,
		Shipping:  totals.Shipping,
		Total:     totals.Total,
		CreatedAt: time.Now().UTC(),
	}

	persistErr := h.cart.Clear()
	h.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    len(order.Items),
		"total":    order.Total.String(),
	}).Info("order placed")

	writeJSON(w, http.StatusCreated, checkoutResp{
		Message: "Order placed successfully! Thank you for your purchase.",
		Order:   order,
		Warning: h.persistWarning(persistErr),
	})
}
