package main

// GET  /              – product grid (q= text search, category= filter)
// GET  /product?id=N  – product detail, bad ids redirect home
// GET  /cart          – cart with totals
// POST /cart/add      – add a product to the cart
// POST /cart/remove   – remove a line item
// POST /cart/quantity – set a line item quantity (<= 0 removes)
// POST /checkout      – simulated checkout, clears the cart

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/FARiDHAMiD/shop-ecommerce/cart"
	"github.com/FARiDHAMiD/shop-ecommerce/catalog"
	"github.com/FARiDHAMiD/shop-ecommerce/config"
	"github.com/FARiDHAMiD/shop-ecommerce/handler"
	"github.com/FARiDHAMiD/shop-ecommerce/store"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// --- Storage ---
	var storage store.Storage
	if cfg.PostgresDSN != "" {
		pg, err := store.NewPostgresStorage(cfg.PostgresDSN)
		if err != nil {
			log.WithError(err).Fatal("postgres connection failed")
		}
		storage = pg
		log.Info("cart persistence: postgres")
	} else {
		storage = store.NewFileStorage(cfg.CartFile)
		log.WithField("path", cfg.CartFile).Info("cart persistence: file")
	}
	defer storage.Close()

	// --- Cart ---
	cartStore := cart.NewStore(storage)
	if err := cartStore.Initialize(); err != nil {
		// malformed persisted cart falls soft to empty
		log.WithError(err).Warn("persisted cart unreadable, starting empty")
	}
	cartStore.Subscribe(func(ev cart.Event) {
		log.WithFields(logrus.Fields{
			"event":      ev.Kind,
			"product_id": ev.Item.ID,
			"quantity":   ev.Quantity,
		}).Debug("cart changed")
	})

	// --- Catalog ---
	cat := catalog.New(cfg.CatalogURL)

	// --- Handlers ---
	h := handler.New(cat, cartStore, log)

	// --- Router ---
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	// --- Server ---
	log.WithField("addr", cfg.Addr).Info("server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
