package store

import "github.com/FARiDHAMiD/shop-ecommerce/model"

// Storage persists the serialized cart between page loads. The in-memory
// cart stays authoritative: Load seeds it exactly once at startup and every
// mutation writes in-memory -> storage, never the other way around.
//
// The persisted form is a JSON array of model.CartItem under a single fixed
// key and must round-trip exactly: quantity plus every product field needed
// to render the cart without a re-fetch.
type Storage interface {
	// Load reads the persisted cart. A missing record is an empty cart,
	// not an error. Malformed data is an error; callers fall soft to empty.
	Load() ([]model.CartItem, error)

	// Save replaces the persisted cart with the given line items.
	Save(items []model.CartItem) error

	Close() error
}
