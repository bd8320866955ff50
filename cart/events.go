package cart

import "github.com/FARiDHAMiD/shop-ecommerce/model"

// EventKind identifies what changed in the cart.
type EventKind string

const (
	ItemAdded       EventKind = "item_added"
	ItemRemoved     EventKind = "item_removed"
	QuantityChanged EventKind = "quantity_changed"
	CartCleared     EventKind = "cart_cleared"
)

// Event is published to subscribers after a mutation is applied. For
// ItemAdded, Quantity is the amount added in that call (the line item carries
// the merged total); for QuantityChanged it is the new quantity.
type Event struct {
	Kind     EventKind
	Item     model.CartItem
	Quantity int
}
