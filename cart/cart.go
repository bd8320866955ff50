package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/FARiDHAMiD/shop-ecommerce/model"
	"github.com/FARiDHAMiD/shop-ecommerce/store"
)

// flatShipping is charged whenever the cart is non-empty.
var flatShipping = decimal.NewFromInt(5)

var ErrInvalidQuantity = errors.New("quantity must be > 0")

// Totals are derived from the current cart contents on demand, never cached.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// Store owns the cart: an ordered list of line items, unique by product id,
// with quantity >= 1 on every item. The in-memory list is authoritative;
// every mutation is mirrored to storage. A failed write keeps the in-memory
// mutation and reports the error so callers can surface a warning instead of
// silently losing the change.
type Store struct {
	mu      sync.RWMutex
	items   []model.CartItem
	storage store.Storage

	subsMu sync.RWMutex
	subs   []func(Event)
}

func NewStore(storage store.Storage) *Store {
	return &Store{storage: storage}
}

// Initialize seeds the cart from storage. Absent or malformed persisted data
// falls soft to an empty cart; the decode error is returned so the caller can
// log it, but the store is usable either way.
func (s *Store) Initialize() error {
	items, err := s.storage.Load()
	if err != nil {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Subscribe registers a listener for cart change events. Listeners run
// synchronously on the mutating call, after the mutation is applied.
func (s *Store) Subscribe(fn func(Event)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) emit(ev Event) {
	s.subsMu.RLock()
	subs := s.subs
	s.subsMu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// AddItem puts quantity units of the product in the cart, merging into an
// existing line item for the same product id. Quantity <= 0 is a caller
// contract violation and is rejected.
func (s *Store) AddItem(p model.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	var line model.CartItem
	found := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity += quantity
			line = s.items[i]
			found = true
			break
		}
	}
	if !found {
		line = model.CartItem{Product: p, Quantity: quantity}
		s.items = append(s.items, line)
	}
	err := s.persistLocked()
	s.mu.Unlock()

	s.emit(Event{Kind: ItemAdded, Item: line, Quantity: quantity})
	return err
}

// RemoveItem deletes the line item for the product id. A missing id is a
// no-op, not an error.
func (s *Store) RemoveItem(productID int) error {
	s.mu.Lock()
	var removed *model.CartItem
	for i := range s.items {
		if s.items[i].ID == productID {
			it := s.items[i]
			removed = &it
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if removed == nil {
		s.mu.Unlock()
		return nil
	}
	err := s.persistLocked()
	s.mu.Unlock()

	s.emit(Event{Kind: ItemRemoved, Item: *removed})
	return err
}

// SetQuantity updates a line item's quantity in place. A quantity <= 0
// removes the item; an unknown id is a no-op.
func (s *Store) SetQuantity(productID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}

	s.mu.Lock()
	var line *model.CartItem
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			it := s.items[i]
			line = &it
			break
		}
	}
	if line == nil {
		s.mu.Unlock()
		return nil
	}
	err := s.persistLocked()
	s.mu.Unlock()

	s.emit(Event{Kind: QuantityChanged, Item: *line, Quantity: quantity})
	return err
}

// Clear empties the cart and persists the empty state. Used on checkout
// completion.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.items = nil
	err := s.persistLocked()
	s.mu.Unlock()

	s.emit(Event{Kind: CartCleared})
	return err
}

// Items returns a snapshot copy of the current line items.
func (s *Store) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of quantities across all line items, shown as the
// cart badge on every page.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

// Totals computes subtotal, flat shipping (5.00 on any non-empty subtotal),
// and grand total from the current contents.
func (s *Store) Totals() Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subtotal := decimal.Zero
	for _, it := range s.items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = flatShipping
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// persistLocked mirrors the in-memory items to storage. Callers hold mu.
func (s *Store) persistLocked() error {
	items := make([]model.CartItem, len(s.items))
	copy(items, s.items)
	return s.storage.Save(items)
}
