// Package catalog fetches and holds the product list for the current
// page load. Filtering is a linear scan over the in-memory list; this is
// deliberately not a search engine.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"

	"github.com/FARiDHAMiD/shop-ecommerce/model"
)

// AllCategories is the sentinel that disables the category filter.
const AllCategories = "all"

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Catalog holds the in-memory product list fetched from the remote catalog
// API. Load replaces the list wholesale; a failed load never leaves a
// partial list behind.
type Catalog struct {
	baseURL string
	client  *http.Client

	mu       sync.RWMutex
	products []model.Product
}

func New(baseURL string) *Catalog {
	return &Catalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches the full product list. On success the in-memory list is
// replaced; on any failure the previous list is left untouched.
func (c *Catalog) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return errors.Wrap(err, "build catalog request")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "fetch products")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("fetch products: unexpected status %d", resp.StatusCode)
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return errors.Wrap(err, "decode products")
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return nil
}

// Get fetches a single product by id, independently of the bulk list.
// Missing or malformed products come back as ErrNotFound so callers can fall
// back to the home view instead of rendering an error.
func (c *Catalog) Get(ctx context.Context, id int) (model.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Product{}, errors.Wrap(err, "build product request")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return model.Product{}, errors.Wrap(err, "fetch product")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return model.Product{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return model.Product{}, errors.Errorf("fetch product %d: unexpected status %d", id, resp.StatusCode)
	}

	var p model.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		// the upstream API answers bad ids with a non-product body
		return model.Product{}, ErrNotFound
	}
	if p.ID == 0 {
		return model.Product{}, ErrNotFound
	}
	return p, nil
}

// Products returns a snapshot of the full in-memory list.
func (c *Catalog) Products() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// FilterByText matches the query case-insensitively against titles only.
// A blank query returns the full list; relative order is preserved.
func (c *Catalog) FilterByText(query string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Products()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []model.Product{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Title), query) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory matches the category case-insensitively; the "all"
// sentinel returns the full list.
func (c *Catalog) FilterByCategory(category string) []model.Product {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == AllCategories {
		return c.Products()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []model.Product{}
	for _, p := range c.products {
		if strings.ToLower(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}
