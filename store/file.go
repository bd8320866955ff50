package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FARiDHAMiD/shop-ecommerce/model"
)

// FileStorage persists the cart as a single JSON file: one synchronous
// write per mutation, no history. It is the default backend.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() ([]model.CartItem, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		// never persisted -> empty cart
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart file %s: %w", s.path, err)
	}
	return items, nil
}

func (s *FileStorage) Save(items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *FileStorage) Close() error { return nil }
