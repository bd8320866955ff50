package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/FARiDHAMiD/shop-ecommerce/model"
)

// cartKey is the single fixed key the serialized cart lives under.
const cartKey = "cart"

// PostgresStorage keeps the cart as one key -> JSON document row. It is the
// durable alternative to FileStorage for deployments that already run Postgres.
type PostgresStorage struct {
	DB *sql.DB
}

func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS cart_state (key TEXT PRIMARY KEY, data JSONB NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStorage{DB: db}, nil
}

func (s *PostgresStorage) Load() ([]model.CartItem, error) {
	var raw []byte
	err := s.DB.QueryRow(`SELECT data FROM cart_state WHERE key = $1`, cartKey).Scan(&raw)
	if err == sql.ErrNoRows {
		// no record yet -> empty cart
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart state: %w", err)
	}
	return items, nil
}

func (s *PostgresStorage) Save(items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(`
		INSERT INTO cart_state (key, data)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data
	`, cartKey, raw)
	return err
}

func (s *PostgresStorage) Close() error { return s.DB.Close() }
