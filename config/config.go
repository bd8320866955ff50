// Package config resolves runtime settings from flags with environment
// variable fallbacks.
package config

import (
	"flag"
	"os"
)

// Config carries everything main needs to wire the service.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// CatalogURL is the base URL of the remote product catalog API.
	CatalogURL string
	// CartFile is the path of the JSON cart file (the default storage backend).
	CartFile string
	// PostgresDSN, when set, switches cart persistence to Postgres.
	PostgresDSN string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load parses flags and environment. Flags win over environment variables.
func Load() Config {
	var cfg Config
	flag.StringVar(&cfg.Addr, "addr", envOr("SHOP_ADDR", ":8082"), "HTTP listen address")
	flag.StringVar(&cfg.CatalogURL, "catalog-url", envOr("SHOP_CATALOG_URL", "https://fakestoreapi.com"), "product catalog base URL")
	flag.StringVar(&cfg.CartFile, "cart-file", envOr("SHOP_CART_FILE", "cart.json"), "cart persistence file")
	flag.StringVar(&cfg.PostgresDSN, "cart-dsn", envOr("SHOP_CART_DSN", ""), "Postgres DSN for cart persistence (optional)")
	flag.Parse()
	return cfg
}
