// Package cache stores raw reference data responses so repeated lookups
// don't go back out to the network.
package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	BACKEND_MEMORY = "memory"
	BACKEND_SQLITE = "sqlite"
	BACKEND_REDIS  = "redis"
)

// Store is a byte cache keyed by request URL
type Store interface {
	// Get returns the cached value and whether it was found
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Clear drops every entry owned by this store
	Clear(ctx context.Context) error
	Close() error
}

// Config selects and configures a backend
type Config struct {
	Backend string
	// Location is the database file for the sqlite backend
	Location string
	// RedisAddr is host:port for the redis backend
	RedisAddr string
	// TTL is how long an entry lives. Zero means forever.
	TTL time.Duration
}

// Open creates the Store described by cfg. An empty backend is treated as memory.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BACKEND_MEMORY, "":
		return NewMemory(), nil
	case BACKEND_SQLITE:
		return OpenSQLite(cfg.Location, cfg.TTL)
	case BACKEND_REDIS:
		return NewRedis(RedisConfig{Addr: cfg.RedisAddr, TTL: cfg.TTL})
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
