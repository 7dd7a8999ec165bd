// Package store defines the local key-value storage the list core persists
// into, and picks one of the concrete backends by name.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/store/sqlitestore"
)

// KV is a string-keyed byte store. Get returns (nil, nil) for an absent key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	sqliteFileName = "shoplist.db"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendJSON, BackendSQLite, BackendMemory}
}

// Open returns the backend named by backend, rooted at dataDir.
func Open(ctx context.Context, backend, dataDir string) (KV, error) {
	switch backend {
	case BackendJSON:
		s, err := jsonstore.New(dataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := sqlitestore.Open(ctx, filepath.Join(dataDir, sqliteFileName))
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMemory:
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
