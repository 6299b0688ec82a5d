// Package sqlite provides the public API for the SQLite Store backend.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/rafikhouda/habits-manager/internal/sqlite"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".habits-db",
//	})
//	defer store.Detach()
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
