package types

import (
	"encoding/json"
	"errors"
)

// Store defines the interface for backend-agnostic key/value access.
// Values are opaque JSON documents. Callers attach to a backend, read
// and write keys, and detach when done.
//
// The named keys used by the domain layers are listed below; every key
// matching the YYYY-MM-DD date pattern holds one day record of the
// completion ledger.
type Store interface {
	// Get returns the raw JSON value stored under key.
	// Returns ErrKeyNotFound if the key has never been written.
	Get(key string) (json.RawMessage, error)

	// Set stores the raw JSON value under key, overwriting any
	// previous value.
	Set(key string, value json.RawMessage) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns every key currently present, in unspecified order.
	Keys() ([]string, error)

	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error
}

// Named storage keys. Day records live under their date key directly.
const (
	KeyHabits      = "habits"
	KeyTotalPoints = "totalPoints"
	KeyDailyGoal   = "dailyGoal"
	KeyCategories  = "categories"
)

// Store lifecycle and access errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrKeyNotFound     = errors.New("key not found")
)
