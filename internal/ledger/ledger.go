// Package ledger maintains the per-date completion records. Each
// calendar day's record lives under its own YYYY-MM-DD key in the
// store; the ledger owns recognition and enumeration of those keys.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/rafikhouda/habits-manager/pkg/types"
)

// Ledger reads and writes day records through an attached store.
// SetCompletion is a read-modify-write over one day's record; the
// mutex serializes those so concurrent callers never lose another
// habit's entry for the same date.
type Ledger struct {
	mu    sync.Mutex
	store types.Store
}

// New creates a Ledger over the given store.
func New(store types.Store) *Ledger {
	return &Ledger{store: store}
}

// DayState returns the completion record for the given date key. A day
// that has never been written yields an empty record, never an error.
func (l *Ledger) DayState(dateKey string) (types.DayRecord, error) {
	raw, err := l.store.Get(dateKey)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return types.DayRecord{}, nil
		}
		return nil, fmt.Errorf("reading day %s: %w", dateKey, err)
	}

	var record types.DayRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decoding day %s: %w", dateKey, err)
	}
	if record == nil {
		record = types.DayRecord{}
	}
	return record, nil
}

// SetCompletion overwrites the single entry for habitID on the given
// date, leaving every other habit's entry for that date untouched.
// Idempotent: writing the same value twice leaves the record identical.
func (l *Ledger) SetCompletion(dateKey string, habitID int64, completed bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, err := l.DayState(dateKey)
	if err != nil {
		return err
	}
	record[strconv.FormatInt(habitID, 10)] = types.Completion{Completed: completed}
	return l.persist(dateKey, record)
}

// ResetDay clears the entire record for the given date. Points held
// for completions on that day are the caller's to reconcile; the
// ledger knows nothing about points.
func (l *Ledger) ResetDay(dateKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.persist(dateKey, types.DayRecord{})
}

// WriteDay replaces the whole record for a date, used by snapshot
// import.
func (l *Ledger) WriteDay(dateKey string, record types.DayRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if record == nil {
		record = types.DayRecord{}
	}
	return l.persist(dateKey, record)
}

// DateKeys enumerates every persisted day key, sorted ascending. Named
// keys (habits, totalPoints, ...) share the store namespace and are
// filtered out here; callers never pattern-match raw storage keys
// themselves.
func (l *Ledger) DateKeys() ([]string, error) {
	keys, err := l.store.Keys()
	if err != nil {
		return nil, fmt.Errorf("listing keys: %w", err)
	}

	var dateKeys []string
	for _, k := range keys {
		if types.IsDateKey(k) {
			dateKeys = append(dateKeys, k)
		}
	}
	sort.Strings(dateKeys)
	return dateKeys, nil
}

func (l *Ledger) persist(dateKey string, record types.DayRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding day %s: %w", dateKey, err)
	}
	if err := l.store.Set(dateKey, raw); err != nil {
		return fmt.Errorf("writing day %s: %w", dateKey, err)
	}
	return nil
}
