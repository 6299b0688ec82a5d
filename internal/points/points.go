// Package points maintains the running points total. The total is a
// single non-negative integer persisted independently of the ledger.
package points

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rafikhouda/habits-manager/pkg/types"
)

// Accumulator reads and writes the points total through an attached
// store. Decrements clamp at zero; the total never goes negative.
type Accumulator struct {
	store types.Store
}

// New creates an Accumulator over the given store.
func New(store types.Store) *Accumulator {
	return &Accumulator{store: store}
}

// Total returns the current points total, zero when never written.
func (a *Accumulator) Total() (int, error) {
	raw, err := a.store.Get(types.KeyTotalPoints)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading points: %w", err)
	}

	var total int
	if err := json.Unmarshal(raw, &total); err != nil {
		return 0, fmt.Errorf("decoding points: %w", err)
	}
	return total, nil
}

// Increment adds one point. There is no upper bound.
func (a *Accumulator) Increment() (int, error) {
	return a.AdjustBy(1)
}

// Decrement removes one point, clamping at zero.
func (a *Accumulator) Decrement() (int, error) {
	return a.AdjustBy(-1)
}

// AdjustBy moves the total by n, clamping the result at zero. The bulk
// form backs day resets, which refund every completion at once.
func (a *Accumulator) AdjustBy(n int) (int, error) {
	total, err := a.Total()
	if err != nil {
		return 0, err
	}

	total += n
	if total < 0 {
		total = 0
	}
	if err := a.write(total); err != nil {
		return 0, err
	}
	return total, nil
}

// Replace sets the total outright, used by snapshot import. Negative
// values clamp to zero to preserve the invariant.
func (a *Accumulator) Replace(total int) error {
	if total < 0 {
		total = 0
	}
	return a.write(total)
}

func (a *Accumulator) write(total int) error {
	raw, err := json.Marshal(total)
	if err != nil {
		return fmt.Errorf("encoding points: %w", err)
	}
	if err := a.store.Set(types.KeyTotalPoints, raw); err != nil {
		return fmt.Errorf("writing points: %w", err)
	}
	return nil
}
