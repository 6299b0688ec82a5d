// Package registry maintains the master list of habit definitions.
// The list is stored under one key as a JSON array in insertion order.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rafikhouda/habits-manager/pkg/types"
)

// Registry reads and writes the habit list through an attached store.
type Registry struct {
	store types.Store

	// Habit ids are derived from the creation timestamp in
	// milliseconds; the mutex and lastID keep them unique when two
	// habits are created within the same millisecond.
	idMu   sync.Mutex
	lastID int64

	now func() time.Time
}

// New creates a Registry over the given store.
func New(store types.Store) *Registry {
	return &Registry{store: store, now: time.Now}
}

// Draft holds the user-supplied fields for creating or editing a habit.
// Nil pointer fields are left unchanged on edit. The Clear flags reset
// a field to its default, which a pointer alone cannot express.
type Draft struct {
	Name          *string
	Description   *string
	Category      *string
	Repeat        *types.Recurrence
	ClearRepeat   bool
	ClearCategory bool
}

// List returns all habits in insertion order. A registry that has never
// been written is empty, not an error.
func (r *Registry) List() ([]types.Habit, error) {
	raw, err := r.store.Get(types.KeyHabits)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return []types.Habit{}, nil
		}
		return nil, fmt.Errorf("reading habits: %w", err)
	}

	var habits []types.Habit
	if err := json.Unmarshal(raw, &habits); err != nil {
		return nil, fmt.Errorf("decoding habits: %w", err)
	}
	if habits == nil {
		habits = []types.Habit{}
	}
	return habits, nil
}

// Get returns the habit with the given id.
// Returns ErrHabitNotFound if no such habit exists.
func (r *Registry) Get(id int64) (*types.Habit, error) {
	habits, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == id {
			return &habits[i], nil
		}
	}
	return nil, types.ErrHabitNotFound
}

// Add validates the draft, assigns a new id and creation time, and
// appends the habit to the list. A missing category defaults to
// "other". Returns ErrNameEmpty when the name is missing or empty.
func (r *Registry) Add(draft Draft) (*types.Habit, error) {
	habit := types.Habit{
		Category:  types.CategoryOther,
		CreatedAt: r.now(),
	}
	if draft.Name != nil {
		habit.Name = *draft.Name
	}
	if draft.Description != nil {
		habit.Description = *draft.Description
	}
	if draft.Category != nil && *draft.Category != "" {
		habit.Category = *draft.Category
	}
	habit.Repeat = draft.Repeat

	if err := habit.Validate(); err != nil {
		return nil, err
	}

	habits, err := r.List()
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, h := range habits {
		if h.ID > maxID {
			maxID = h.ID
		}
	}
	habit.ID = r.nextID(habit.CreatedAt, maxID)
	habits = append(habits, habit)
	if err := r.persist(habits); err != nil {
		return nil, err
	}
	return &habit, nil
}

// Edit merges the draft over the existing habit, preserving id and
// creation time. Returns ErrHabitNotFound if the id is absent and
// ErrNameEmpty if the draft sets an empty name.
func (r *Registry) Edit(id int64, draft Draft) (*types.Habit, error) {
	habits, err := r.List()
	if err != nil {
		return nil, err
	}

	for i := range habits {
		if habits[i].ID != id {
			continue
		}

		updated := habits[i]
		if draft.Name != nil {
			updated.Name = *draft.Name
		}
		if draft.Description != nil {
			updated.Description = *draft.Description
		}
		if draft.ClearCategory {
			updated.Category = types.CategoryOther
		} else if draft.Category != nil && *draft.Category != "" {
			updated.Category = *draft.Category
		}
		if draft.ClearRepeat {
			updated.Repeat = nil
		} else if draft.Repeat != nil {
			updated.Repeat = draft.Repeat
		}

		if err := updated.Validate(); err != nil {
			return nil, err
		}

		habits[i] = updated
		if err := r.persist(habits); err != nil {
			return nil, err
		}
		return &habits[i], nil
	}
	return nil, types.ErrHabitNotFound
}

// Remove deletes the habit with the given id and reports whether it
// was present. Removing an absent id is a no-op, not an error. Ledger
// history for the habit is left in place; it is never shown again
// because views only evaluate habits still in the list.
func (r *Registry) Remove(id int64) (bool, error) {
	habits, err := r.List()
	if err != nil {
		return false, err
	}

	kept := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(habits) {
		return false, nil
	}
	return true, r.persist(kept)
}

// Replace overwrites the entire habit list, used by snapshot import.
func (r *Registry) Replace(habits []types.Habit) error {
	if habits == nil {
		habits = []types.Habit{}
	}
	return r.persist(habits)
}

func (r *Registry) persist(habits []types.Habit) error {
	raw, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("encoding habits: %w", err)
	}
	if err := r.store.Set(types.KeyHabits, raw); err != nil {
		return fmt.Errorf("writing habits: %w", err)
	}
	return nil
}

// nextID derives an id from the creation timestamp, bumped past both
// the last id handed out this session and the largest id already in
// the list (imports can carry ids ahead of the local clock).
func (r *Registry) nextID(createdAt time.Time, maxExisting int64) int64 {
	r.idMu.Lock()
	defer r.idMu.Unlock()

	id := createdAt.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	if id <= maxExisting {
		id = maxExisting + 1
	}
	r.lastID = id
	return id
}
