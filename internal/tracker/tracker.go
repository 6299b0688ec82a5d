// Package tracker composes the registry, ledger, points accumulator,
// and settings into the user-facing operations: the per-date habit
// view, completion toggles, and day resets. Points move in lockstep
// with ledger transitions; a toggle is the only place both mutate.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/rafikhouda/habits-manager/internal/ledger"
	"github.com/rafikhouda/habits-manager/internal/points"
	"github.com/rafikhouda/habits-manager/internal/registry"
	"github.com/rafikhouda/habits-manager/internal/settings"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

// Tracker is the application core over an attached store. The mutex
// keeps each toggle or reset's ledger transition and its points
// adjustment together as one step.
type Tracker struct {
	mu       sync.Mutex
	Registry *registry.Registry
	Ledger   *ledger.Ledger
	Points   *points.Accumulator
	Settings *settings.Settings
}

// New wires a Tracker over the given store.
func New(store types.Store) *Tracker {
	return &Tracker{
		Registry: registry.New(store),
		Ledger:   ledger.New(store),
		Points:   points.New(store),
		Settings: settings.New(store),
	}
}

// DayHabit is one row of the per-date view: a habit active on that
// date together with its completion state.
type DayHabit struct {
	types.Habit
	Completed bool
}

// HabitsOn returns the habits active on the given date, in registry
// order, each with its completion state for that day.
func (t *Tracker) HabitsOn(date time.Time) ([]DayHabit, error) {
	habits, err := t.Registry.List()
	if err != nil {
		return nil, err
	}
	record, err := t.Ledger.DayState(types.DateKey(date))
	if err != nil {
		return nil, err
	}

	view := []DayHabit{}
	for _, h := range habits {
		if !h.ActiveOn(date) {
			continue
		}
		view = append(view, DayHabit{
			Habit:     h,
			Completed: record.Completed(h.KeyID()),
		})
	}
	return view, nil
}

// Toggle flips the completion entry for the habit on the given date
// and moves the points total with the transition: one point gained on
// false→true, one point returned on true→false (clamped at zero).
// Returns the new completion state and total.
// Returns ErrHabitNotFound when the id is not in the registry and
// ErrHabitInactive when the habit's recurrence does not match the
// date; in both cases nothing is mutated. Only habits active on a day
// can be completed on it, which keeps every earned point reachable by
// a later reset of that day.
func (t *Tracker) Toggle(date time.Time, habitID int64) (completed bool, total int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	habit, err := t.Registry.Get(habitID)
	if err != nil {
		return false, 0, err
	}
	if !habit.ActiveOn(date) {
		return false, 0, fmt.Errorf("%w: %s", types.ErrHabitInactive, types.DateKey(date))
	}

	dateKey := types.DateKey(date)
	record, err := t.Ledger.DayState(dateKey)
	if err != nil {
		return false, 0, err
	}

	was := record.Completed(habit.KeyID())
	if err := t.Ledger.SetCompletion(dateKey, habitID, !was); err != nil {
		return false, 0, err
	}

	if was {
		total, err = t.Points.Decrement()
	} else {
		total, err = t.Points.Increment()
	}
	if err != nil {
		return false, 0, fmt.Errorf("adjusting points: %w", err)
	}
	return !was, total, nil
}

// ResetDay clears the date's record and returns the points earned that
// day. The refund counts only habits that are still in the registry
// and active on that date; orphaned entries from deleted habits do not
// move the total. Returns the number refunded and the new total.
func (t *Tracker) ResetDay(date time.Time) (refunded, total int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	view, err := t.HabitsOn(date)
	if err != nil {
		return 0, 0, err
	}
	for _, h := range view {
		if h.Completed {
			refunded++
		}
	}

	if err := t.Ledger.ResetDay(types.DateKey(date)); err != nil {
		return 0, 0, err
	}
	total, err = t.Points.AdjustBy(-refunded)
	if err != nil {
		return 0, 0, fmt.Errorf("adjusting points: %w", err)
	}
	return refunded, total, nil
}

// Progress reports the completed count against the daily goal for the
// given date.
func (t *Tracker) Progress(date time.Time) (completed, goal int, err error) {
	view, err := t.HabitsOn(date)
	if err != nil {
		return 0, 0, err
	}
	for _, h := range view {
		if h.Completed {
			completed++
		}
	}
	goal, err = t.Settings.DailyGoal()
	if err != nil {
		return 0, 0, err
	}
	return completed, goal, nil
}
