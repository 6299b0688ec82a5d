package types

import (
	"errors"
	"slices"
	"strconv"
	"time"
)

// Recurrence kinds. A habit with no recurrence is treated as daily;
// records written before the recurrence field existed carry none.
const (
	RecurDaily   = "daily"
	RecurWeekly  = "weekly"
	RecurMonthly = "monthly"
)

// Habit validation errors.
var (
	ErrNameEmpty         = errors.New("habit name must not be empty")
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitInactive     = errors.New("habit not active on this date")
	ErrInvalidRecurrence = errors.New("invalid recurrence rule")
)

// Recurrence describes when a habit applies. Weekdays holds 0..6
// (Sunday=0) for weekly habits; MonthDays holds 1..31 for monthly
// habits. An empty day set means the habit is active on no day, not on
// all days. The JSON field names are part of the export document
// contract and must not change.
type Recurrence struct {
	Kind      string `json:"type"`
	Weekdays  []int  `json:"days,omitempty"`
	MonthDays []int  `json:"dates,omitempty"`
}

// ActiveOn reports whether the rule matches the calendar date of t.
// Pure; valid for arbitrary past and future dates. Unknown kinds fall
// back to daily, matching the lenient handling of legacy records.
func (r *Recurrence) ActiveOn(t time.Time) bool {
	if r == nil {
		return true
	}
	switch r.Kind {
	case RecurWeekly:
		return slices.Contains(r.Weekdays, int(t.Weekday()))
	case RecurMonthly:
		return slices.Contains(r.MonthDays, t.Day())
	default:
		return true
	}
}

// Validate checks that the rule's day sets are in range for its kind.
// An empty set is legal (the habit is then never active).
func (r *Recurrence) Validate() error {
	if r == nil {
		return nil
	}
	switch r.Kind {
	case "", RecurDaily:
		return nil
	case RecurWeekly:
		for _, d := range r.Weekdays {
			if d < 0 || d > 6 {
				return ErrInvalidRecurrence
			}
		}
		return nil
	case RecurMonthly:
		for _, d := range r.MonthDays {
			if d < 1 || d > 31 {
				return ErrInvalidRecurrence
			}
		}
		return nil
	default:
		return ErrInvalidRecurrence
	}
}

// Habit is one registry entry. ID and CreatedAt are assigned at
// creation and never change afterwards, including across edits. The
// JSON field names match the export document contract.
type Habit struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Repeat      *Recurrence `json:"repeat,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// KeyID returns the habit's id in the decimal string form used as a
// day-record key.
func (h *Habit) KeyID() string {
	return strconv.FormatInt(h.ID, 10)
}

// ActiveOn reports whether the habit applies on the calendar date of t.
// A habit without a recurrence rule is daily and always applies.
func (h *Habit) ActiveOn(t time.Time) bool {
	return h.Repeat.ActiveOn(t)
}

// Validate checks the habit's user-supplied fields.
func (h *Habit) Validate() error {
	if h.Name == "" {
		return ErrNameEmpty
	}
	return h.Repeat.Validate()
}
