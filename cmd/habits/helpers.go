// Shared helpers for habits CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rafikhouda/habits-manager/internal/tracker"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

// newTracker wires the application core over the attached store.
func newTracker() *tracker.Tracker {
	return tracker.New(store)
}

// parseDateFlag resolves a --date value. An empty value means today;
// anything else must be a YYYY-MM-DD key, past or future.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := types.ParseDateKey(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// parseHabitID parses a habit id argument.
func parseHabitID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid habit id %q", arg)
	}
	return id, nil
}

// parseDaySet parses a comma-separated day list for recurrence flags,
// e.g. "1,3,5".
func parseDaySet(value string) ([]int, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", p)
		}
		days = append(days, d)
	}
	return days, nil
}

// buildRecurrence assembles a recurrence rule from the repeat flags.
// Returns nil for daily, which is the absent-rule default.
func buildRecurrence(kind, days, dates string) (*types.Recurrence, error) {
	switch kind {
	case "", types.RecurDaily:
		return nil, nil
	case types.RecurWeekly:
		weekdays, err := parseDaySet(days)
		if err != nil {
			return nil, err
		}
		return &types.Recurrence{Kind: types.RecurWeekly, Weekdays: weekdays}, nil
	case types.RecurMonthly:
		monthDays, err := parseDaySet(dates)
		if err != nil {
			return nil, err
		}
		return &types.Recurrence{Kind: types.RecurMonthly, MonthDays: monthDays}, nil
	default:
		return nil, fmt.Errorf("invalid --repeat %q: expected daily, weekly, or monthly", kind)
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// describeRecurrence renders a habit's rule for list output.
func describeRecurrence(r *types.Recurrence) string {
	if r == nil {
		return "daily"
	}
	switch r.Kind {
	case types.RecurWeekly:
		return fmt.Sprintf("weekly %s", joinInts(r.Weekdays))
	case types.RecurMonthly:
		return fmt.Sprintf("monthly %s", joinInts(r.MonthDays))
	default:
		return "daily"
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// categoryLabel resolves a habit's category id to its display label in
// the configured locale, degrading to the "other" label for ids that
// no longer exist.
func categoryLabel(id string) string {
	categories, err := newTracker().Settings.Categories()
	if err != nil {
		return types.CategoryOther
	}
	return types.FindCategory(categories, id).Display(configLocale)
}
