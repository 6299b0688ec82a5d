// Package stats computes aggregate completion statistics over a
// trailing window of days. Everything derives from the registry and
// the ledger; stats never read raw storage keys.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/rafikhouda/habits-manager/internal/ledger"
	"github.com/rafikhouda/habits-manager/internal/registry"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

// Service computes statistics over an attached store.
type Service struct {
	registry *registry.Registry
	ledger   *ledger.Ledger
}

// New creates a stats Service over the given store.
func New(store types.Store) *Service {
	return &Service{
		registry: registry.New(store),
		ledger:   ledger.New(store),
	}
}

// DayCompletion is the completion rate for one day of the window.
type DayCompletion struct {
	DateKey string
	// Percent is 0..100, rounded; 0 when no habit was active.
	Percent int
}

// HabitPerformance is one habit's completion rate across the days of
// the window on which it was active.
type HabitPerformance struct {
	Name     string
	Category string
	// Active counts the window days the habit applied on.
	Active    int
	Completed int
	Percent   int
}

// CategoryStat aggregates completions per category id.
type CategoryStat struct {
	Completed int
	Total     int
}

// Report is the aggregate view over a trailing window ending on a
// given day.
type Report struct {
	Days              int
	DailyCompletion   []DayCompletion
	AverageCompletion int
	Habits            []HabitPerformance
	Categories        map[string]CategoryStat
}

// Window computes the report for the `days` calendar days ending on
// the calendar date of `end` (inclusive). Habits deleted before the
// report runs contribute nothing, even if their ledger entries remain.
func (s *Service) Window(end time.Time, days int) (*Report, error) {
	if days < 1 {
		return nil, fmt.Errorf("window must cover at least one day, got %d", days)
	}

	habits, err := s.registry.List()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Days:       days,
		Categories: map[string]CategoryStat{},
	}
	perf := make([]HabitPerformance, len(habits))
	for i, h := range habits {
		perf[i] = HabitPerformance{Name: h.Name, Category: h.Category}
	}

	for i := days - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i)
		dateKey := types.DateKey(date)
		record, err := s.ledger.DayState(dateKey)
		if err != nil {
			return nil, err
		}

		active, completed := 0, 0
		for j, h := range habits {
			if !h.ActiveOn(date) {
				continue
			}
			active++
			perf[j].Active++
			cat := report.Categories[h.Category]
			cat.Total++

			if record.Completed(h.KeyID()) {
				completed++
				perf[j].Completed++
				cat.Completed++
			}
			report.Categories[h.Category] = cat
		}

		percent := 0
		if active > 0 {
			percent = roundPercent(completed, active)
		}
		report.DailyCompletion = append(report.DailyCompletion, DayCompletion{
			DateKey: dateKey,
			Percent: percent,
		})
	}

	sum := 0
	for _, d := range report.DailyCompletion {
		sum += d.Percent
	}
	report.AverageCompletion = int(math.Round(float64(sum) / float64(days)))

	for i := range perf {
		if perf[i].Active > 0 {
			perf[i].Percent = roundPercent(perf[i].Completed, perf[i].Active)
		}
	}
	report.Habits = perf
	return report, nil
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
