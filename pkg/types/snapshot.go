package types

import "errors"

// ErrMalformedSnapshot reports an import document that is not a
// well-formed snapshot. Nothing is applied from such a document.
var ErrMalformedSnapshot = errors.New("malformed snapshot document")

// Snapshot is the full exportable state of the tracker at a point in
// time. The field names are the on-disk backup file contract and must
// be reproduced exactly for round-trip compatibility; external tooling
// reads these files.
type Snapshot struct {
	Habits      []Habit              `json:"habits"`
	TotalPoints int                  `json:"totalPoints"`
	ExportDate  string               `json:"exportDate"`
	HabitData   map[string]DayRecord `json:"habitData"`
	DailyGoal   int                  `json:"dailyGoal"`
	Categories  []Category           `json:"categories"`
}

// FileName returns the conventional backup file name for a snapshot
// exported under the given date key.
func FileName(dateKey string) string {
	return "habit-tracker-backup-" + dateKey + ".json"
}
