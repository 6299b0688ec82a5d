package types

// Completion is one ledger entry: whether a habit was marked complete
// on a given day. Absence of an entry means not completed.
type Completion struct {
	Completed bool `json:"completed"`
}

// DayRecord is the full completion map for one calendar date, keyed by
// habit id in decimal string form.
type DayRecord map[string]Completion

// Completed reports the completion state for the given habit id key,
// defaulting to false when no entry exists.
func (d DayRecord) Completed(habitKey string) bool {
	return d[habitKey].Completed
}
