package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafikhouda/habits-manager/internal/ledger"
	"github.com/rafikhouda/habits-manager/internal/memory"
	"github.com/rafikhouda/habits-manager/internal/points"
	"github.com/rafikhouda/habits-manager/internal/registry"
	"github.com/rafikhouda/habits-manager/internal/settings"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

// seededStore returns a store holding one habit, one completed day,
// three points, a goal of four, and a custom category list.
func seededStore(t *testing.T) types.Store {
	t.Helper()
	store := memory.Attached()

	require.NoError(t, registry.New(store).Replace([]types.Habit{{
		ID:        1709500000000,
		Name:      "Run",
		Category:  "health",
		Repeat:    &types.Recurrence{Kind: types.RecurWeekly, Weekdays: []int{1, 3, 5}},
		CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}}))
	require.NoError(t, ledger.New(store).SetCompletion("2024-03-04", 1709500000000, true))
	require.NoError(t, points.New(store).Replace(3))
	require.NoError(t, settings.New(store).SetDailyGoal(4))
	require.NoError(t, settings.New(store).ReplaceCategories([]types.Category{
		{ID: "health", Name: "الصحة", NameEn: "Health"},
	}))
	return store
}

func TestExport(t *testing.T) {
	m := New(seededStore(t))
	m.now = func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) }

	snap, err := m.Export()
	require.NoError(t, err)

	require.Len(t, snap.Habits, 1)
	assert.Equal(t, "Run", snap.Habits[0].Name)
	assert.Equal(t, 3, snap.TotalPoints)
	assert.Equal(t, "2024-03-05T12:00:00Z", snap.ExportDate)
	assert.True(t, snap.HabitData["2024-03-04"].Completed("1709500000000"))
	assert.Equal(t, 4, snap.DailyGoal)
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, "health", snap.Categories[0].ID)
}

func TestExportEmptyState(t *testing.T) {
	m := New(memory.Attached())

	snap, err := m.Export()
	require.NoError(t, err)
	assert.Empty(t, snap.Habits)
	assert.Equal(t, 0, snap.TotalPoints)
	assert.Empty(t, snap.HabitData)
	assert.Equal(t, settings.DefaultDailyGoal, snap.DailyGoal)
	assert.Equal(t, types.DefaultCategories(), snap.Categories)
}

func TestExportDocumentShape(t *testing.T) {
	m := New(seededStore(t))

	snap, err := m.Export()
	require.NoError(t, err)
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{
		"habits", "totalPoints", "exportDate", "habitData", "dailyGoal", "categories",
	} {
		assert.Contains(t, doc, key)
	}
	assert.Len(t, doc, 6, "no extra top-level fields")

	var habits []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc["habits"], &habits))
	require.Len(t, habits, 1)
	assert.Contains(t, habits[0], "repeat")

	var repeat map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(habits[0]["repeat"], &repeat))
	assert.Contains(t, repeat, "type")
	assert.Contains(t, repeat, "days")
	assert.NotContains(t, repeat, "dates", "empty month-day list omitted")
}

func TestRoundTrip(t *testing.T) {
	source := New(seededStore(t))
	snap, err := source.Export()
	require.NoError(t, err)
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	target := New(memory.Attached())
	require.NoError(t, target.Import(data))

	restored, err := target.Export()
	require.NoError(t, err)
	restored.ExportDate = snap.ExportDate
	assert.Equal(t, snap, restored)
}

func TestImportPartialDocument(t *testing.T) {
	m := New(seededStore(t))

	require.NoError(t, m.Import([]byte(`{"dailyGoal": 9}`)))

	goal, err := m.settings.DailyGoal()
	require.NoError(t, err)
	assert.Equal(t, 9, goal)

	habits, err := m.registry.List()
	require.NoError(t, err)
	assert.Len(t, habits, 1, "absent fields leave current state untouched")
	total, err := m.points.Total()
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestImportZeroTotalPoints(t *testing.T) {
	m := New(seededStore(t))

	require.NoError(t, m.Import([]byte(`{"totalPoints": 0}`)))

	total, err := m.points.Total()
	require.NoError(t, err)
	assert.Equal(t, 0, total, "an explicit zero is applied, not skipped")
}

func TestImportToleratesUnknownFields(t *testing.T) {
	m := New(memory.Attached())
	require.NoError(t, m.Import([]byte(`{"dailyGoal": 2, "version": "1.0"}`)))

	goal, err := m.settings.DailyGoal()
	require.NoError(t, err)
	assert.Equal(t, 2, goal)
}

func TestImportMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{"habits":`},
		{name: "top level not object", data: `[1, 2]`},
		{name: "habit missing name", data: `{"habits": [{"id": 1}]}`},
		{name: "habit empty name", data: `{"habits": [{"id": 1, "name": ""}]}`},
		{name: "habit id not integer", data: `{"habits": [{"id": "1", "name": "Run"}]}`},
		{name: "negative points", data: `{"totalPoints": -1}`},
		{name: "fractional goal", data: `{"dailyGoal": 2.5}`},
		{name: "habit data key not a date", data: `{"habitData": {"habits": {}}}`},
		{name: "bad recurrence kind", data: `{"habits": [{"id": 1, "name": "Run", "repeat": {"type": "yearly"}}]}`},
		{name: "weekday out of range", data: `{"habits": [{"id": 1, "name": "Run", "repeat": {"type": "weekly", "days": [7]}}]}`},
		{name: "category missing id", data: `{"categories": [{"name": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(seededStore(t))
			before, err := m.Export()
			require.NoError(t, err)

			err = m.Import([]byte(tt.data))
			assert.ErrorIs(t, err, types.ErrMalformedSnapshot)

			after, err := m.Export()
			require.NoError(t, err)
			after.ExportDate = before.ExportDate
			assert.Equal(t, before, after, "rejected document commits nothing")
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	m := New(seededStore(t))
	m.now = func() time.Time { return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC) }

	path, err := m.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "habit-tracker-backup-2024-03-05.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	target := New(memory.Attached())
	require.NoError(t, target.Import(data), "written file is importable as-is")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file left behind")
}
