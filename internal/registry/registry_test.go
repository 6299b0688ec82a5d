package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafikhouda/habits-manager/internal/memory"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

func strptr(s string) *string { return &s }

func TestAddValidatesName(t *testing.T) {
	r := New(memory.Attached())

	tests := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{name: "missing name", draft: Draft{}, wantErr: types.ErrNameEmpty},
		{name: "empty name", draft: Draft{Name: strptr("")}, wantErr: types.ErrNameEmpty},
		{
			name:    "bad recurrence",
			draft:   Draft{Name: strptr("Run"), Repeat: &types.Recurrence{Kind: "yearly"}},
			wantErr: types.ErrInvalidRecurrence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Add(tt.draft)
			assert.ErrorIs(t, err, tt.wantErr)

			habits, err := r.List()
			require.NoError(t, err)
			assert.Empty(t, habits, "nothing persisted on validation failure")
		})
	}
}

func TestAddAssignsIDAndDefaults(t *testing.T) {
	r := New(memory.Attached())

	habit, err := r.Add(Draft{Name: strptr("Run")})
	require.NoError(t, err)

	assert.NotZero(t, habit.ID)
	assert.Equal(t, types.CategoryOther, habit.Category, "category defaults to other")
	assert.False(t, habit.CreatedAt.IsZero())
	assert.Nil(t, habit.Repeat, "no recurrence means daily")
}

func TestAddIDsUniqueAndIncreasing(t *testing.T) {
	r := New(memory.Attached())
	// Freeze the clock so every habit is created within one millisecond.
	now := time.Now()
	r.now = func() time.Time { return now }

	seen := map[int64]bool{}
	var last int64
	for i := 0; i < 10; i++ {
		habit, err := r.Add(Draft{Name: strptr("h")})
		require.NoError(t, err)
		assert.False(t, seen[habit.ID], "id %d reused", habit.ID)
		assert.Greater(t, habit.ID, last)
		seen[habit.ID] = true
		last = habit.ID
	}
}

func TestListInsertionOrder(t *testing.T) {
	r := New(memory.Attached())

	for _, name := range []string{"first", "second", "third"} {
		_, err := r.Add(Draft{Name: strptr(name)})
		require.NoError(t, err)
	}

	habits, err := r.List()
	require.NoError(t, err)
	require.Len(t, habits, 3)
	assert.Equal(t, "first", habits[0].Name)
	assert.Equal(t, "second", habits[1].Name)
	assert.Equal(t, "third", habits[2].Name)
}

func TestListEmptyRegistry(t *testing.T) {
	r := New(memory.Attached())
	habits, err := r.List()
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestEdit(t *testing.T) {
	r := New(memory.Attached())

	created, err := r.Add(Draft{Name: strptr("Run"), Description: strptr("morning")})
	require.NoError(t, err)

	updated, err := r.Edit(created.ID, Draft{
		Name:   strptr("Morning run"),
		Repeat: &types.Recurrence{Kind: types.RecurWeekly, Weekdays: []int{1, 3, 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "id preserved")
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "creation time preserved")
	assert.Equal(t, "Morning run", updated.Name)
	assert.Equal(t, "morning", updated.Description, "unset field untouched")
	require.NotNil(t, updated.Repeat)
	assert.Equal(t, types.RecurWeekly, updated.Repeat.Kind)
}

func TestEditNotFound(t *testing.T) {
	r := New(memory.Attached())
	_, err := r.Edit(42, Draft{Name: strptr("x")})
	assert.ErrorIs(t, err, types.ErrHabitNotFound)
}

func TestEditRejectsEmptyName(t *testing.T) {
	r := New(memory.Attached())

	created, err := r.Add(Draft{Name: strptr("Run")})
	require.NoError(t, err)

	_, err = r.Edit(created.ID, Draft{Name: strptr("")})
	assert.ErrorIs(t, err, types.ErrNameEmpty)

	got, err := r.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run", got.Name, "failed edit leaves the habit untouched")
}

func TestEditClearCategory(t *testing.T) {
	r := New(memory.Attached())

	created, err := r.Add(Draft{Name: strptr("Run"), Category: strptr("health")})
	require.NoError(t, err)
	require.Equal(t, "health", created.Category)

	updated, err := r.Edit(created.ID, Draft{ClearCategory: true})
	require.NoError(t, err)
	assert.Equal(t, types.CategoryOther, updated.Category)
}

func TestEditClearRepeat(t *testing.T) {
	r := New(memory.Attached())

	created, err := r.Add(Draft{
		Name:   strptr("Run"),
		Repeat: &types.Recurrence{Kind: types.RecurWeekly, Weekdays: []int{1}},
	})
	require.NoError(t, err)

	updated, err := r.Edit(created.ID, Draft{ClearRepeat: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Repeat)
}

func TestRemove(t *testing.T) {
	r := New(memory.Attached())

	keep, err := r.Add(Draft{Name: strptr("keep")})
	require.NoError(t, err)
	drop, err := r.Add(Draft{Name: strptr("drop")})
	require.NoError(t, err)

	removed, err := r.Remove(drop.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	habits, err := r.List()
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, keep.ID, habits[0].ID)

	removed, err = r.Remove(drop.ID)
	assert.NoError(t, err, "removing an absent id is a no-op")
	assert.False(t, removed, "no-op removal is reported to the caller")
}

func TestGet(t *testing.T) {
	r := New(memory.Attached())

	created, err := r.Add(Draft{Name: strptr("Run")})
	require.NoError(t, err)

	got, err := r.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = r.Get(999)
	assert.ErrorIs(t, err, types.ErrHabitNotFound)
}

func TestAddAfterImportWithFutureIDs(t *testing.T) {
	r := New(memory.Attached())

	imported := types.Habit{ID: time.Now().UnixMilli() + 1_000_000, Name: "imported"}
	require.NoError(t, r.Replace([]types.Habit{imported}))

	habit, err := r.Add(Draft{Name: strptr("new")})
	require.NoError(t, err)
	assert.Greater(t, habit.ID, imported.ID, "new id does not collide with imported ids")
}
