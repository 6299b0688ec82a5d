// Package snapshot exports the full tracker state to a single backup
// document and restores it on import. The document shape is the
// external file contract; see types.Snapshot.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rafikhouda/habits-manager/internal/ledger"
	"github.com/rafikhouda/habits-manager/internal/points"
	"github.com/rafikhouda/habits-manager/internal/registry"
	"github.com/rafikhouda/habits-manager/internal/settings"
	"github.com/rafikhouda/habits-manager/pkg/types"
)

//go:embed snapshot.schema.json
var schemaJSON string

const schemaName = "snapshot.schema.json"

// compiledSchema validates import documents before anything is applied.
var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("adding snapshot schema: %v", err))
	}
	return compiler.MustCompile(schemaName)
}

// Manager exports and imports snapshots over the tracker's components.
type Manager struct {
	registry *registry.Registry
	ledger   *ledger.Ledger
	points   *points.Accumulator
	settings *settings.Settings

	now func() time.Time
}

// New creates a snapshot Manager over the given store.
func New(store types.Store) *Manager {
	return &Manager{
		registry: registry.New(store),
		ledger:   ledger.New(store),
		points:   points.New(store),
		settings: settings.New(store),
		now:      time.Now,
	}
}

// Export collects the habit list, points total, every persisted day
// record, the daily goal, and the category list into one document.
func (m *Manager) Export() (*types.Snapshot, error) {
	habits, err := m.registry.List()
	if err != nil {
		return nil, err
	}
	total, err := m.points.Total()
	if err != nil {
		return nil, err
	}
	goal, err := m.settings.DailyGoal()
	if err != nil {
		return nil, err
	}
	categories, err := m.settings.Categories()
	if err != nil {
		return nil, err
	}

	dateKeys, err := m.ledger.DateKeys()
	if err != nil {
		return nil, err
	}
	habitData := make(map[string]types.DayRecord, len(dateKeys))
	for _, key := range dateKeys {
		record, err := m.ledger.DayState(key)
		if err != nil {
			return nil, err
		}
		habitData[key] = record
	}

	return &types.Snapshot{
		Habits:      habits,
		TotalPoints: total,
		ExportDate:  m.now().UTC().Format(time.RFC3339),
		HabitData:   habitData,
		DailyGoal:   goal,
		Categories:  categories,
	}, nil
}

// WriteFile exports a snapshot into dir under the conventional
// habit-tracker-backup-<date>.json name and returns the file path.
func (m *Manager) WriteFile(dir string) (string, error) {
	snap, err := m.Export()
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	path := filepath.Join(dir, types.FileName(types.DateKey(m.now())))
	if err := writeFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}

// patch mirrors the snapshot document with presence-detecting fields.
// Each top-level field of a well-formed document is applied
// independently; absent fields leave current state untouched.
type patch struct {
	Habits      []types.Habit              `json:"habits"`
	TotalPoints *int                       `json:"totalPoints"`
	HabitData   map[string]types.DayRecord `json:"habitData"`
	DailyGoal   *int                       `json:"dailyGoal"`
	Categories  []types.Category           `json:"categories"`
}

// Import validates the document and applies every field present in it.
// A document that fails validation yields ErrMalformedSnapshot and
// commits nothing. Unknown top-level fields are tolerated.
func (m *Manager) Import(data []byte) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrMalformedSnapshot, err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrMalformedSnapshot, err)
	}

	var p patch
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %v", types.ErrMalformedSnapshot, err)
	}

	if p.Habits != nil {
		if err := m.registry.Replace(p.Habits); err != nil {
			return err
		}
	}
	if p.TotalPoints != nil {
		if err := m.points.Replace(*p.TotalPoints); err != nil {
			return err
		}
	}
	for key, record := range p.HabitData {
		if err := m.ledger.WriteDay(key, record); err != nil {
			return err
		}
	}
	if p.DailyGoal != nil {
		if err := m.settings.SetDailyGoal(*p.DailyGoal); err != nil {
			return err
		}
	}
	if p.Categories != nil {
		if err := m.settings.ReplaceCategories(p.Categories); err != nil {
			return err
		}
	}
	return nil
}
