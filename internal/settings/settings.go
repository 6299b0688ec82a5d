// Package settings maintains the daily goal and the category list.
// Both are stored data with seeded defaults on first read.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rafikhouda/habits-manager/pkg/types"
)

// DefaultDailyGoal is the target completions per day before the user
// sets one.
const DefaultDailyGoal = 5

// ErrCategoryNameEmpty rejects creating a category without a name.
var ErrCategoryNameEmpty = errors.New("category name must not be empty")

// Settings reads and writes the daily goal and categories through an
// attached store.
type Settings struct {
	store types.Store
}

// New creates a Settings accessor over the given store.
func New(store types.Store) *Settings {
	return &Settings{store: store}
}

// DailyGoal returns the target completions per day, defaulting to 5
// when never written.
func (s *Settings) DailyGoal() (int, error) {
	raw, err := s.store.Get(types.KeyDailyGoal)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return DefaultDailyGoal, nil
		}
		return 0, fmt.Errorf("reading daily goal: %w", err)
	}

	var goal int
	if err := json.Unmarshal(raw, &goal); err != nil {
		return 0, fmt.Errorf("decoding daily goal: %w", err)
	}
	return goal, nil
}

// SetDailyGoal persists the target completions per day.
func (s *Settings) SetDailyGoal(goal int) error {
	raw, err := json.Marshal(goal)
	if err != nil {
		return fmt.Errorf("encoding daily goal: %w", err)
	}
	if err := s.store.Set(types.KeyDailyGoal, raw); err != nil {
		return fmt.Errorf("writing daily goal: %w", err)
	}
	return nil
}

// Categories returns the category list, seeding the defaults when
// never written.
func (s *Settings) Categories() ([]types.Category, error) {
	raw, err := s.store.Get(types.KeyCategories)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return types.DefaultCategories(), nil
		}
		return nil, fmt.Errorf("reading categories: %w", err)
	}

	var categories []types.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	if categories == nil {
		categories = []types.Category{}
	}
	return categories, nil
}

// AddCategory appends a user-defined category with a generated id and
// returns it. The name is stored as both label variants; the user can
// only type one.
func (s *Settings) AddCategory(name string) (*types.Category, error) {
	if name == "" {
		return nil, ErrCategoryNameEmpty
	}

	categories, err := s.Categories()
	if err != nil {
		return nil, err
	}

	category := types.Category{
		ID:     newCategoryID(),
		Name:   name,
		NameEn: name,
	}
	categories = append(categories, category)
	if err := s.ReplaceCategories(categories); err != nil {
		return nil, err
	}
	return &category, nil
}

// ReplaceCategories overwrites the category list, used by snapshot
// import.
func (s *Settings) ReplaceCategories(categories []types.Category) error {
	if categories == nil {
		categories = []types.Category{}
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}
	if err := s.store.Set(types.KeyCategories, raw); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	return nil
}

// newCategoryID generates a UUID v7 for user-defined categories.
func newCategoryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
