package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCategory(t *testing.T) {
	categories := DefaultCategories()

	t.Run("existing id", func(t *testing.T) {
		got := FindCategory(categories, "fitness")
		assert.Equal(t, "fitness", got.ID)
		assert.Equal(t, "Fitness", got.NameEn)
	})

	t.Run("unknown id degrades to other", func(t *testing.T) {
		got := FindCategory(categories, "vanished")
		assert.Equal(t, CategoryOther, got.ID)
	})

	t.Run("empty list still yields a label", func(t *testing.T) {
		got := FindCategory(nil, "anything")
		assert.Equal(t, CategoryOther, got.ID)
		assert.NotEmpty(t, got.NameEn)
	})
}

func TestCategoryDisplay(t *testing.T) {
	c := Category{ID: "health", Name: "صحة", NameEn: "Health"}
	assert.Equal(t, "Health", c.Display("en"))
	assert.Equal(t, "صحة", c.Display("ar"))

	noEnglish := Category{ID: "x", Name: "فقط"}
	assert.Equal(t, "فقط", noEnglish.Display("en"))
}

func TestDefaultCategoriesContainOther(t *testing.T) {
	ids := []string{}
	for _, c := range DefaultCategories() {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, CategoryOther)
}
