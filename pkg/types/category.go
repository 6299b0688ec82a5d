package types

// CategoryOther is the sentinel category assigned when a habit is
// created without one, and the label fallback when a habit references a
// category id that no longer exists.
const CategoryOther = "other"

// Category labels a group of habits. Name holds the Arabic label and
// NameEn the English one; both are stored data, carried through export
// and import unchanged. Habits reference categories by id only.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
}

// Display returns the label for the given locale, falling back to the
// Arabic name when no English label is stored.
func (c Category) Display(locale string) string {
	if locale == "en" && c.NameEn != "" {
		return c.NameEn
	}
	return c.Name
}

// DefaultCategories is the seed category set written on first use.
func DefaultCategories() []Category {
	return []Category{
		{ID: "health", Name: "صحة", NameEn: "Health"},
		{ID: "fitness", Name: "لياقة بدنية", NameEn: "Fitness"},
		{ID: "productivity", Name: "إنتاجية", NameEn: "Productivity"},
		{ID: "learning", Name: "تعلم", NameEn: "Learning"},
		{ID: CategoryOther, Name: "أخرى", NameEn: "Other"},
	}
}

// FindCategory looks up a category by id. A missing id degrades to the
// "other" category so stale references still render a label.
func FindCategory(categories []Category, id string) Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	for _, c := range categories {
		if c.ID == CategoryOther {
			return c
		}
	}
	return Category{ID: CategoryOther, Name: "أخرى", NameEn: "Other"}
}
