package expenses

import "strings"

// Category is the fixed expense category enumeration
type Category string

const (
	CategoryOffice    Category = "Office"
	CategoryTravel    Category = "Travel"
	CategoryMeals     Category = "Meals"
	CategorySoftware  Category = "Software"
	CategoryMarketing Category = "Marketing"
	CategoryUtilities Category = "Utilities"
	CategoryOther     Category = "Other"
)

// Categories lists every known category.
var Categories = []Category{
	CategoryOffice,
	CategoryTravel,
	CategoryMeals,
	CategorySoftware,
	CategoryMarketing,
	CategoryUtilities,
	CategoryOther,
}

// categorySynonyms maps spoken phrasings to canonical categories. Lookup
// is case-insensitive; a miss falls back to Other rather than failing.
var categorySynonyms = map[string]Category{
	"office":          CategoryOffice,
	"office supplies": CategoryOffice,
	"travel":          CategoryTravel,
	"meal":            CategoryMeals,
	"meals":           CategoryMeals,
	"food":            CategoryMeals,
	"software":        CategorySoftware,
	"subscription":    CategorySoftware,
	"marketing":       CategoryMarketing,
	"advertising":     CategoryMarketing,
	"utilities":       CategoryUtilities,
	"utility":         CategoryUtilities,
}

// CanonicalCategory maps free text to a category. It is total: every
// input yields a member of the enumeration, with unmapped or empty input
// yielding Other.
func CanonicalCategory(raw string) Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	if category, ok := categorySynonyms[key]; ok {
		return category
	}
	return CategoryOther
}
