package types

// Ingredient categories. The empty string means no category was assigned.
const (
	CategoryVegetable = "vegetable"
	CategoryMeat      = "meat"
	CategoryFish      = "fish"
	CategoryFruit     = "fruit"
	CategorySpice     = "spice"
)

// validCategories is the set of recognized category values.
var validCategories = map[string]bool{
	CategoryVegetable: true,
	CategoryMeat:      true,
	CategoryFish:      true,
	CategoryFruit:     true,
	CategorySpice:     true,
}

// ValidCategory reports whether category is recognized. The empty string
// is valid and means unset.
func ValidCategory(category string) bool {
	return category == "" || validCategories[category]
}

// Ingredient is a named ingredient shared across all recipes. Identity is
// the exact name; Category is auxiliary and fixed by whichever recipe
// references the name first.
type Ingredient struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Validate checks that the ingredient has a name and a recognized category.
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return ErrInvalidName
	}
	if !ValidCategory(i.Category) {
		return ErrInvalidCategory
	}
	return nil
}
