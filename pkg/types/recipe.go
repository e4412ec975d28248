package types

import "fmt"

// RecipeIngredient links a recipe revision to a shared ingredient with the
// quantity and unit specific to that revision.
type RecipeIngredient struct {
	Ingredient Ingredient `json:"ingredient"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
}

// Validate checks the ingredient link.
func (ri RecipeIngredient) Validate() error {
	if err := ri.Ingredient.Validate(); err != nil {
		return err
	}
	if ri.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if !ValidUnit(ri.Unit) {
		return ErrInvalidUnit
	}
	return nil
}

// Instruction is one ordered step of a recipe revision. Step numbers are
// caller-assigned; the store preserves them without requiring them to be
// unique or contiguous.
type Instruction struct {
	StepNumber  int    `json:"step_number"`
	Description string `json:"description"`
}

// Validate checks that the step number is positive and the description is
// non-empty.
func (in Instruction) Validate() error {
	if in.StepNumber <= 0 || in.Description == "" {
		return ErrInvalidStep
	}
	return nil
}

// Recipe is one revision of a recipe: its scalar fields plus the ordered
// ingredient links, instructions, and tags the writer flattens into rows.
// Zero values on the optional scalars (Description, Comments, PrepTime,
// CookTime, Servings) mean unset.
type Recipe struct {
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	Comments     string             `json:"comments,omitempty"`
	PrepTime     int                `json:"prep_time,omitempty"` // minutes
	CookTime     int                `json:"cook_time,omitempty"` // minutes
	Servings     int                `json:"servings,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []Instruction      `json:"instructions"`
	Tags         []Tag              `json:"tags"`
}

// Validate checks the whole graph at the write boundary so that invalid
// entries never reach storage logic. It returns the first problem found,
// wrapped with the position of the offending entry.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return ErrInvalidTitle
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return ErrInvalidTime
	}
	if r.Servings < 0 {
		return ErrInvalidServings
	}
	for i, ri := range r.Ingredients {
		if err := ri.Validate(); err != nil {
			return fmt.Errorf("ingredient %d: %w", i, err)
		}
	}
	for i, in := range r.Instructions {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	for i, t := range r.Tags {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("tag %d: %w", i, err)
		}
	}
	return nil
}
