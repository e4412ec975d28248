// This file provides the example recipes used to exercise a fresh store.
package sqlite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// exampleRecipes returns the built-in example recipes. Each call returns
// fresh values so callers can mutate them freely.
func exampleRecipes() []*types.Recipe {
	pancakes := &types.Recipe{
		Title:       "Pancakes",
		Description: "Fluffy breakfast pancakes.",
		PrepTime:    10,
		CookTime:    15,
		Servings:    4,
		Ingredients: []types.RecipeIngredient{
			{Ingredient: types.Ingredient{Name: "Flour"}, Quantity: 200, Unit: types.UnitGram},
			{Ingredient: types.Ingredient{Name: "Milk"}, Quantity: 300, Unit: types.UnitMilliliter},
			{Ingredient: types.Ingredient{Name: "Egg"}, Quantity: 2, Unit: types.UnitPiece},
			{Ingredient: types.Ingredient{Name: "Butter"}, Quantity: 50, Unit: types.UnitGram},
		},
		Instructions: []types.Instruction{
			{StepNumber: 1, Description: "Mix all dry ingredients."},
			{StepNumber: 2, Description: "Add milk and eggs, whisk until smooth."},
			{StepNumber: 3, Description: "Heat a frying pan and melt butter."},
			{StepNumber: 4, Description: "Pour batter into the pan and cook until golden on both sides."},
		},
		Tags: []types.Tag{
			{Name: "Breakfast"},
			{Name: "Easy"},
		},
	}

	spaghetti := &types.Recipe{
		Title:       "Spaghetti Bolognese",
		Description: "Classic Italian pasta with meat sauce.",
		PrepTime:    15,
		CookTime:    45,
		Servings:    4,
		Ingredients: []types.RecipeIngredient{
			{Ingredient: types.Ingredient{Name: "Spaghetti"}, Quantity: 400, Unit: types.UnitGram},
			{Ingredient: types.Ingredient{Name: "Ground Beef", Category: types.CategoryMeat}, Quantity: 500, Unit: types.UnitGram},
			{Ingredient: types.Ingredient{Name: "Tomato Sauce", Category: types.CategoryVegetable}, Quantity: 800, Unit: types.UnitGram},
			{Ingredient: types.Ingredient{Name: "Onion", Category: types.CategoryVegetable}, Quantity: 1, Unit: types.UnitPiece},
			{Ingredient: types.Ingredient{Name: "Garlic", Category: types.CategorySpice}, Quantity: 2, Unit: types.UnitPiece},
		},
		Instructions: []types.Instruction{
			{StepNumber: 1, Description: "Boil spaghetti until al dente."},
			{StepNumber: 2, Description: "Saute onions and garlic until translucent."},
			{StepNumber: 3, Description: "Add ground beef and cook until browned."},
			{StepNumber: 4, Description: "Pour in tomato sauce and simmer for 30 minutes."},
			{StepNumber: 5, Description: "Serve sauce over spaghetti."},
		},
		Tags: []types.Tag{
			{Name: "Dinner", Child: &types.Tag{Name: "Italian"}},
		},
	}

	return []*types.Recipe{pancakes, spaghetti}
}

// Seed writes the example recipes, each starting its own revision group.
// Returns the refs of the written revisions.
func (s *Store) Seed() ([]RevisionRef, error) {
	refs := make([]RevisionRef, 0, 2)
	for _, recipe := range exampleRecipes() {
		ref, err := s.WriteRevision(recipe, "")
		if err != nil {
			return nil, fmt.Errorf("seeding %q: %w", recipe.Title, err)
		}
		refs = append(refs, ref)
	}

	n, err := s.countIngredients()
	if err != nil {
		return nil, err
	}
	s.log.Info("store seeded", zap.Int("recipes", len(refs)), zap.Int("ingredients", n))
	return refs, nil
}
