package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// pancakesRecipe returns the concrete scenario recipe used across tests.
func pancakesRecipe() *types.Recipe {
	return &types.Recipe{
		Title:       "Pancakes",
		Description: "Fluffy breakfast pancakes.",
		PrepTime:    10,
		CookTime:    15,
		Servings:    4,
		Ingredients: []types.RecipeIngredient{
			{Ingredient: types.Ingredient{Name: "Flour"}, Quantity: 200, Unit: types.UnitGram},
			{Ingredient: types.Ingredient{Name: "Milk"}, Quantity: 300, Unit: types.UnitMilliliter},
		},
		Instructions: []types.Instruction{
			{StepNumber: 1, Description: "Mix"},
			{StepNumber: 2, Description: "Cook"},
		},
		Tags: []types.Tag{{Name: "Breakfast"}},
	}
}

func TestWriteRevisionNewGroup(t *testing.T) {
	s := newTestStore(t)

	ref, err := s.WriteRevision(pancakesRecipe(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, ref.Version)
	assert.Equal(t, ref.RecipeID, ref.GroupID,
		"first revision's group ID equals its own recipe ID")

	n, err := s.countIngredients()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var tagCount int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&tagCount))
	assert.Equal(t, 1, tagCount)
}

func TestWriteRevisionVersionSequence(t *testing.T) {
	s := newTestStore(t)

	ref, err := s.WriteRevision(pancakesRecipe(), "")
	require.NoError(t, err)
	groupID := ref.GroupID

	for want := 2; want <= 5; want++ {
		r := pancakesRecipe()
		r.Title = "Pancakes revised"
		next, err := s.WriteRevision(r, groupID)
		require.NoError(t, err)
		assert.Equal(t, want, next.Version)
		assert.Equal(t, groupID, next.GroupID)
		assert.NotEqual(t, ref.RecipeID, next.RecipeID)
	}
}

func TestWriteRevisionReusesSharedEntities(t *testing.T) {
	s := newTestStore(t)

	first, err := s.WriteRevision(pancakesRecipe(), "")
	require.NoError(t, err)

	second := pancakesRecipe()
	second.Title = "Pancakes v2"
	ref, err := s.WriteRevision(second, first.GroupID)
	require.NoError(t, err)
	assert.Equal(t, 2, ref.Version)

	// Flour and Milk resolve to the existing rows; no new ingredients.
	n, err := s.countIngredients()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var linked int
	err = s.db.QueryRow(
		`SELECT COUNT(DISTINCT ri.ingredient_id) FROM recipe_ingredients ri`,
	).Scan(&linked)
	require.NoError(t, err)
	assert.Equal(t, 2, linked, "both revisions should link the same ingredient rows")
}

func TestWriteRevisionUnknownGroup(t *testing.T) {
	s := newTestStore(t)

	_, err := s.WriteRevision(pancakesRecipe(), "no-such-group")
	assert.ErrorIs(t, err, types.ErrGroupNotFound)

	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM recipes").Scan(&n))
	assert.Equal(t, 0, n, "nothing should be written for an unknown group")
}

func TestWriteRevisionDuplicateLinks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *types.Recipe)
	}{
		{
			name: "same ingredient twice",
			mutate: func(r *types.Recipe) {
				r.Ingredients = append(r.Ingredients, r.Ingredients[0])
			},
		},
		{
			name: "same tag twice",
			mutate: func(r *types.Recipe) {
				r.Tags = append(r.Tags, r.Tags[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)

			r := pancakesRecipe()
			tt.mutate(r)
			_, err := s.WriteRevision(r, "")
			assert.ErrorIs(t, err, types.ErrDuplicateLink)

			// No partial rows may remain for the failed revision.
			for _, table := range []string{"recipes", "instructions", "recipe_ingredients", "recipe_tags"} {
				var n int
				require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
				assert.Zero(t, n, "table %s should be empty", table)
			}
		})
	}
}

func TestWriteRevisionValidation(t *testing.T) {
	tests := []struct {
		name    string
		recipe  *types.Recipe
		wantErr error
	}{
		{
			name:    "missing title",
			recipe:  &types.Recipe{},
			wantErr: types.ErrInvalidTitle,
		},
		{
			name: "bad unit",
			recipe: &types.Recipe{
				Title: "Soup",
				Ingredients: []types.RecipeIngredient{
					{Ingredient: types.Ingredient{Name: "Carrot"}, Quantity: 2, Unit: "bunch"},
				},
			},
			wantErr: types.ErrInvalidUnit,
		},
		{
			name: "negative quantity",
			recipe: &types.Recipe{
				Title: "Soup",
				Ingredients: []types.RecipeIngredient{
					{Ingredient: types.Ingredient{Name: "Carrot"}, Quantity: -1, Unit: types.UnitPiece},
				},
			},
			wantErr: types.ErrInvalidQuantity,
		},
		{
			name: "zero step number",
			recipe: &types.Recipe{
				Title:        "Soup",
				Instructions: []types.Instruction{{StepNumber: 0, Description: "Chop"}},
			},
			wantErr: types.ErrInvalidStep,
		},
		{
			name: "empty step description",
			recipe: &types.Recipe{
				Title:        "Soup",
				Instructions: []types.Instruction{{StepNumber: 1}},
			},
			wantErr: types.ErrInvalidStep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			_, err := s.WriteRevision(tt.recipe, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetRecipeRoundTrip(t *testing.T) {
	s := newTestStore(t)

	input := &types.Recipe{
		Title:       "Spaghetti Bolognese",
		Description: "Classic Italian pasta with meat sauce.",
		Comments:    "Family favourite.",
		PrepTime:    15,
		CookTime:    45,
		Servings:    4,
		Ingredients: []types.RecipeIngredient{
			{Ingredient: types.Ingredient{Name: "Spaghetti"}, Quantity: 400, Unit: types.UnitGram},
			{Ingredient: types.Ingredient{Name: "Ground Beef", Category: types.CategoryMeat}, Quantity: 500, Unit: types.UnitGram},
			{Ingredient: types.Ingredient{Name: "Onion", Category: types.CategoryVegetable}, Quantity: 1, Unit: types.UnitPiece},
		},
		Instructions: []types.Instruction{
			{StepNumber: 1, Description: "Boil spaghetti until al dente."},
			{StepNumber: 2, Description: "Saute onions."},
			{StepNumber: 3, Description: "Brown the beef, add sauce, simmer."},
		},
		Tags: []types.Tag{
			{Name: "Dinner", Child: &types.Tag{Name: "Italian"}},
		},
	}

	ref, err := s.WriteRevision(input, "")
	require.NoError(t, err)

	stored, err := s.GetRecipe(ref.RecipeID)
	require.NoError(t, err)

	assert.Equal(t, ref, stored.RevisionRef)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, *input, stored.Recipe)
}

func TestGetRecipeOptionalScalarsRoundTripAsZero(t *testing.T) {
	s := newTestStore(t)

	ref, err := s.WriteRevision(&types.Recipe{Title: "Water"}, "")
	require.NoError(t, err)

	stored, err := s.GetRecipe(ref.RecipeID)
	require.NoError(t, err)

	assert.Empty(t, stored.Recipe.Description)
	assert.Empty(t, stored.Recipe.Comments)
	assert.Zero(t, stored.Recipe.PrepTime)
	assert.Zero(t, stored.Recipe.CookTime)
	assert.Zero(t, stored.Recipe.Servings)
}

func TestGetRecipeNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRecipe("missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteRecipeCascades(t *testing.T) {
	s := newTestStore(t)

	first, err := s.WriteRevision(pancakesRecipe(), "")
	require.NoError(t, err)
	second, err := s.WriteRevision(pancakesRecipe(), first.GroupID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecipe(second.RecipeID))

	// The deleted revision's detail rows are gone.
	for _, q := range []string{
		"SELECT COUNT(*) FROM instructions WHERE recipe_id = ?",
		"SELECT COUNT(*) FROM recipe_ingredients WHERE recipe_id = ?",
		"SELECT COUNT(*) FROM recipe_tags WHERE recipe_id = ?",
	} {
		var n int
		require.NoError(t, s.db.QueryRow(q, second.RecipeID).Scan(&n))
		assert.Zero(t, n)
	}

	// Shared entities referenced by the surviving revision stay.
	n, err := s.countIngredients()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.GetRecipe(first.RecipeID)
	require.NoError(t, err)
	assert.Len(t, got.Recipe.Ingredients, 2)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.DeleteRecipe("missing"), types.ErrNotFound)
}

func TestListRevisions(t *testing.T) {
	s := newTestStore(t)

	first, err := s.WriteRevision(pancakesRecipe(), "")
	require.NoError(t, err)
	v2 := pancakesRecipe()
	v2.Title = "Pancakes v2"
	_, err = s.WriteRevision(v2, first.GroupID)
	require.NoError(t, err)

	infos, err := s.ListRevisions(first.GroupID)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, 1, infos[0].Version)
	assert.Equal(t, "Pancakes", infos[0].Title)
	assert.Equal(t, 2, infos[1].Version)
	assert.Equal(t, "Pancakes v2", infos[1].Title)

	empty, err := s.ListRevisions("no-such-group")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListRecipesReturnsLatestRevisions(t *testing.T) {
	s := newTestStore(t)

	pancakes, err := s.WriteRevision(pancakesRecipe(), "")
	require.NoError(t, err)
	v2 := pancakesRecipe()
	v2.Title = "Pancakes v2"
	_, err = s.WriteRevision(v2, pancakes.GroupID)
	require.NoError(t, err)

	other := pancakesRecipe()
	other.Title = "Waffles"
	_, err = s.WriteRevision(other, "")
	require.NoError(t, err)

	infos, err := s.ListRecipes()
	require.NoError(t, err)
	require.Len(t, infos, 2, "one entry per revision group")

	titles := []string{infos[0].Title, infos[1].Title}
	assert.ElementsMatch(t, []string{"Pancakes v2", "Waffles"}, titles)
	for _, info := range infos {
		if info.GroupID == pancakes.GroupID {
			assert.Equal(t, 2, info.Version)
		}
	}
}
