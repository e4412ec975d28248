package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestResolveIngredient(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "resolving the same name twice returns the same ID",
			check: func(t *testing.T, s *Store) {
				first, err := s.ResolveIngredient(types.Ingredient{Name: "Flour"})
				require.NoError(t, err)
				second, err := s.ResolveIngredient(types.Ingredient{Name: "Flour"})
				require.NoError(t, err)

				assert.Equal(t, first, second)

				n, err := s.countIngredients()
				require.NoError(t, err)
				assert.Equal(t, 1, n, "exactly one row should exist for the name")
			},
		},
		{
			name: "names are matched case-sensitively",
			check: func(t *testing.T, s *Store) {
				first, err := s.ResolveIngredient(types.Ingredient{Name: "Basil"})
				require.NoError(t, err)
				second, err := s.ResolveIngredient(types.Ingredient{Name: "basil"})
				require.NoError(t, err)

				assert.NotEqual(t, first, second)
			},
		},
		{
			name: "category is first-write-wins",
			check: func(t *testing.T, s *Store) {
				id, err := s.ResolveIngredient(types.Ingredient{Name: "Onion", Category: types.CategoryVegetable})
				require.NoError(t, err)

				// A later resolve with a different category must not update
				// the existing row.
				again, err := s.ResolveIngredient(types.Ingredient{Name: "Onion", Category: types.CategorySpice})
				require.NoError(t, err)
				assert.Equal(t, id, again)

				var category string
				err = s.db.QueryRow("SELECT category FROM ingredients WHERE ingredient_id = ?", id).Scan(&category)
				require.NoError(t, err)
				assert.Equal(t, types.CategoryVegetable, category)
			},
		},
		{
			name: "unset category persists as NULL",
			check: func(t *testing.T, s *Store) {
				id, err := s.ResolveIngredient(types.Ingredient{Name: "Water"})
				require.NoError(t, err)

				var category any
				err = s.db.QueryRow("SELECT category FROM ingredients WHERE ingredient_id = ?", id).Scan(&category)
				require.NoError(t, err)
				assert.Nil(t, category)
			},
		},
		{
			name: "empty name is rejected",
			check: func(t *testing.T, s *Store) {
				_, err := s.ResolveIngredient(types.Ingredient{})
				assert.ErrorIs(t, err, types.ErrInvalidName)
			},
		},
		{
			name: "unknown category is rejected",
			check: func(t *testing.T, s *Store) {
				_, err := s.ResolveIngredient(types.Ingredient{Name: "Tofu", Category: "legume"})
				assert.ErrorIs(t, err, types.ErrInvalidCategory)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}
