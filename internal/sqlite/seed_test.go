package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	s := newTestStore(t)

	refs, err := s.Seed()
	require.NoError(t, err)
	require.Len(t, refs, 2)

	for _, ref := range refs {
		assert.Equal(t, 1, ref.Version, "each example starts its own group")
		assert.Equal(t, ref.RecipeID, ref.GroupID)
	}

	n, err := s.countIngredients()
	require.NoError(t, err)
	assert.Equal(t, 9, n, "pancakes and spaghetti share no ingredient names")

	stored, err := s.GetRecipe(refs[1].RecipeID)
	require.NoError(t, err)
	assert.Equal(t, "Spaghetti Bolognese", stored.Recipe.Title)
	require.Len(t, stored.Recipe.Tags, 1)
	assert.Equal(t, []string{"Dinner", "Italian"}, stored.Recipe.Tags[0].Chain())
}

func TestSeedTwiceReusesSharedEntities(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Seed()
	require.NoError(t, err)
	refs, err := s.Seed()
	require.NoError(t, err)

	// Seeding again writes new revision groups but creates no new
	// ingredient or tag rows.
	for _, ref := range refs {
		assert.Equal(t, 1, ref.Version)
	}

	n, err := s.countIngredients()
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	var tags int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&tags))
	assert.Equal(t, 4, tags)
}
