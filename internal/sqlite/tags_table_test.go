package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/larder/pkg/types"
)

func TestResolveTag(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T, s *Store)
	}{
		{
			name: "resolving the same name twice returns the same ID",
			check: func(t *testing.T, s *Store) {
				first, err := s.ResolveTag(types.Tag{Name: "Breakfast"})
				require.NoError(t, err)
				second, err := s.ResolveTag(types.Tag{Name: "Breakfast"})
				require.NoError(t, err)

				assert.Equal(t, first, second)

				var n int
				require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&n))
				assert.Equal(t, 1, n)
			},
		},
		{
			name: "child chain creates one row per name with parent links",
			check: func(t *testing.T, s *Store) {
				topID, err := s.ResolveTag(types.Tag{
					Name:  "Dinner",
					Child: &types.Tag{Name: "Italian", Child: &types.Tag{Name: "Pasta"}},
				})
				require.NoError(t, err)

				var n int
				require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&n))
				assert.Equal(t, 3, n)

				tag, err := s.hydrateTag(topID, "Dinner")
				require.NoError(t, err)
				assert.Equal(t, []string{"Dinner", "Italian", "Pasta"}, tag.Chain())
			},
		},
		{
			name: "existing tag keeps its parent",
			check: func(t *testing.T, s *Store) {
				// "Italian" first becomes a child of "Dinner".
				_, err := s.ResolveTag(types.Tag{Name: "Dinner", Child: &types.Tag{Name: "Italian"}})
				require.NoError(t, err)

				// A later chain naming "Italian" under "Lunch" must not
				// rewrite the recorded parent.
				lunchID, err := s.ResolveTag(types.Tag{Name: "Lunch", Child: &types.Tag{Name: "Italian"}})
				require.NoError(t, err)

				_, _, ok, err := s.childOf(lunchID)
				require.NoError(t, err)
				assert.False(t, ok, "Lunch should have no recorded child")
			},
		},
		{
			name: "chain members resolve individually to the same rows",
			check: func(t *testing.T, s *Store) {
				_, err := s.ResolveTag(types.Tag{Name: "Dinner", Child: &types.Tag{Name: "Italian"}})
				require.NoError(t, err)

				italianID, err := s.ResolveTag(types.Tag{Name: "Italian"})
				require.NoError(t, err)

				var n int
				require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&n))
				assert.Equal(t, 2, n)
				assert.NotEmpty(t, italianID)
			},
		},
		{
			name: "empty name anywhere in the chain is rejected",
			check: func(t *testing.T, s *Store) {
				_, err := s.ResolveTag(types.Tag{Name: "Dinner", Child: &types.Tag{}})
				assert.ErrorIs(t, err, types.ErrInvalidName)

				var n int
				require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&n))
				assert.Equal(t, 0, n, "no partial chain should be written")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, newTestStore(t))
		})
	}
}
