// This file implements the ingredients table accessor: the lookup-or-create
// deduplicator that guarantees one row per distinct ingredient name.
package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// ResolveIngredient returns the ID of the ingredient with the given name,
// inserting a new row if no ingredient with that name exists. The category
// on the input is only persisted on first creation; an existing row is
// never updated (first-write-wins for auxiliary attributes).
func (s *Store) ResolveIngredient(ing types.Ingredient) (string, error) {
	if err := ing.Validate(); err != nil {
		return "", err
	}
	return s.resolveIngredient(s.db, ing)
}

// resolveIngredient is the transaction-aware form of ResolveIngredient.
// The lookup-then-insert is not atomic against concurrent writers; the
// single-writer model makes that acceptable, and the UNIQUE(name)
// constraint is the backstop.
func (s *Store) resolveIngredient(q execQuerier, ing types.Ingredient) (string, error) {
	var id string
	err := q.QueryRow(
		"SELECT ingredient_id FROM ingredients WHERE name = ?", ing.Name,
	).Scan(&id)
	if err == nil {
		s.log.Debug("ingredient reused",
			zap.String("name", ing.Name), zap.String("ingredient_id", id))
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("looking up ingredient %q: %w", ing.Name, err)
	}

	id = generateUUID()
	_, err = q.Exec(
		"INSERT INTO ingredients (ingredient_id, name, category) VALUES (?, ?, ?)",
		id, ing.Name, nullString(ing.Category),
	)
	if err != nil {
		return "", fmt.Errorf("inserting ingredient %q: %w", ing.Name, err)
	}
	s.log.Info("ingredient created",
		zap.String("name", ing.Name),
		zap.String("ingredient_id", id),
		zap.String("category", ing.Category))
	return id, nil
}

// countIngredients returns the number of ingredient rows. Used by tests
// and the seed summary.
func (s *Store) countIngredients() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM ingredients").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting ingredients: %w", err)
	}
	return n, nil
}
