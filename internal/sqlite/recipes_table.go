// This file implements the recipes table accessor: the versioned revision
// writer, the graph reconstruction read path, deletion, and listings.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// RevisionRef identifies a written revision: the recipe row's ID, the
// group it belongs to, and its version within the group.
type RevisionRef struct {
	RecipeID string `json:"recipe_id"`
	GroupID  string `json:"group_id"`
	Version  int    `json:"version"`
}

// StoredRecipe is a reconstructed recipe graph together with the storage
// metadata the store assigned on write.
type StoredRecipe struct {
	RevisionRef
	CreatedAt time.Time    `json:"created_at"`
	Recipe    types.Recipe `json:"recipe"`
}

// RevisionInfo is one row of a revision or catalog listing.
type RevisionInfo struct {
	RecipeID  string    `json:"recipe_id"`
	GroupID   string    `json:"group_id"`
	Version   int       `json:"version"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// WriteRevision persists one recipe revision: the scalar row, then its
// instructions, ingredient links, and tag links, all inside a single
// transaction. On any failure nothing of the revision remains visible.
//
// An empty groupID starts a new revision group with version 1; the group
// ID equals the first revision's own recipe ID. A non-empty groupID must
// name an existing group (types.ErrGroupNotFound otherwise) and gets
// version max+1. The same ingredient or tag name twice in one revision is
// rejected with types.ErrDuplicateLink.
func (s *Store) WriteRevision(recipe *types.Recipe, groupID string) (RevisionRef, error) {
	var ref RevisionRef

	if recipe == nil {
		return ref, types.ErrInvalidTitle
	}
	if err := recipe.Validate(); err != nil {
		return ref, err
	}
	if err := checkDuplicateLinks(recipe); err != nil {
		return ref, err
	}

	recipeID := generateUUID()
	version := 1
	gid := groupID
	if gid == "" {
		// New group: self-referential group ID, no placeholder needed
		// since the row ID is generated client-side.
		gid = recipeID
	}

	tx, err := s.db.Begin()
	if err != nil {
		return ref, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if groupID != "" {
		var max sql.NullInt64
		err := tx.QueryRow(
			"SELECT MAX(version) FROM recipes WHERE group_id = ?", groupID,
		).Scan(&max)
		if err != nil {
			return ref, fmt.Errorf("computing version for group %s: %w", groupID, err)
		}
		if !max.Valid {
			return ref, fmt.Errorf("%w: %s", types.ErrGroupNotFound, groupID)
		}
		version = int(max.Int64) + 1
	}

	createdAt := time.Now().UTC()
	_, err = tx.Exec(
		`INSERT INTO recipes (recipe_id, group_id, version, title, description, comments, prep_time, cook_time, servings, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipeID, gid, version, recipe.Title,
		nullString(recipe.Description), nullString(recipe.Comments),
		nullInt(recipe.PrepTime), nullInt(recipe.CookTime), nullInt(recipe.Servings),
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return ref, fmt.Errorf("inserting recipe: %w", err)
	}

	// Instructions persist in input order; step numbers are stored as
	// given, not re-sorted.
	for _, in := range recipe.Instructions {
		_, err := tx.Exec(
			"INSERT INTO instructions (instruction_id, recipe_id, step_number, description) VALUES (?, ?, ?, ?)",
			generateUUID(), recipeID, in.StepNumber, in.Description,
		)
		if err != nil {
			return ref, fmt.Errorf("inserting instruction %d: %w", in.StepNumber, err)
		}
	}

	for _, ri := range recipe.Ingredients {
		ingredientID, err := s.resolveIngredient(tx, ri.Ingredient)
		if err != nil {
			return ref, err
		}
		_, err = tx.Exec(
			"INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit) VALUES (?, ?, ?, ?)",
			recipeID, ingredientID, ri.Quantity, ri.Unit,
		)
		if err != nil {
			return ref, fmt.Errorf("linking ingredient %q: %w", ri.Ingredient.Name, err)
		}
	}

	for _, tag := range recipe.Tags {
		tagID, err := s.resolveTag(tx, tag)
		if err != nil {
			return ref, err
		}
		_, err = tx.Exec(
			"INSERT INTO recipe_tags (recipe_id, tag_id) VALUES (?, ?)",
			recipeID, tagID,
		)
		if err != nil {
			return ref, fmt.Errorf("linking tag %q: %w", tag.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return ref, fmt.Errorf("committing revision: %w", err)
	}

	ref = RevisionRef{RecipeID: recipeID, GroupID: gid, Version: version}
	s.log.Info("revision written",
		zap.String("recipe_id", ref.RecipeID),
		zap.String("group_id", ref.GroupID),
		zap.Int("version", ref.Version),
		zap.String("title", recipe.Title))
	return ref, nil
}

// checkDuplicateLinks rejects a revision that names the same ingredient or
// top-level tag twice. The composite primary keys on the link tables are
// the schema-level backstop; checking up front keeps the error
// deterministic and the transaction untouched.
func checkDuplicateLinks(recipe *types.Recipe) error {
	seenIngredients := make(map[string]bool, len(recipe.Ingredients))
	for _, ri := range recipe.Ingredients {
		if seenIngredients[ri.Ingredient.Name] {
			return fmt.Errorf("%w: ingredient %q", types.ErrDuplicateLink, ri.Ingredient.Name)
		}
		seenIngredients[ri.Ingredient.Name] = true
	}
	seenTags := make(map[string]bool, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		if seenTags[tag.Name] {
			return fmt.Errorf("%w: tag %q", types.ErrDuplicateLink, tag.Name)
		}
		seenTags[tag.Name] = true
	}
	return nil
}

// GetRecipe reassembles the full recipe graph for one revision: the
// scalar row, instructions ordered by step number, ingredient links joined
// to their ingredient in insert order, and tag links joined to their tag
// (with the stored child chain) in insert order. Returns types.ErrNotFound
// when no revision has the given ID.
func (s *Store) GetRecipe(id string) (*StoredRecipe, error) {
	row := s.db.QueryRow(
		`SELECT recipe_id, group_id, version, title, description, comments, prep_time, cook_time, servings, created_at
		 FROM recipes WHERE recipe_id = ?`, id,
	)

	var stored StoredRecipe
	var description, comments sql.NullString
	var prepTime, cookTime, servings sql.NullInt64
	var createdAt string
	err := row.Scan(
		&stored.RecipeID, &stored.GroupID, &stored.Version, &stored.Recipe.Title,
		&description, &comments, &prepTime, &cookTime, &servings, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipe %s: %w", id, err)
	}

	stored.Recipe.Description = description.String
	stored.Recipe.Comments = comments.String
	stored.Recipe.PrepTime = int(prepTime.Int64)
	stored.Recipe.CookTime = int(cookTime.Int64)
	stored.Recipe.Servings = int(servings.Int64)
	stored.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	if stored.Recipe.Instructions, err = s.fetchInstructions(id); err != nil {
		return nil, err
	}
	if stored.Recipe.Ingredients, err = s.fetchIngredientLinks(id); err != nil {
		return nil, err
	}
	if stored.Recipe.Tags, err = s.fetchTagLinks(id); err != nil {
		return nil, err
	}

	return &stored, nil
}

// fetchInstructions loads a revision's instructions ordered by step number.
func (s *Store) fetchInstructions(recipeID string) ([]types.Instruction, error) {
	rows, err := s.db.Query(
		"SELECT step_number, description FROM instructions WHERE recipe_id = ? ORDER BY step_number, rowid",
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying instructions: %w", err)
	}
	defer rows.Close()

	var instructions []types.Instruction
	for rows.Next() {
		var in types.Instruction
		if err := rows.Scan(&in.StepNumber, &in.Description); err != nil {
			return nil, fmt.Errorf("scanning instruction: %w", err)
		}
		instructions = append(instructions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating instructions: %w", err)
	}
	return instructions, nil
}

// fetchIngredientLinks loads a revision's ingredient links joined to their
// shared ingredient rows, in insert order.
func (s *Store) fetchIngredientLinks(recipeID string) ([]types.RecipeIngredient, error) {
	rows, err := s.db.Query(
		`SELECT i.name, i.category, ri.quantity, ri.unit
		 FROM recipe_ingredients ri
		 JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
		 WHERE ri.recipe_id = ? ORDER BY ri.rowid`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying ingredient links: %w", err)
	}
	defer rows.Close()

	var links []types.RecipeIngredient
	for rows.Next() {
		var ri types.RecipeIngredient
		var category sql.NullString
		if err := rows.Scan(&ri.Ingredient.Name, &category, &ri.Quantity, &ri.Unit); err != nil {
			return nil, fmt.Errorf("scanning ingredient link: %w", err)
		}
		ri.Ingredient.Category = category.String
		links = append(links, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ingredient links: %w", err)
	}
	return links, nil
}

// fetchTagLinks loads a revision's tags in insert order, each hydrated
// with its stored child chain.
func (s *Store) fetchTagLinks(recipeID string) ([]types.Tag, error) {
	rows, err := s.db.Query(
		`SELECT t.tag_id, t.name
		 FROM recipe_tags rt
		 JOIN tags t ON t.tag_id = rt.tag_id
		 WHERE rt.recipe_id = ? ORDER BY rt.rowid`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying tag links: %w", err)
	}
	defer rows.Close()

	type tagRow struct{ id, name string }
	var tagRows []tagRow
	for rows.Next() {
		var tr tagRow
		if err := rows.Scan(&tr.id, &tr.name); err != nil {
			return nil, fmt.Errorf("scanning tag link: %w", err)
		}
		tagRows = append(tagRows, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tag links: %w", err)
	}

	var tags []types.Tag
	for _, tr := range tagRows {
		tag, err := s.hydrateTag(tr.id, tr.name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// DeleteRecipe removes one revision. The declared foreign-key cascades
// remove its instructions and link rows; shared ingredient and tag rows
// stay. Returns types.ErrNotFound when no revision has the given ID.
func (s *Store) DeleteRecipe(id string) error {
	res, err := s.db.Exec("DELETE FROM recipes WHERE recipe_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting recipe %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting recipe %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	s.log.Info("revision deleted", zap.String("recipe_id", id))
	return nil
}

// ListRevisions returns every revision of a group ascending by version.
// An unknown group returns an empty slice, not an error.
func (s *Store) ListRevisions(groupID string) ([]RevisionInfo, error) {
	rows, err := s.db.Query(
		"SELECT recipe_id, group_id, version, title, created_at FROM recipes WHERE group_id = ? ORDER BY version ASC",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing revisions for group %s: %w", groupID, err)
	}
	defer rows.Close()
	return scanRevisionInfos(rows)
}

// ListRecipes returns the latest revision of every group, newest first.
func (s *Store) ListRecipes() ([]RevisionInfo, error) {
	rows, err := s.db.Query(
		`SELECT r.recipe_id, r.group_id, r.version, r.title, r.created_at
		 FROM recipes r
		 JOIN (SELECT group_id, MAX(version) AS version FROM recipes GROUP BY group_id) latest
		   ON r.group_id = latest.group_id AND r.version = latest.version
		 ORDER BY r.created_at DESC, r.rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()
	return scanRevisionInfos(rows)
}

// scanRevisionInfos hydrates listing rows. Returns an empty slice, not nil.
func scanRevisionInfos(rows *sql.Rows) ([]RevisionInfo, error) {
	infos := []RevisionInfo{}
	for rows.Next() {
		var info RevisionInfo
		var createdAt string
		if err := rows.Scan(&info.RecipeID, &info.GroupID, &info.Version, &info.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning revision row: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		info.CreatedAt = parsed
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revision rows: %w", err)
	}
	return infos, nil
}
