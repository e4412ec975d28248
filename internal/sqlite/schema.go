// Package sqlite implements the SQLite storage backend for the Larder
// recipe store: the relational schema, the ingredient/tag deduplicators,
// and the versioned recipe writer and reader.
package sqlite

import (
	"database/sql"
	"fmt"
)

// Schema DDL. Every statement is idempotent so the schema can be ensured
// on every startup. Deleting a recipe revision cascades to its detail rows
// (instructions, ingredient links, tag links); the shared ingredients and
// tags rows are never touched by a recipe delete.
const (
	createRecipes = `CREATE TABLE IF NOT EXISTS recipes (
    recipe_id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    version INTEGER NOT NULL CHECK (version >= 1),
    title TEXT NOT NULL,
    description TEXT,
    comments TEXT,
    prep_time INTEGER,
    cook_time INTEGER,
    servings INTEGER,
    created_at TEXT NOT NULL
);`

	createIngredients = `CREATE TABLE IF NOT EXISTS ingredients (
    ingredient_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    category TEXT
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    tag_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    parent_id TEXT,
    FOREIGN KEY (parent_id) REFERENCES tags(tag_id)
);`

	createInstructions = `CREATE TABLE IF NOT EXISTS instructions (
    instruction_id TEXT PRIMARY KEY,
    recipe_id TEXT NOT NULL,
    step_number INTEGER NOT NULL,
    description TEXT NOT NULL,
    FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id) ON DELETE CASCADE
);`

	createRecipeIngredients = `CREATE TABLE IF NOT EXISTS recipe_ingredients (
    recipe_id TEXT NOT NULL,
    ingredient_id TEXT NOT NULL,
    quantity REAL NOT NULL,
    unit TEXT NOT NULL,
    PRIMARY KEY (recipe_id, ingredient_id),
    FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id) ON DELETE CASCADE,
    FOREIGN KEY (ingredient_id) REFERENCES ingredients(ingredient_id) ON DELETE CASCADE
);`

	createRecipeTags = `CREATE TABLE IF NOT EXISTS recipe_tags (
    recipe_id TEXT NOT NULL,
    tag_id TEXT NOT NULL,
    PRIMARY KEY (recipe_id, tag_id),
    FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tags(tag_id) ON DELETE CASCADE
);`
)

// Index DDL. The unique (group_id, version) index backs the one-version-
// per-slot invariant of revision groups.
const (
	idxRecipesGroupVersion = `CREATE UNIQUE INDEX IF NOT EXISTS idx_recipes_group_version ON recipes(group_id, version);`
	idxInstructionsRecipe  = `CREATE INDEX IF NOT EXISTS idx_instructions_recipe ON instructions(recipe_id);`
	idxTagsParent          = `CREATE INDEX IF NOT EXISTS idx_tags_parent ON tags(parent_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createRecipes,
	createIngredients,
	createTags,
	createInstructions,
	createRecipeIngredients,
	createRecipeTags,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRecipesGroupVersion,
	idxInstructionsRecipe,
	idxTagsParent,
}

// ensureSchema creates all tables and indexes if they do not exist.
// Safe to call on every startup; any failure is fatal to Open.
func ensureSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}
