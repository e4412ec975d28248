// Package types defines the in-memory recipe graph (Recipe, Ingredient,
// Tag, Instruction), the enumerated units and categories, the store
// configuration, and the standard error types for the Larder recipe store.
package types
