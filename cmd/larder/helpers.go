// Shared helpers for larder CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/larder/internal/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

// openStore resolves the data directory and opens the recipe store.
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return sqlite.Open(types.Config{DataDir: dataDir}, newLogger())
}

// newLogger returns a development logger when --verbose is set, a nop
// logger otherwise.
func newLogger() *zap.Logger {
	if !flagVerbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// isUserError reports whether err is a caller-data error (exit code 1)
// rather than a storage fault (exit code 2).
func isUserError(err error) bool {
	for _, sentinel := range []error{
		types.ErrNotFound,
		types.ErrGroupNotFound,
		types.ErrDuplicateLink,
		types.ErrInvalidTitle,
		types.ErrInvalidName,
		types.ErrInvalidUnit,
		types.ErrInvalidCategory,
		types.ErrInvalidQuantity,
		types.ErrInvalidStep,
		types.ErrInvalidServings,
		types.ErrInvalidTime,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// printRef writes a written revision's identifiers.
func printRef(ref sqlite.RevisionRef) {
	if flagJSON {
		printJSON(ref)
		return
	}
	fmt.Printf("Recipe:  %s\n", ref.RecipeID)
	fmt.Printf("Group:   %s\n", ref.GroupID)
	fmt.Printf("Version: %d\n", ref.Version)
}
