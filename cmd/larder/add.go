// Add command for the larder CLI: write a recipe revision from a JSON file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var flagGroup string

var addCmd = &cobra.Command{
	Use:   "add <recipe.json>",
	Short: "Write a recipe revision from a JSON file",
	Long: `Add reads a recipe graph from a JSON file and writes it as a new
revision. Without --group the recipe starts a new revision group; with
--group it becomes the next version of the given group.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitUserError)
		}

		var recipe types.Recipe
		if err := json.Unmarshal(data, &recipe); err != nil {
			fmt.Fprintf(os.Stderr, "add: parsing %s: %v\n", args[0], err)
			os.Exit(exitUserError)
		}

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		ref, err := store.WriteRevision(&recipe, flagGroup)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			if isUserError(err) {
				os.Exit(exitUserError)
			}
			os.Exit(exitSysError)
		}

		printRef(ref)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&flagGroup, "group", "", "revision group to append to (default: start a new group)")
}
