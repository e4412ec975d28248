// Delete command for the larder CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <recipe-id>",
	Short: "Delete one recipe revision and its detail rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipeID := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if err := store.DeleteRecipe(recipeID); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "recipe %q not found\n", recipeID)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(map[string]string{"deleted": recipeID})
			return nil
		}
		fmt.Printf("Deleted revision %s\n", recipeID)
		return nil
	},
}
