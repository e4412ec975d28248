// Seed command for the larder CLI: write the built-in example recipes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the built-in example recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		refs, err := store.Seed()
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(refs)
			return nil
		}
		for _, ref := range refs {
			fmt.Printf("%s  v%d\n", ref.RecipeID, ref.Version)
		}
		return nil
	},
}
