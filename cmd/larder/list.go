// List command for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the latest revision of every recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		infos, err := store.ListRecipes()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(infos)
			return nil
		}

		if len(infos) == 0 {
			fmt.Println("No recipes.")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("%s  v%-3d %s\n", info.RecipeID, info.Version, info.Title)
		}
		return nil
	},
}
