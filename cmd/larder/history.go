// History command for the larder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <group-id>",
	Short: "List every revision of a recipe group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		infos, err := store.ListRevisions(groupID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(infos)
			return nil
		}

		if len(infos) == 0 {
			fmt.Fprintf(os.Stderr, "group %q has no revisions\n", groupID)
			os.Exit(exitUserError)
		}
		for _, info := range infos {
			fmt.Printf("v%-3d %s  %s  %s\n",
				info.Version, info.RecipeID,
				info.CreatedAt.Format("2006-01-02 15:04:05"), info.Title)
		}
		return nil
	},
}
