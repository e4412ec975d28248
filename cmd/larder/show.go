// Show command for the larder CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Display one recipe revision with full details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipeID := args[0]

		store, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		stored, err := store.GetRecipe(recipeID)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "recipe %q not found\n", recipeID)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(stored)
			return nil
		}

		r := stored.Recipe
		fmt.Printf("Title:    %s\n", r.Title)
		fmt.Printf("Recipe:   %s\n", stored.RecipeID)
		fmt.Printf("Group:    %s (version %d)\n", stored.GroupID, stored.Version)
		fmt.Printf("Created:  %s\n", stored.CreatedAt.Format("2006-01-02 15:04:05"))
		if r.Description != "" {
			fmt.Printf("About:    %s\n", r.Description)
		}
		if r.Comments != "" {
			fmt.Printf("Comments: %s\n", r.Comments)
		}
		if r.PrepTime > 0 || r.CookTime > 0 {
			fmt.Printf("Time:     prep %d min, cook %d min\n", r.PrepTime, r.CookTime)
		}
		if r.Servings > 0 {
			fmt.Printf("Servings: %d\n", r.Servings)
		}

		if len(r.Ingredients) > 0 {
			fmt.Println("\nIngredients:")
			for _, ri := range r.Ingredients {
				line := fmt.Sprintf("  %g %s %s", ri.Quantity, ri.Unit, ri.Ingredient.Name)
				if ri.Ingredient.Category != "" {
					line += fmt.Sprintf(" (%s)", ri.Ingredient.Category)
				}
				fmt.Println(line)
			}
		}

		if len(r.Instructions) > 0 {
			fmt.Println("\nInstructions:")
			for _, in := range r.Instructions {
				fmt.Printf("  %d. %s\n", in.StepNumber, in.Description)
			}
		}

		if len(r.Tags) > 0 {
			chains := make([]string, 0, len(r.Tags))
			for _, tag := range r.Tags {
				chains = append(chains, strings.Join(tag.Chain(), " > "))
			}
			fmt.Printf("\nTags: %s\n", strings.Join(chains, ", "))
		}

		return nil
	},
}
