// Version command for the larder CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/larder"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the larder version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("larder", larder.Version)
	},
}
