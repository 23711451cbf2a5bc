package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"decomment/internal/exercise"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available exercises",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Exercises available:")
		for _, ex := range exercise.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", ex.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
