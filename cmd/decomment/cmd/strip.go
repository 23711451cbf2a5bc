package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"decomment/internal/strip"
)

var stripCmd = &cobra.Command{
	Use:   "strip [file ...]",
	Short: "Remove C-family comments from files or stdin",
	Long: `Reads each file, removes // and /* */ comments, and writes the result
to stdout. With no files, filters stdin instead. Comment markers inside
single- or double-quoted string literals are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), strip.RemoveComments(string(data)))
			return nil
		}

		var f strip.Filter
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), f.RemoveComments(string(data)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stripCmd)
}
