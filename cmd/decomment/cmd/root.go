package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"decomment/internal/exercise"
)

var traceTransitions bool

var rootCmd = &cobra.Command{
	Use:   "decomment [exercise ...]",
	Short: "Comment-stripping state machine demonstrations",
	Long: `decomment demonstrates a finite state machine that removes C-family
line (//) and block (/* */) comments from text while leaving string
literals untouched.

With no arguments every registered exercise runs in order; otherwise only
the named exercises run. Use "decomment list" to see what is available,
or "decomment strip" to filter your own files.`,
	Args: cobra.ArbitraryArgs,
	RunE: runExercises,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceTransitions, "trace", true, "print state machine transitions while filtering")
}

func runExercises(cmd *cobra.Command, args []string) error {
	selected := exercise.All()

	if len(args) > 0 {
		selected = selected[:0:0]
		for _, name := range args {
			ex, ok := exercise.ByName(name)
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown exercise: %s\n", name)
				continue
			}
			selected = append(selected, ex)
		}
	}

	for _, ex := range selected {
		if err := ex.Run(cmd.OutOrStdout(), traceTransitions); err != nil {
			// Keep going; one failing exercise should not stop the rest.
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", ex.Name, err)
		}
	}

	return nil
}
