package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/task"
	"github.com/thenoetrevino/tablero/internal/launcher"
)

var rootCmd = NewRootCmd()

// NewRootCmd builds the command tree. Without a subcommand it opens the board.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a terminal kanban board for the tasks API",
		Long: `Tablero shows the tasks of the tasks API as a kanban board with one column
per status. Cards can be moved with the keyboard or dragged with the mouse.

Run without arguments to open the board, or use the task subcommands
for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	root.AddCommand(task.TaskCmd())
	root.AddCommand(task.HistoryCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		// formatter errors are already printed
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
