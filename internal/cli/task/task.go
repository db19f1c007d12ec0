package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// open returns the CLI for cmd, reporting a failure through formatter.
func open(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, formatter.FailWith("INITIALIZATION_ERROR", cli.ExitGeneral, err, "")
	}
	return cliInstance, nil
}
