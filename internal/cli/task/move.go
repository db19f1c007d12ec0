package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another column",
		Long: `Change the status of a task, the same way moving its card on the board does.
The change is recorded in the journal whether it commits or rolls back.

Examples:
  tablero task move 7 in_progress
  tablero task move 7 "In Progress"
  tablero task move 7 done --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	taskID, err := cli.TaskID(cmd, args[:1])
	if err != nil {
		return formatter.FailWith("INVALID_TASK_ID", cli.ExitUsage, err, "Usage: tablero task move <id> <status>")
	}
	status, err := cli.ParseStatus(args[1])
	if err != nil {
		return formatter.FailWith("VALIDATION_ERROR", cli.ExitValidation, err,
			"Valid statuses: not_started, in_progress, blocked, completed")
	}

	cliInstance, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	ctrl := cliInstance.Controller
	if err := ctrl.Load(ctx); err != nil {
		return formatter.Fail(err)
	}

	outcome, err := ctrl.ChangeStatus(ctx, taskID, status)
	if err != nil {
		return formatter.Fail(fmt.Errorf("task %d: %w", taskID, err))
	}
	if outcome.Kind == board.RolledBack {
		return formatter.Fail(outcome.Failure())
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", taskID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":         true,
			"task_id":         taskID,
			"previous_status": outcome.Move.OldStatus,
			"status":          outcome.Status,
		})
	}

	fmt.Printf("✓ Task %d moved from %s to %s\n", taskID, outcome.Move.OldStatus.Label(), outcome.Status.Label())
	return nil
}
