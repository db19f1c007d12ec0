package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Long:  "Delete a task by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	taskID, err := cli.TaskID(cmd, args)
	if err != nil {
		return formatter.FailWith("INVALID_TASK_ID", cli.ExitUsage, err, "Usage: tablero task delete <id>")
	}

	cliInstance, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	if !force && !formatter.Quiet && !formatter.JSON {
		task, err := cliInstance.API.GetTask(ctx, taskID)
		if err != nil {
			return formatter.Fail(fmt.Errorf("task %d: %w", taskID, err))
		}
		fmt.Printf("Delete task #%d: '%s'? (y/N): ", taskID, task.DisplayTitle())
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			slog.Debug("no confirmation read", "error", err)
		}
		response = strings.ToLower(response)
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.Controller.DeleteTask(ctx, taskID); err != nil {
		return formatter.Fail(fmt.Errorf("task %d: %w", taskID, err))
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task_id": taskID,
		})
	}

	fmt.Printf("✓ Task %d deleted successfully\n", taskID)
	return nil
}
