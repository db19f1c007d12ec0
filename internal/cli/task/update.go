package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update the fields of an existing task. Only the flags given are changed;
the rest are taken from the task as the server has it.

Examples:
  tablero task update 7 --title="New title"
  tablero task update --id=7 --due=2026-12-01 --priority=high
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().String("subject", "", "New subject")
	cmd.Flags().String("due", "", "New due date YYYY-MM-DD")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("status", "", "New status")
	cli.AddOutputFlags(cmd)

	return cmd
}

var errNothingToUpdate = errors.New("at least one of --title, --description, --subject, --due, --priority, --status is required")

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	flags := cmd.Flags()

	taskID, err := cli.TaskID(cmd, args)
	if err != nil {
		return formatter.FailWith("INVALID_TASK_ID", cli.ExitUsage, err, "Usage: tablero task update <id> --title=...")
	}

	changed := false
	for _, name := range []string{"title", "description", "subject", "due", "priority", "status"} {
		changed = changed || flags.Changed(name)
	}
	if !changed {
		return formatter.FailWith("NO_UPDATES", cli.ExitUsage, errNothingToUpdate, "")
	}

	cliInstance, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	current, err := cliInstance.API.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(fmt.Errorf("task %d: %w", taskID, err))
	}

	payload := models.PayloadFromTask(current)
	if err := applyUpdateFlags(cmd, &payload); err != nil {
		code, exit := cli.Classify(err)
		if errors.Is(err, errReadStdin) {
			code, exit = "STDIN_READ_ERROR", cli.ExitDataErr
		}
		return formatter.FailWith(code, exit, err, "")
	}

	task, err := cliInstance.Controller.SaveTask(ctx, payload)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"task":    task,
		})
	}

	fmt.Printf("✓ Task %d updated successfully\n", task.ID)
	return nil
}

var errReadStdin = errors.New("could not read description from stdin")

// applyUpdateFlags overwrites the payload fields whose flags were set.
func applyUpdateFlags(cmd *cobra.Command, p *models.TaskPayload) error {
	flags := cmd.Flags()
	if flags.Changed("title") {
		p.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		raw, _ := flags.GetString("description")
		description, err := cli.ReadDescription(raw)
		if err != nil {
			return fmt.Errorf("%w: %w", errReadStdin, err)
		}
		p.Description = description
	}
	if flags.Changed("subject") {
		p.Subject, _ = flags.GetString("subject")
	}
	if flags.Changed("due") {
		raw, _ := flags.GetString("due")
		due, err := cli.ParseDueDate(raw)
		if err != nil {
			return err
		}
		p.DueDate = due
	}
	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		priority, err := cli.ParsePriority(raw)
		if err != nil {
			return err
		}
		p.Priority = priority
	}
	if flags.Changed("status") {
		raw, _ := flags.GetString("status")
		status, err := cli.ParseStatus(raw)
		if err != nil {
			return err
		}
		p.Status = status
	}
	p.Normalize()
	return nil
}
