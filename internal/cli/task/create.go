package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  tablero task create --title="Fix bug" --due=2026-11-02

  # JSON output for agents
  tablero task create --title="Fix bug" --due=2026-11-02 --json

  # Quiet mode for bash capture
  TASK_ID=$(tablero task create --title="Fix bug" --due=2026-11-02 --quiet)

  # Full example with all options
  tablero task create \
    --title="Add authentication" \
    --description="Implement session auth" \
    --subject=backend \
    --due=2026-11-02 \
    --priority=high \
    --status=in_progress
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("due", "", "Due date YYYY-MM-DD (required)")
	cmd.Flags().String("description", "", "Task description (use - for stdin)")
	cmd.Flags().String("subject", "", "Subject")
	cmd.Flags().String("priority", "low", "Priority: low, medium, high")
	cmd.Flags().String("status", string(models.StatusNotStarted), "Status: not_started, in_progress, blocked, completed")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	rawDue, _ := cmd.Flags().GetString("due")
	rawDescription, _ := cmd.Flags().GetString("description")
	subject, _ := cmd.Flags().GetString("subject")
	rawPriority, _ := cmd.Flags().GetString("priority")
	rawStatus, _ := cmd.Flags().GetString("status")

	description, err := cli.ReadDescription(rawDescription)
	if err != nil {
		return formatter.FailWith("STDIN_READ_ERROR", cli.ExitDataErr, err, "")
	}
	due, err := cli.ParseDueDate(rawDue)
	if err != nil {
		return formatter.Fail(err)
	}
	priority, err := cli.ParsePriority(rawPriority)
	if err != nil {
		return formatter.Fail(err)
	}
	status, err := cli.ParseStatus(rawStatus)
	if err != nil {
		return formatter.Fail(err)
	}

	payload := models.NewCreatePayload(title, description, subject, due, priority, status)
	if err := payload.Validate(); err != nil {
		return formatter.FailWith("VALIDATION_ERROR", cli.ExitValidation, err,
			"--title and --due=YYYY-MM-DD are required")
	}

	cliInstance, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	task, err := cliInstance.Controller.CreateTask(ctx, payload)
	if err != nil {
		return formatter.Fail(err)
	}
	if task == nil {
		// the server accepted the task without echoing it back
		task = &models.Task{Title: payload.Title, Status: payload.Status, Priority: payload.Priority}
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

	fmt.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Title, task.ID)
	fmt.Printf("  Status: %s\n", task.EffectiveStatus().Label())
	fmt.Printf("  Priority: %s\n", task.Priority.Label())
	if task.DueDate != nil {
		fmt.Printf("  Due: %s\n", task.DueDate.Display())
	}
	return nil
}
