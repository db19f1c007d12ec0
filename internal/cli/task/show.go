package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display every field of a task, with the description rendered as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	taskID, err := cli.TaskID(cmd, args)
	if err != nil {
		return formatter.FailWith("INVALID_TASK_ID", cli.ExitUsage, err,
			"Usage: tablero task show <id> or tablero task show --id=<id>")
	}

	cliInstance, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	task, err := cliInstance.API.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail(fmt.Errorf("task %d: %w", taskID, err))
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

	fmt.Println(styles.RenderCard(renderTask(task)))
	return nil
}

func renderTask(task *models.Task) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.DisplayTitle())))
	content.WriteString("\n\n")

	content.WriteString(styles.Field("Status", task.EffectiveStatus().Label()))
	content.WriteString("  ")
	content.WriteString(styles.LabelStyle.Render("Priority:") + " " + styles.PriorityBadge(task.Priority))
	content.WriteString("\n")
	content.WriteString(styles.Field("Subject", task.DisplaySubject()))
	content.WriteString("\n")
	content.WriteString(styles.Field("Due", models.DisplayDate(task.DueDate)))
	content.WriteString("\n")
	content.WriteString(styles.Field("Created", models.DisplayDate(task.CreatedAt)))
	if task.OwnerID != nil {
		content.WriteString("  ")
		content.WriteString(styles.Field("Owner", fmt.Sprintf("#%d", *task.OwnerID)))
	}
	content.WriteString("\n")

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(components.RenderDescription(task.Description, styles.CardWidth-6))

	return content.String()
}
