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
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List every task grouped by board column.

Examples:
  tablero task list
  tablero task list --status in_progress
  tablero task list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("status", "", "Only list tasks with this status")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	var only models.Status
	if raw, _ := cmd.Flags().GetString("status"); raw != "" {
		s, err := cli.ParseStatus(raw)
		if err != nil {
			return formatter.Fail(err)
		}
		only = s
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

	b := ctrl.Board()
	var tasks []*models.Task
	for i, col := range b.Layout().Columns() {
		if only != "" && col.Status != only {
			continue
		}
		for _, card := range b.CardsAt(i) {
			tasks = append(tasks, card.Task)
		}
	}

	if formatter.Quiet {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"tasks":   tasks,
		})
	}

	var out strings.Builder
	for i, col := range b.Layout().Columns() {
		if only != "" && col.Status != only {
			continue
		}
		cards := b.CardsAt(i)
		out.WriteString(styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(cards))))
		out.WriteString("\n")
		if len(cards) == 0 {
			out.WriteString("  " + styles.SubtitleStyle.Render("No tasks") + "\n")
		}
		for _, card := range cards {
			out.WriteString("  " + taskLine(card.Task) + "\n")
		}
	}
	fmt.Print(out.String())
	return nil
}

// taskLine renders "#id title  priority  due dd/mm/yyyy".
func taskLine(t *models.Task) string {
	line := fmt.Sprintf("%s %s  %s",
		styles.SubtitleStyle.Render(fmt.Sprintf("#%d", t.ID)),
		styles.ValueStyle.Render(t.DisplayTitle()),
		styles.PriorityBadge(t.Priority),
	)
	if t.DueDate != nil {
		line += "  " + styles.SubtitleStyle.Render("due "+t.DueDate.Display())
	}
	return line
}
