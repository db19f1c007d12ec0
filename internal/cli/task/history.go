package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/cli/styles"
	"github.com/thenoetrevino/tablero/internal/journal"
)

// HistoryCmd returns the history command, which reads the status change journal.
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [task-id]",
		Short: "Show recorded status changes",
		Long: `List the status changes made from this machine, newest first, with
whether each one committed or was rolled back.

Examples:
  tablero history
  tablero history 7 --limit 10
  tablero history --prune 720h
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().Int("limit", 50, "Maximum number of entries")
	cmd.Flags().Duration("prune", 0, "Delete entries older than this before listing")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	limit, _ := cmd.Flags().GetInt("limit")
	prune, _ := cmd.Flags().GetDuration("prune")

	taskID := 0
	if len(args) > 0 {
		id, err := cli.TaskID(cmd, args)
		if err != nil {
			return formatter.FailWith("INVALID_TASK_ID", cli.ExitUsage, err, "")
		}
		taskID = id
	}

	cliInstance, err := open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseCLI(cliInstance)

	j := cliInstance.Journal
	if j == nil {
		return formatter.FailWith("JOURNAL_DISABLED", cli.ExitUsage, cli.ErrNoJournal,
			"Remove journal_path: off from the config file")
	}

	var pruned int64
	if prune > 0 {
		pruned, err = j.Prune(ctx, time.Now().Add(-prune))
		if err != nil {
			return formatter.FailWith("JOURNAL_ERROR", cli.ExitGeneral, err, "")
		}
	}

	entries, err := j.List(ctx, taskID, limit)
	if err != nil {
		return formatter.FailWith("JOURNAL_ERROR", cli.ExitGeneral, err, "")
	}

	if formatter.Quiet {
		for _, e := range entries {
			fmt.Println(strconv.FormatInt(e.ID, 10))
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"pruned":  pruned,
			"entries": entries,
		})
	}

	if pruned > 0 {
		fmt.Printf("Pruned %d entries\n", pruned)
	}
	if len(entries) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No status changes recorded"))
		return nil
	}
	for _, e := range entries {
		fmt.Println(historyLine(e))
	}
	return nil
}

func historyLine(e journal.Entry) string {
	outcome := styles.SuccessStyle.Render(e.Outcome)
	if e.Outcome != "committed" {
		outcome = styles.ErrorStyle.Render(e.Outcome)
	}
	line := fmt.Sprintf("%s  #%d  %s → %s  %s",
		styles.SubtitleStyle.Render(e.CreatedAt.Local().Format("2006-01-02 15:04:05")),
		e.TaskID,
		e.OldStatus.Label(),
		e.NewStatus.Label(),
		outcome,
	)
	if e.Error != "" {
		line += "  " + styles.ValueStyle.Render(e.Error)
	}
	return line
}
