package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/models"
)

// AddOutputFlags registers --json and --quiet.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Formatter builds the formatter selected by the output flags.
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// TaskID reads the task id from the first positional argument or --id.
func TaskID(cmd *cobra.Command, args []string) (int, error) {
	if len(args) > 0 {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return 0, fmt.Errorf("%w: %q", models.ErrInvalidTaskID, args[0])
		}
		return id, nil
	}
	id, _ := cmd.Flags().GetInt("id")
	if id <= 0 {
		return 0, models.ErrInvalidTaskID
	}
	return id, nil
}

// ParsePriority accepts a level name (low, medium, high) or its number.
func ParsePriority(raw string) (models.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low", "1":
		return models.PriorityLow, nil
	case "medium", "2":
		return models.PriorityMedium, nil
	case "high", "3":
		return models.PriorityHigh, nil
	}
	return 0, fmt.Errorf("%w: %q (must be: low, medium, high)", models.ErrInvalidPriority, raw)
}

// ParseStatus accepts a status token or its label, case-insensitively.
// "In Progress", "in-progress" and "in_progress" are the same status.
func ParseStatus(raw string) (models.Status, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.NewReplacer(" ", "_", "-", "_").Replace(token)
	switch token {
	case "todo":
		token = string(models.StatusNotStarted)
	case "done":
		token = string(models.StatusCompleted)
	}
	return models.ParseStatus(token)
}

// ParseDueDate parses a YYYY-MM-DD flag value. An empty value is nil.
func ParseDueDate(raw string) (*models.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadDescription returns value, or stdin when value is "-".
func ReadDescription(value string) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}
