package api

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// envelope is the standard response wrapper of the tasks API.
type envelope struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	HTTPStatusCode int             `json:"http_status_code"`
	Data           json.RawMessage `json:"data"`
	// Detail is what the framework emits for raised HTTP errors.
	Detail json.RawMessage `json:"detail"`
}

type taskList struct {
	Tasks      []*models.Task `json:"tasks"`
	TotalTasks int            `json:"total_tasks"`
}

// errorMessage picks the server supplied message, if any.
func (e *envelope) errorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(e.Detail, &detail); err == nil {
		return detail
	}
	// Validation errors come back as a list of objects with a msg field.
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(e.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}

func (e *envelope) hasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}

func (e *envelope) decodeData(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
