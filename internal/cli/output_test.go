package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		if err := f.Success(map[string]any{"test": "value"}); err != nil {
			t.Fatalf("Success returned error: %v", err)
		}
	})

	result := testutil.ParseJSON(t, output)
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["test"] != "value" {
		t.Errorf("Expected data.test to be 'value', got %v", data["test"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{"value with ID", mockDataWithID{ID: 42, Name: "x"}, "42\n"},
		{"task", &models.Task{ID: 7}, "7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{Quiet: true}
			output := testutil.CaptureOutput(t, func() {
				_ = f.Success(tt.data)
			})
			if output != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, output)
			}
		})
	}
}

func TestOutputFormatter_Success_QuietWithoutID(t *testing.T) {
	f := &OutputFormatter{Quiet: true}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Success(mockDataWithoutID{Name: "n", Value: 3})
	})
	if !strings.Contains(output, "Value:3") {
		t.Errorf("Expected pretty printed fallback, got %q", output)
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = f.ErrorWithSuggestion("TASK_NOT_FOUND", "task 9 not found", "run tablero task list")
	})

	result := testutil.ParseJSON(t, output)
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "TASK_NOT_FOUND" {
		t.Errorf("Expected code TASK_NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] != "run tablero task list" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	var err error
	output := testutil.CaptureOutput(t, func() {
		err = f.Fail(&api.Error{StatusCode: 404, Message: "Task not found"})
	})

	if got := ExitCode(err); got != ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", ExitNotFound, got)
	}
	errData := testutil.ParseJSON(t, output)["error"].(map[string]any)
	if errData["message"] != "Task not found" {
		t.Errorf("Expected server message, got %v", errData["message"])
	}
}

// ============================================================================
// Exit Codes
// ============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		exit int
	}{
		{"invalid id", models.ErrInvalidTaskID, "INVALID_TASK_ID", ExitUsage},
		{"validation", errors.Join(models.FieldError{Field: "title", Err: models.ErrTitleRequired}), "VALIDATION_ERROR", ExitValidation},
		{"bad status", fmt.Errorf("x: %w", models.ErrInvalidStatus), "VALIDATION_ERROR", ExitValidation},
		{"same status", board.ErrSameStatus, "SAME_STATUS", ExitValidation},
		{"card missing", board.ErrCardNotFound, "TASK_NOT_FOUND", ExitNotFound},
		{"api 404", fmt.Errorf("task 3: %w", &api.Error{StatusCode: 404}), "TASK_NOT_FOUND", ExitNotFound},
		{"api 401", &api.Error{StatusCode: 401}, "UNAUTHORIZED", ExitGeneral},
		{"network", &api.Error{Transport: true}, "NETWORK_ERROR", ExitGeneral},
		{"server", &api.Error{StatusCode: 500}, "API_ERROR", ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := Classify(tt.err)
			if code != tt.code || exit != tt.exit {
				t.Errorf("Classify() = %s, %d; want %s, %d", code, exit, tt.code, tt.exit)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != ExitSuccess {
		t.Error("nil error should exit 0")
	}
	if ExitCode(errors.New("boom")) != ExitGeneral {
		t.Error("plain error should exit 1")
	}
	wrapped := fmt.Errorf("run: %w", &ExitError{Code: ExitValidation})
	if ExitCode(wrapped) != ExitValidation {
		t.Error("wrapped ExitError should keep its code")
	}
}
