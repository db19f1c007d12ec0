package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// View renders the board with the open dialog and toasts layered on top.
// Required by tea.Model interface
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTitleBar(),
		m.viewBoard(),
		m.viewStatusBar(),
	)

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if modal := m.viewModal(); modal != "" {
		x := max((m.uiState.Width()-lipgloss.Width(modal))/2, 0)
		y := max((m.uiState.Height()-lipgloss.Height(modal))/2, 0)
		layers = append(layers, lipgloss.NewLayer(modal).X(x).Y(y))
	}
	layers = append(layers, m.notificationState.GetLayers(notifications.Toast)...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

func (m *Model) viewTitleBar() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true).
		Render("tablero")
	source := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render("  " + m.config.API.BaseURL)
	if m.loading {
		source += " " + m.spinner.View()
	}
	return title + source
}

func (m *Model) viewBoard() string {
	b := m.Board()
	layout := b.Layout()
	width := m.uiState.ColumnWidth(layout.Len())
	height := m.boardHeight()

	dragging := m.uiState.Mode() == state.DragMode && m.dragState.Active()
	grabbed := 0
	if dragging {
		grabbed = m.dragState.TaskID()
	}

	columns := make([]string, 0, layout.Len())
	for i, col := range layout.Columns() {
		selected := i == m.uiState.SelectedColumn()
		row := -1
		if selected {
			row = m.uiState.SelectedTask()
		}
		columns = append(columns, components.RenderColumn(col, b.CardsAt(i), components.ColumnOptions{
			Width:       width,
			Height:      height,
			Selected:    selected,
			SelectedRow: row,
			DropTarget:  dragging && i == m.dragState.Target(),
			GrabbedID:   grabbed,
			Spinner:     m.spinner.View(),
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m *Model) viewStatusBar() string {
	km := m.config.KeyMappings
	var hints string
	switch m.uiState.Mode() {
	case state.DragMode:
		hints = fmt.Sprintf("%s/%s choose column · %s drop · esc cancel", km.PrevColumn, km.NextColumn, km.GrabTask)
	case state.MoveMenuMode:
		hints = "enter apply · esc close"
	default:
		hints = fmt.Sprintf("%s new · %s details · %s move · %s grab · %s reload · %s help · %s quit",
			km.AddTask, km.ViewTask, km.MoveMenu, km.GrabTask, km.Reload, km.ShowHelp, km.Quit)
	}
	return components.RenderStatusBar(m.uiState.Mode().String(), hints, m.uiState.Width())
}

func (m *Model) viewModal() string {
	switch m.uiState.Mode() {
	case state.HelpMode:
		return components.RenderHelp(m.config.KeyMappings)
	case state.MoveMenuMode:
		return components.RenderMoveMenu(menuTitle(m.menuState.TaskID()), m.menuState.Items(), m.menuState.Cursor())
	case state.CreateFormMode:
		return m.viewCreateForm()
	case state.DetailsMode:
		return m.viewDetails()
	case state.DeleteConfirmMode:
		return m.viewDeleteConfirm()
	}
	return ""
}

// viewFormErrors lists the fields that failed the last submit.
func viewFormErrors(fs *state.TaskFormState) string {
	if !fs.Validated || len(fs.Errors) == 0 {
		return ""
	}
	var lines []string
	for _, field := range []string{"id", "title", "due_date", "priority", "status"} {
		if err := fs.FieldError(field); err != nil {
			lines = append(lines, components.ErrorText("• "+err.Error()))
		}
	}
	return strings.Join(lines, "\n")
}

func formBody(fs *state.TaskFormState) string {
	if fs.Form == nil {
		return ""
	}
	return fs.Form.View()
}

func (m *Model) viewCreateForm() string {
	fs := m.createForm
	parts := []string{components.DialogTitle("New Task", theme.Create), formBody(fs)}
	if errs := viewFormErrors(fs); errs != "" {
		parts = append(parts, errs)
	}
	hint := m.config.KeyMappings.SaveForm + " save · esc close"
	if fs.Submitting {
		hint = "Saving..."
	}
	parts = append(parts, components.Hint(hint))
	return components.DialogStyle(theme.Create).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) viewDetails() string {
	title := components.DialogTitle(menuTitle(m.details.TaskID()), theme.Edit)
	if !m.details.Ready() {
		body := m.spinner.View() + " Loading task..."
		return components.DialogStyle(theme.Edit).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
	}

	fs := m.details.Form
	width := m.formWidth()
	parts := []string{
		title,
		components.RenderMetadata(fs.CreatedAt, fs.OwnerID, fs.Priority),
		formBody(fs),
		components.RenderDescription(fs.Description, width),
	}
	if errs := viewFormErrors(fs); errs != "" {
		parts = append(parts, errs)
	}
	km := m.config.KeyMappings
	hint := fmt.Sprintf("%s save · %s delete · esc close", km.SaveForm, km.DetailsDelete)
	if fs.Submitting {
		hint = "Saving..."
	}
	parts = append(parts, components.Hint(hint))
	return components.DialogStyle(theme.Edit).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) viewDeleteConfirm() string {
	title := "Untitled"
	if task := m.details.Task(); task != nil {
		title = task.DisplayTitle()
	}
	hint := "y delete · n cancel"
	if m.deleting {
		hint = "Deleting..."
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		components.DialogTitle("Delete this task?", theme.Delete),
		"",
		"Task Title: "+title,
		"",
		components.Hint(hint),
	)
	return components.DialogStyle(theme.Delete).Render(body)
}
