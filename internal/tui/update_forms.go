package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/tui/huhforms"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

const descriptionLines = 4

// formWidth is the width of the huh forms inside dialogs.
func (m *Model) formWidth() int {
	return min(max(m.uiState.Width()/2, 40), 72)
}

func (m *Model) buildForm(fs *state.TaskFormState, accent string) tea.Cmd {
	fs.Form = huhforms.CreateTaskForm(huhforms.TaskFields{
		Title:       &fs.Title,
		Description: &fs.Description,
		Subject:     &fs.Subject,
		DueDate:     &fs.DueDate,
		Priority:    &fs.Priority,
		Status:      &fs.Status,
	}, descriptionLines).
		WithTheme(huhforms.CreateTableroTheme(m.config.ColorScheme, accent)).
		WithWidth(m.formWidth())
	if !m.timers {
		return nil
	}
	return fs.Form.Init()
}

// forwardToForm hands a message to a huh form and reports whether the
// form was submitted with it.
func (m *Model) forwardToForm(fs *state.TaskFormState, msg tea.Msg) (tea.Cmd, bool) {
	if fs.Form == nil {
		return nil, false
	}
	model, cmd := fs.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		fs.Form = form
	}
	if !m.timers {
		cmd = nil
	}
	return cmd, fs.Form.State == huh.StateCompleted
}

// updateForm routes non-key messages to whichever form is open.
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	switch m.uiState.Mode() {
	case state.CreateFormMode:
		cmd, _ := m.forwardToForm(m.createForm, msg)
		return cmd
	case state.DetailsMode:
		if m.details.Ready() {
			cmd, _ := m.forwardToForm(m.details.Form, msg)
			return cmd
		}
	}
	return nil
}

// ============================================================================
// Create dialog
// ============================================================================

// openCreate shows the create dialog. Values typed before a cancel are kept.
func (m *Model) openCreate() tea.Cmd {
	m.uiState.SetMode(state.CreateFormMode)
	return m.buildForm(m.createForm, m.config.ColorScheme.Create)
}

func (m *Model) updateCreateForm(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.uiState.SetMode(state.NormalMode)
		return nil
	case m.config.KeyMappings.SaveForm:
		return m.submitCreate()
	}
	if m.createForm.Submitting {
		return nil
	}
	cmd, submitted := m.forwardToForm(m.createForm, msg)
	if submitted {
		return m.submitCreate()
	}
	return cmd
}

// submitCreate validates the form and, when it passes, sends it. An
// invalid form stays open with its fields marked.
func (m *Model) submitCreate() tea.Cmd {
	fs := m.createForm
	if fs.Submitting {
		return nil
	}
	payload, err := fs.Payload()
	if err != nil {
		return m.buildForm(fs, m.config.ColorScheme.Create)
	}
	fs.Submitting = true
	return m.createCmd(payload)
}

func (m *Model) handleCreated(msg taskCreatedMsg) tea.Cmd {
	fs := m.createForm
	fs.Submitting = false
	if msg.err != nil {
		return tea.Batch(
			m.notifyError(fmt.Sprintf("Error creating task: %v", msg.err)),
			m.buildForm(fs, m.config.ColorScheme.Create),
		)
	}

	fs.Reset()
	if m.uiState.Mode() == state.CreateFormMode {
		m.uiState.SetMode(state.NormalMode)
	}
	return tea.Batch(
		m.notify(state.LevelSuccess, "Task created successfully.", m.config.Toast.Brief),
		m.schedule(m.config.ReloadDelay, reloadMsg{}),
	)
}

// ============================================================================
// Details dialog
// ============================================================================

// openDetails shows the details dialog disabled and starts loading the task.
func (m *Model) openDetails(id int, deleteOnLoad bool) {
	m.details.Open(id, deleteOnLoad)
	m.uiState.SetMode(state.DetailsMode)
	m.enqueue(m.fetchCmd(id), m.startSpinner())
}

func (m *Model) detailsOpen() bool {
	mode := m.uiState.Mode()
	return mode == state.DetailsMode || mode == state.DeleteConfirmMode
}

func (m *Model) handleFetched(msg taskFetchedMsg) tea.Cmd {
	// the dialog was closed or reopened for another task meanwhile
	if !m.detailsOpen() || msg.id != m.details.TaskID() || m.details.Ready() {
		return nil
	}
	if msg.err != nil {
		m.details.Reset()
		m.uiState.SetMode(state.NormalMode)
		return m.notifyError(fmt.Sprintf("Error loading task #%d: %v", msg.id, msg.err))
	}

	deleteOnLoad := m.details.DeleteOnLoad()
	m.details.Loaded(msg.task)
	cmd := m.buildForm(m.details.Form, m.config.ColorScheme.Edit)
	if deleteOnLoad {
		m.uiState.SetMode(state.DeleteConfirmMode)
	}
	return cmd
}

func (m *Model) closeDetails() {
	m.details.Reset()
	m.uiState.SetMode(state.NormalMode)
}

func (m *Model) updateDetails(msg tea.KeyPressMsg) tea.Cmd {
	km := m.config.KeyMappings
	switch msg.String() {
	case "esc":
		m.closeDetails()
		return nil
	case km.SaveForm:
		return m.submitUpdate()
	case km.DetailsDelete:
		// delete is only offered once the task has loaded
		if m.details.Ready() {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
		return nil
	}

	if !m.details.Ready() || m.details.Form.Submitting {
		return nil
	}
	cmd, submitted := m.forwardToForm(m.details.Form, msg)
	if submitted {
		return m.submitUpdate()
	}
	return cmd
}

func (m *Model) submitUpdate() tea.Cmd {
	fs := m.details.Form
	if !m.details.Ready() || fs.Submitting {
		return nil
	}
	payload, err := fs.Payload()
	if err != nil {
		return m.buildForm(fs, m.config.ColorScheme.Edit)
	}
	fs.Submitting = true
	return m.saveCmd(payload)
}

func (m *Model) handleSaved(msg taskSavedMsg) tea.Cmd {
	fs := m.details.Form
	fs.Submitting = false
	if msg.err != nil {
		return tea.Batch(
			m.notifyError(fmt.Sprintf("Error updating task: %v", msg.err)),
			m.buildForm(fs, m.config.ColorScheme.Edit),
		)
	}

	id := m.details.TaskID()
	var reload tea.Cmd
	if msg.task != nil {
		id = msg.task.ID
		m.ctrl.ApplySaved(msg.task)
	} else {
		reload = m.loadCmd()
	}
	if m.detailsOpen() && m.details.TaskID() == id {
		m.closeDetails()
	}
	m.clampSelection()
	return tea.Batch(
		m.notify(state.LevelSuccess, "Task updated successfully.", m.config.Toast.Brief),
		reload,
	)
}

// ============================================================================
// Delete confirmation
// ============================================================================

func (m *Model) updateDeleteConfirm(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "enter":
		if m.deleting || !m.details.Ready() {
			return nil
		}
		m.deleting = true
		return m.deleteCmd(m.details.TaskID())
	case "n", "esc":
		if !m.deleting {
			m.uiState.SetMode(state.DetailsMode)
		}
	}
	return nil
}

func (m *Model) handleDeleted(msg taskDeletedMsg) tea.Cmd {
	m.deleting = false
	if msg.err != nil {
		return m.notifyError(fmt.Sprintf("Error deleting task: %v", msg.err))
	}

	m.ctrl.Deleted(msg.id)
	if m.detailsOpen() && m.details.TaskID() == msg.id {
		m.closeDetails()
	}
	m.clampSelection()
	return m.notify(state.LevelSuccess, "Task deleted successfully.", m.config.Toast.Default)
}
