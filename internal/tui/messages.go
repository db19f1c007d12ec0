package tui

import (
	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/models"
)

type tasksLoadedMsg struct {
	tasks []*models.Task
	err   error
}

type moveSentMsg struct {
	move board.Move
	err  error
}

type taskCreatedMsg struct {
	task *models.Task
	err  error
}

type taskFetchedMsg struct {
	id   int
	task *models.Task
	err  error
}

type taskSavedMsg struct {
	task *models.Task
	err  error
}

type taskDeletedMsg struct {
	id  int
	err error
}

type reloadMsg struct{}

type notificationExpiredMsg struct {
	id int
}
