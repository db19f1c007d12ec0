package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/thenoetrevino/tablero/internal/models"
)

// SessionCookieName is the cookie the fake API expects when RequireSession is set.
const SessionCookieName = "session"

// RecordedRequest captures one request received by the fake API.
type RecordedRequest struct {
	Method    string
	Path      string
	Body      []byte
	RequestID string
}

type injectedReply struct {
	method  string
	id      int
	status  int
	message string
}

// FakeAPI is an in-memory implementation of the tasks REST API.
type FakeAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	tasks    map[int]*models.Task
	nextID   int
	requests []RecordedRequest
	replies  []injectedReply

	// RequireSession rejects requests without the session cookie with 401.
	RequireSession bool
	SessionValue   string
	// EmptyBody makes successful updates and deletes answer with no data.
	EmptyBody bool
}

// SetupTestAPI starts a fake tasks API seeded with tasks.
// The server is closed automatically via t.Cleanup().
func SetupTestAPI(t *testing.T, seed ...*models.Task) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		tasks:  make(map[int]*models.Task),
		nextID: 1,
	}
	for _, task := range seed {
		f.tasks[task.ID] = task.Clone()
		if task.ID >= f.nextID {
			f.nextID = task.ID + 1
		}
	}

	router := mux.NewRouter()
	tasks := router.PathPrefix("/api/v1/tasks").Subrouter()
	tasks.HandleFunc("/", f.listTasks).Methods(http.MethodGet)
	tasks.HandleFunc("/", f.createTask).Methods(http.MethodPost)
	tasks.HandleFunc("/{id}", f.getTask).Methods(http.MethodGet)
	tasks.HandleFunc("/{id}", f.updateTask).Methods(http.MethodPost)
	tasks.HandleFunc("/{id}", f.updateStatus).Methods(http.MethodPatch)
	tasks.HandleFunc("/{id}", f.deleteTask).Methods(http.MethodDelete)
	router.Use(f.record)

	f.Server = httptest.NewServer(router)
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL returns the tasks collection URL of the fake.
func (f *FakeAPI) BaseURL() string {
	return f.Server.URL + "/api/v1/tasks/"
}

// Fail makes the next request with method (and id, 0 for any) answer status.
func (f *FakeAPI) Fail(method string, id int, status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, injectedReply{method: method, id: id, status: status, message: message})
}

// Empty makes the next request with method (and id, 0 for any) succeed
// with "data": null.
func (f *FakeAPI) Empty(method string, id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, injectedReply{method: method, id: id, status: http.StatusOK})
}

// Task returns a copy of the stored task, or nil.
func (f *FakeAPI) Task(id int) *models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	if task, ok := f.tasks[id]; ok {
		return task.Clone()
	}
	return nil
}

// Requests returns every request received so far.
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// RequestCount returns how many requests used method.
func (f *FakeAPI) RequestCount(method string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Method == method {
			n++
		}
	}
	return n
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			var raw json.RawMessage
			if err := json.NewDecoder(r.Body).Decode(&raw); err == nil {
				body = raw
			}
		}
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      body,
			RequestID: r.Header.Get("X-Request-ID"),
		})
		f.mu.Unlock()

		if f.RequireSession {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value != f.SessionValue {
				writeDetail(w, http.StatusUnauthorized, "User not authenticated")
				return
			}
		}

		id, _ := strconv.Atoi(mux.Vars(r)["id"])
		if status, message, ok := f.takeReply(r.Method, id); ok {
			if status < http.StatusMultipleChoices {
				writeData(w, status, message, nil)
			} else {
				writeDetail(w, status, message)
			}
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) takeReply(method string, id int) (int, string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, reply := range f.replies {
		if reply.method == method && (reply.id == 0 || reply.id == id) {
			f.replies = append(f.replies[:i], f.replies[i+1:]...)
			return reply.status, reply.message, true
		}
	}
	return 0, "", false
}

func (f *FakeAPI) listTasks(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	list := make([]*models.Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		list = append(list, task.Clone())
	}
	f.mu.Unlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	writeData(w, http.StatusOK, "Tasks retrieved successfully", map[string]any{
		"tasks":       list,
		"total_tasks": len(list),
	})
}

func (f *FakeAPI) createTask(w http.ResponseWriter, r *http.Request) {
	var payload models.TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}

	f.mu.Lock()
	owner := 1
	task := &models.Task{
		ID:          f.nextID,
		Title:       payload.Title,
		Description: payload.Description,
		Subject:     payload.Subject,
		DueDate:     payload.DueDate,
		Priority:    payload.Priority,
		Status:      payload.Status,
		Completed:   payload.Completed,
		CreatedAt:   payload.CreatedAt,
		OwnerID:     &owner,
	}
	f.nextID++
	f.tasks[task.ID] = task
	out := task.Clone()
	f.mu.Unlock()

	writeData(w, http.StatusCreated, "Task created successfully", out)
}

func (f *FakeAPI) getTask(w http.ResponseWriter, r *http.Request) {
	task := f.lookup(r)
	if task == nil {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
	}
	writeData(w, http.StatusOK, "Task retrieved successfully", task)
}

func (f *FakeAPI) updateTask(w http.ResponseWriter, r *http.Request) {
	var payload models.TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid body")
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	f.mu.Lock()
	task, ok := f.tasks[id]
	if ok {
		task.Title = payload.Title
		task.Description = payload.Description
		task.Subject = payload.Subject
		task.DueDate = payload.DueDate
		task.Priority = payload.Priority
		task.Status = payload.Status
		task.Completed = payload.Completed
	}
	var out *models.Task
	if ok {
		out = task.Clone()
	}
	f.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
	}
	if f.EmptyBody {
		writeData(w, http.StatusOK, "Task updated successfully", nil)
		return
	}
	writeData(w, http.StatusOK, "Task updated successfully", out)
}

func (f *FakeAPI) updateStatus(w http.ResponseWriter, r *http.Request) {
	var payload models.StatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !payload.Status.Valid() {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid status")
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	f.mu.Lock()
	task, ok := f.tasks[id]
	var out *models.Task
	if ok {
		task.Status = payload.Status
		task.Completed = payload.Status == models.StatusCompleted
		out = task.Clone()
	}
	f.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
	}
	writeData(w, http.StatusOK, "Task updated successfully", out)
}

func (f *FakeAPI) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	f.mu.Lock()
	_, ok := f.tasks[id]
	delete(f.tasks, id)
	f.mu.Unlock()

	if !ok {
		writeDetail(w, http.StatusNotFound, "Task not found")
		return
	}
	writeData(w, http.StatusOK, "Task deleted successfully", nil)
}

func (f *FakeAPI) lookup(r *http.Request) *models.Task {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return nil
	}
	return f.Task(id)
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":          true,
		"message":          message,
		"http_status_code": status,
		"data":             data,
	})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"detail": detail})
}
