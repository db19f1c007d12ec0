package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/models"
)

// DefaultBasePath is the tasks collection path of the API.
const DefaultBasePath = "/api/v1/tasks/"

// Client talks to the tasks collection of the REST API.
// Every request carries the session cookie and expects JSON.
type Client struct {
	base   *url.URL
	client *http.Client
	logger *slog.Logger

	sessionName  string
	sessionValue string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is added
// if the client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithSessionCookie sets the session cookie sent with every request.
func WithSessionCookie(name, value string) Option {
	return func(c *Client) {
		c.sessionName = name
		c.sessionValue = value
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client rooted at baseURL, the tasks collection URL
// (for example http://localhost:8000/api/v1/tasks/).
func New(baseURL string, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		base:   base,
		client: &http.Client{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		c.client.Jar = jar
	}
	if c.sessionName != "" && c.sessionValue != "" {
		c.client.Jar.SetCookies(base, []*http.Cookie{{
			Name:  c.sessionName,
			Value: c.sessionValue,
			Path:  "/",
		}})
	}

	return c, nil
}

// BaseURL returns the tasks collection URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ListTasks fetches every task of the session user.
func (c *Client) ListTasks(ctx context.Context) ([]*models.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}
	if !env.hasData() {
		return []*models.Task{}, nil
	}
	var list taskList
	if err := env.decodeData(&list); err != nil {
		return nil, err
	}
	if list.Tasks == nil {
		list.Tasks = []*models.Task{}
	}
	return list.Tasks, nil
}

// GetTask fetches a single task.
func (c *Client) GetTask(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, models.ErrInvalidTaskID
	}
	env, err := c.do(ctx, http.MethodGet, strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	task, err := decodeTask(env)
	if err == nil && task == nil {
		return nil, ErrNoData
	}
	return task, err
}

// CreateTask submits a new task and returns the created record.
func (c *Client) CreateTask(ctx context.Context, payload models.TaskPayload) (*models.Task, error) {
	payload.ID = 0
	env, err := c.do(ctx, http.MethodPost, "", payload)
	if err != nil {
		return nil, err
	}
	return decodeTask(env)
}

// UpdateTask replaces the editable fields of a task. The API may answer
// without a body, in which case the returned task is nil and callers
// should re-fetch.
func (c *Client) UpdateTask(ctx context.Context, payload models.TaskPayload) (*models.Task, error) {
	if payload.ID <= 0 {
		return nil, models.ErrInvalidTaskID
	}
	env, err := c.do(ctx, http.MethodPost, strconv.Itoa(payload.ID), payload)
	if err != nil {
		return nil, err
	}
	return decodeTask(env)
}

// UpdateStatus changes only the status of a task.
func (c *Client) UpdateStatus(ctx context.Context, id int, status models.Status) (*models.Task, error) {
	if id <= 0 {
		return nil, models.ErrInvalidTaskID
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	env, err := c.do(ctx, http.MethodPatch, strconv.Itoa(id), models.StatusPayload{Status: status})
	if err != nil {
		return nil, err
	}
	return decodeTask(env)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	if id <= 0 {
		return models.ErrInvalidTaskID
	}
	_, err := c.do(ctx, http.MethodDelete, strconv.Itoa(id), nil)
	return err
}

func decodeTask(env *envelope) (*models.Task, error) {
	if !env.hasData() {
		return nil, nil
	}
	var task models.Task
	if err := env.decodeData(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

// do sends one request and decodes the envelope. Non-2xx answers become
// *Error carrying the server message when one was sent.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	target := c.base.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "path", target.Path, "request_id", requestID, "error", err)
		return nil, &Error{Method: method, Path: target.Path, Transport: true, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("error closing response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Method: method, Path: target.Path, StatusCode: resp.StatusCode, Transport: true, Err: err}
	}

	// A missing or non-JSON body is tolerated; only the status decides success.
	env := &envelope{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if jsonErr := json.Unmarshal(raw, env); jsonErr != nil {
			env = &envelope{}
		}
	}

	c.logger.Debug("api request", "method", method, "path", target.Path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Method:     method,
			Path:       target.Path,
			StatusCode: resp.StatusCode,
			Message:    env.errorMessage(),
		}
	}
	return env, nil
}
