// Package apiclient wraps the Todo Board HTTP API for the terminal
// client. Every failure is logged with its cause and surfaced as one of
// a fixed catalog of operation errors, so callers never see transport
// detail.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"todoboard/internal/dto"

	"github.com/rs/zerolog/log"
)

// Catalog errors, one per operation kind. The text doubles as the
// message shown to the user.
var (
	ErrFetchFailed  = errors.New("Failed to fetch todos")
	ErrCreateFailed = errors.New("Failed to create todo")
	ErrUpdateFailed = errors.New("Failed to update todo")
	ErrDeleteFailed = errors.New("Failed to delete todo")
	ErrNotFound     = errors.New("Todo not found")
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ListTodos fetches the full collection, newest first.
func (c *Client) ListTodos(ctx context.Context) ([]dto.TodoResponse, error) {
	var list []dto.TodoResponse
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &list); err != nil {
		log.Error().Err(err).Msg("api: list todos")
		return nil, ErrFetchFailed
	}
	return list, nil
}

// CreateTodo creates a todo and returns the stored record.
func (c *Client) CreateTodo(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error) {
	var out dto.TodoResponse
	if err := c.do(ctx, http.MethodPost, "/api/todos", req, &out); err != nil {
		log.Error().Err(err).Msg("api: create todo")
		return dto.TodoResponse{}, ErrCreateFailed
	}
	return out, nil
}

// GetTodo fetches a single todo. A missing id is reported as ErrNotFound,
// distinct from transport failures.
func (c *Client) GetTodo(ctx context.Context, id int64) (dto.TodoResponse, error) {
	var out dto.TodoResponse
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/todos/%d", id), nil, &out)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return dto.TodoResponse{}, ErrNotFound
		}
		log.Error().Err(err).Int64("id", id).Msg("api: get todo")
		return dto.TodoResponse{}, ErrFetchFailed
	}
	return out, nil
}

// UpdateTodo applies a partial update and returns the stored record.
func (c *Client) UpdateTodo(ctx context.Context, id int64, req dto.UpdateTodoRequest) (dto.TodoResponse, error) {
	var out dto.TodoResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/todos/%d", id), req, &out); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("api: update todo")
		return dto.TodoResponse{}, ErrUpdateFailed
	}
	return out, nil
}

// DeleteTodo removes a todo permanently.
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/todos/%d", id), nil, nil); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("api: delete todo")
		return ErrDeleteFailed
	}
	return nil
}

// ToggleComplete flips only the completed flag. It is a plain update on
// the server, not a separate operation.
func (c *Client) ToggleComplete(ctx context.Context, id int64, completed bool) (dto.TodoResponse, error) {
	return c.UpdateTodo(ctx, id, dto.UpdateTodoRequest{Completed: &completed})
}

// statusError reports a non-2xx response, keeping the server's message
// for the log line.
type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("status %d: %s", e.code, e.message)
	}
	return fmt.Sprintf("status %d", e.code)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &statusError{code: resp.StatusCode, message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
