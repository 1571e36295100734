// Package controller owns the client-side mirror of the todo collection
// and every action the presentation layer can take on it. It knows
// nothing about tview; the UI registers an onChange callback and
// re-renders from the accessors after each action.
package controller

import (
	"context"
	"strings"
	"time"

	"todoboard/internal/apiclient"
	"todoboard/internal/dto"
	"todoboard/internal/utils"
)

// EditingTodo is the transient snapshot of the one todo being edited in
// place. Dates are normalized to YYYY-MM-DD text for form fields; the
// record itself is untouched until the edit is saved.
type EditingTodo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	StartDate   string
	Deadline    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Controller struct {
	ctx context.Context
	api *apiclient.Client

	todos    []dto.TodoResponse
	loading  bool
	errMsg   string
	editing  *EditingTodo
	onChange func()
}

// New builds a controller and runs the single initial refresh; a fetch
// failure lands in the error message, not in the returned value.
func New(ctx context.Context, api *apiclient.Client) *Controller {
	c := &Controller{ctx: ctx, api: api}
	c.Refresh()
	return c
}

// SetOnChange registers the callback invoked after every state change.
func (c *Controller) SetOnChange(fn func()) { c.onChange = fn }

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Todos returns the current collection, newest first.
func (c *Controller) Todos() []dto.TodoResponse { return c.todos }

// Loading reports whether a list-affecting call is in flight.
func (c *Controller) Loading() bool { return c.loading }

// ErrorMessage returns the current error message, or "".
func (c *Controller) ErrorMessage() string { return c.errMsg }

// ClearError dismisses the current error message.
func (c *Controller) ClearError() {
	c.errMsg = ""
	c.notify()
}

// Active returns the todos not yet completed.
func (c *Controller) Active() []dto.TodoResponse {
	return utils.FilterByCompleted(c.todos, false)
}

// Completed returns the completed todos.
func (c *Controller) Completed() []dto.TodoResponse {
	return utils.FilterByCompleted(c.todos, true)
}

// Stats returns the aggregate summary for the current collection.
func (c *Controller) Stats() utils.Stats {
	return utils.ComputeStats(c.todos)
}

// Editing returns a copy of the editing snapshot, or nil when idle.
func (c *Controller) Editing() *EditingTodo {
	if c.editing == nil {
		return nil
	}
	snapshot := *c.editing
	return &snapshot
}

// Refresh replaces the collection with the server's list. On failure the
// previous collection stays in place and the error message is set.
func (c *Controller) Refresh() {
	c.errMsg = ""
	c.loading = true
	c.notify()

	list, err := c.api.ListTodos(c.ctx)
	if err != nil {
		c.errMsg = err.Error()
	} else {
		c.todos = list
	}

	c.loading = false
	c.notify()
}

// Create adds a todo from form values and refreshes. Empty optional
// fields become nulls; date strings must be YYYY-MM-DD or RFC3339.
func (c *Controller) Create(title, description, startDate, deadline string) error {
	c.errMsg = ""
	c.loading = true
	c.notify()
	defer func() {
		c.loading = false
		c.notify()
	}()

	req, err := buildCreateRequest(title, description, startDate, deadline)
	if err != nil {
		c.errMsg = err.Error()
		return err
	}
	if _, err := c.api.CreateTodo(c.ctx, req); err != nil {
		c.errMsg = err.Error()
		return err
	}

	c.Refresh()
	return nil
}

// Update applies a partial update, clears any editing snapshot for the
// record and refreshes.
func (c *Controller) Update(id int64, req dto.UpdateTodoRequest) error {
	c.errMsg = ""
	c.loading = true
	c.notify()
	defer func() {
		c.loading = false
		c.notify()
	}()

	if _, err := c.api.UpdateTodo(c.ctx, id, req); err != nil {
		c.errMsg = err.Error()
		return err
	}

	c.editing = nil
	c.Refresh()
	return nil
}

// SaveEditing persists the current editing snapshot with the given form
// values and leaves editing mode.
func (c *Controller) SaveEditing(title, description, startDate, deadline string) error {
	if c.editing == nil {
		return nil
	}
	req, err := buildUpdateRequest(title, description, startDate, deadline)
	if err != nil {
		c.errMsg = err.Error()
		c.notify()
		return err
	}
	return c.Update(c.editing.ID, req)
}

// Delete removes a todo and refreshes. The loading flag is only managed
// by the refresh, matching the fire-and-refresh shape of the action.
func (c *Controller) Delete(id int64) error {
	c.errMsg = ""
	c.notify()

	if err := c.api.DeleteTodo(c.ctx, id); err != nil {
		c.errMsg = err.Error()
		c.notify()
		return err
	}

	c.Refresh()
	return nil
}

// ToggleComplete flips the completed flag of the given todo and
// refreshes. Toggling twice restores the original value.
func (c *Controller) ToggleComplete(todo dto.TodoResponse) error {
	c.errMsg = ""
	c.notify()

	if _, err := c.api.ToggleComplete(c.ctx, todo.ID, !todo.Completed); err != nil {
		c.errMsg = err.Error()
		c.notify()
		return err
	}

	c.Refresh()
	return nil
}

// StartEditing snapshots the todo for in-place editing. Starting on a
// second todo silently replaces the first snapshot.
func (c *Controller) StartEditing(todo dto.TodoResponse) {
	snapshot := EditingTodo{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
	if todo.Description != nil {
		snapshot.Description = *todo.Description
	}
	if todo.StartDate != nil {
		snapshot.StartDate = utils.ExtractDatePart(todo.StartDate.Format(time.RFC3339))
	}
	if todo.Deadline != nil {
		snapshot.Deadline = utils.ExtractDatePart(todo.Deadline.Format(time.RFC3339))
	}
	c.editing = &snapshot
	c.notify()
}

// CancelEditing drops the editing snapshot without saving.
func (c *Controller) CancelEditing() {
	c.editing = nil
	c.notify()
}

func buildCreateRequest(title, description, startDate, deadline string) (dto.CreateTodoRequest, error) {
	req := dto.CreateTodoRequest{Title: title}
	if desc := strings.TrimSpace(description); desc != "" {
		req.Description = &desc
	}
	start, err := dto.DateFromString(startDate)
	if err != nil {
		return dto.CreateTodoRequest{}, err
	}
	req.StartDate = start
	due, err := dto.DateFromString(deadline)
	if err != nil {
		return dto.CreateTodoRequest{}, err
	}
	req.Deadline = due
	return req, nil
}

func buildUpdateRequest(title, description, startDate, deadline string) (dto.UpdateTodoRequest, error) {
	req := dto.UpdateTodoRequest{Title: &title}
	if desc := strings.TrimSpace(description); desc != "" {
		req.Description = dto.StringOf(desc)
	} else {
		req.Description = dto.NullString()
	}
	start, err := dto.DateFromString(startDate)
	if err != nil {
		return dto.UpdateTodoRequest{}, err
	}
	req.StartDate = dto.OptionalDate{Set: true, Date: start}
	due, err := dto.DateFromString(deadline)
	if err != nil {
		return dto.UpdateTodoRequest{}, err
	}
	req.Deadline = dto.OptionalDate{Set: true, Date: due}
	return req, nil
}

