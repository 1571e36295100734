package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/apiclient"
	"todoboard/internal/dto"
	"todoboard/internal/testutil"
)

func newClient(t *testing.T) *apiclient.Client {
	t.Helper()

	srv := httptest.NewServer(testutil.NewRouter())
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, 5*time.Second)
}

func TestListTodosEmpty(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	list, err := c.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateAndListTodos(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	ctx := context.Background()

	desc := "two liters"
	created, err := c.CreateTodo(ctx, dto.CreateTodoRequest{Title: "Buy milk", Description: &desc})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.Completed)

	_, err = c.CreateTodo(ctx, dto.CreateTodoRequest{Title: "Walk dog"})
	require.NoError(t, err)

	list, err := c.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Walk dog", list[0].Title)
	assert.Equal(t, "Buy milk", list[1].Title)
}

func TestCreateTodoEmptyTitle(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	_, err := c.CreateTodo(context.Background(), dto.CreateTodoRequest{Title: "  "})
	assert.ErrorIs(t, err, apiclient.ErrCreateFailed)
}

func TestGetTodo(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	ctx := context.Background()

	created, err := c.CreateTodo(ctx, dto.CreateTodoRequest{Title: "x"})
	require.NoError(t, err)

	got, err := c.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "x", got.Title)
}

func TestGetTodoNotFound(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	_, err := c.GetTodo(context.Background(), 9999)
	assert.ErrorIs(t, err, apiclient.ErrNotFound)
}

func TestUpdateTodo(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	ctx := context.Background()

	created, err := c.CreateTodo(ctx, dto.CreateTodoRequest{Title: "old"})
	require.NoError(t, err)

	title := "new"
	updated, err := c.UpdateTodo(ctx, created.ID, dto.UpdateTodoRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateTodoNotFound(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	completed := true
	_, err := c.UpdateTodo(context.Background(), 9999, dto.UpdateTodoRequest{Completed: &completed})
	assert.ErrorIs(t, err, apiclient.ErrUpdateFailed)
}

func TestToggleComplete(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	ctx := context.Background()

	created, err := c.CreateTodo(ctx, dto.CreateTodoRequest{Title: "x"})
	require.NoError(t, err)

	toggled, err := c.ToggleComplete(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Equal(t, "x", toggled.Title)

	back, err := c.ToggleComplete(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, back.Completed)
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	c := newClient(t)
	ctx := context.Background()

	created, err := c.CreateTodo(ctx, dto.CreateTodoRequest{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, c.DeleteTodo(ctx, created.ID))

	_, err = c.GetTodo(ctx, created.ID)
	assert.ErrorIs(t, err, apiclient.ErrNotFound)

	assert.ErrorIs(t, c.DeleteTodo(ctx, created.ID), apiclient.ErrDeleteFailed)
}

func TestServerDownCollapsesToCatalogErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := apiclient.New(srv.URL, time.Second)
	ctx := context.Background()

	_, err := c.ListTodos(ctx)
	assert.ErrorIs(t, err, apiclient.ErrFetchFailed)

	_, err = c.CreateTodo(ctx, dto.CreateTodoRequest{Title: "x"})
	assert.ErrorIs(t, err, apiclient.ErrCreateFailed)

	_, err = c.UpdateTodo(ctx, 1, dto.UpdateTodoRequest{})
	assert.ErrorIs(t, err, apiclient.ErrUpdateFailed)

	assert.ErrorIs(t, c.DeleteTodo(ctx, 1), apiclient.ErrDeleteFailed)
}
