package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/apiclient"
	"todoboard/internal/controller"
	"todoboard/internal/testutil"
	"todoboard/internal/utils"
)

func newController(t *testing.T) *controller.Controller {
	t.Helper()

	srv := httptest.NewServer(testutil.NewRouter())
	t.Cleanup(srv.Close)
	client := apiclient.New(srv.URL, 5*time.Second)
	return controller.New(context.Background(), client)
}

func TestInitialRefresh(t *testing.T) {
	t.Parallel()

	c := newController(t)
	assert.Empty(t, c.Todos())
	assert.False(t, c.Loading())
	assert.Empty(t, c.ErrorMessage())
	assert.Nil(t, c.Editing())
}

func TestCreateRefreshesCollection(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("Buy milk", "two liters", "", "2026-09-15"))

	todos := c.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy milk", todos[0].Title)
	require.NotNil(t, todos[0].Description)
	assert.Equal(t, "two liters", *todos[0].Description)
	require.NotNil(t, todos[0].Deadline)
	assert.Equal(t, "2026-09-15", todos[0].Deadline.Format("2006-01-02"))
	assert.Empty(t, c.ErrorMessage())
}

func TestCreateInvalidDateSetsError(t *testing.T) {
	t.Parallel()

	c := newController(t)
	err := c.Create("x", "", "15/09/2026", "")
	require.Error(t, err)
	assert.Equal(t, err.Error(), c.ErrorMessage())
	assert.Empty(t, c.Todos())
}

func TestCreateFailureSetsCatalogMessage(t *testing.T) {
	t.Parallel()

	c := newController(t)
	err := c.Create("   ", "", "", "")
	require.Error(t, err)
	assert.Equal(t, "Failed to create todo", c.ErrorMessage())
}

func TestPartitionAndStats(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("one", "", "", ""))
	require.NoError(t, c.Create("two", "", "", ""))
	require.NoError(t, c.Create("three", "", "", ""))
	require.NoError(t, c.ToggleComplete(c.Todos()[0]))

	assert.Len(t, c.Active(), 2)
	assert.Len(t, c.Completed(), 1)
	assert.Equal(t, utils.Stats{Total: 3, Completed: 1, Active: 2, Progress: 33}, c.Stats())
}

func TestToggleTwiceRestores(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("x", "", "", ""))

	require.NoError(t, c.ToggleComplete(c.Todos()[0]))
	assert.True(t, c.Todos()[0].Completed)

	require.NoError(t, c.ToggleComplete(c.Todos()[0]))
	assert.False(t, c.Todos()[0].Completed)
}

func TestStartEditingNormalizesDates(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("x", "notes", "2026-09-01", "2026-09-15"))

	c.StartEditing(c.Todos()[0])
	editing := c.Editing()
	require.NotNil(t, editing)
	assert.Equal(t, "x", editing.Title)
	assert.Equal(t, "notes", editing.Description)
	assert.Equal(t, "2026-09-01", editing.StartDate)
	assert.Equal(t, "2026-09-15", editing.Deadline)
}

func TestSaveEditing(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("old title", "old notes", "", ""))

	c.StartEditing(c.Todos()[0])
	require.NoError(t, c.SaveEditing("new title", "", "2026-10-01", ""))

	assert.Nil(t, c.Editing())
	todos := c.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "new title", todos[0].Title)
	assert.Nil(t, todos[0].Description)
	require.NotNil(t, todos[0].StartDate)
	assert.Equal(t, "2026-10-01", todos[0].StartDate.Format("2006-01-02"))
	assert.Nil(t, todos[0].Deadline)
}

func TestSaveEditingWithoutSnapshotIsNoop(t *testing.T) {
	t.Parallel()

	c := newController(t)
	assert.NoError(t, c.SaveEditing("x", "", "", ""))
	assert.Empty(t, c.Todos())
}

func TestCancelEditing(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("keep", "", "", ""))

	c.StartEditing(c.Todos()[0])
	require.NotNil(t, c.Editing())

	c.CancelEditing()
	assert.Nil(t, c.Editing())
	assert.Equal(t, "keep", c.Todos()[0].Title)
}

func TestEditingReturnsCopy(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("x", "", "", ""))
	c.StartEditing(c.Todos()[0])

	c.Editing().Title = "mutated"
	assert.Equal(t, "x", c.Editing().Title)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	c := newController(t)
	require.NoError(t, c.Create("doomed", "", "", ""))
	require.NoError(t, c.Create("survivor", "", "", ""))

	var doomed int64
	for _, todo := range c.Todos() {
		if todo.Title == "doomed" {
			doomed = todo.ID
		}
	}
	require.NoError(t, c.Delete(doomed))

	todos := c.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "survivor", todos[0].Title)
}

func TestRefreshFailureKeepsCollection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(testutil.NewRouter())
	client := apiclient.New(srv.URL, time.Second)
	c := controller.New(context.Background(), client)
	require.NoError(t, c.Create("kept", "", "", ""))

	srv.Close()
	c.Refresh()

	assert.Equal(t, "Failed to fetch todos", c.ErrorMessage())
	require.Len(t, c.Todos(), 1)
	assert.Equal(t, "kept", c.Todos()[0].Title)
	assert.False(t, c.Loading())

	c.ClearError()
	assert.Empty(t, c.ErrorMessage())
}

func TestOnChangeFiresPerAction(t *testing.T) {
	t.Parallel()

	c := newController(t)
	var calls int
	c.SetOnChange(func() { calls++ })

	require.NoError(t, c.Create("x", "", "", ""))
	assert.Greater(t, calls, 0)
}

func TestDeleteFailureSetsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := controller.New(context.Background(), apiclient.New(srv.URL, time.Second))

	err := c.Delete(1)
	require.Error(t, err)
	assert.Equal(t, "Failed to delete todo", c.ErrorMessage())
}
