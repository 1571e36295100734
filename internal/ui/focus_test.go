package ui

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todoboard/internal/apiclient"
	"todoboard/internal/controller"
	"todoboard/internal/testutil"
)

func newApp(t *testing.T) *App {
	t.Helper()

	srv := httptest.NewServer(testutil.NewRouter())
	t.Cleanup(srv.Close)
	ctrl := controller.New(context.Background(), apiclient.New(srv.URL, time.Second))
	return New(ctrl)
}

func TestOriginDefaultsToActiveColumn(t *testing.T) {
	a := newApp(t)
	assert.Same(t, a.activeTable, a.originOrDefault())
}

func TestOriginFollowsFocusedColumn(t *testing.T) {
	a := newApp(t)

	a.app.SetFocus(a.completedTable)
	a.rememberOrigin()
	assert.Same(t, a.completedTable, a.originOrDefault())

	a.app.SetFocus(a.activeTable)
	a.rememberOrigin()
	assert.Same(t, a.activeTable, a.originOrDefault())
}

func TestOriginIgnoresNonColumnFocus(t *testing.T) {
	a := newApp(t)

	a.app.SetFocus(a.completedTable)
	a.rememberOrigin()

	// Focus moving into a form must not clobber the remembered column.
	a.app.SetFocus(a.createForm)
	a.rememberOrigin()
	assert.Same(t, a.completedTable, a.originOrDefault())
}
