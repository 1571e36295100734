// Package ui renders the todo board in the terminal. All state lives in
// the controller; the UI draws from its accessors and calls its actions,
// re-rendering whenever the controller reports a change.
package ui

import (
	"fmt"

	"todoboard/internal/controller"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	pageBoard   = "board"
	pageEdit    = "edit"
	pageConfirm = "confirm"

	labelActiveColumn    = "Active Tasks"
	labelCompletedColumn = "Completed Tasks"
	msgNoActive          = "No active tasks. Add one above!"
	msgNoCompleted       = "No completed tasks yet."
	msgDeleteConfirm     = "Are you sure you want to delete this todo?"
)

// App wires the tview widgets to the controller.
type App struct {
	app   *tview.Application
	ctrl  *controller.Controller
	pages *tview.Pages

	statsView      *tview.TextView
	errorView      *tview.TextView
	helpView       *tview.TextView
	createForm     *tview.Form
	activeTable    *tview.Table
	completedTable *tview.Table

	// originTable is the column an edit or delete was started from, so
	// closing the overlay puts focus back where the user was.
	originTable *tview.Table
}

// New builds the board over the given controller.
func New(ctrl *controller.Controller) *App {
	a := &App{
		app:   tview.NewApplication(),
		ctrl:  ctrl,
		pages: tview.NewPages(),
	}

	a.statsView = tview.NewTextView().SetDynamicColors(true)
	a.errorView = tview.NewTextView().SetDynamicColors(true)
	a.helpView = tview.NewTextView().SetDynamicColors(true).SetText(
		"[orange]<Space>[white] toggle  [orange]<e>[white] edit  [orange]<d>[white] delete  " +
			"[orange]<r>[white] refresh  [orange]<x>[white] dismiss error  [orange]<Tab>[white] switch column  [orange]<q>[white] quit",
	)

	a.createForm = a.buildCreateForm()
	a.activeTable = a.buildColumn()
	a.completedTable = a.buildColumn()

	columns := tview.NewFlex().
		AddItem(a.activeTable, 0, 1, true).
		AddItem(a.completedTable, 0, 1, false)

	board := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.statsView, 1, 0, false).
		AddItem(a.errorView, 1, 0, false).
		AddItem(a.createForm, 9, 0, false).
		AddItem(columns, 0, 1, true).
		AddItem(a.helpView, 1, 0, false)

	a.pages.AddPage(pageBoard, board, true, true)

	ctrl.SetOnChange(a.render)
	a.render()

	return a
}

// Run starts the terminal application and blocks until quit.
func (a *App) Run() error {
	return a.app.SetRoot(a.pages, true).SetFocus(a.activeTable).Run()
}

// render redraws everything from controller state. Cheap enough to run
// after every action on a single-user board.
func (a *App) render() {
	stats := a.ctrl.Stats()
	loading := ""
	if a.ctrl.Loading() {
		loading = "  [yellow]loading..."
	}
	a.statsView.SetText(fmt.Sprintf(
		"[yellow]Todo Board[white]  Total: %d  Active: %d  Completed: %d  Progress: %d%%%s",
		stats.Total, stats.Active, stats.Completed, stats.Progress, loading,
	))

	if msg := a.ctrl.ErrorMessage(); msg != "" {
		a.errorView.SetText(fmt.Sprintf("[red]%s[white]  (press x to dismiss)", msg))
	} else {
		a.errorView.SetText("")
	}

	a.renderColumn(a.activeTable, a.ctrl.Active(), false)
	a.renderColumn(a.completedTable, a.ctrl.Completed(), true)
}

func (a *App) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	// Shortcuts apply only while a column has focus; forms need their keys.
	focus := a.app.GetFocus()
	if focus != a.activeTable && focus != a.completedTable {
		return evt
	}

	switch evt.Rune() {
	case 'q':
		a.app.Stop()
		return nil
	case 'r':
		a.ctrl.Refresh()
		return nil
	case 'x':
		a.ctrl.ClearError()
		return nil
	case ' ':
		if todo, ok := a.selectedTodo(); ok {
			_ = a.ctrl.ToggleComplete(todo)
		}
		return nil
	case 'e':
		if todo, ok := a.selectedTodo(); ok {
			a.ctrl.StartEditing(todo)
			a.showEditForm()
		}
		return nil
	case 'd':
		if todo, ok := a.selectedTodo(); ok {
			a.confirmDelete(todo.ID)
		}
		return nil
	}

	if evt.Key() == tcell.KeyTab {
		if focus == a.activeTable {
			a.app.SetFocus(a.completedTable)
		} else {
			a.app.SetFocus(a.activeTable)
		}
		return nil
	}

	return evt
}

func (a *App) rememberOrigin() {
	if table, ok := a.app.GetFocus().(*tview.Table); ok {
		a.originTable = table
	}
}

func (a *App) originOrDefault() *tview.Table {
	if a.originTable != nil {
		return a.originTable
	}
	return a.activeTable
}
