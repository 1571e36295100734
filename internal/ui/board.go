package ui

import (
	"fmt"
	"strings"

	"todoboard/internal/dto"
	"todoboard/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (a *App) buildColumn() *tview.Table {
	table := tview.NewTable().SetBorders(false).SetSelectable(true, false)
	table.SetBorder(true)
	table.SetInputCapture(a.keyboard)
	return table
}

// renderColumn rebuilds one column table from its filtered collection.
// Each selectable row keeps its todo as the cell reference so actions
// can find the record behind the selection.
func (a *App) renderColumn(table *tview.Table, todos []dto.TodoResponse, completed bool) {
	label := labelActiveColumn
	empty := msgNoActive
	if completed {
		label = labelCompletedColumn
		empty = msgNoCompleted
	}
	table.SetTitle(fmt.Sprintf(" %s (%d) ", label, len(todos)))

	table.Clear()

	if len(todos) == 0 {
		table.SetCell(0, 0, tview.NewTableCell(fmt.Sprintf("[gray]%s", empty)).
			SetSelectable(false).SetExpansion(1))
		return
	}

	for row, todo := range todos {
		title := tview.Escape(todo.Title)
		desc := ""
		if todo.Description != nil {
			desc = tview.Escape(*todo.Description)
		}
		if completed {
			// Struck-through title, de-emphasized description.
			title = fmt.Sprintf("[gray::s]%s", title)
			desc = fmt.Sprintf("[gray]%s", desc)
		}

		table.SetCell(row, 0, tview.NewTableCell(title).SetExpansion(2).SetReference(todo))
		table.SetCell(row, 1, tview.NewTableCell(desc).SetExpansion(2))
		table.SetCell(row, 2, tview.NewTableCell(datesSummary(todo)).
			SetTextColor(tcell.ColorGreen).SetExpansion(1))
	}

	if row, _ := table.GetSelection(); row >= len(todos) {
		table.Select(len(todos)-1, 0)
	}
}

// datesSummary formats the start/deadline/created dates for a row.
func datesSummary(todo dto.TodoResponse) string {
	parts := []string{}
	if s := utils.FormatDate(todo.StartDate); s != "" {
		parts = append(parts, "Start: "+s)
	}
	if s := utils.FormatDate(todo.Deadline); s != "" {
		parts = append(parts, "Due: "+s)
	}
	created := todo.CreatedAt
	parts = append(parts, "Created: "+utils.FormatDate(&created))
	return strings.Join(parts, "  ")
}

// selectedTodo returns the todo behind the focused column's selection.
func (a *App) selectedTodo() (dto.TodoResponse, bool) {
	table, ok := a.app.GetFocus().(*tview.Table)
	if !ok {
		return dto.TodoResponse{}, false
	}
	row, _ := table.GetSelection()
	cell := table.GetCell(row, 0)
	if cell == nil {
		return dto.TodoResponse{}, false
	}
	todo, ok := cell.GetReference().(dto.TodoResponse)
	return todo, ok
}
