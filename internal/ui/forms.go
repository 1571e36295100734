package ui

import (
	"strings"

	"github.com/rivo/tview"

	"todoboard/internal/utils"
)

const (
	titleMax = 50
	descMax  = 500
	dateMax  = 20
)

func (a *App) buildCreateForm() *tview.Form {
	form := tview.NewForm().
		AddInputField("Title", "", titleMax, nil, nil).
		AddInputField("Description", "", descMax, nil, nil).
		AddInputField("Start date (YYYY-MM-DD)", "", dateMax, nil, nil).
		AddInputField("Deadline (YYYY-MM-DD)", "", dateMax, nil, nil)

	form.AddButton("Add Todo", func() {
		title := formValue(form, "Title")
		// The form refuses to submit an empty title, an unparseable date,
		// or a double-submit while a call is in flight.
		if strings.TrimSpace(title) == "" || a.ctrl.Loading() {
			return
		}
		if !formDatesValid(form) {
			return
		}
		err := a.ctrl.Create(
			title,
			formValue(form, "Description"),
			formValue(form, "Start date (YYYY-MM-DD)"),
			formValue(form, "Deadline (YYYY-MM-DD)"),
		)
		if err != nil {
			return
		}
		clearForm(form)
		a.app.SetFocus(a.activeTable)
	})

	form.SetBorder(true).SetTitle(" Add New Todo ")

	return form
}

// showEditForm builds the inline edit form from the editing snapshot and
// brings it to the front.
func (a *App) showEditForm() {
	editing := a.ctrl.Editing()
	if editing == nil {
		return
	}
	a.rememberOrigin()

	form := tview.NewForm().
		AddInputField("Title", editing.Title, titleMax, nil, nil).
		AddInputField("Description", editing.Description, descMax, nil, nil).
		AddInputField("Start date (YYYY-MM-DD)", editing.StartDate, dateMax, nil, nil).
		AddInputField("Deadline (YYYY-MM-DD)", editing.Deadline, dateMax, nil, nil)

	form.AddButton("Save", func() {
		title := formValue(form, "Title")
		if strings.TrimSpace(title) == "" || !formDatesValid(form) {
			return
		}
		if err := a.ctrl.SaveEditing(
			title,
			formValue(form, "Description"),
			formValue(form, "Start date (YYYY-MM-DD)"),
			formValue(form, "Deadline (YYYY-MM-DD)"),
		); err != nil {
			return
		}
		a.closeEditForm()
	})
	form.AddButton("Cancel", func() {
		a.ctrl.CancelEditing()
		a.closeEditForm()
	})

	form.SetBorder(true).SetTitle(" Edit Todo ")

	a.pages.AddPage(pageEdit, centered(form, 60, 15), true, true)
	a.app.SetFocus(form)
}

func (a *App) closeEditForm() {
	a.pages.RemovePage(pageEdit)
	a.app.SetFocus(a.originOrDefault())
}

// confirmDelete asks before the delete action fires.
func (a *App) confirmDelete(id int64) {
	a.rememberOrigin()
	modal := tview.NewModal().
		SetText(msgDeleteConfirm).
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(_ int, label string) {
			a.pages.RemovePage(pageConfirm)
			a.app.SetFocus(a.originOrDefault())
			if label == "Delete" {
				_ = a.ctrl.Delete(id)
			}
		})

	a.pages.AddPage(pageConfirm, modal, true, true)
	a.app.SetFocus(modal)
}

func formDatesValid(form *tview.Form) bool {
	return utils.IsValidDate(formValue(form, "Start date (YYYY-MM-DD)")) &&
		utils.IsValidDate(formValue(form, "Deadline (YYYY-MM-DD)"))
}

func formValue(form *tview.Form, label string) string {
	field, _ := form.GetFormItemByLabel(label).(*tview.InputField)
	if field == nil {
		return ""
	}
	return field.GetText()
}

func clearForm(form *tview.Form) {
	for i := 0; i < form.GetFormItemCount(); i++ {
		if field, ok := form.GetFormItem(i).(*tview.InputField); ok {
			field.SetText("")
		}
	}
}

// centered wraps a primitive in a flex so it floats over the board.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
