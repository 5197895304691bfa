package fyne

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ValueDialog is a helper for sending one value to a chosen indicator.
type ValueDialog struct {
	window   fyne.Window
	names    []string
	callback func(index int, text string)
}

// NewValueDialog creates a new value dialog. callback receives the index into
// names and the raw text typed by the user.
func NewValueDialog(window fyne.Window, names []string, callback func(index int, text string)) *ValueDialog {
	return &ValueDialog{
		window:   window,
		names:    names,
		callback: callback,
	}
}

// Show displays the dialog.
func (d *ValueDialog) Show() {
	if len(d.names) == 0 {
		return
	}

	target := widget.NewSelect(d.names, nil)
	target.SetSelectedIndex(0)
	value := widget.NewEntry()
	value.SetPlaceHolder("e.g. 42.5")

	items := []*widget.FormItem{
		widget.NewFormItem("Indicator", target),
		widget.NewFormItem("Value", value),
	}
	dialog.ShowForm("Set Value", "Indicate", "Cancel", items, func(ok bool) {
		if !ok || d.callback == nil {
			return // User cancelled
		}
		d.callback(target.SelectedIndex(), value.Text)
	}, d.window)
}
