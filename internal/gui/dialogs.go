package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Dialogs shows the modal prompts the shell needs
type Dialogs interface {
	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))
}

type windowDialogs struct {
	window fyne.Window
}

// NewWindowDialogs shows dialogs over window
func NewWindowDialogs(window fyne.Window) Dialogs {
	return &windowDialogs{window: window}
}

func (d *windowDialogs) ShowError(title string, err error) {
	dialog.ShowError(err, d.window)
}

func (d *windowDialogs) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, d.window)
}
