package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const IdleStatus = "Ready"

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel(IdleStatus)
	statusLabel.Importance = widget.LowImportance
	statusLabel.Truncation = fyne.TextTruncateEllipsis

	return &StatusBar{
		container:   container.NewStack(statusLabel),
		statusLabel: statusLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetStatus shows a highlighted transient message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.Importance = widget.SuccessImportance
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// Reset returns to the idle message
func (sb *StatusBar) Reset() {
	sb.statusLabel.Importance = widget.LowImportance
	sb.statusLabel.SetText(IdleStatus)
}
