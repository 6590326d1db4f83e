package components

import (
	"fmt"

	"sticky-notes/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const opacityStep = 0.05

type Toolbar struct {
	container     *fyne.Container
	NewButton     *widget.Button
	OpacitySlider *widget.Slider
	countLabel    *widget.Label

	newNoteHandler       func()
	opacityChangeHandler func(float64)
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	t.NewButton = widget.NewButtonWithIcon("New", theme.ContentAddIcon(), t.onNewNote)
	t.NewButton.Importance = widget.HighImportance

	t.OpacitySlider = widget.NewSlider(models.MinAlpha, models.MaxAlpha)
	t.OpacitySlider.Step = opacityStep
	t.OpacitySlider.SetValue(models.DefaultAlpha)
	t.OpacitySlider.OnChanged = t.onOpacityChanged

	opacityLabel := widget.NewLabel("Opacity")
	opacityLabel.Importance = widget.LowImportance
	opacityGroup := container.NewBorder(nil, nil, opacityLabel, nil, t.OpacitySlider)

	t.countLabel = widget.NewLabel(countText(0))
	t.countLabel.Importance = widget.LowImportance

	t.container = container.NewBorder(
		nil, nil,
		t.NewButton,
		t.countLabel,
		opacityGroup,
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetNewNoteHandler(handler func()) {
	t.newNoteHandler = handler
}

func (t *Toolbar) SetOpacityChangeHandler(handler func(float64)) {
	t.opacityChangeHandler = handler
}

func (t *Toolbar) SetCount(count int) {
	t.countLabel.SetText(countText(count))
}

func (t *Toolbar) Count() string {
	return t.countLabel.Text
}

// SetOpacity moves the slider without notifying the change handler
func (t *Toolbar) SetOpacity(alpha float64) {
	handler := t.OpacitySlider.OnChanged
	t.OpacitySlider.OnChanged = nil
	t.OpacitySlider.SetValue(alpha)
	t.OpacitySlider.OnChanged = handler
}

func (t *Toolbar) onNewNote() {
	if t.newNoteHandler != nil {
		t.newNoteHandler()
	}
}

func (t *Toolbar) onOpacityChanged(value float64) {
	if t.opacityChangeHandler != nil {
		t.opacityChangeHandler(value)
	}
}

func countText(count int) string {
	if count == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", count)
}
