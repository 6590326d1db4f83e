package components

import (
	"fmt"
	"image/color"
	"strings"

	"sticky-notes/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	contentPlaceholder = "Click to edit..."
	editHint           = "Ctrl+C copies selection | Ctrl+A selects all | edits save when the card closes"
	contentRows        = 8
)

var (
	cardBorder         = color.NRGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
	cardExpandedBorder = color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}
	badgeText          = color.White
)

// Card renders one note either as a compact preview or as an editor
type Card struct {
	widget.BaseWidget

	index int
	note  models.Note
	host  CardHost
	state CardState

	background *canvas.Rectangle
	body       *fyne.Container

	deleteButton   *widget.Button
	categorySelect *widget.Select
	titleEntry     *widget.Entry
	contentEntry   *widget.Entry
}

func NewCard(index int, note models.Note, host CardHost) *Card {
	card := &Card{
		index: index,
		note:  note,
		host:  host,
		state: CardPreview,
	}
	card.background = canvas.NewRectangle(theme.InputBackgroundColor())
	card.background.StrokeWidth = 1
	card.background.CornerRadius = theme.InputRadiusSize()
	card.body = container.NewStack()
	card.ExtendBaseWidget(card)
	card.render()
	return card
}

func (c *Card) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.background, container.NewPadded(c.body)))
}

func (c *Card) Index() int {
	return c.index
}

func (c *Card) Note() models.Note {
	return c.note
}

func (c *Card) State() CardState {
	return c.state
}

func (c *Card) IsExpanded() bool {
	return c.state == CardExpanded
}

// Tapped expands a previewed card. Taps on the delete button never reach here.
func (c *Card) Tapped(*fyne.PointEvent) {
	if c.state == CardPreview {
		c.Expand()
	}
}

func (c *Card) Cursor() desktop.Cursor {
	if c.state == CardPreview {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// Expand switches to edit mode and asks the host to collapse any other card.
func (c *Card) Expand() {
	if c.state == CardExpanded {
		return
	}
	c.state = CardExpanded
	c.loadBuffers()
	c.render()
	c.host.ExpandRequested(c.index)
}

// Collapse commits pending edits without a status message and returns to preview.
func (c *Card) Collapse() {
	if c.state != CardExpanded {
		return
	}
	c.Save(false)
	c.state = CardPreview
	c.render()
}

// Save commits the edit buffers into the note and asks the host to persist it.
func (c *Card) Save(showMessage bool) {
	if c.state != CardExpanded {
		return
	}
	c.note = c.note.Edit(c.titleEntry.Text, c.contentEntry.Text, models.Category(c.categorySelect.Selected))
	c.host.SaveRequested(c.index, c.note, showMessage)
}

// Delete asks for confirmation, then asks the host to remove this note.
func (c *Card) Delete() {
	title := c.note.DisplayTitle()
	c.host.Confirm("Confirm delete", fmt.Sprintf("Delete note '%s'?", title), func(confirmed bool) {
		if confirmed {
			c.host.DeleteRequested(c.index)
		}
	})
}

// CopyContent hands the current, uncommitted content buffer to the host.
func (c *Card) CopyContent() {
	if c.contentEntry == nil {
		return
	}
	c.host.Copy(strings.TrimSpace(c.contentEntry.Text))
}

// SetTitleBuffer replaces the uncommitted title of an expanded card
func (c *Card) SetTitleBuffer(title string) {
	if c.titleEntry != nil {
		c.titleEntry.SetText(title)
	}
}

// SetContentBuffer replaces the uncommitted content of an expanded card
func (c *Card) SetContentBuffer(content string) {
	if c.contentEntry != nil {
		c.contentEntry.SetText(content)
	}
}

// SetCategoryBuffer selects a category in an expanded card
func (c *Card) SetCategoryBuffer(category models.Category) {
	if c.categorySelect != nil {
		c.categorySelect.SetSelected(string(category))
	}
}

// Rerender rebuilds the visible state, keeping any uncommitted edits.
func (c *Card) Rerender() {
	c.render()
}

func (c *Card) loadBuffers() {
	c.categorySelect = widget.NewSelect(models.CategoryNames(), nil)
	c.categorySelect.SetSelected(string(c.note.DisplayCategory()))

	c.titleEntry = widget.NewEntry()
	c.titleEntry.SetText(c.note.Title)

	c.contentEntry = widget.NewMultiLineEntry()
	c.contentEntry.Wrapping = fyne.TextWrapWord
	c.contentEntry.SetMinRowsVisible(contentRows)
	c.contentEntry.SetText(c.note.Content)
}

func (c *Card) render() {
	var view fyne.CanvasObject
	switch c.state {
	case CardExpanded:
		view = c.renderExpanded()
		c.background.StrokeColor = cardExpandedBorder
		c.background.StrokeWidth = 2
	default:
		view = c.renderPreview()
		c.background.StrokeColor = cardBorder
		c.background.StrokeWidth = 1
	}

	c.background.FillColor = theme.InputBackgroundColor()
	c.body.Objects = []fyne.CanvasObject{view}
	c.body.Refresh()
	c.background.Refresh()
}

func (c *Card) renderPreview() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(c.note.DisplayTitle(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.Truncation = fyne.TextTruncateEllipsis

	c.deleteButton = widget.NewButtonWithIcon("", theme.CancelIcon(), c.Delete)
	c.deleteButton.Importance = widget.LowImportance

	topRow := container.NewBorder(nil, nil, categoryBadge(c.note.DisplayCategory()), c.deleteButton, title)

	var preview *widget.Label
	if c.note.Content == "" {
		preview = widget.NewLabel(contentPlaceholder)
		preview.Importance = widget.LowImportance
	} else {
		preview = widget.NewLabel(c.note.Preview())
		preview.Wrapping = fyne.TextWrapWord
	}

	return container.NewVBox(topRow, preview)
}

func (c *Card) renderExpanded() fyne.CanvasObject {
	copyButton := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), c.CopyContent)
	copyButton.Importance = widget.SuccessImportance
	closeButton := widget.NewButtonWithIcon("Close", theme.CancelIcon(), c.Collapse)
	closeButton.Importance = widget.LowImportance

	topBar := container.NewBorder(nil, nil,
		container.NewHBox(captionLabel("Category"), c.categorySelect),
		container.NewHBox(copyButton, closeButton),
	)

	hint := widget.NewLabelWithStyle(editHint, fyne.TextAlignTrailing, fyne.TextStyle{Italic: true})
	hint.Importance = widget.LowImportance
	hint.Truncation = fyne.TextTruncateEllipsis

	return container.NewVBox(
		topBar,
		captionLabel("Title"),
		c.titleEntry,
		captionLabel("Content"),
		c.contentEntry,
		hint,
	)
}

func categoryBadge(category models.Category) fyne.CanvasObject {
	background := canvas.NewRectangle(category.Color())
	background.CornerRadius = theme.InputRadiusSize()

	text := canvas.NewText(" "+string(category)+" ", badgeText)
	text.TextSize = theme.CaptionTextSize()
	text.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewCenter(container.NewStack(background, container.NewPadded(text)))
}

func captionLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Importance = widget.LowImportance
	return label
}
