package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const emptyHint = "Click \"New\" to get started"

// CardList is the scrollable column of note cards
type CardList struct {
	scroll *container.Scroll
	column *fyne.Container
	empty  fyne.CanvasObject
	cards  []*Card
}

func NewCardList() *CardList {
	hint := widget.NewLabelWithStyle(emptyHint, fyne.TextAlignCenter, fyne.TextStyle{})
	hint.Importance = widget.LowImportance

	column := container.NewVBox()
	list := &CardList{
		column: column,
		scroll: container.NewVScroll(column),
		empty:  container.NewCenter(hint),
	}
	list.SetCards(nil)
	return list
}

func (cl *CardList) GetContainer() fyne.CanvasObject {
	return cl.scroll
}

// SetCards replaces every card, showing the empty hint when there are none
func (cl *CardList) SetCards(cards []*Card) {
	cl.cards = cards
	if len(cards) == 0 {
		cl.column.Objects = []fyne.CanvasObject{cl.empty}
	} else {
		objects := make([]fyne.CanvasObject, len(cards))
		for i, card := range cards {
			objects[i] = card
		}
		cl.column.Objects = objects
	}
	cl.column.Refresh()
}

func (cl *CardList) Cards() []*Card {
	return cl.cards
}

func (cl *CardList) IsEmpty() bool {
	return len(cl.cards) == 0
}

func (cl *CardList) ScrollToTop() {
	cl.scroll.ScrollToTop()
}
