package components

import "sticky-notes/internal/models"

// CardState is the display mode of a Card
type CardState int

const (
	CardPreview CardState = iota
	CardExpanded
)

func (s CardState) String() string {
	switch s {
	case CardPreview:
		return "preview"
	case CardExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// CardHost is everything a Card may ask of the shell that owns it
type CardHost interface {
	ExpandRequested(index int)
	DeleteRequested(index int)
	SaveRequested(index int, note models.Note, showMessage bool)
	Copy(text string)
	Confirm(title, message string, callback func(bool))
}
