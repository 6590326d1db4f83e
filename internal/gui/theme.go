package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// NoteTheme wraps a base theme, scaling text sizes by the font scale and
// fading surface colors by the window opacity.
type NoteTheme struct {
	base  fyne.Theme
	scale float32
	alpha float64
}

func NewNoteTheme(base fyne.Theme, scale float32, alpha float64) *NoteTheme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &NoteTheme{base: base, scale: scale, alpha: alpha}
}

func (t *NoteTheme) Scale() float32 {
	return t.scale
}

func (t *NoteTheme) Alpha() float64 {
	return t.alpha
}

func (t *NoteTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	c := t.base.Color(name, variant)
	switch name {
	case theme.ColorNameBackground, theme.ColorNameInputBackground,
		theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return fade(c, t.alpha)
	default:
		return c
	}
}

func (t *NoteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *NoteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *NoteTheme) Size(name fyne.ThemeSizeName) float32 {
	size := t.base.Size(name)
	switch name {
	case theme.SizeNameText, theme.SizeNameCaptionText,
		theme.SizeNameHeadingText, theme.SizeNameSubHeadingText,
		theme.SizeNameInlineIcon:
		return size * t.scale
	default:
		return size
	}
}

func fade(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * alpha)
	return n
}
