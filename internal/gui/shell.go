package gui

import (
	"time"

	"sticky-notes/internal/gui/components"
	"sticky-notes/internal/gui/layout"
	"sticky-notes/internal/logger"
	"sticky-notes/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const (
	StatusResetDelay = 3000 * time.Millisecond
	component        = "Shell"
)

// Shell owns the note sequence, the live cards and the surrounding window chrome.
type Shell struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	notes      *models.NoteRepository
	windowConf *models.WindowConfigStore
	dialogs    Dialogs
	isShutdown bool

	scaler *FontScaler
	alpha  float64

	toolbar   *components.Toolbar
	cardList  *components.CardList
	statusBar *components.StatusBar
	cards     []*components.Card
	content   *fyne.Container

	now              func() time.Time
	afterFunc        func(time.Duration, func())
	statusGeneration int

	quitHandler func()
}

func NewShell(fyneApp fyne.App, window fyne.Window, notes *models.NoteRepository, windowConf *models.WindowConfigStore, log logger.Logger) *Shell {
	s := &Shell{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		notes:      notes,
		windowConf: windowConf,
		dialogs:    NewWindowDialogs(window),
		scaler:     NewFontScaler(),
		alpha:      models.DefaultAlpha,
		toolbar:    components.NewToolbar(),
		cardList:   components.NewCardList(),
		statusBar:  components.NewStatusBar(),
		now:        time.Now,
		afterFunc:  afterOnMainThread,
	}

	s.toolbar.SetNewNoteHandler(s.NewNote)
	s.toolbar.SetOpacityChangeHandler(s.SetOpacity)

	body := container.NewBorder(
		container.NewPadded(s.toolbar.GetContainer()),
		container.NewPadded(s.statusBar.GetContainer()),
		nil, nil,
		s.cardList.GetContainer(),
	)
	s.content = container.New(layout.NewResizeLayout(s.handleResize), container.NewPadded(body))

	return s
}

func afterOnMainThread(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		fyne.Do(f)
	})
}

func (s *Shell) SetDialogs(dialogs Dialogs) {
	s.dialogs = dialogs
}

func (s *Shell) SetClock(now func() time.Time) {
	s.now = now
}

// SetTimerFunc replaces the scheduler used for the status reset
func (s *Shell) SetTimerFunc(afterFunc func(time.Duration, func())) {
	s.afterFunc = afterFunc
}

func (s *Shell) SetQuitHandler(handler func()) {
	s.quitHandler = handler
}

// Start restores the window config, loads notes and installs the content
// and shortcuts on the window.
func (s *Shell) Start() {
	cfg, err := s.windowConf.Load()
	if err != nil {
		s.logger.Debug(component, "window config unavailable, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if width, height, err := models.ParseGeometry(cfg.Geometry); err == nil {
		s.window.Resize(fyne.NewSize(float32(width), float32(height)))
	}
	s.alpha = cfg.Alpha
	s.toolbar.SetOpacity(s.alpha)
	s.applyTheme()

	s.LoadNotes()
	s.window.SetContent(s.content)
	s.bindShortcuts()

	s.logger.Info(component, "started", map[string]interface{}{
		"notes":    s.notes.Len(),
		"geometry": cfg.Geometry,
		"alpha":    s.alpha,
	})
}

func (s *Shell) bindShortcuts() {
	canvas := s.window.Canvas()
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		s.NewNote()
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		s.SaveExpanded()
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		s.Quit()
	})
}

func (s *Shell) Content() fyne.CanvasObject {
	return s.content
}

// LoadNotes reads the notes file. A failure is shown and leaves an empty sequence.
func (s *Shell) LoadNotes() {
	if err := s.notes.Load(); err != nil {
		s.showError("Load error", err)
	}
	s.refreshCards()
}

// SaveNotes persists the whole sequence. A failure is shown; memory is untouched.
func (s *Shell) SaveNotes() bool {
	if err := s.notes.Save(); err != nil {
		s.showError("Save error", err)
		return false
	}
	s.logger.Debug(component, "notes saved", map[string]interface{}{
		"count": s.notes.Len(),
	})
	return true
}

// NewNote prepends a default note, persists, and opens it for editing.
func (s *Shell) NewNote() {
	s.commitExpanded()

	note := models.NewNote(models.NewNoteTitle(s.notes.Len()), s.now())
	s.notes.Prepend(note)
	s.SaveNotes()
	s.refreshCards()
	s.cardList.ScrollToTop()

	if len(s.cards) > 0 {
		s.cards[0].Expand()
	}

	s.logger.Info(component, "note created", map[string]interface{}{
		"title": note.Title,
		"count": s.notes.Len(),
	})
	s.ShowStatus("New note created")
}

// DeleteNote removes the note at index, persists and rebuilds the cards.
func (s *Shell) DeleteNote(index int) {
	s.commitExpanded()

	removed, err := s.notes.Remove(index)
	if err != nil {
		s.logger.Warning(component, "delete ignored", map[string]interface{}{
			"index": index,
			"error": err.Error(),
		})
		return
	}
	s.SaveNotes()
	s.refreshCards()

	s.logger.Info(component, "note deleted", map[string]interface{}{
		"title": removed.Title,
		"count": s.notes.Len(),
	})
	s.ShowStatus("Deleted: " + removed.DisplayTitle())
}

// SaveExpanded commits the open card, if any, and reports it in the status bar.
func (s *Shell) SaveExpanded() {
	if index := s.ExpandedIndex(); index >= 0 {
		s.cards[index].Save(true)
	}
}

// CollapseOtherCards commits and collapses every expanded card but activeIndex.
func (s *Shell) CollapseOtherCards(activeIndex int) {
	for i, card := range s.cards {
		if i != activeIndex && card.IsExpanded() {
			card.Collapse()
		}
	}
}

// ExpandedIndex returns the index of the expanded card, or -1.
func (s *Shell) ExpandedIndex() int {
	for i, card := range s.cards {
		if card.IsExpanded() {
			return i
		}
	}
	return -1
}

func (s *Shell) Cards() []*components.Card {
	return s.cards
}

func (s *Shell) Notes() *models.NoteRepository {
	return s.notes
}

func (s *Shell) FontScale() float32 {
	return s.scaler.Scale()
}

func (s *Shell) Opacity() float64 {
	return s.alpha
}

func (s *Shell) Status() string {
	return s.statusBar.GetStatus()
}

func (s *Shell) Toolbar() *components.Toolbar {
	return s.toolbar
}

func (s *Shell) CardList() *components.CardList {
	return s.cardList
}

// SetOpacity applies a new window opacity to the theme surfaces
func (s *Shell) SetOpacity(alpha float64) {
	s.alpha = models.ClampAlpha(alpha)
	s.applyTheme()
}

// ShowStatus displays message until StatusResetDelay passes without a newer one.
func (s *Shell) ShowStatus(message string) {
	s.statusGeneration++
	generation := s.statusGeneration
	s.statusBar.SetStatus(message)

	s.afterFunc(StatusResetDelay, func() {
		if generation == s.statusGeneration {
			s.statusBar.Reset()
		}
	})
}

func (s *Shell) ExpandRequested(index int) {
	s.logger.Debug(component, "card expanded", map[string]interface{}{
		"index": index,
	})
	s.CollapseOtherCards(index)
}

func (s *Shell) DeleteRequested(index int) {
	s.DeleteNote(index)
}

func (s *Shell) SaveRequested(index int, note models.Note, showMessage bool) {
	if err := s.notes.Update(index, note); err != nil {
		s.logger.Warning(component, "save ignored", map[string]interface{}{
			"index": index,
			"error": err.Error(),
		})
		return
	}
	if s.SaveNotes() && showMessage {
		s.ShowStatus("Saved: " + note.DisplayTitle())
	}
}

func (s *Shell) Copy(text string) {
	if text == "" {
		s.ShowStatus("Content is empty")
		return
	}
	s.window.Clipboard().SetContent(text)
	s.ShowStatus("Copied all content")
}

func (s *Shell) Confirm(title, message string, callback func(bool)) {
	s.dialogs.ShowConfirm(title, message, callback)
}

// Quit runs the quit handler, or shuts down and closes the window when none is set.
func (s *Shell) Quit() {
	if s.quitHandler != nil {
		s.quitHandler()
		return
	}
	s.Shutdown()
	s.window.Close()
}

// Shutdown commits any open edits silently and writes the window config once.
func (s *Shell) Shutdown() {
	if s.isShutdown {
		return
	}
	s.isShutdown = true

	s.commitExpanded()

	size := s.window.Canvas().Size()
	cfg := models.WindowConfig{
		Geometry: models.FormatGeometry(int(size.Width), int(size.Height)),
		Alpha:    s.alpha,
	}
	if err := s.windowConf.Save(cfg); err != nil {
		s.logger.Error(component, err, map[string]interface{}{
			"stage": "window config",
		})
	}

	s.logger.Info(component, "shutdown completed", map[string]interface{}{
		"geometry": cfg.Geometry,
		"alpha":    cfg.Alpha,
	})
}

func (s *Shell) commitExpanded() {
	for _, card := range s.cards {
		if card.IsExpanded() {
			card.Save(false)
		}
	}
}

func (s *Shell) refreshCards() {
	notes := s.notes.All()
	cards := make([]*components.Card, len(notes))
	for i, note := range notes {
		cards[i] = components.NewCard(i, note, s)
	}
	s.cards = cards
	s.cardList.SetCards(cards)
	s.toolbar.SetCount(len(notes))
}

func (s *Shell) handleResize(size fyne.Size) {
	scale, changed := s.scaler.Update(size.Width)
	if !changed {
		return
	}

	s.logger.Debug(component, "font scale changed", map[string]interface{}{
		"width": size.Width,
		"scale": scale,
	})
	s.applyTheme()
	for _, card := range s.cards {
		card.Rerender()
	}
}

func (s *Shell) applyTheme() {
	s.fyneApp.Settings().SetTheme(NewNoteTheme(theme.DefaultTheme(), s.scaler.Scale(), s.alpha))
}

func (s *Shell) showError(title string, err error) {
	s.logger.Error(component, err, map[string]interface{}{
		"title": title,
	})
	s.dialogs.ShowError(title, err)
}
