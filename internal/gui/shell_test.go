package gui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sticky-notes/internal/gui/components"
	"sticky-notes/internal/logger"
	"sticky-notes/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDialogs struct {
	errors   []string
	confirms []string
	answer   bool
}

func (d *fakeDialogs) ShowError(title string, err error) {
	d.errors = append(d.errors, title+": "+err.Error())
}

func (d *fakeDialogs) ShowConfirm(title, message string, callback func(bool)) {
	d.confirms = append(d.confirms, message)
	callback(d.answer)
}

type fakeTimers struct {
	pending []func()
	delays  []time.Duration
}

func (f *fakeTimers) after(d time.Duration, fn func()) {
	f.delays = append(f.delays, d)
	f.pending = append(f.pending, fn)
}

func (f *fakeTimers) fire(i int) {
	f.pending[i]()
}

type shellFixture struct {
	shell   *Shell
	window  fyne.Window
	dialogs *fakeDialogs
	timers  *fakeTimers
	dir     string
}

var fixedNow = time.Date(2026, 10, 19, 14, 5, 0, 0, time.Local)

func newShellFixture(t *testing.T, seed string) *shellFixture {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("notes")
	dir := t.TempDir()

	notesPath := filepath.Join(dir, "sticky_notes_data.json")
	if seed != "" {
		require.NoError(t, os.WriteFile(notesPath, []byte(seed), 0644))
	}

	f := &shellFixture{
		window:  w,
		dialogs: &fakeDialogs{answer: true},
		timers:  &fakeTimers{},
		dir:     dir,
	}
	f.shell = NewShell(a, w,
		models.NewNoteRepository(notesPath),
		models.NewWindowConfigStore(filepath.Join(dir, "window_config.json")),
		logger.NoOpLogger{},
	)
	f.shell.SetDialogs(f.dialogs)
	f.shell.SetTimerFunc(f.timers.after)
	f.shell.SetClock(func() time.Time { return fixedNow })
	f.shell.Start()
	return f
}

func (f *shellFixture) persisted(t *testing.T) []models.Note {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, "sticky_notes_data.json"))
	require.NoError(t, err)
	var notes []models.Note
	require.NoError(t, json.Unmarshal(data, &notes))
	return notes
}

func seedNotes(t *testing.T, titles ...string) string {
	t.Helper()
	notes := make([]models.Note, len(titles))
	for i, title := range titles {
		notes[i] = models.Note{Title: title, Content: "body " + title, Category: models.CategoryGeneral, CreatedAt: "2026-01-01 00:00:00"}
	}
	data, err := json.Marshal(notes)
	require.NoError(t, err)
	return string(data)
}

func expandedCount(s *Shell) int {
	count := 0
	for _, card := range s.Cards() {
		if card.IsExpanded() {
			count++
		}
	}
	return count
}

func TestNewNoteOnEmptyFile(t *testing.T) {
	f := newShellFixture(t, "")
	assert.True(t, f.shell.CardList().IsEmpty())

	f.shell.NewNote()

	notes := f.persisted(t)
	require.Len(t, notes, 1)
	assert.Equal(t, "New note 1", notes[0].Title)
	assert.Equal(t, models.CategoryGeneral, notes[0].Category)
	assert.Equal(t, "", notes[0].Content)
	assert.Equal(t, "2026-10-19 14:05:00", notes[0].CreatedAt)

	require.Len(t, f.shell.Cards(), 1)
	assert.True(t, f.shell.Cards()[0].IsExpanded())
	assert.Equal(t, "New note created", f.shell.Status())
	assert.Equal(t, "1 note", f.shell.Toolbar().Count())
}

func TestNewNoteInsertsAtFront(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a", "b"))

	f.shell.NewNote()

	notes := f.persisted(t)
	require.Len(t, notes, 3)
	assert.Equal(t, "New note 3", notes[0].Title)
	assert.Equal(t, "a", notes[1].Title)
	assert.Equal(t, 0, f.shell.ExpandedIndex())
	assert.Equal(t, "3 notes", f.shell.Toolbar().Count())
}

func TestNewNoteCommitsOpenEdits(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a", "b"))
	card := f.shell.Cards()[1]
	card.Expand()
	setTitle(card, "b edited")

	f.shell.NewNote()

	notes := f.persisted(t)
	require.Len(t, notes, 3)
	assert.Equal(t, "b edited", notes[2].Title)
	assert.Equal(t, 1, expandedCount(f.shell))
}

func TestMalformedFileSurfacesErrorThenRecovers(t *testing.T) {
	f := newShellFixture(t, "{broken")

	require.Len(t, f.dialogs.errors, 1)
	assert.Contains(t, f.dialogs.errors[0], "Load error")
	assert.Equal(t, 0, f.shell.Notes().Len())

	f.shell.NewNote()
	notes := f.persisted(t)
	require.Len(t, notes, 1)
	assert.Equal(t, "New note 1", notes[0].Title)
}

func TestDeleteConfirmed(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a", "b", "c"))

	f.shell.Cards()[1].Delete()

	require.Len(t, f.dialogs.confirms, 1)
	assert.Equal(t, "Delete note 'b'?", f.dialogs.confirms[0])
	notes := f.persisted(t)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].Title)
	assert.Equal(t, "c", notes[1].Title)
	assert.Equal(t, f.shell.Notes().All(), notes)
	assert.Len(t, f.shell.Cards(), 2)
	assert.Equal(t, "Deleted: b", f.shell.Status())
}

func TestDeleteDeclined(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a", "b"))
	f.dialogs.answer = false

	f.shell.Cards()[0].Delete()

	assert.Equal(t, 2, f.shell.Notes().Len())
	_, err := os.Stat(filepath.Join(f.dir, "sticky_notes_data.json"))
	require.NoError(t, err)
	assert.Len(t, f.persisted(t), 2)
}

func TestDeleteOutOfRangeIgnored(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a"))
	f.shell.DeleteNote(5)
	assert.Equal(t, 1, f.shell.Notes().Len())
}

func TestEmptyTitlePersistsUntitled(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a", "b"))
	for i := range f.shell.Cards() {
		card := f.shell.Cards()[i]
		card.Expand()
		setTitle(card, "")
		card.Collapse()
	}

	for _, note := range f.persisted(t) {
		assert.Equal(t, models.DefaultTitle, note.Title)
	}
}

func TestAtMostOneExpanded(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a", "b", "c"))
	cards := f.shell.Cards()

	test.Tap(cards[0])
	assert.Equal(t, 0, f.shell.ExpandedIndex())

	setContent(cards[0], "  edited a  ")
	test.Tap(cards[2])
	assert.Equal(t, 1, expandedCount(f.shell))
	assert.Equal(t, 2, f.shell.ExpandedIndex())
	assert.Equal(t, "edited a", f.persisted(t)[0].Content)

	cards[1].Expand()
	assert.Equal(t, 1, expandedCount(f.shell))
	assert.Equal(t, 1, f.shell.ExpandedIndex())
}

func TestSaveExpandedShowsMessage(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a"))
	card := f.shell.Cards()[0]
	card.Expand()
	setTitle(card, "renamed")

	f.shell.SaveExpanded()

	assert.Equal(t, "Saved: renamed", f.shell.Status())
	assert.True(t, card.IsExpanded())
	assert.Equal(t, "renamed", f.persisted(t)[0].Title)
}

func TestCopy(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a"))

	f.shell.Copy("")
	assert.Equal(t, "Content is empty", f.shell.Status())

	f.shell.Copy("secret")
	assert.Equal(t, "Copied all content", f.shell.Status())
	assert.Equal(t, "secret", f.window.Clipboard().Content())
}

func TestStatusResetKeepsNewerMessage(t *testing.T) {
	f := newShellFixture(t, "")

	f.shell.ShowStatus("first")
	f.shell.ShowStatus("second")
	require.Len(t, f.timers.pending, 2)
	assert.Equal(t, StatusResetDelay, f.timers.delays[0])

	f.timers.fire(0)
	assert.Equal(t, "second", f.shell.Status())

	f.timers.fire(1)
	assert.Equal(t, components.IdleStatus, f.shell.Status())
}

func TestResizeRescales(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a"))

	f.shell.handleResize(fyne.NewSize(480, 650))
	assert.Equal(t, float32(1.0), f.shell.FontScale())

	f.shell.handleResize(fyne.NewSize(720, 650))
	assert.InDelta(t, 1.4, f.shell.FontScale(), 1e-5)

	th, ok := f.shell.fyneApp.Settings().Theme().(*NoteTheme)
	require.True(t, ok)
	assert.InDelta(t, 1.4, th.Scale(), 1e-5)
	assert.False(t, f.shell.Cards()[0].IsExpanded())

	// small drag: no recompute
	f.shell.handleResize(fyne.NewSize(690, 650))
	assert.InDelta(t, 1.4, f.shell.FontScale(), 1e-5)
}

func TestSetOpacityClampsAndAppliesTheme(t *testing.T) {
	f := newShellFixture(t, "")

	f.shell.SetOpacity(0.1)
	assert.Equal(t, models.MinAlpha, f.shell.Opacity())

	th, ok := f.shell.fyneApp.Settings().Theme().(*NoteTheme)
	require.True(t, ok)
	assert.Equal(t, models.MinAlpha, th.Alpha())
}

func TestShutdownCommitsOnce(t *testing.T) {
	f := newShellFixture(t, seedNotes(t, "a"))
	card := f.shell.Cards()[0]
	card.Expand()
	setContent(card, "closing")
	f.shell.SetOpacity(0.7)

	f.shell.Shutdown()

	assert.Equal(t, "closing", f.persisted(t)[0].Content)
	cfg, err := models.LoadWindowConfig(filepath.Join(f.dir, "window_config.json"))
	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.Alpha)

	require.NoError(t, os.Remove(filepath.Join(f.dir, "window_config.json")))
	f.shell.Shutdown()
	_, err = os.Stat(filepath.Join(f.dir, "window_config.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveFailureKeepsMemory(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("notes")
	dir := t.TempDir()
	dialogs := &fakeDialogs{answer: true}

	s := NewShell(a, w,
		models.NewNoteRepository(filepath.Join(dir, "missing", "notes.json")),
		models.NewWindowConfigStore(filepath.Join(dir, "window_config.json")),
		logger.NoOpLogger{},
	)
	s.SetDialogs(dialogs)
	s.SetTimerFunc((&fakeTimers{}).after)
	s.Start()

	s.NewNote()

	require.Len(t, dialogs.errors, 1)
	assert.Contains(t, dialogs.errors[0], "Save error")
	assert.Equal(t, 1, s.Notes().Len())
	assert.Len(t, s.Cards(), 1)
}

func setTitle(card *components.Card, title string) {
	card.SetTitleBuffer(title)
}

func setContent(card *components.Card, content string) {
	card.SetContentBuffer(content)
}
