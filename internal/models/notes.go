package models

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when a note index does not exist
var ErrIndexOutOfRange = errors.New("note index out of range")

// NoteRepository holds the ordered note sequence and its backing JSON file.
// Index 0 is the most recently created note.
type NoteRepository struct {
	mu    sync.RWMutex
	path  string
	notes []Note
}

// NewNoteRepository creates an empty repository persisted at path
func NewNoteRepository(path string) *NoteRepository {
	return &NoteRepository{
		path:  path,
		notes: make([]Note, 0),
	}
}

// Path returns the backing file path
func (r *NoteRepository) Path() string {
	return r.path
}

// Load replaces the sequence with the file contents. A missing file yields
// an empty sequence. On any read or parse failure the sequence is reset to
// empty and the error returned.
func (r *NoteRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = make([]Note, 0)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read notes file %s", r.path)
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return errors.Wrapf(err, "parse notes file %s", r.path)
	}
	if notes != nil {
		r.notes = notes
	}
	return nil
}

// Save overwrites the backing file with the whole sequence
func (r *NoteRepository) Save() error {
	r.mu.RLock()
	data, err := encodeNotes(r.notes)
	r.mu.RUnlock()
	if err != nil {
		return errors.Wrap(err, "encode notes")
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write notes file %s", r.path)
	}
	return nil
}

func encodeNotes(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Prepend inserts note at index 0
func (r *NoteRepository) Prepend(note Note) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = append([]Note{note}, r.notes...)
}

// Remove deletes and returns the note at index
func (r *NoteRepository) Remove(index int) (Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.notes) {
		return Note{}, errors.Wrapf(ErrIndexOutOfRange, "remove %d of %d", index, len(r.notes))
	}
	removed := r.notes[index]
	r.notes = append(r.notes[:index], r.notes[index+1:]...)
	return removed, nil
}

// Update replaces the note at index
func (r *NoteRepository) Update(index int, note Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.notes) {
		return errors.Wrapf(ErrIndexOutOfRange, "update %d of %d", index, len(r.notes))
	}
	r.notes[index] = note
	return nil
}

// Get returns the note at index
func (r *NoteRepository) Get(index int) (Note, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.notes) {
		return Note{}, false
	}
	return r.notes[index], true
}

// All returns a copy of the sequence
func (r *NoteRepository) All() []Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Note, len(r.notes))
	copy(out, r.notes)
	return out
}

// Len returns the number of notes
func (r *NoteRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}
