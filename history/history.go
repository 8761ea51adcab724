// Package history keeps the command log of pixedit edits.
//
// The log is append-only for the engine. A cursor separates applied entries
// from undone ones: Undo and Redo move the cursor and return the entry whose
// effect the caller must revert or reapply. Recording after an Undo drops
// the undone tail.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/pixedit"
)

var _ pixedit.History = (*Stack)(nil)

// identified is implemented by batches that carry an identifier.
type identified interface {
	ID() uuid.UUID
}

// Entry is one recorded edit.
type Entry struct {
	Kind    pixedit.CommandKind
	Batch   pixedit.Batch
	BatchID uuid.UUID // uuid.Nil when the batch has no identifier
	At      time.Time
}

// Stack is a cursor-based command log.
//
// Stack is NOT safe for concurrent use.
type Stack struct {
	entries []Entry
	cursor  int // entries[:cursor] are applied
	limit   int
	now     func() time.Time
}

// Option configures a Stack.
type Option func(*Stack)

// WithLimit caps the number of retained entries; the oldest are dropped
// first. A limit of 0 means unlimited.
func WithLimit(n int) Option {
	return func(s *Stack) {
		s.limit = max(n, 0)
	}
}

// WithClock sets the time source for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Stack) {
		s.now = now
	}
}

// NewStack creates an empty stack.
func NewStack(opts ...Option) *Stack {
	s := &Stack{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends an entry for b and drops any undone entries.
func (s *Stack) Record(kind pixedit.CommandKind, b pixedit.Batch) {
	e := Entry{Kind: kind, Batch: b, At: s.now()}
	if id, ok := b.(identified); ok {
		e.BatchID = id.ID()
	}

	s.entries = append(s.entries[:s.cursor], e)
	if s.limit > 0 && len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		s.entries = append(s.entries[:0], s.entries[drop:]...)
	}
	s.cursor = len(s.entries)

	pixedit.Logger().Debug("history: recorded", "command", kind, "batch", e.BatchID, "len", len(s.entries))
}

// Len returns the number of retained entries, applied or undone.
func (s *Stack) Len() int { return len(s.entries) }

// Cursor returns the number of applied entries.
func (s *Stack) Cursor() int { return s.cursor }

// Entries returns a copy of the applied entries, oldest first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, s.cursor)
	copy(out, s.entries[:s.cursor])
	return out
}

// Last returns the most recent applied entry.
func (s *Stack) Last() (Entry, bool) {
	if s.cursor == 0 {
		return Entry{}, false
	}
	return s.entries[s.cursor-1], true
}

// CanUndo reports whether an applied entry exists.
func (s *Stack) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether an undone entry exists.
func (s *Stack) CanRedo() bool { return s.cursor < len(s.entries) }

// Undo moves the cursor back and returns the entry to revert.
func (s *Stack) Undo() (Entry, bool) {
	if !s.CanUndo() {
		return Entry{}, false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo moves the cursor forward and returns the entry to reapply.
func (s *Stack) Redo() (Entry, bool) {
	if !s.CanRedo() {
		return Entry{}, false
	}
	s.cursor++
	return s.entries[s.cursor-1], true
}

// Reset drops every entry.
func (s *Stack) Reset() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = 0
}
