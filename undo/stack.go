package undo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEmpty indicates that SetLimit was called while commands are held.
	ErrNotEmpty = errors.New("undo: stack not empty")
	// ErrNegativeLimit indicates a limit below zero.
	ErrNegativeLimit = errors.New("undo: negative limit")
)

// noClean marks a clean state that can no longer be reached.
const noClean = -1

// MergeFunc folds next into *top and reports whether it did. It must leave
// *top untouched when it returns false.
type MergeFunc[C any] func(top *C, next C) bool

// Option configures a Stack.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit bounds the number of retained commands; 0 means unlimited.
// Negative values are treated as 0.
func WithLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.limit = n
	}
}

// Stack is a linear command history. Entries below the cursor are applied,
// entries at or above it are undone and available for redo.
type Stack[C any] struct {
	entries []C
	index   int
	clean   int
	limit   int
	merge   MergeFunc[C]
}

// New returns an empty, clean stack. merge may be nil to disable merging.
func New[C any](merge MergeFunc[C], opts ...Option) *Stack[C] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Stack[C]{limit: o.limit, merge: merge}
}

// Push records c. When interactive is true and the top command is not the
// clean state, the merge function may fold c into it; Push then reports
// true and the stack length does not change.
func (s *Stack[C]) Push(c C, interactive bool) bool {
	if s.index < len(s.entries) {
		clear(s.entries[s.index:])
		s.entries = s.entries[:s.index]
		if s.clean > s.index {
			s.clean = noClean
		}
	}
	if interactive && s.merge != nil && s.index > 0 && s.index != s.clean {
		if s.merge(&s.entries[s.index-1], c) {
			return true
		}
	}
	s.entries = append(s.entries, c)
	s.index++
	s.trim()

	return false
}

// Undo applies the command below the cursor through apply and moves the
// cursor down. It is a no-op when nothing is left to undo.
func (s *Stack[C]) Undo(apply func(C) error) error {
	if s.index == 0 {
		return nil
	}
	if err := apply(s.entries[s.index-1]); err != nil {
		return err
	}
	s.index--

	return nil
}

// Redo applies the command at the cursor through apply and moves the
// cursor up. It is a no-op when nothing is left to redo.
func (s *Stack[C]) Redo(apply func(C) error) error {
	if s.index == len(s.entries) {
		return nil
	}
	if err := apply(s.entries[s.index]); err != nil {
		return err
	}
	s.index++

	return nil
}

// CanUndo reports whether Undo would apply a command.
func (s *Stack[C]) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether Redo would apply a command.
func (s *Stack[C]) CanRedo() bool { return s.index < len(s.entries) }

// Len reports the number of retained commands, including the redo tail.
func (s *Stack[C]) Len() int { return len(s.entries) }

// Index reports the cursor.
func (s *Stack[C]) Index() int { return s.index }

// Peek returns the command Undo would apply next.
func (s *Stack[C]) Peek() (C, bool) {
	if s.index == 0 {
		var zero C
		return zero, false
	}

	return s.entries[s.index-1], true
}

// PeekRedo returns the command Redo would apply next.
func (s *Stack[C]) PeekRedo() (C, bool) {
	if s.index == len(s.entries) {
		var zero C
		return zero, false
	}

	return s.entries[s.index], true
}

// SetClean marks the current cursor as the clean state.
func (s *Stack[C]) SetClean() { s.clean = s.index }

// IsClean reports whether the cursor is at the clean state.
func (s *Stack[C]) IsClean() bool { return s.clean == s.index }

// Clear drops every command; the empty stack is clean.
func (s *Stack[C]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.index = 0
	s.clean = 0
}

// Limit reports the command limit; 0 means unlimited.
func (s *Stack[C]) Limit() int { return s.limit }

// SetLimit changes the command limit. The stack must be empty.
func (s *Stack[C]) SetLimit(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLimit, n)
	}
	if len(s.entries) > 0 {
		return fmt.Errorf("%w: %d commands", ErrNotEmpty, len(s.entries))
	}
	s.limit = n

	return nil
}

// trim drops the oldest commands beyond the limit. It runs right after an
// append, when the cursor is at the top.
func (s *Stack[C]) trim() {
	if s.limit == 0 || len(s.entries) <= s.limit {
		return
	}
	drop := len(s.entries) - s.limit
	n := copy(s.entries, s.entries[drop:])
	clear(s.entries[n:])
	s.entries = s.entries[:n]
	s.index -= drop
	if s.clean != noClean {
		s.clean -= drop
		if s.clean < 0 {
			s.clean = noClean
		}
	}
}
