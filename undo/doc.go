// Package undo provides a linear undo/redo stack with a cursor.
//
// What:
//
//   - Push truncates the redo tail, appends a command and advances the cursor.
//   - Undo applies the inverse of the command just below the cursor and
//     moves the cursor down; Redo replays the command at the cursor and moves
//     it up. Both are no-ops at their terminal positions.
//   - An optional merge function folds a new command into the top one
//     instead of pushing it. Merging is attempted only when the caller marks
//     the push as interactive.
//   - A limit bounds the number of retained commands; the oldest are dropped.
//   - A clean index remembers the cursor at the last save point.
//
// The stack does not know how to apply a command. Undo and Redo receive an
// apply callback, and the cursor moves only when it succeeds.
//
// Complexity:
//
//   - Push, Undo, Redo: O(1) amortized (O(limit) when the limit trims).
//
// Errors:
//
//   - ErrNotEmpty: SetLimit was called on a stack holding commands.
//   - ErrNegativeLimit: a negative limit was requested.
//   - Errors returned by apply callbacks are passed through unchanged.
package undo
