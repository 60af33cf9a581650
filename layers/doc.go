// Package layers keeps the ordered list of open structures that a display
// adapter shows as rows, with at most one of them active.
//
// What:
//
//   - Each layer owns one *editor.Editor and is identified by a UUID that
//     stays fixed while rows are added, removed or renamed.
//   - Rows() returns plain scalar rows (id, name, atom and bond counts,
//     fragment count, active flag) for list views.
//   - The first layer added becomes active. Removing the active layer
//     activates the row that takes its place, or the new last row.
//
// Errors:
//
//   - ErrLayerNotFound: an id that names no layer.
//   - ErrNilEditor: Add called with a nil editor.
//
// Model is single-owner: callers serialize access.
package layers
