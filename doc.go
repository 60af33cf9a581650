// Package molkit is an in-memory toolkit for editing molecular structures
// with full undo/redo, stable atom and bond identities and incremental
// fragment tracking.
//
// What is in the box?
//
//   - molecule/: columnar molecule storage with swap-with-last removal
//   - ident/: stable ids that survive compaction
//   - groupmap/: connected-fragment map kept up to date per edit
//   - bfs/: breadth-first traversal and exact components
//   - undo/: generic command stack with merge, macros and a clean index
//   - editor/: every edit as a reversible, mergeable command
//   - layers/: several editors side by side with one active
//   - builder/: topology constructors for fixtures and benchmarks
//   - script/: YAML edit scripts with expectations
//   - config/: YAML configuration with hot reload
//   - metrics/: Prometheus recorder for editor activity
//
// The molkit command (cmd/molkit) runs scripts, prints a layer summary and
// optionally serves /metrics.
//
// Quick start:
//
//	ed := editor.New()
//	o := ed.AddAtom(8)
//	h := ed.AddAtom(1)
//	_, _ = ed.AddBond(o, h, 1)
//	_ = ed.Undo() // the bond is gone, both atoms remain
package molkit
