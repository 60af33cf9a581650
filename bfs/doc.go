// Package bfs provides breadth-first search over a molecular bond graph,
// returning bond-count distances, parent links, and visit order, plus exact
// connected components.
//
// What
//
//   - Explore atoms in non-decreasing distance (bond count) from a start atom.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from atom position → distance (bonds) from start
//   - Parent: map from atom position → its predecessor in the BFS tree
//   - Calls an OnVisit hook per atom; a hook error aborts the walk.
//   - Allows filtering of individual bonds via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components walks every atom and returns the exact fragments, the
//     ground truth that groupmap only approximates.
//
// Graph
//
//	Any value with AtomCount() and Neighbors(p) works; molecule.Reader does.
//	Vertices are atom positions, so results are valid only until the next
//	structural edit compacts the molecule.
//
// Determinism
//
//	Neighbors returns positions in ascending order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = atoms, E = bonds)
//
//   - Time:   O(V + E)   (each atom and bond seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(mol, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//
//	groups, err := bfs.Components(mol, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start position is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()               when the context is cancelled.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
