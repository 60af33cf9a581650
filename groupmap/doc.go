// Package groupmap tracks a partition of integer element ids into
// connected groups, the way an editor tracks molecular fragments while
// atoms and bonds are drawn one at a time.
//
// What:
//
//   - AddElement creates a singleton group.
//   - Connect unions two groups (every member of the absorbed group is relabeled).
//   - Disconnect detaches a single element into its own group.
//   - DisconnectIfIsolated is the bond-removal hook: it splits only when the
//     two former endpoints share no common neighbor.
//   - RemoveElement, MoveElement, Clear and Reset manage membership.
//   - Group, Members and AllGroups answer queries.
//
// Approximation:
//
//	Disconnect and DisconnectIfIsolated never search the graph. Removing an
//	edge whose endpoints are still joined by a path longer than one hop
//	splits the group, and removing an edge inside a larger cycle that
//	happens to close a triangle elsewhere leaves it merged. Callers needing
//	exact fragments recompute them from the edge list (see bfs.Components).
//
// Group handles:
//
//	A handle returned by Group is valid only until the next mutating call.
//
// Complexity:
//
//   - AddElement, Disconnect, Group: O(1) amortized.
//   - Connect: O(size of the smaller group).
//   - DisconnectIfIsolated: O(|aNeighbors| + |bNeighbors|).
//   - AllGroups: O(N + G log G).
//
// Errors:
//
//   - ErrElementExists: AddElement/MoveElement target already present.
//   - ErrElementNotFound: an operation referenced an unknown element.
//   - ErrGroupNotFound: Members was given a stale or unknown handle.
//   - ErrInvalidElement: the id is negative or exceeds the 32-bit member space.
//
// Member sets are held in roaring bitmaps.
package groupmap
