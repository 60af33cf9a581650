package bfs

import "slices"

// Components partitions every atom of g into exact connected components.
// Each component is ascending and components are ordered by their smallest
// member. Only WithContext and WithFilterNeighbor affect the result; OnVisit
// fires as in BFS, one walk per component.
//
// Complexity: O(V + E) plus sorting each component.
func Components(g Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	o.MaxDepth = 0

	n := g.AtomCount()
	visited := make([]bool, n)
	var out [][]int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		w := newWalker(g, o, visited)
		w.enqueue(start, 0, -1)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := w.res.Order
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out, nil
}
