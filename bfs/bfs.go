// Package bfs provides breadth-first search over a molecular bond graph,
// returning bond-count distances, parent links, and visit order.
//
// BFS explores atoms in increasing distance from a start atom,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs an atom position with its BFS depth and its parent.
type queueItem struct {
	p      int
	depth  int
	parent int // -1 for root
}

// walker encapsulates mutable BFS state. visited may be shared between
// walks (Components seeds one walk per unvisited atom).
type walker struct {
	graph   Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from atom position start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// Validate start vertex
	n := g.AtomCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (atoms %d)", ErrStartVertexNotFound, start, n)
	}

	w := newWalker(g, o, make([]bool, n))
	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)
	// Main loop
	return w.res, w.loop()
}

func buildOptions(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g Graph, o BFSOptions, visited []bool) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: visited,
		res: &BFSResult{
			Order:  []int{},
			Depth:  map[int]int{},
			Parent: map[int]int{},
		},
	}
}

// enqueue marks p visited at depth d, records its parent, and adds it to the
// queue.
func (w *walker) enqueue(p int, d int, parent int) {
	w.visited[p] = true
	w.res.Depth[p] = d
	if parent >= 0 {
		w.res.Parent[p] = parent
	}
	w.queue = append(w.queue, queueItem{p: p, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.p)
	if err := w.opts.OnVisit(item.p, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.p, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor. Neighbors arrive in ascending position order, so the visit
// sequence is deterministic.
func (w *walker) enqueueNeighbors(item queueItem) error {
	for _, nbr := range w.graph.Neighbors(item.p) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.p, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if nbr >= 0 && nbr < len(w.visited) && !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.p)
		}
	}
	return nil
}
