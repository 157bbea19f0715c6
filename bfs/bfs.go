// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning visit order and step distances.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/minesweeper/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   gridgraph.Pos
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// Walk runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Every cell is visited at most once per call.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Walk(g *gridgraph.Grid, start gridgraph.Pos, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, g.Size()),
		visited: make([]bool, g.Size()),
		res: &BFSResult{
			Order: make([]gridgraph.Pos, 0, g.Size()),
			Depth: make(map[gridgraph.Pos]int),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks p visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(p gridgraph.Pos, d int) {
	w.visited[w.grid.Index(p)] = true
	w.res.Depth[p] = d
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		expand, err := w.visit(item)
		if err != nil {
			return err
		}
		if expand {
			w.enqueueNeighbors(item)
		}
	}
	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) (bool, error) {
	w.res.Order = append(w.res.Order, item.pos)
	expand, err := w.opts.OnVisit(item.pos, item.depth)
	if err != nil {
		return false, fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}
	return expand, nil
}

// enqueueNeighbors applies MaxDepth and filtering, and enqueues each
// unseen neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.pos) {
		if w.visited[w.grid.Index(nbr)] {
			continue
		}
		if !w.opts.FilterNeighbor(item.pos, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth)
	}
}
