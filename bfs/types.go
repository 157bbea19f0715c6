// Package bfs: options, results and errors of the grid walker.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/minesweeper/gridgraph"
)

// Errors returned by Walk.
var (
	// ErrStartOutOfBounds is returned when the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation wraps the first bad Option passed to Walk.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts a walk. A bad value (a negative depth, say) is remembered
// and Walk fails with ErrOptionViolation before touching the grid.
type Option func(*BFSOptions)

// BFSOptions collects the hooks and limits of one walk.
type BFSOptions struct {
	// Ctx is checked before every visit.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	// Receives the cell and its depth from the start.
	OnEnqueue func(p gridgraph.Pos, depth int)

	// OnVisit is called when visiting a cell. It reports whether the
	// cell's neighbors should be explored. If it returns an error,
	// the walk stops and Walk returns it wrapped.
	OnVisit func(p gridgraph.Pos, depth int) (expand bool, err error)

	// MaxDepth bounds the step distance from the start; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor can skip a neighbor by returning false.
	// Called once per discovered, unvisited neighbor.
	FilterNeighbor func(curr, neighbor gridgraph.Pos) bool

	// first option error, reported by Walk
	err error
}

// DefaultOptions walks the whole connected grid: background context, no
// depth bound, every neighbor accepted, every visited cell expanded.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(gridgraph.Pos, int) {},
		OnVisit:        func(gridgraph.Pos, int) (bool, error) { return true, nil },
		FilterNeighbor: func(_, _ gridgraph.Pos) bool { return true },
	}
}

// WithContext makes the walk cancellable. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue observes cells as they are discovered.
func WithOnEnqueue(fn func(p gridgraph.Pos, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit. Its boolean result
// decides whether the visited cell's neighbors are explored; returning an
// error stops the BFS.
func WithOnVisit(fn func(p gridgraph.Pos, depth int) (bool, error)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
// Zero removes the bound; a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor drops neighbors for which fn is false; they may still
// be reached later from another cell.
func WithFilterNeighbor(fn func(curr, neighbor gridgraph.Pos) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is what a walk saw:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
type BFSResult struct {
	Order []gridgraph.Pos
	Depth map[gridgraph.Pos]int
}
