// Package bfs provides sentinel errors and the leveling result type
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"

	"github.com/katalvlaran/wallcut/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Unreached is the level of a vertex not reachable from the source
// (or pruned after the search).
const Unreached = -1

// Result holds per-vertex distances from the source, measured in edges
// of strictly positive weight.
//
// Order lists vertices in the order they were dequeued. Depth is the
// largest level assigned. Levels may later be pruned by flow engines,
// which does not change Order or Depth.
type Result struct {
	Source core.Vertex
	Order  []core.Vertex
	Depth  int

	levels []int
}

// Level returns the distance of v, or Unreached.
func (r *Result) Level(v core.Vertex) int {
	if v < 0 || v >= len(r.levels) {
		return Unreached
	}

	return r.levels[v]
}

// Reached reports whether v currently has a level.
func (r *Result) Reached(v core.Vertex) bool {
	return r.Level(v) != Unreached
}

// Prune marks v unreached for the remainder of the phase that owns
// this Result. Unknown ids are ignored.
func (r *Result) Prune(v core.Vertex) {
	if v >= 0 && v < len(r.levels) {
		r.levels[v] = Unreached
	}
}

// Count returns how many vertices were reached by the search.
func (r *Result) Count() int {
	return len(r.Order)
}
