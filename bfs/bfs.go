// Package bfs provides breadth-first leveling over a core.Graph,
// following only edges whose current weight is strictly positive.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wallcut/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	queue []core.Vertex
	res   *Result
}

// Levels runs breadth-first search on g from source, returning the
// distance of every vertex through edges with Weight > 0.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
//
// Complexity: O(V + E) time, O(V) memory.
func Levels(g *core.Graph, source core.Vertex) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, source)
	}

	n := g.VertexCount()
	levels := make([]int, n)
	for v := range levels {
		levels[v] = Unreached
	}
	w := &walker{
		graph: g,
		queue: make([]core.Vertex, 0, n),
		res: &Result{
			Source: source,
			Order:  make([]core.Vertex, 0, n),
			levels: levels,
		},
	}

	w.enqueue(source, 0)
	w.loop()

	return w.res, nil
}

// enqueue assigns level d to v and appends it to the queue.
func (w *walker) enqueue(v core.Vertex, d int) {
	w.res.levels[v] = d
	if d > w.res.Depth {
		w.res.Depth = d
	}
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty. The queue is consumed by index
// so no element is ever copied.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		w.res.Order = append(w.res.Order, u)
		next := w.res.levels[u] + 1
		for c := w.graph.EdgesFrom(u); c.Valid(); c.Advance() {
			e := c.Edge()
			if e.Weight <= 0 || w.res.levels[e.To] != Unreached {
				continue
			}
			w.enqueue(e.To, next)
		}
	}
}
