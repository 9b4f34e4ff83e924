// File: methods_edges.go
// Role: Edge lifecycle & queries: CreateEdge/CreateEdgeUnique/AddWeight,
//       Weight/InitialWeight lookups, Edges enumeration.
// Determinism:
//   - Edges() returns arcs in vertex order, then adjacency (insertion) order.
//   - Lookups by (u,v) resolve to the FIRST u→v edge in insertion order.
// AI-HINT (file):
//   - Weight/InitialWeight distinguish "absent" (ok=false) from a zero weight.
//   - AddWeight never touches Initial; on-demand edges start with Initial==0.

package core

import "fmt"

// CreateEdge appends a directed edge u→v with capacity w. Parallel edges
// are NOT deduplicated.
//
// Complexity: O(1) amortized.
func (g *Graph) CreateEdge(u, v Vertex, w int64) error {
	if err := g.checkArc(u, v); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("%w: %d→%d: %d", ErrNegativeWeight, u, v, w)
	}
	g.adjacency[u] = append(g.adjacency[u], Edge{To: v, Weight: w, Initial: w})
	g.edgeCount++

	return nil
}

// CreateEdgeUnique inserts u→v with capacity w only if no u→v edge
// exists yet. It reports whether an edge was inserted.
//
// AI-HINT:
//   - Grid builders call this for SOURCE/TARGET fan edges, which several
//     neighbour scans of the same tile may request.
//
// Complexity: O(deg(u)).
func (g *Graph) CreateEdgeUnique(u, v Vertex, w int64) (bool, error) {
	if err := g.checkArc(u, v); err != nil {
		return false, err
	}
	if g.find(u, v) >= 0 {
		return false, nil
	}
	if err := g.CreateEdge(u, v, w); err != nil {
		return false, err
	}

	return true, nil
}

// AddWeight adds delta to the current weight of u→v. When no u→v edge
// exists, one is created with Weight=delta and Initial=0 (residual
// back-edge bookkeeping).
//
// Complexity: O(deg(u)).
func (g *Graph) AddWeight(u, v Vertex, delta int64) error {
	if err := g.checkArc(u, v); err != nil {
		return err
	}
	if i := g.find(u, v); i >= 0 {
		g.adjacency[u][i].Weight += delta
		return nil
	}
	g.adjacency[u] = append(g.adjacency[u], Edge{To: v, Weight: delta})
	g.edgeCount++

	return nil
}

// Weight returns the current weight of u→v; ok is false when no such
// edge exists (absent is not zero).
func (g *Graph) Weight(u, v Vertex) (w int64, ok bool) {
	e, ok := g.Edge(u, v)
	return e.Weight, ok
}

// InitialWeight returns the construction-time capacity of u→v; ok is
// false when no such edge exists.
func (g *Graph) InitialWeight(u, v Vertex) (w int64, ok bool) {
	e, ok := g.Edge(u, v)
	return e.Initial, ok
}

// Edge returns a copy of the first u→v edge.
func (g *Graph) Edge(u, v Vertex) (Edge, bool) {
	if g.checkArc(u, v) != nil {
		return Edge{}, false
	}
	i := g.find(u, v)
	if i < 0 {
		return Edge{}, false
	}

	return g.adjacency[u][i], true
}

// HasEdge reports whether at least one u→v edge exists.
func (g *Graph) HasEdge(u, v Vertex) bool {
	_, ok := g.Edge(u, v)
	return ok
}

// Edges enumerates every stored edge as an Arc, in vertex order and
// then insertion order.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Arc {
	arcs := make([]Arc, 0, g.edgeCount)
	for u, list := range g.adjacency {
		for _, e := range list {
			arcs = append(arcs, Arc{From: u, To: e.To})
		}
	}

	return arcs
}

// find returns the index of the first u→v edge in u's list, or -1.
// Endpoints must already be validated.
func (g *Graph) find(u, v Vertex) int {
	for i, e := range g.adjacency[u] {
		if e.To == v {
			return i
		}
	}

	return -1
}
