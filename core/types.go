// Package core defines the integer-indexed Graph, Edge and Arc types
// that back every flow network in wallcut.
//
// This file declares Vertex, Edge, Arc, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexOutOfRange - a vertex id outside [0, VertexCount()).
//	ErrNegativeWeight   - CreateEdge/CreateEdgeUnique received a negative capacity.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced a vertex id
	// that was never allocated by NewGraph.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge was created with a negative capacity.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Vertex is a dense integer vertex id in [0, VertexCount()).
type Vertex = int

// Edge is one outgoing entry of an adjacency list.
//
// Weight is the current (residual) weight and is mutated by flow engines.
// Initial is the capacity the edge was created with; it never changes.
// Edges created on demand by AddWeight carry Initial == 0.
type Edge struct {
	// To is the head of the edge.
	To Vertex

	// Weight is the current residual weight.
	Weight int64

	// Initial is the immutable construction-time capacity.
	Initial int64
}

// Arc names a directed vertex pair (From→To) without any weight.
type Arc struct {
	From, To Vertex
}

// String renders the arc as "from→to".
func (a Arc) String() string {
	return fmt.Sprintf("%d→%d", a.From, a.To)
}

// Graph is a weighted, directed adjacency structure over a fixed
// number of vertices. It is NOT safe for concurrent mutation: a flow
// network is owned by exactly one solve call.
type Graph struct {
	adjacency [][]Edge
	edgeCount int
	degreeCap int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDegreeHint preallocates room for d outgoing edges per vertex.
// Grid networks use 9 (eight neighbours plus one reverse edge).
func WithDegreeHint(d int) GraphOption {
	return func(g *Graph) {
		if d > 0 {
			g.degreeCap = d
		}
	}
}

// NewGraph allocates a Graph with n vertices (ids 0..n-1) and no edges.
// A negative n is treated as zero.
//
// Complexity: O(n) time and memory.
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make([][]Edge, n)
	if g.degreeCap > 0 {
		for v := range g.adjacency {
			g.adjacency[v] = make([]Edge, 0, g.degreeCap)
		}
	}

	return g
}

// VertexCount returns the number of allocated vertices.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of stored edges, including reverse
// edges created on demand by AddWeight.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// HasVertex reports whether v is a valid id for this graph.
func (g *Graph) HasVertex(v Vertex) bool {
	return v >= 0 && v < len(g.adjacency)
}

// checkArc validates both endpoints of u→v.
func (g *Graph) checkArc(u, v Vertex) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return nil
}
