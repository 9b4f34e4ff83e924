// Package core provides the dense, integer-indexed flow-network storage
// used by wallcut's max-flow engine.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are the integers 0..n-1, fixed at NewGraph time, giving
//     O(1) vertex lookup for networks of ~5000 vertices (50×50 rooms split
//     into in/out halves).
//   - Edges are directed and weighted. Each Edge carries a mutable Weight
//     (residual capacity) and an immutable Initial capacity.
//   - Adjacency is a slice of slices: adjacency[u] = []Edge in insertion order.
//
// Edge operations:
//
//	– CreateEdge(u, v, w)
//	    Appends u→v without deduplication.
//
//	– CreateEdgeUnique(u, v, w)
//	    Inserts u→v only if absent. Used for SOURCE/TARGET fan edges.
//
//	– AddWeight(u, v, δ)
//	    Adds δ to u→v, creating a zero-Initial edge when absent.
//	    This is how reverse (residual) edges come into existence.
//
//	– Weight(u, v) / InitialWeight(u, v)
//	    Return (value, ok); ok=false means "no such edge", never zero.
//
// Traversal:
//
//	– EdgesFrom(u) returns a restartable Cursor (Valid/Edge/Advance/Reset).
//	– Edges() enumerates every arc in deterministic order.
//
// Capacities:
//
//	Weights are int64. "Infinite" capacity must be a finite sentinel that
//	provably exceeds any feasible flow. Two infinite paths cancelled through
//	reverse-edge accounting would otherwise leave an undefined residual and
//	corrupt every later comparison. The sentinel is a construction-time
//	contract; core performs no runtime check.
//
// Concurrency:
//
//	Graph has no locks. A network is built, solved and discarded inside a
//	single call; independent Graphs may be used from different goroutines.
//
// Complexity:
//
//	NewGraph O(V); CreateEdge O(1) amortized; CreateEdgeUnique, AddWeight,
//	Weight O(deg(u)); Edges O(V+E).
package core
