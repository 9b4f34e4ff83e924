// Package bfs computes breadth-first levels on a residual core.Graph.
//
// What:
//
//   - Levels(g, s) assigns every vertex its distance from s, counting only
//     edges whose current Weight is strictly positive. Zero-weight
//     (saturated) and negative edges are invisible to the search.
//   - Result.Reached(v) is the reachability query used both to decide
//     whether another flow phase is needed and to split the final
//     residual graph into the source side and the sink side of a cut.
//   - Result.Prune(v) lets a blocking-flow phase retire dead-end vertices
//     without recomputing the levels.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for levels, queue and visit order.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrStartVertexNotFound: source id out of range.
package bfs
