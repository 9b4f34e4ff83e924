// Package flow implements the max-flow / min-cut engine used to place
// walls. It runs Dinic's algorithm directly on a *core.Graph, mutating
// residual weights in place, and returns the saturated arcs that separate
// the source side from the sink side of the final residual graph.
//
// # Algorithm
//
//   - Phase: BFS levels from the source over edges with Weight > 0.
//     If the sink is unreached, the flow is maximum.
//   - Blocking flow: repeated DFS strictly along level-increasing edges,
//     carrying the smallest residual seen so far. Each augmentation
//     subtracts the flow from every forward edge on the path and adds it
//     to the reverse edge (created with zero capacity when absent).
//   - Pruning: a vertex with no viable forward edge is marked unreached
//     for the rest of the phase; per-vertex cursors resume where the last
//     DFS left off.
//   - Termination: every phase strictly increases the source→sink
//     distance, so at most V phases run.
//
// # Cut extraction
//
// After the terminating BFS every arc (u,v) with u reached, v unreached,
// Weight == 0 and Initial > 0 is part of the minimum cut. If source and
// sink start disconnected, the cut is empty and MaxFlow is 0.
//
// # Capacities
//
// Capacities are int64. "Infinite" capacities must be finite sentinels
// exceeding any feasible flow; see package core.
//
// # API
//
//	func MinCut(g *core.Graph, source, sink core.Vertex, opts ...Option) (*Result, error)
//	func MaxFlow(g *core.Graph, source, sink core.Vertex, opts ...Option) (int64, error)
//
// Options:
//
//	WithLogger(*slog.Logger) - debug record per augmentation and phase.
//	WithMaxPhases(n)         - abort with ErrPhaseLimit after n phases.
//
// # Errors
//
//	ErrGraphNil       - nil graph.
//	ErrSourceNotFound - source id out of range.
//	ErrSinkNotFound   - sink id out of range.
//	ErrSameVertex     - source == sink.
//	ErrPhaseLimit     - MaxPhases exceeded.
//	EdgeError         - a negative residual weight before solving.
//
// # Concurrency
//
// A call owns its graph. Independent graphs may be solved concurrently;
// within one call, leveling and augmentation are strictly sequential.
package flow
