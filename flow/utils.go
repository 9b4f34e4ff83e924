package flow

import (
	"github.com/katalvlaran/wallcut/bfs"
	"github.com/katalvlaran/wallcut/core"
)

// checkCapacities rejects networks containing a negative residual weight.
// Such a weight can only come from a caller mutating the network with
// AddWeight before solving; the engine itself never produces one.
//
// Complexity: O(V + E).
func checkCapacities(g *core.Graph) error {
	for u := 0; u < g.VertexCount(); u++ {
		for c := g.EdgesFrom(u); c.Valid(); c.Advance() {
			if e := c.Edge(); e.Weight < 0 {
				return EdgeError{From: u, To: e.To, Cap: e.Weight}
			}
		}
	}

	return nil
}

// extractCut collects every arc (u,v) where u is reached in the final
// residual graph, v is not, the current weight is exactly 0 and the
// initial capacity was positive. Reverse edges (Initial == 0) never
// qualify.
//
// Steps:
//  1. Walk vertices in id order; skip unreached tails.
//  2. Walk each adjacency list in insertion order.
//  3. Keep arcs crossing to the unreached side that were saturated.
//
// Complexity: O(V + E).
func extractCut(g *core.Graph, levels *bfs.Result) (cut []core.Arc, capacity int64) {
	for u := 0; u < g.VertexCount(); u++ {
		if !levels.Reached(u) {
			continue
		}
		for c := g.EdgesFrom(u); c.Valid(); c.Advance() {
			e := c.Edge()
			if levels.Reached(e.To) || e.Weight != 0 || e.Initial <= 0 {
				continue
			}
			cut = append(cut, core.Arc{From: u, To: e.To})
			capacity += e.Initial
		}
	}

	return cut, capacity
}
