package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wallcut/bfs"
	"github.com/katalvlaran/wallcut/core"
)

// dinic holds the per-call engine state. It owns g for the duration of
// the call and mutates residual weights in place.
type dinic struct {
	g       *core.Graph
	target  core.Vertex
	levels  *bfs.Result
	cursors []*core.Cursor
}

// MinCut computes a maximum flow from source to sink in g using Dinic's
// algorithm (level graph + blocking flows) and returns the minimum cut
// of the final residual graph.
//
// g is modified in place: on return every edge's Weight is its residual
// capacity and reverse edges exist for every arc that carried flow.
//
// Steps:
//  1. Apply options; validate g, source and sink (O(1)).
//  2. Reject negative residual weights (O(V + E)).
//  3. Repeat phases:
//     a. BFS levels from source over Weight > 0 edges (O(V + E)).
//     b. If sink unreached, stop: the flow is maximum.
//     c. Reset one Cursor per vertex.
//     d. Push flow along strictly level-increasing paths until a DFS
//     returns 0. Dead ends are pruned from the level graph.
//  4. Extract the cut from the last BFS (O(V + E)).
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V) beyond the graph (levels, cursors, recursion).
func MinCut(g *core.Graph, source, sink core.Vertex, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: %d", ErrSinkNotFound, sink)
	}
	if source == sink {
		return nil, ErrSameVertex
	}
	if err := checkCapacities(g); err != nil {
		return nil, err
	}

	d := &dinic{
		g:       g,
		target:  sink,
		cursors: make([]*core.Cursor, g.VertexCount()),
	}
	res := &Result{}
	for {
		levels, err := bfs.Levels(g, source)
		if err != nil {
			return nil, err
		}
		d.levels = levels
		if !levels.Reached(sink) {
			break
		}
		if o.MaxPhases > 0 && res.Phases >= o.MaxPhases {
			return nil, fmt.Errorf("%w: %d phases", ErrPhaseLimit, res.Phases)
		}
		res.Phases++

		for v := range d.cursors {
			d.cursors[v] = g.EdgesFrom(v)
		}
		for {
			pushed, err := d.push(source, math.MaxInt64)
			if err != nil {
				return nil, err
			}
			if pushed == 0 {
				break
			}
			res.MaxFlow += pushed
			res.Augmentations++
			o.Logger.Debug("flow: augmented", "phase", res.Phases, "pushed", pushed, "total", res.MaxFlow)
		}
		o.Logger.Debug("flow: phase done", "phase", res.Phases, "distance", levels.Level(sink), "total", res.MaxFlow)
	}

	res.Cut, res.CutCapacity = extractCut(g, d.levels)
	res.SourceSide = d.levels.Count()
	o.Logger.Debug("flow: min cut", "flow", res.MaxFlow, "arcs", len(res.Cut), "phases", res.Phases)

	return res, nil
}

// MaxFlow is MinCut reduced to the flow value.
func MaxFlow(g *core.Graph, source, sink core.Vertex, opts ...Option) (int64, error) {
	res, err := MinCut(g, source, sink, opts...)
	if err != nil {
		return 0, err
	}

	return res.MaxFlow, nil
}

// push sends at most limit units from u to the sink along edges whose
// head sits exactly one level deeper, and returns the amount sent.
// A vertex with no viable edge left is pruned for the rest of the phase.
// Recursion depth is bounded by the sink's level.
func (d *dinic) push(u core.Vertex, limit int64) (int64, error) {
	if u == d.target {
		return limit, nil
	}
	next := d.levels.Level(u) + 1
	c := d.cursors[u]
	for ; c.Valid(); c.Advance() {
		e := c.Edge()
		if e.Weight <= 0 || d.levels.Level(e.To) != next {
			continue
		}
		pushed, err := d.push(e.To, min(limit, e.Weight))
		if err != nil {
			return 0, err
		}
		if pushed > 0 {
			// Stay on this edge: it may still have capacity left.
			c.Adjust(-pushed)
			if err := d.g.AddWeight(e.To, u, pushed); err != nil {
				return 0, err
			}
			return pushed, nil
		}
	}
	d.levels.Prune(u)

	return 0, nil
}
