package walls

import (
	"github.com/katalvlaran/wallcut/core"
	"github.com/katalvlaran/wallcut/gridgraph"
)

// Build turns a classified room into its flow network.
//
// For every BUILDABLE tile p:
//
//	in(p) → out(p)          capacity 1 (the tile may join the cut once)
//
// and for each in-bounds 8-neighbour q of p:
//
//	WALL      nothing
//	EXIT      nothing; without exit buffer: out(p) → TARGET (unique)
//	CENTER    SOURCE → in(p)  (unique)
//	NEAR_EXIT out(p) → TARGET (unique)
//	BUILDABLE out(p) → in(q)
//
// Every edge except in→out carries Infinity(size).
//
// Complexity: O(size²·8) time, O(size²) memory.
func Build(room *gridgraph.Room) (*Network, error) {
	if room == nil {
		return nil, ErrNilRoom
	}
	n := &Network{
		Room:     room,
		Graph:    core.NewGraph(VertexCount(room.Size), core.WithDegreeHint(9)),
		Infinity: Infinity(room.Size),
	}
	for _, p := range room.Positions(gridgraph.Buildable) {
		if err := n.wire(p); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// wire adds the vertex-capacity edge of p and its neighbour edges.
func (n *Network) wire(p gridgraph.Position) error {
	g := n.Graph
	in, out := n.In(p), n.Out(p)
	if err := g.CreateEdge(in, out, 1); err != nil {
		return err
	}

	for _, q := range n.Room.Neighbors(p) {
		var err error
		switch n.Room.State(q) {
		case gridgraph.Wall:
		case gridgraph.Exit:
			if !n.Room.ExitBuffer {
				_, err = g.CreateEdgeUnique(out, Target, n.Infinity)
			}
		case gridgraph.Center:
			_, err = g.CreateEdgeUnique(Source, in, n.Infinity)
		case gridgraph.NearExit:
			_, err = g.CreateEdgeUnique(out, Target, n.Infinity)
		default:
			err = g.CreateEdge(out, n.In(q), n.Infinity)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
