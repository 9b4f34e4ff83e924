package walls

import (
	"fmt"

	"github.com/katalvlaran/wallcut/core"
	"github.com/katalvlaran/wallcut/gridgraph"
)

// Reserved vertex ids of every wall network.
const (
	Source core.Vertex = 0
	Target core.Vertex = 1

	// tileBase is the first id of the out-vertex pool.
	tileBase = 2
)

// VertexCount returns the number of vertices of the network for a
// size×size room: SOURCE, TARGET and an in/out pair per tile.
func VertexCount(size int) int {
	return tileBase + 2*size*size
}

// Infinity returns the finite "infinite" capacity used for every edge
// other than a tile's in→out edge. It must exceed any feasible flow;
// each tile forwards at most one unit, so 4·size never saturates.
func Infinity(size int) int64 {
	return int64(4 * size)
}

// Network is a room turned into a vertex-split flow network.
// Tile p owns out-vertex tileBase+idx(p) and in-vertex
// tileBase+size²+idx(p), with idx(p) = x + size*y.
type Network struct {
	Room     *gridgraph.Room
	Graph    *core.Graph
	Infinity int64
}

// Out returns the out-vertex of tile p.
func (n *Network) Out(p gridgraph.Position) core.Vertex {
	return tileBase + n.Room.Index(p)
}

// In returns the in-vertex of tile p.
func (n *Network) In(p gridgraph.Position) core.Vertex {
	return tileBase + n.tiles() + n.Room.Index(p)
}

func (n *Network) tiles() int {
	return n.Room.Size * n.Room.Size
}

// Decode maps a cut arc back to its tile. Only a tile's in→out arc is
// decodable; anything else is a construction defect and yields
// ErrInvalidCut.
func (n *Network) Decode(a core.Arc) (gridgraph.Position, error) {
	tiles := n.tiles()
	idx := a.From - tileBase - tiles
	if idx < 0 || idx >= tiles || a.To != a.From-tiles {
		return gridgraph.Position{}, fmt.Errorf("%w: arc %v is not a tile edge", ErrInvalidCut, a)
	}

	return n.Room.Position(idx), nil
}

// Positions decodes every arc of a cut, preserving order.
func (n *Network) Positions(cut []core.Arc) ([]gridgraph.Position, error) {
	out := make([]gridgraph.Position, 0, len(cut))
	for _, a := range cut {
		p, err := n.Decode(a)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
