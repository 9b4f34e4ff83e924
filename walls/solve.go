package walls

import (
	"fmt"

	"github.com/katalvlaran/wallcut/flow"
	"github.com/katalvlaran/wallcut/gridgraph"
)

// Plan is the detailed outcome of a solve.
//
// Positions are in discovery order (row-major by construction).
// MaxFlow always equals len(Positions).
type Plan struct {
	Room      *gridgraph.Room
	Positions []gridgraph.Position
	MaxFlow   int64
	Phases    int
}

// Solve returns a minimum set of BUILDABLE tiles whose fortification
// separates every CENTER tile from every EXIT of a size×size room.
//
// terrain must be pure and total over [0,size)², and no tile may be both
// wall and center. The result is deterministic; an empty result means
// the center is already enclosed (or nothing buildable touches it).
//
// If the center lies within the near-exit band of an exit with no
// buildable tile in between, the result may not truly separate the
// regions. Use WithVerify to turn that into ErrNotSeparated.
func Solve(size int, terrain gridgraph.Terrain, opts ...Option) ([]gridgraph.Position, error) {
	plan, err := SolveDetailed(size, terrain, opts...)
	if err != nil {
		return nil, err
	}

	return plan.Positions, nil
}

// SolveDetailed is Solve returning the full Plan.
func SolveDetailed(size int, terrain gridgraph.Terrain, opts ...Option) (*Plan, error) {
	o := buildOptions(opts)
	room, err := gridgraph.NewRoom(size, terrain, o.roomOptions()...)
	if err != nil {
		return nil, err
	}

	return solveRoom(room, o)
}

// SolveRoom solves an already classified room. The room's own
// ExitBuffer setting wins over WithoutExitBuffer.
func SolveRoom(room *gridgraph.Room, opts ...Option) (*Plan, error) {
	return solveRoom(room, buildOptions(opts))
}

// solveRoom builds the network, runs the engine and decodes the cut.
//
// Steps:
//  1. Build the vertex-split network (O(size²)).
//  2. flow.MinCut from Source to Target.
//  3. Decode each cut arc to its tile.
//  4. Optionally Verify.
func solveRoom(room *gridgraph.Room, o Options) (*Plan, error) {
	net, err := Build(room)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("walls: network built",
		"size", room.Size,
		"buildable", room.Count(gridgraph.Buildable),
		"vertices", net.Graph.VertexCount(),
		"edges", net.Graph.EdgeCount())

	res, err := flow.MinCut(net.Graph, Source, Target, o.flowOptions()...)
	if err != nil {
		return nil, fmt.Errorf("walls: min cut: %w", err)
	}
	positions, err := net.Positions(res.Cut)
	if err != nil {
		return nil, err
	}
	if int64(len(positions)) != res.MaxFlow {
		return nil, fmt.Errorf("%w: %d tiles for flow %d", ErrInvalidCut, len(positions), res.MaxFlow)
	}

	plan := &Plan{
		Room:      room,
		Positions: positions,
		MaxFlow:   res.MaxFlow,
		Phases:    res.Phases,
	}
	o.Logger.Debug("walls: solved", "walls", len(positions), "phases", res.Phases)

	if o.Verify {
		if err := Verify(room, positions); err != nil {
			return nil, err
		}
	}

	return plan, nil
}
