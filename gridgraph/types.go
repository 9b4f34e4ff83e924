// Package gridgraph defines core types, options, and sentinel errors
// for the room grids wallcut operates on.
package gridgraph

import "fmt"

// Position is a tile coordinate. It is valid inside a room of size n
// when 0 ≤ X,Y < n.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// TileState is the derived, mutually exclusive classification of a tile.
type TileState uint8

const (
	// Wall tiles are impassable and never part of the network.
	Wall TileState = iota
	// Buildable tiles are split into an in/out vertex pair.
	Buildable
	// Center tiles form the region to be sealed off.
	Center
	// NearExit tiles sit next to an exit; walls are never proposed there.
	NearExit
	// Exit tiles are non-wall openings in the outer ring.
	Exit
)

var tileStateNames = [...]string{
	Wall:      "wall",
	Buildable: "buildable",
	Center:    "center",
	NearExit:  "near-exit",
	Exit:      "exit",
}

// String returns the lower-case state name.
func (s TileState) String() string {
	if int(s) < len(tileStateNames) {
		return tileStateNames[s]
	}

	return fmt.Sprintf("TileState(%d)", uint8(s))
}

// Terrain is the caller-supplied capability describing a room.
// Both queries must be pure and total over [0,size)², and no position
// may be both a wall and center.
type Terrain interface {
	IsWall(p Position) bool
	IsCenter(p Position) bool
}

// TerrainFuncs adapts two predicate functions to Terrain.
// A nil function answers false everywhere.
type TerrainFuncs struct {
	Wall   func(Position) bool
	Center func(Position) bool
}

// IsWall implements Terrain.
func (t TerrainFuncs) IsWall(p Position) bool {
	return t.Wall != nil && t.Wall(p)
}

// IsCenter implements Terrain.
func (t TerrainFuncs) IsCenter(p Position) bool {
	return t.Center != nil && t.Center(p)
}

// RoomOptions contains tunable parameters for tile classification.
type RoomOptions struct {
	// ExitBuffer enables the NearExit state: non-wall tiles within two
	// cells of the boundary that touch an exit are kept free of walls.
	ExitBuffer bool
}

// RoomOption mutates RoomOptions.
type RoomOption func(*RoomOptions)

// DefaultRoomOptions returns ExitBuffer=true.
func DefaultRoomOptions() RoomOptions {
	return RoomOptions{ExitBuffer: true}
}

// WithoutExitBuffer disables the NearExit state. Tiles next to an exit
// become buildable and connect straight to the exits instead.
func WithoutExitBuffer() RoomOption {
	return func(o *RoomOptions) { o.ExitBuffer = false }
}

// neighborOffsets lists the 8-connected neighbour deltas in scan order
// (column-major over dx, then dy).
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Room is a classified square grid. It is immutable once built.
type Room struct {
	Size       int
	ExitBuffer bool
	states     []TileState
}
