package gridgraph

// NewRoom classifies every tile of a size×size room once.
//
// Classification priority (first match wins):
//
//	WALL > EXIT > NEAR_EXIT > CENTER > BUILDABLE
//
// EXIT is any non-wall tile of the outer ring. NEAR_EXIT (only with the
// default ExitBuffer) is a tile within two cells of the boundary having
// at least one 8-connected EXIT neighbour.
//
// Returns ErrInvalidSize if size ≤ 0, ErrNilTerrain if t is nil.
// Complexity: O(size²) time and memory; each predicate is called once per tile.
func NewRoom(size int, t Terrain, opts ...RoomOption) (*Room, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if t == nil {
		return nil, ErrNilTerrain
	}
	o := DefaultRoomOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Room{
		Size:       size,
		ExitBuffer: o.ExitBuffer,
		states:     make([]TileState, size*size),
	}
	center := make([]bool, size*size)

	// Pass 1: walls, exits and raw center flags.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Position{X: x, Y: y}
			i := r.Index(p)
			switch {
			case t.IsWall(p):
				r.states[i] = Wall
			case r.IsOnEdge(p):
				r.states[i] = Exit
			default:
				r.states[i] = Buildable
				center[i] = t.IsCenter(p)
			}
		}
	}

	// Pass 2: near-exit needs every exit known first.
	for i, s := range r.states {
		if s != Buildable {
			continue
		}
		p := r.Position(i)
		switch {
		case r.ExitBuffer && r.ring(p) < 2 && r.touches(p, Exit):
			r.states[i] = NearExit
		case center[i]:
			r.states[i] = Center
		}
	}

	return r, nil
}

// InBounds reports whether p lies within the room.
// Complexity: O(1).
func (r *Room) InBounds(p Position) bool {
	return p.X >= 0 && p.X < r.Size && p.Y >= 0 && p.Y < r.Size
}

// Index maps p to a row-major index: x + size*y.
// Complexity: O(1).
func (r *Room) Index(p Position) int {
	return p.X + r.Size*p.Y
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (r *Room) Position(idx int) Position {
	return Position{X: idx % r.Size, Y: idx / r.Size}
}

// State returns the classification of p. Positions outside the room
// report Wall.
func (r *Room) State(p Position) TileState {
	if !r.InBounds(p) {
		return Wall
	}

	return r.states[r.Index(p)]
}

// IsOnEdge reports whether p is in the outer ring, one cell inside the
// virtual boundary surrounding the room.
func (r *Room) IsOnEdge(p Position) bool {
	return r.InBounds(p) && r.ring(p) == 0
}

// IsExit reports whether p is a non-wall outer-ring tile.
func (r *Room) IsExit(p Position) bool { return r.State(p) == Exit }

// IsNearExit reports whether p is kept free because it touches an exit.
func (r *Room) IsNearExit(p Position) bool { return r.State(p) == NearExit }

// IsBuildable reports whether a wall may be proposed at p.
func (r *Room) IsBuildable(p Position) bool { return r.State(p) == Buildable }

// Neighbors returns the in-bounds 8-connected neighbours of p in scan order.
func (r *Room) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		q := Position{X: p.X + d[0], Y: p.Y + d[1]}
		if r.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Positions lists every tile in state s, row-major.
func (r *Room) Positions(s TileState) []Position {
	var out []Position
	for i, st := range r.states {
		if st == s {
			out = append(out, r.Position(i))
		}
	}

	return out
}

// Count returns how many tiles are in state s.
func (r *Room) Count(s TileState) int {
	n := 0
	for _, st := range r.states {
		if st == s {
			n++
		}
	}

	return n
}

// ring is the distance of p to the nearest side of the room.
func (r *Room) ring(p Position) int {
	return min(p.X, p.Y, r.Size-1-p.X, r.Size-1-p.Y)
}

// touches reports whether any 8-neighbour of p is in state s.
func (r *Room) touches(p Position, s TileState) bool {
	for _, d := range neighborOffsets {
		q := Position{X: p.X + d[0], Y: p.Y + d[1]}
		if r.InBounds(q) && r.states[r.Index(q)] == s {
			return true
		}
	}

	return false
}
