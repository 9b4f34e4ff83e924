package walls

import "errors"

var (
	// ErrNilRoom indicates Build or SolveRoom received a nil room.
	ErrNilRoom = errors.New("walls: room is nil")
	// ErrInvalidCut indicates a cut arc that does not decode to a tile.
	// It always points at a network construction defect.
	ErrInvalidCut = errors.New("walls: invalid cut edge")
	// ErrNotSeparated indicates proposed walls leave a path from the
	// center to an exit.
	ErrNotSeparated = errors.New("walls: center not separated from exits")
	// ErrUnsafePosition indicates a proposed wall on a non-buildable tile.
	ErrUnsafePosition = errors.New("walls: position is not buildable")
)
