package gridgraph

import "errors"

var (
	// ErrInvalidSize indicates a room size that is not strictly positive.
	ErrInvalidSize = errors.New("gridgraph: room size must be positive")
	// ErrNilTerrain indicates a nil Terrain was supplied.
	ErrNilTerrain = errors.New("gridgraph: terrain is nil")
	// ErrEmptyGrid indicates an ASCII terrain with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonSquare indicates an ASCII terrain whose rows are not all as long as the row count.
	ErrNonSquare = errors.New("gridgraph: terrain must be square")
	// ErrUnknownGlyph indicates an ASCII terrain cell outside the known glyph set.
	ErrUnknownGlyph = errors.New("gridgraph: unknown terrain glyph")
)
