package walls

import (
	"fmt"

	"github.com/katalvlaran/wallcut/gridgraph"
)

// Verify checks a proposed wall set against room:
//   - every position is BUILDABLE (ErrUnsafePosition otherwise);
//   - with the positions added as walls, no 8-connected path of non-wall
//     tiles joins a CENTER tile to an EXIT (ErrNotSeparated otherwise,
//     with the leaking path in the message).
//
// Complexity: O(size²).
func Verify(room *gridgraph.Room, positions []gridgraph.Position) error {
	if room == nil {
		return ErrNilRoom
	}
	for _, p := range positions {
		if s := room.State(p); s != gridgraph.Buildable {
			return fmt.Errorf("%w: %v is %s", ErrUnsafePosition, p, s)
		}
	}
	if path := room.FindLeak(positions); path != nil {
		return fmt.Errorf("%w: %v", ErrNotSeparated, path)
	}

	return nil
}
