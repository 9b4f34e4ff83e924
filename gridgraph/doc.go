// Package gridgraph treats a square room of tiles as the input of a
// wall-placement problem.
//
// What:
//
//   - Terrain is the caller's capability: IsWall and IsCenter, pure and
//     total over the room.
//   - NewRoom classifies every tile once into WALL, EXIT, NEAR_EXIT,
//     CENTER or BUILDABLE (first match wins, in that order).
//   - FindLeak / Sealed check post-hoc whether a set of proposed walls
//     separates the center from every exit (8-connectivity).
//   - ParseTerrain / ReadTerrain / Render convert rooms to and from the
//     ASCII form used in fixtures: 'W' wall, 'C' center, '.' floor,
//     'o' proposed wall.
//
// Geometry:
//
//   - The outer ring (distance 0 from a side) is the edge. Its non-wall
//     tiles are exits.
//   - With the default ExitBuffer, a non-wall tile within two cells of
//     the boundary that touches an exit is NEAR_EXIT: walls are never
//     proposed there and reaching it counts as reaching the outside.
//   - WithoutExitBuffer restores the plain layout in which such tiles
//     are buildable.
//
// Complexity:
//
//   - NewRoom:  O(W×H), Memory: O(W×H).
//   - FindLeak: O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidSize: size ≤ 0.
//   - ErrNilTerrain: nil Terrain.
//   - ErrEmptyGrid, ErrNonSquare, ErrUnknownGlyph: malformed ASCII terrain.
package gridgraph
