// Package walls finds the fewest tiles to fortify so that a room's
// center region is cut off from every exit.
//
// A room (gridgraph.Room) is turned into a vertex-split flow network:
//
//	SOURCE → in(p)          p touches the center
//	in(p)  → out(p)         capacity 1, p BUILDABLE
//	out(p) → in(q)          q BUILDABLE 8-neighbour of p
//	out(p) → TARGET         p touches a near-exit tile
//
// Only in→out edges are finite, so the minimum s–t cut consists of tile
// edges alone and its size is the wall count. The cut is read from the
// source side of the final residual graph, which is the same for every
// maximum flow; results are therefore deterministic.
//
// Entry points:
//
//	Solve / SolveDetailed   classify + build + cut in one call
//	SolveRoom               reuse an already classified room
//	SolveAll                many independent rooms, bounded concurrency
//	Verify                  check safety and separation of any wall set
//
// Every call builds and discards its own network; nothing is shared
// between calls.
package walls
