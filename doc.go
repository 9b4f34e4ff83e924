// Package wallcut plans the fewest fortified tiles that cut a room's
// center region off from every exit, using a vertex-split flow network
// and a minimum s–t cut.
//
// 🚀 What is wallcut?
//
//	A small, deterministic library built from layered packages:
//		• core      – dense integer-indexed flow network storage
//		• bfs       – residual-graph level assignment
//		• flow      – Dinic maximum flow and minimum cut extraction
//		• gridgraph – room classification, leak search, ASCII I/O
//		• walls     – network construction, solving, verification, batches
//
// Quick ASCII example (C center, W wall, o proposed wall):
//
//	.......
//	.......
//	..ooo..
//	..oCo..
//	..ooo..
//	.......
//	.......
//
// The outer ring is made of exits; the ring next to it is kept free.
// Eight walls are the minimum to seal the center.
//
// Usage:
//
//	positions, err := walls.Solve(size, terrain, walls.WithVerify())
//
// The cmd/wallcut command wraps the same call for text room files.
//
//	go install github.com/katalvlaran/wallcut/cmd/wallcut@latest
package wallcut
