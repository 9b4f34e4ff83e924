// File: methods_adjacent.go
// Role: Outgoing-edge traversal: Degree, EdgesFrom and the restartable Cursor.
// Determinism:
//   - A Cursor walks u's adjacency list in insertion order.
//   - Edges appended to u's list while a Cursor is open are visited by it.
// AI-HINT (file):
//   - Cursor reads through the Graph on every call; it never snapshots
//     the list, so AddWeight on other vertices is always safe mid-walk.

package core

// Degree returns the number of outgoing edges of u (0 for unknown ids).
func (g *Graph) Degree(u Vertex) int {
	if !g.HasVertex(u) {
		return 0
	}

	return len(g.adjacency[u])
}

// Cursor is an explicit position over the outgoing edges of one vertex.
//
// Typical walk:
//
//	for c := g.EdgesFrom(u); c.Valid(); c.Advance() {
//	    e := c.Edge()
//	    ...
//	}
//
// Flow engines keep one Cursor per vertex for a whole phase so that a
// vertex resumes at the first edge that may still carry flow.
type Cursor struct {
	g    *Graph
	from Vertex
	pos  int
}

// EdgesFrom returns a Cursor positioned at the first outgoing edge of u.
// For an unknown id the Cursor is immediately exhausted.
func (g *Graph) EdgesFrom(u Vertex) *Cursor {
	return &Cursor{g: g, from: u}
}

// From returns the tail vertex this Cursor walks.
func (c *Cursor) From() Vertex {
	return c.from
}

// Valid reports whether the Cursor points at an edge.
func (c *Cursor) Valid() bool {
	return c.pos < c.g.Degree(c.from)
}

// Edge returns a copy of the current edge. Call only while Valid.
func (c *Cursor) Edge() Edge {
	return c.g.adjacency[c.from][c.pos]
}

// Adjust adds delta to the current edge's weight in place, leaving its
// Initial capacity untouched. Call only while Valid.
func (c *Cursor) Adjust(delta int64) {
	c.g.adjacency[c.from][c.pos].Weight += delta
}

// Advance moves to the next edge.
func (c *Cursor) Advance() {
	c.pos++
}

// Reset rewinds the Cursor to the first edge.
func (c *Cursor) Reset() {
	c.pos = 0
}
