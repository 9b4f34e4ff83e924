package gridgraph

// FindLeak searches for an 8-connected path of passable tiles from any
// CENTER tile to any EXIT tile, treating every position in blocked as an
// additional wall. It returns the path (center first, exit last), or nil
// when the center is sealed off.
//
// Passable means "not Wall and not blocked"; NearExit and Buildable
// tiles are both passable.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and predecessor links.
func (r *Room) FindLeak(blocked []Position) []Position {
	total := r.Size * r.Size
	closed := make([]bool, total)
	for _, p := range blocked {
		if r.InBounds(p) {
			closed[r.Index(p)] = true
		}
	}

	prev := make([]int, total)
	seen := make([]bool, total)
	var queue []int
	for i, s := range r.states {
		if s == Center && !closed[i] {
			seen[i] = true
			prev[i] = -1
			queue = append(queue, i)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if r.states[u] == Exit {
			return r.trace(prev, u)
		}
		up := r.Position(u)
		for _, d := range neighborOffsets {
			q := Position{X: up.X + d[0], Y: up.Y + d[1]}
			if !r.InBounds(q) {
				continue
			}
			vi := r.Index(q)
			if seen[vi] || closed[vi] || r.states[vi] == Wall {
				continue
			}
			seen[vi] = true
			prev[vi] = u
			queue = append(queue, vi)
		}
	}

	return nil
}

// Sealed reports whether no CENTER tile reaches an EXIT once blocked
// tiles are added as walls.
func (r *Room) Sealed(blocked []Position) bool {
	return r.FindLeak(blocked) == nil
}

// trace rebuilds the predecessor chain ending at idx.
func (r *Room) trace(prev []int, idx int) []Position {
	var rev []Position
	for i := idx; i >= 0; i = prev[i] {
		rev = append(rev, r.Position(i))
	}
	path := make([]Position, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}

	return path
}
