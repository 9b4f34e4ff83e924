package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ASCII glyphs understood by ParseTerrain and produced by Render.
const (
	GlyphFloor    = '.'
	GlyphWall     = 'W'
	GlyphCenter   = 'C'
	GlyphProposed = 'o'
)

// floorGlyphs are read as plain floor. 'o' lets a rendered layout be
// parsed back; 'e' and 'n' annotate exits and near-exit tiles in fixtures.
const floorGlyphs = ".oen"

// ASCIITerrain is a Terrain backed by a square block of text rows,
// row y holding tiles (0,y)…(n-1,y).
type ASCIITerrain struct {
	rows []string
}

// ParseTerrain validates rows and wraps them as a Terrain.
// Returns ErrEmptyGrid, ErrNonSquare or ErrUnknownGlyph.
func ParseTerrain(rows []string) (*ASCIITerrain, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, y, len(row), len(rows))
		}
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c != GlyphWall && c != GlyphCenter && !strings.ContainsRune(floorGlyphs, rune(c)) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, c, x, y)
			}
		}
	}

	return &ASCIITerrain{rows: append([]string(nil), rows...)}, nil
}

// ReadTerrain parses one row per line from rd, ignoring blank lines and
// surrounding whitespace.
func ReadTerrain(rd io.Reader) (*ASCIITerrain, error) {
	var rows []string
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read terrain: %w", err)
	}

	return ParseTerrain(rows)
}

// Size returns the side length of the terrain.
func (t *ASCIITerrain) Size() int {
	return len(t.rows)
}

// IsWall implements Terrain.
func (t *ASCIITerrain) IsWall(p Position) bool {
	return t.at(p) == GlyphWall
}

// IsCenter implements Terrain.
func (t *ASCIITerrain) IsCenter(p Position) bool {
	return t.at(p) == GlyphCenter
}

func (t *ASCIITerrain) at(p Position) byte {
	if p.Y < 0 || p.Y >= len(t.rows) || p.X < 0 || p.X >= len(t.rows[p.Y]) {
		return 0
	}

	return t.rows[p.Y][p.X]
}

// Render draws a size×size room: proposed walls as 'o', then walls 'W',
// center 'C' and everything else '.'. Rows are joined by "\n".
func Render(size int, t Terrain, proposed []Position) string {
	marked := make(map[Position]struct{}, len(proposed))
	for _, p := range proposed {
		marked[p] = struct{}{}
	}

	var sb strings.Builder
	sb.Grow(size * (size + 1))
	for y := 0; y < size; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < size; x++ {
			p := Position{X: x, Y: y}
			_, isProposed := marked[p]
			switch {
			case isProposed:
				sb.WriteByte(GlyphProposed)
			case t.IsWall(p):
				sb.WriteByte(GlyphWall)
			case t.IsCenter(p):
				sb.WriteByte(GlyphCenter)
			default:
				sb.WriteByte(GlyphFloor)
			}
		}
	}

	return sb.String()
}
