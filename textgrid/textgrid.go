package textgrid

import (
	"fmt"
	"slices"
	"strings"
)

// Parse builds a Grid from text. Each line is trimmed of surrounding
// whitespace, blank lines are dropped, and the remaining lines become rows.
// Returns a *FormatError wrapping ErrNonRectangular if any row's length
// differs from the first row's. Empty or all-blank text yields a grid with
// zero rows.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	var rows [][]rune
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}

	return build(rows)
}

// FromRows constructs a Grid from pre-split rows. It deep-copies the input to
// ensure immutability.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]rune) (*Grid, error) {
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = slices.Clone(row)
	}

	return build(cells)
}

// build validates rectangularity and takes ownership of rows.
func build(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, NewFormatError(y, fmt.Errorf("%w: got %d columns, want %d", ErrNonRectangular, len(row), w))
		}
	}

	return &Grid{rows: rows, width: w}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the number of columns, 0 for an empty grid.
func (g *Grid) Cols() int {
	return g.width
}

// InBounds reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < len(g.rows)
}

// At returns the rune at (col,row). The boolean is false for any coordinate
// outside the grid; At never panics.
// Complexity: O(1).
func (g *Grid) At(col, row int) (rune, bool) {
	if !g.InBounds(col, row) {
		return 0, false
	}

	return g.rows[row][col], true
}

// Cell is At for a Coord.
func (g *Grid) Cell(c Coord) (rune, bool) {
	return g.At(c.Col, c.Row)
}

// Row returns a copy of row y, or false if the row does not exist.
func (g *Grid) Row(y int) ([]rune, bool) {
	if y < 0 || y >= len(g.rows) {
		return nil, false
	}

	return slices.Clone(g.rows[y]), true
}

// Substring returns the text covered by span on row y, or false if the row
// does not exist. The caller guarantees span lies within [0, Cols()).
func (g *Grid) Substring(y int, span Span) (string, bool) {
	if y < 0 || y >= len(g.rows) {
		return "", false
	}

	return string(g.rows[y][span.Start:span.End]), true
}

// Index maps c to a row-major index: Row*Cols() + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord. It reports false for
// an index outside the grid, including every index of an empty grid.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (Coord, bool) {
	if g.width == 0 || idx < 0 || idx >= len(g.rows)*g.width {
		return Coord{}, false
	}

	return Coord{Col: idx % g.width, Row: idx / g.width}, true
}

// String re-joins the rows with newlines.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}

	return b.String()
}
