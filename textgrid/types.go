package textgrid

// Coord is a (column, row) position. Both components are signed so that
// positions just outside the grid, such as (-1, 0), can be formed and tested.
type Coord struct {
	Col, Row int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Col: c.Col + d.Col, Row: c.Row + d.Row}
}

// Span is a half-open column interval [Start, End).
type Span struct {
	Start int // first column, inclusive
	End   int // last column, exclusive
}

// Len returns the number of columns covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Grid is an immutable rectangular matrix of runes.
// rows[y][x] holds the rune at column x of row y; every row has width runes.
type Grid struct {
	rows  [][]rune
	width int
}

// clockwise lists neighbor offsets starting at the top-left and turning
// clockwise: TL, T, TR, R, BR, B, BL, L.
var clockwise = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{1, 0},
	{1, 1}, {0, 1}, {-1, 1},
	{-1, 0},
}
