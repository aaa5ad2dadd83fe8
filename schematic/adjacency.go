package schematic

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/schematic/textgrid"
	"github.com/katalvlaran/schematic/tokens"
)

// IsSymbol reports whether r is a symbol: not a base-10 digit, not the '.'
// separator, and not a line terminator. Both adjacency modes use it.
func IsSymbol(r rune) bool {
	return !tokens.IsDigit(r) && r != '.' && r != '\n' && r != '\r'
}

// HasAdjacentSymbol reports whether any cell of tok has a symbol among its
// neighbors. It stops at the first match.
// Complexity: O(8×len(tok)).
func HasAdjacentSymbol(g *textgrid.Grid, tok tokens.Token) bool {
	for c := range tok.Cells() {
		for v := range g.NeighborValues(c) {
			if IsSymbol(v) {
				return true
			}
		}
	}

	return false
}

// AdjacentSymbols returns the distinct positions of symbols adjacent to any
// cell of tok, in the order first encountered while walking tok's cells left
// to right and each cell's neighbors clockwise from top-left. Two cells
// holding the same symbol character are still two positions.
// Complexity: O(8×len(tok)).
func AdjacentSymbols(g *textgrid.Grid, tok tokens.Token) []textgrid.Coord {
	var out []textgrid.Coord
	seen := make(map[textgrid.Coord]struct{})
	for c := range tok.Cells() {
		for pos, v := range g.Neighbors(c) {
			if !IsSymbol(v) {
				continue
			}
			if _, ok := seen[pos]; ok {
				continue
			}
			seen[pos] = struct{}{}
			out = append(out, pos)
		}
	}

	return out
}

// Value parses the text of tok as an unsigned base-10 integer. Failure is a
// *textgrid.FormatError wrapping ErrBadNumber.
func Value(g *textgrid.Grid, tok tokens.Token) (uint64, error) {
	s, ok := g.Substring(tok.Row, tok.Span)
	if !ok {
		return 0, textgrid.NewFormatError(tok.Row, fmt.Errorf("%w: row does not exist", ErrBadNumber))
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, textgrid.NewFormatError(tok.Row, fmt.Errorf("%w %q at columns [%d,%d): %v",
			ErrBadNumber, s, tok.Span.Start, tok.Span.End, err))
	}

	return n, nil
}
