package schematic

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/schematic/textgrid"
	"github.com/katalvlaran/schematic/tokens"
)

// PartNumber is a token together with its numeric value and the distinct
// symbol positions adjacent to it.
type PartNumber struct {
	tokens.Token
	Value   uint64
	Symbols []textgrid.Coord
}

// IsPart reports whether the token touches at least one symbol.
func (p PartNumber) IsPart() bool {
	return len(p.Symbols) > 0
}

// Schematic is the grouped-adjacency view of a grid: every token with its
// adjacent symbols, and every symbol with its character.
// It is immutable once built by Analyze.
type Schematic struct {
	grid    *textgrid.Grid
	numbers []PartNumber
	symbols map[textgrid.Coord]rune
}

// SumPartNumbers returns the sum of every token adjacent to at least one
// symbol, using the short-circuiting any-adjacent check. Only relevant tokens
// are parsed.
// Complexity: O(W×H×8).
func SumPartNumbers(g *textgrid.Grid, opts ...Option) (uint64, error) {
	if g == nil {
		return 0, ErrGridNil
	}
	o := gatherOptions(opts)

	sums := make([]uint64, g.Rows())
	err := forEachRow(o, g, func(y int) error {
		var sum uint64
		n := 0
		for tok := range tokens.InRow(g, y) {
			if !HasAdjacentSymbol(g, tok) {
				continue
			}
			v, err := Value(g, tok)
			if err != nil {
				return err
			}
			sum += v
			n++
		}
		sums[y] = sum
		o.log.Debug("row scanned", zap.Int("row", y), zap.Int("parts", n), zap.Uint64("sum", sum))
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, s := range sums {
		total += s
	}

	return total, nil
}

// Analyze builds the grouped-adjacency view of g. Every token is parsed,
// including tokens with no adjacent symbol, so an unparsable number that
// touches nothing fails Analyze with ErrBadNumber even though SumPartNumbers
// skips it and succeeds.
// Complexity: O(W×H×8) time, O(W×H) memory.
func Analyze(g *textgrid.Grid, opts ...Option) (*Schematic, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := gatherOptions(opts)

	perRow := make([][]PartNumber, g.Rows())
	err := forEachRow(o, g, func(y int) error {
		var row []PartNumber
		for tok := range tokens.InRow(g, y) {
			v, err := Value(g, tok)
			if err != nil {
				return err
			}
			row = append(row, PartNumber{
				Token:   tok,
				Value:   v,
				Symbols: AdjacentSymbols(g, tok),
			})
		}
		perRow[y] = row
		o.log.Debug("row scanned", zap.Int("row", y), zap.Int("tokens", len(row)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s := &Schematic{
		grid:    g,
		numbers: slices.Concat(perRow...),
		symbols: make(map[textgrid.Coord]rune),
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if r, _ := g.At(x, y); IsSymbol(r) {
				s.symbols[textgrid.Coord{Col: x, Row: y}] = r
			}
		}
	}
	o.log.Debug("schematic analyzed",
		zap.Int("tokens", len(s.numbers)),
		zap.Int("symbols", len(s.symbols)))

	return s, nil
}

// Grid returns the analyzed grid.
func (s *Schematic) Grid() *textgrid.Grid {
	return s.grid
}

// Numbers returns every token in reading order, parts or not.
func (s *Schematic) Numbers() []PartNumber {
	return slices.Clone(s.numbers)
}

// Symbol returns the symbol at pos, or false if pos holds no symbol.
func (s *Schematic) Symbol(pos textgrid.Coord) (rune, bool) {
	r, ok := s.symbols[pos]
	return r, ok
}

// SymbolPositions returns every symbol position in row-major order.
func (s *Schematic) SymbolPositions() []textgrid.Coord {
	return slices.SortedFunc(maps.Keys(s.symbols), s.compare)
}

// PartNumberSum returns the sum of every token adjacent to at least one
// symbol. It agrees with SumPartNumbers on the same grid.
func (s *Schematic) PartNumberSum() uint64 {
	var sum uint64
	for _, p := range s.numbers {
		if p.IsPart() {
			sum += p.Value
		}
	}

	return sum
}

// Groups maps every symbol position that touches at least one token to those
// tokens, in reading order.
func (s *Schematic) Groups() map[textgrid.Coord][]PartNumber {
	groups := make(map[textgrid.Coord][]PartNumber)
	for _, p := range s.numbers {
		for _, pos := range p.Symbols {
			groups[pos] = append(groups[pos], p)
		}
	}

	return groups
}

// compare orders positions row-major.
func (s *Schematic) compare(a, b textgrid.Coord) int {
	return s.grid.Index(a) - s.grid.Index(b)
}
