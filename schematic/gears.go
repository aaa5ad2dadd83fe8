package schematic

import (
	"maps"
	"slices"

	"github.com/katalvlaran/schematic/textgrid"
)

// Gear is a marker symbol with exactly the configured number of adjacent
// tokens. Ratio is the product of their values.
type Gear struct {
	Pos    textgrid.Coord
	Symbol rune
	Parts  []PartNumber
	Ratio  uint64
}

// Gears returns the qualifying gears in row-major order.
// Defaults: marker '*', exactly 2 adjacent tokens.
func (s *Schematic) Gears(opts ...GearOption) []Gear {
	o := gatherGearOptions(opts)
	groups := s.Groups()

	var gears []Gear
	for _, pos := range slices.SortedFunc(maps.Keys(groups), s.compare) {
		sym := s.symbols[pos]
		parts := groups[pos]
		if !o.match(sym) || len(parts) != o.size {
			continue
		}
		ratio := uint64(1)
		for _, p := range parts {
			ratio *= p.Value
		}
		gears = append(gears, Gear{Pos: pos, Symbol: sym, Parts: parts, Ratio: ratio})
	}

	return gears
}

// GearRatioSum returns the sum of the ratios of all qualifying gears.
func (s *Schematic) GearRatioSum(opts ...GearOption) uint64 {
	var sum uint64
	for _, g := range s.Gears(opts...) {
		sum += g.Ratio
	}

	return sum
}
