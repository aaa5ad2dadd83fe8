package schematic

import "github.com/katalvlaran/schematic/textgrid"

// PartNumberTotal parses text and returns the sum of its part numbers.
func PartNumberTotal(text string, opts ...Option) (uint64, error) {
	g, err := textgrid.Parse(text)
	if err != nil {
		return 0, err
	}

	return SumPartNumbers(g, opts...)
}

// GearRatioTotal parses text and returns the sum of its gear ratios under the
// default gear rules ('*' with exactly two adjacent tokens).
func GearRatioTotal(text string, opts ...Option) (uint64, error) {
	g, err := textgrid.Parse(text)
	if err != nil {
		return 0, err
	}
	s, err := Analyze(g, opts...)
	if err != nil {
		return 0, err
	}

	return s.GearRatioSum(), nil
}
