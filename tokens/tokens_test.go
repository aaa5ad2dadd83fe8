package tokens_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schematic/textgrid"
	"github.com/katalvlaran/schematic/tokens"
)

func span(start, end int) textgrid.Span {
	return textgrid.Span{Start: start, End: end}
}

func TestDigits(t *testing.T) {
	cases := []struct {
		name string
		row  string
		want []textgrid.Span
	}{
		{"NoDigits", "..*#..", nil},
		{"Empty", "", nil},
		{"TouchingStart", "467..114..", []textgrid.Span{span(0, 3), span(5, 8)}},
		{"TouchingEnd", "...$.*..12", []textgrid.Span{span(8, 10)}},
		{"WholeRow", "920", []textgrid.Span{span(0, 3)}},
		{"SymbolThenNumber", "*920", []textgrid.Span{span(1, 4)}},
		{"SingleSeparator", "12.34", []textgrid.Span{span(0, 2), span(3, 5)}},
		{"SymbolSeparator", "1*2", []textgrid.Span{span(0, 1), span(2, 3)}},
		{"SingleDigits", "1.2.3", []textgrid.Span{span(0, 1), span(2, 3), span(4, 5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(tokens.Digits([]rune(tc.row)))
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestDigits_Reconstruct interleaves the produced spans with the skipped runs
// and checks that the result is the original row.
func TestDigits_Reconstruct(t *testing.T) {
	rows := []string{
		"467..114..",
		".....+.58.",
		"1",
		".",
		"12.34*5678#9",
		"abc123def4",
		"",
	}
	for _, row := range rows {
		rs := []rune(row)
		var b strings.Builder
		prev := 0
		for s := range tokens.Digits(rs) {
			require.Less(t, s.Start, s.End, "row %q", row)
			require.GreaterOrEqual(t, s.Start, prev, "row %q", row)
			for _, r := range rs[prev:s.Start] {
				assert.False(t, tokens.IsDigit(r), "skipped digit in row %q", row)
			}
			b.WriteString(string(rs[prev:s.Start]))
			b.WriteString(string(rs[s.Start:s.End]))
			prev = s.End
		}
		b.WriteString(string(rs[prev:]))
		assert.Equal(t, row, b.String())
	}
}

func TestIsDigit(t *testing.T) {
	for _, r := range "0123456789" {
		assert.True(t, tokens.IsDigit(r), "%q", r)
	}
	for _, r := range ".*#$+ a\n٣" {
		assert.False(t, tokens.IsDigit(r), "%q", r)
	}
}

func TestAll_TagsRows(t *testing.T) {
	g, err := textgrid.Parse("1..2\n....\n.33.")
	require.NoError(t, err)

	got := slices.Collect(tokens.All(g))
	want := []tokens.Token{
		{Row: 0, Span: span(0, 1)},
		{Row: 0, Span: span(3, 4)},
		{Row: 2, Span: span(1, 3)},
	}
	assert.Equal(t, want, got)

	// restartable
	assert.Equal(t, want, slices.Collect(tokens.All(g)))
}

func TestInRow_Missing(t *testing.T) {
	g, err := textgrid.Parse("12")
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(tokens.InRow(g, 1)))
	assert.Empty(t, slices.Collect(tokens.InRow(g, -1)))
}

func TestAll_EarlyStop(t *testing.T) {
	g, err := textgrid.Parse("1.2\n3.4")
	require.NoError(t, err)

	var seen []tokens.Token
	for tok := range tokens.All(g) {
		seen = append(seen, tok)
		if len(seen) == 3 {
			break
		}
	}
	require.Len(t, seen, 3)
	assert.Equal(t, 1, seen[2].Row)
}

func TestToken_Cells(t *testing.T) {
	tok := tokens.Token{Row: 4, Span: span(2, 5)}
	want := []textgrid.Coord{{Col: 2, Row: 4}, {Col: 3, Row: 4}, {Col: 4, Row: 4}}
	assert.Equal(t, want, slices.Collect(tok.Cells()))
}
