package tokens

import (
	"iter"

	"github.com/katalvlaran/schematic/textgrid"
)

// Token is one digit run located on a grid row.
type Token struct {
	Row  int
	Span textgrid.Span
}

// Cells returns the coordinates covered by the token, left to right.
func (t Token) Cells() iter.Seq[textgrid.Coord] {
	return func(yield func(textgrid.Coord) bool) {
		for col := t.Span.Start; col < t.Span.End; col++ {
			if !yield(textgrid.Coord{Col: col, Row: t.Row}) {
				return
			}
		}
	}
}

// IsDigit reports whether r is an ASCII base-10 digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Digits yields the maximal digit runs of row in increasing column order.
// Spans never overlap and never touch: two runs are always separated by at
// least one non-digit.
func Digits(row []rune) iter.Seq[textgrid.Span] {
	return func(yield func(textgrid.Span) bool) {
		col := 0
		for col < len(row) {
			// seek to the next digit
			if !IsDigit(row[col]) {
				col++
				continue
			}
			start := col
			for col < len(row) && IsDigit(row[col]) {
				col++
			}
			if !yield(textgrid.Span{Start: start, End: col}) {
				return
			}
		}
	}
}

// InRow yields the tokens of row y; nothing if the row does not exist.
func InRow(g *textgrid.Grid, y int) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		row, ok := g.Row(y)
		if !ok {
			return
		}
		for span := range Digits(row) {
			if !yield(Token{Row: y, Span: span}) {
				return
			}
		}
	}
}

// All yields every token of g, row by row from the top.
func All(g *textgrid.Grid) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for y := 0; y < g.Rows(); y++ {
			for tok := range InRow(g, y) {
				if !yield(tok) {
					return
				}
			}
		}
	}
}
