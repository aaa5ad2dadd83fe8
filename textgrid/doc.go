// Package textgrid treats a block of text as an immutable rectangular grid of
// runes, with bounds-checked lookups and clockwise neighbor enumeration.
//
// What:
//
//   - Grid wraps a rectangular [][]rune built from text by Parse or FromRows.
//   - At / Cell look up a single cell; out-of-range coordinates report false
//     instead of failing, so edge cells need no special casing.
//   - Neighbors / NeighborValues enumerate up to 8 surrounding cells, clockwise
//     from the top-left, skipping positions outside the grid.
//   - Index / Coordinate map between Coord and a row-major linear offset.
//
// Why:
//
//   - Puzzle inputs: character maps, schematics, word grids.
//   - Position identity: Coord is comparable, so neighbor positions can be used
//     directly as map keys when grouping.
//
// Complexity:
//
//   - Parse, FromRows: O(W×H) time and memory.
//   - At, Cell, InBounds, Index, Coordinate: O(1).
//   - Neighbors: O(1) per query (at most 8 cells).
//
// Errors:
//
//   - ErrFormat: umbrella sentinel, matched by every *FormatError.
//   - ErrNonRectangular: a row's length differs from the first row's.
package textgrid
