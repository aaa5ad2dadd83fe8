// Package schematic decides which numeric tokens of an engine schematic touch
// a symbol, and aggregates them.
//
// What:
//
//   - IsSymbol: the single predicate deciding what counts as a symbol
//     (not a digit, not '.', not a line terminator).
//   - Any-adjacent mode: HasAdjacentSymbol / SumPartNumbers report or sum
//     tokens with at least one symbol among the neighbors of any of their cells.
//   - Grouped mode: AdjacentSymbols / Analyze collect, per token, the distinct
//     symbol positions it touches; Schematic.Groups inverts that into
//     symbol position → tokens.
//   - Gears: symbols matching a marker (default '*') with exactly N adjacent
//     tokens (default 2); GearRatioSum adds up the product of each group.
//
// Concurrency:
//
//   - Rows are independent. WithWorkers(n) spreads them over an errgroup;
//     results are merged in row order, so output never depends on scheduling.
//
// Errors:
//
//   - ErrGridNil: a nil *textgrid.Grid was passed in.
//   - ErrBadNumber: token text is not an unsigned 64-bit integer, wrapped in a
//     *textgrid.FormatError carrying the row.
package schematic
