// Package tokens finds numeric tokens, maximal runs of ASCII digits, in the
// rows of a textgrid.Grid.
//
// Digits scans a single row left to right and yields each run as a half-open
// textgrid.Span. All and InRow apply the same scan to a whole grid (or one
// row of it) and tag every span with its row index.
//
// All sequences are pull-based, finite and restartable: ranging over the same
// sequence twice yields the same tokens in the same order.
//
// Complexity: O(W) per row, O(W×H) for a whole grid.
package tokens
