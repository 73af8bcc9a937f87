// Package grid lays out key/value records as a fixed-width box-drawing table.
//
// A render pass collects the columns of the records in order of first
// appearance, sizes each column to its widest label or value, and emits the
// lines of the grid:
//
//	┌──────┬─────┐
//	│ name │ age │
//	├──────┼─────┤
//	│ Foo  │ 12  │
//	└──────┴─────┘
//
// Styling is left to Renderer callbacks, which must keep the printed width of
// the text they are given. Rendering is a pure function of its input and is
// safe to call concurrently with distinct inputs.
package grid
