// Package gridio reads and writes the plain-text grid artefact.
//
// Format:
//
//   - N lines, one per grid row, top to bottom.
//   - Each line holds N values, each printed with "%10.4f" and no separator
//     (the field width keeps columns apart), then a newline.
//   - A value needing more than ten characters (|v| >= 1e5, or <= -1e4)
//     touches its left neighbour; Read then reports ErrMalformed.
//
// Read accepts any whitespace between values, so files edited by hand or
// produced with a different field width still parse. Values survive a
// round-trip to within 5e-5 (half of the last printed decimal).
//
// Dump prints the compact space-separated %g form used for grids small
// enough to inspect on a terminal.
package gridio
