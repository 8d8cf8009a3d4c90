// Package rename renames font files to their chosen display names. It picks
// collision-free targets by appending _1, _2, ... to the stem, validates names
// against reserved characters and device names, keeps going when a single file
// fails, and can undo a batch or record it in a CSV journal.
package rename
