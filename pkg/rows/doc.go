// Package rows rebuilds the rows of a digitized calibration grid from an
// unordered list of point pairs.
//
// Points are projected onto a single axis (see Orientation), sorted by that
// key, and cut into rows wherever the standard deviation of a moving window
// of keys jumps sharply. The window starts small, grows while consecutive
// keys stay tight, and snaps back to its minimum after every cut.
//
// Select runs the segmentation under more than one orientation and keeps the
// result whose row count best matches the square-root estimate of the grid
// size. Normalize then puts the rows into reading order.
//
// Nothing in this package fails: degenerate input yields a degenerate but
// well-formed RowSet.
package rows
