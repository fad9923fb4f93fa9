// Package svg assembles the keyboard layout document.
//
// The renderer takes a validated keymap and the shared physical grid and
// emits one self-contained SVG: a styled header, one band per layer drawn
// top-to-bottom in index order, combo overlays on the base layer's band, a
// legend, and a footer. Rendering is a pure function over the inputs; any
// failure (a malformed grid, an unresolvable combo reference) aborts the
// whole document rather than emitting a partial one.
//
// Combo overlays come in two shapes. A chord whose members sit in one
// unbroken row or column run gets a small rounded rectangle at the midpoint
// of the member keys. Anything else gets connector lines between consecutive
// members plus a labeled circle at the centroid. Two combos with coincident
// centroids render stacked; the source behavior does not deconflict them and
// neither does this package.
package svg
