// Package layout computes the physical key geometry of the split 3×6+3 grid.
//
// Positions are layer-independent: the key at (row, col) is the same physical
// key on every layer. The grid is built once per run and shared read-only by
// the layer renderer and the combo overlay engine, so both consumers agree on
// coordinates by construction.
package layout

import "sort"

// Grid shape and key geometry constants.
const (
	Rows = 4  // 3 main rows plus the thumb row
	Cols = 12 // 6 columns per half

	KeySize      = 50.0 // Square key cap edge length
	CornerRadius = 6.0  // Rounded corner radius for key shapes
)

// KeyPosition is the computed geometry for one physical key.
type KeyPosition struct {
	Row, Col int
	X, Y     float64
	W, H     float64
}

// CenterX returns the horizontal center of the key cap.
func (p KeyPosition) CenterX() float64 { return p.X + p.W/2 }

// CenterY returns the vertical center of the key cap.
func (p KeyPosition) CenterY() float64 { return p.Y + p.H/2 }

// Grid holds the position of every physical key, indexed by (row, col).
type Grid struct {
	cells [Rows][Cols]cell
}

// Build computes the physical grid from the split position tables.
func Build() *Grid {
	g := &Grid{}
	for r := range Rows {
		for c := range Cols / 2 {
			g.cells[r][c] = leftPositions[r][c]
			g.cells[r][c+Cols/2] = rightPositions[r][c]
		}
	}
	return g
}

// At returns the position of the key at (row, col). The second return is
// false for grid slots with no physical key.
func (g *Grid) At(row, col int) (KeyPosition, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return KeyPosition{}, false
	}
	c := g.cells[row][col]
	if !c.present {
		return KeyPosition{}, false
	}
	return KeyPosition{Row: row, Col: col, X: c.x, Y: c.y, W: KeySize, H: KeySize}, true
}

// Count returns the number of physical keys on the grid.
func (g *Grid) Count() int {
	n := 0
	for r := range Rows {
		for c := range Cols {
			if g.cells[r][c].present {
				n++
			}
		}
	}
	return n
}

// TokenIndex maps each raw key token of a layer matrix to its physical
// position. Transparent markers and absent cells are skipped. When a token
// appears on more than one key, the later occurrence wins.
func (g *Grid) TokenIndex(rows [][]string) map[string]KeyPosition {
	index := make(map[string]KeyPosition)
	for r, row := range rows {
		for c, tok := range row {
			if tok == "" || tok == "_" {
				continue
			}
			if pos, ok := g.At(r, c); ok {
				index[tok] = pos
			}
		}
	}
	return index
}

// Adjacent reports whether two keys are physical neighbors: same row with
// column distance 1, or same column with row distance 1.
func Adjacent(a, b KeyPosition) bool {
	if a.Row == b.Row {
		return absInt(a.Col-b.Col) == 1
	}
	if a.Col == b.Col {
		return absInt(a.Row-b.Row) == 1
	}
	return false
}

// Contiguous reports whether a set of key positions forms one unbroken run
// within a single row or a single column. Runs tolerate no gap larger than
// one index step, so a chord with more members than its span covers, or with
// members on both halves of a broken row, is not contiguous. Chords that are
// not confined to one row or one column are never contiguous, even when
// subsets of their members are adjacent.
func Contiguous(positions []KeyPosition) bool {
	if len(positions) < 2 {
		return false
	}
	return runWithin(positions, func(p KeyPosition) (int, int) { return p.Row, p.Col }) ||
		runWithin(positions, func(p KeyPosition) (int, int) { return p.Col, p.Row })
}

// runWithin checks that all positions share one fixed axis value and that
// their indices along the other axis form a run with gaps of at most 1.
func runWithin(positions []KeyPosition, axes func(KeyPosition) (fixed, moving int)) bool {
	fixed, _ := axes(positions[0])
	moving := make([]int, 0, len(positions))
	for _, p := range positions {
		f, m := axes(p)
		if f != fixed {
			return false
		}
		moving = append(moving, m)
	}

	sort.Ints(moving)
	for i := 1; i < len(moving); i++ {
		if moving[i]-moving[i-1] > 1 {
			return false
		}
	}
	return true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
