package layout

// cell is one entry of the physical position tables. Absent cells mark grid
// slots with no physical key (the unused thumb-row corners of each half).
type cell struct {
	x, y    float64
	present bool
}

func at(x, y float64) cell { return cell{x: x, y: y, present: true} }

// leftPositions places the left half: a 3×6 main block with columnar stagger
// plus a 3-key thumb cluster on the inner columns of row 3.
var leftPositions = [Rows][Cols / 2]cell{
	{at(0, 40), at(60, 40), at(120, 30), at(180, 20), at(240, 30), at(300, 40)},
	{at(0, 100), at(60, 100), at(120, 90), at(180, 80), at(240, 90), at(300, 100)},
	{at(0, 160), at(60, 160), at(120, 150), at(180, 140), at(240, 150), at(300, 160)},
	{{}, {}, {}, at(180, 220), at(240, 235), at(300, 250)},
}

// rightPositions mirrors the left half across the split gap; its thumb
// cluster occupies the inner columns (grid columns 6-8).
var rightPositions = [Rows][Cols / 2]cell{
	{at(500, 40), at(560, 30), at(620, 20), at(680, 30), at(740, 40), at(800, 40)},
	{at(500, 100), at(560, 90), at(620, 80), at(680, 90), at(740, 100), at(800, 100)},
	{at(500, 160), at(560, 150), at(620, 140), at(680, 150), at(740, 160), at(800, 160)},
	{at(500, 250), at(560, 235), at(620, 220), {}, {}, {}},
}
