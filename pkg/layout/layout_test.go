package layout

import "testing"

func TestBuildCount(t *testing.T) {
	g := Build()
	if got := g.Count(); got != 42 {
		t.Errorf("Count() = %d, want 42 (21 per side)", got)
	}
}

func TestAt(t *testing.T) {
	g := Build()

	tests := []struct {
		name     string
		row, col int
		ok       bool
		x, y     float64
	}{
		{"top left", 0, 0, true, 0, 40},
		{"staggered column", 0, 3, true, 180, 20},
		{"right half start", 0, 6, true, 500, 40},
		{"right top corner", 0, 11, true, 800, 40},
		{"left thumb", 3, 3, true, 180, 220},
		{"right thumb", 3, 6, true, 500, 250},
		{"absent left thumb slot", 3, 0, false, 0, 0},
		{"absent right thumb slot", 3, 11, false, 0, 0},
		{"out of range row", 4, 0, false, 0, 0},
		{"out of range col", 0, 12, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := g.At(tt.row, tt.col)
			if ok != tt.ok {
				t.Fatalf("At(%d, %d) ok = %v, want %v", tt.row, tt.col, ok, tt.ok)
			}
			if !ok {
				return
			}
			if pos.X != tt.x || pos.Y != tt.y {
				t.Errorf("At(%d, %d) = (%v, %v), want (%v, %v)", tt.row, tt.col, pos.X, pos.Y, tt.x, tt.y)
			}
			if pos.W != KeySize || pos.H != KeySize {
				t.Errorf("At(%d, %d) size = %vx%v, want %vx%v", tt.row, tt.col, pos.W, pos.H, KeySize, KeySize)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	g := Build()
	pos, _ := g.At(0, 0)
	if pos.CenterX() != 25 || pos.CenterY() != 65 {
		t.Errorf("center = (%v, %v), want (25, 65)", pos.CenterX(), pos.CenterY())
	}
}

func TestTokenIndex(t *testing.T) {
	g := Build()
	rows := [][]string{
		{"tab", "q", "_", "", "MT(N, LGui)", "x", "y", "u", "i", "o", "p", "bspc"},
	}

	index := g.TokenIndex(rows)

	if pos, ok := index["tab"]; !ok || pos.Col != 0 {
		t.Errorf("index[tab] = %+v, %v; want col 0", pos, ok)
	}
	if pos, ok := index["MT(N, LGui)"]; !ok || pos.Col != 4 {
		t.Errorf("index[MT(N, LGui)] = %+v, %v; want col 4", pos, ok)
	}
	if _, ok := index["_"]; ok {
		t.Error("transparent marker should not be indexed")
	}
	if _, ok := index[""]; ok {
		t.Error("empty token should not be indexed")
	}
}

func TestAdjacent(t *testing.T) {
	g := Build()
	p := func(r, c int) KeyPosition {
		pos, ok := g.At(r, c)
		if !ok {
			t.Fatalf("no key at (%d, %d)", r, c)
		}
		return pos
	}

	tests := []struct {
		name string
		a, b KeyPosition
		want bool
	}{
		{"same row neighbors", p(0, 1), p(0, 2), true},
		{"same column neighbors", p(0, 1), p(1, 1), true},
		{"same row gap", p(0, 1), p(0, 3), false},
		{"diagonal", p(0, 1), p(1, 2), false},
		{"across the split", p(0, 5), p(0, 6), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adjacent(tt.a, tt.b); got != tt.want {
				t.Errorf("Adjacent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContiguous(t *testing.T) {
	g := Build()
	p := func(r, c int) KeyPosition {
		pos, ok := g.At(r, c)
		if !ok {
			t.Fatalf("no key at (%d, %d)", r, c)
		}
		return pos
	}

	tests := []struct {
		name      string
		positions []KeyPosition
		want      bool
	}{
		{"two in a row", []KeyPosition{p(0, 1), p(0, 2)}, true},
		{"two in a column", []KeyPosition{p(1, 4), p(2, 4)}, true},
		{"three-run in a row", []KeyPosition{p(1, 3), p(1, 1), p(1, 2)}, true},
		{"different row and column", []KeyPosition{p(0, 1), p(1, 2)}, false},
		{"row with gap", []KeyPosition{p(0, 1), p(0, 4)}, false},
		{"L shape never contiguous", []KeyPosition{p(0, 1), p(0, 2), p(1, 2)}, false},
		{"single key", []KeyPosition{p(0, 1)}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contiguous(tt.positions); got != tt.want {
				t.Errorf("Contiguous = %v, want %v", got, tt.want)
			}
		})
	}
}
