package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestComputeFitsSmallerAxis(t *testing.T) {
	l := Compute(1000, 800, 6, 8, 16)

	wantX := (1000.0 - 16*5) / 6
	wantY := (800.0 - 16*7) / 8
	want := math.Min(wantX, wantY)
	if math.Abs(l.Diameter-want) > eps {
		t.Errorf("Expected diameter %f, got %f", want, l.Diameter)
	}

	wantRadius := want / (2 * math.Sqrt2) * 0.95 * 0.95
	if math.Abs(l.RenderRadius-wantRadius) > eps {
		t.Errorf("Expected render radius %f, got %f", wantRadius, l.RenderRadius)
	}
	if math.Abs(l.Scale-wantRadius/DefaultBaseRadius) > eps {
		t.Errorf("Expected scale %f, got %f", wantRadius/DefaultBaseRadius, l.Scale)
	}

	usedW := 6*l.Diameter + 5*16
	usedH := 8*l.Diameter + 7*16
	if math.Abs(l.MarginX-(1000-usedW)/2) > eps || math.Abs(l.MarginY-(800-usedH)/2) > eps {
		t.Errorf("Grid not centred: margins (%f, %f)", l.MarginX, l.MarginY)
	}
}

func TestComputeIdempotent(t *testing.T) {
	a := Compute(1280, 720, 6, 8, 16)
	b := Compute(1280, 720, 6, 8, 16)
	if a != b {
		t.Errorf("Expected identical layouts, got %+v and %+v", a, b)
	}
}

func TestComputeDegenerate(t *testing.T) {
	cases := []struct {
		name       string
		w, h       float64
		cols, rows int
		gap        float64
	}{
		{"zero cols", 800, 600, 0, 8, 16},
		{"negative rows", 800, 600, 6, -1, 16},
		{"viewport smaller than gaps", 40, 40, 6, 8, 16},
		{"empty viewport", 0, 0, 6, 8, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := Compute(tc.w, tc.h, tc.cols, tc.rows, tc.gap)
			if l.Diameter != 0 {
				t.Errorf("Expected zero diameter, got %f", l.Diameter)
			}
			if l.Scale < 0 || math.IsNaN(l.Scale) {
				t.Errorf("Expected non-negative scale, got %f", l.Scale)
			}
			if _, ok := l.HitTile(tc.w/2, tc.h/2); ok && l.TileCount() == 0 {
				t.Error("Expected no tile hit on an empty grid")
			}
		})
	}
}

func TestHitTileCenters(t *testing.T) {
	l := Compute(1024, 768, 6, 8, 16)
	for iy := 0; iy < l.Rows; iy++ {
		for ix := 0; ix < l.Cols; ix++ {
			c := l.TileCenter(ix, iy)
			got, ok := l.HitTile(c.X, c.Y)
			if !ok {
				t.Fatalf("Expected hit at centre of (%d, %d)", ix, iy)
			}
			if got != (Tile{IX: ix, IY: iy}) {
				t.Errorf("Expected tile (%d, %d), got (%d, %d)", ix, iy, got.IX, got.IY)
			}
		}
	}
}

func TestHitTileGapAndOutside(t *testing.T) {
	l := Compute(1024, 768, 6, 8, 16)

	// middle of the horizontal gap between column 0 and 1, row 0
	gapX := l.MarginX + l.Diameter + l.Gap/2
	rowY := l.TileCenter(0, 0).Y
	if _, ok := l.HitTile(gapX, rowY); ok {
		t.Error("Expected no tile in the horizontal gap")
	}

	// middle of the vertical gap between row 2 and 3
	colX := l.TileCenter(3, 0).X
	gapY := l.MarginY + 3*l.Diameter + 2*l.Gap + l.Gap/2
	if _, ok := l.HitTile(colX, gapY); ok {
		t.Error("Expected no tile in the vertical gap")
	}

	outside := [][2]float64{
		{l.MarginX - 1, rowY},
		{colX, l.MarginY - 1},
		{l.MarginX + 6*l.Diameter + 5*l.Gap + 1, rowY},
		{colX, l.MarginY + 8*l.Diameter + 7*l.Gap + l.Gap + 1},
	}
	for _, p := range outside {
		if tile, ok := l.HitTile(p[0], p[1]); ok {
			t.Errorf("Expected no tile at (%f, %f), got %+v", p[0], p[1], tile)
		}
	}
}

func TestIndexRowMajor(t *testing.T) {
	l := Compute(600, 800, 6, 8, 16)
	if l.TileCount() != 48 {
		t.Errorf("Expected 48 tiles, got %d", l.TileCount())
	}
	if idx := l.Index(Tile{IX: 5, IY: 1}); idx != 11 {
		t.Errorf("Expected index 11, got %d", idx)
	}
}

func TestHitTileNonFinite(t *testing.T) {
	l := Compute(1000, 800, 6, 8, 16)
	inputs := [][2]float64{
		{math.NaN(), 10},
		{10, math.NaN()},
		{math.Inf(1), 10},
		{10, math.Inf(1)},
		{math.Inf(-1), math.Inf(-1)},
		{math.MaxFloat64, math.MaxFloat64},
		{1e300, 10},
	}
	for _, p := range inputs {
		if tile, ok := l.HitTile(p[0], p[1]); ok {
			t.Errorf("Expected no hit at (%g, %g), got %+v", p[0], p[1], tile)
		}
	}

	// Last tile is still reachable
	c := l.TileCenter(5, 7)
	if tile, ok := l.HitTile(c.X, c.Y); !ok || tile != (Tile{IX: 5, IY: 7}) {
		t.Errorf("Expected (5, 7) at its centre, got %+v (ok=%v)", tile, ok)
	}
}
