package ripple

import (
	"math"
	"testing"
	"time"

	"chosenoffset.com/ripplegrid/internal/core/geom"
	"chosenoffset.com/ripplegrid/internal/core/layout"
)

func testController() (*Controller, layout.Layout) {
	c := NewController(Config{LongPress: 350 * time.Millisecond, WaveSpeed: 0.8})
	return c, layout.Compute(1000, 1000, 6, 8, 16)
}

func TestLongPressThreshold(t *testing.T) {
	c, l := testController()
	center := l.TileCenter(2, 3)

	c.PointerDown(100*time.Millisecond, center)
	if c.Update(300*time.Millisecond, l) {
		t.Fatal("Expected no ripple before the long-press threshold")
	}
	if !c.Update(450*time.Millisecond, l) {
		t.Fatal("Expected a ripple once the pointer was held for 350ms")
	}
	if c.Phase() != Expanding {
		t.Errorf("Expected expanding phase, got %s", c.Phase())
	}

	r, ok := c.Ripple()
	if !ok {
		t.Fatal("Expected a ripple record")
	}
	if r.Origin != center || r.Start != 450*time.Millisecond {
		t.Errorf("Unexpected ripple %+v", r)
	}
	if r.Tile != (layout.Tile{IX: 2, IY: 3}) {
		t.Errorf("Expected origin tile (2, 3), got %+v", r.Tile)
	}
}

func TestNoRetriggerWhileExpanding(t *testing.T) {
	c, l := testController()
	c.PointerDown(0, l.TileCenter(0, 0))
	if !c.Update(time.Second, l) {
		t.Fatal("Expected ripple to start")
	}
	c.PointerMove(l.TileCenter(5, 7))
	if c.Update(2*time.Second, l) {
		t.Error("Expected no second ripple while expanding")
	}
	r, _ := c.Ripple()
	if r.Tile != (layout.Tile{}) {
		t.Errorf("Expected origin to stay at (0, 0), got %+v", r.Tile)
	}
}

func TestPressInGapWaitsForTile(t *testing.T) {
	c, l := testController()
	gap := geom.Pt(l.MarginX+l.Diameter+l.Gap/2, l.TileCenter(0, 0).Y)

	c.PointerDown(0, gap)
	if c.Update(time.Second, l) {
		t.Fatal("Expected no ripple while the pointer is over a gap")
	}
	c.PointerMove(l.TileCenter(1, 0))
	if !c.Update(time.Second+16*time.Millisecond, l) {
		t.Fatal("Expected ripple once the held pointer reaches a tile")
	}
}

func TestRadiusGrowth(t *testing.T) {
	c, l := testController()
	c.PointerDown(0, l.TileCenter(1, 1))
	c.Update(400*time.Millisecond, l)

	cases := []struct {
		now  time.Duration
		want float64
	}{
		{400 * time.Millisecond, 0},
		{650 * time.Millisecond, 200},
		{1400 * time.Millisecond, 800},
	}
	for _, tc := range cases {
		got, ok := c.Radius(tc.now)
		if !ok {
			t.Fatalf("Expected radius while expanding at %v", tc.now)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("At %v expected radius %f, got %f", tc.now, tc.want, got)
		}
	}
}

func TestReleaseStopsExpansion(t *testing.T) {
	c, l := testController()
	c.PointerDown(0, l.TileCenter(1, 1))
	c.Update(400*time.Millisecond, l)

	if !c.PointerUp(600 * time.Millisecond) {
		t.Error("Expected release to stop an expanding ripple")
	}
	if c.Expanding() {
		t.Error("Expected dormant phase after release")
	}
	if _, ok := c.Radius(700 * time.Millisecond); ok {
		t.Error("Expected no radius while dormant")
	}
	if _, ok := c.Ripple(); !ok {
		t.Error("Expected ripple record to survive release")
	}
	if c.PointerUp(800 * time.Millisecond) {
		t.Error("Expected second release to report nothing stopped")
	}
}

func TestNewPressAfterRelease(t *testing.T) {
	c, l := testController()
	c.PointerDown(0, l.TileCenter(0, 0))
	c.Update(400*time.Millisecond, l)
	c.PointerUp(500 * time.Millisecond)

	c.PointerDown(2*time.Second, l.TileCenter(4, 4))
	if c.Update(2*time.Second+100*time.Millisecond, l) {
		t.Fatal("Expected new press to wait for the threshold")
	}
	if !c.Update(2*time.Second+350*time.Millisecond, l) {
		t.Fatal("Expected new ripple after the threshold")
	}
	r, _ := c.Ripple()
	if r.Tile != (layout.Tile{IX: 4, IY: 4}) {
		t.Errorf("Expected new origin (4, 4), got %+v", r.Tile)
	}
}

func TestRepeatedDownKeepsFirstTimestamp(t *testing.T) {
	c, _ := testController()
	c.PointerDown(10*time.Millisecond, geom.Pt(1, 1))
	c.PointerDown(90*time.Millisecond, geom.Pt(2, 2))
	p := c.Pointer()
	if p.DownAt != 10*time.Millisecond {
		t.Errorf("Expected DownAt 10ms, got %v", p.DownAt)
	}
	if p.Position != geom.Pt(2, 2) {
		t.Errorf("Expected position to follow the latest event, got %v", p.Position)
	}
}
