package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	d := Distance(Pt(0, 0), Pt(3, 4))
	if math.Abs(d-5) > 1e-12 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if Distance(Pt(2, 2), Pt(2, 2)) != 0 {
		t.Error("Expected zero distance between identical points")
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := Pt(-117.3, 0.1)
	b := Pt(84.9, -101.7)

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Expected %v at t=0, got %v", a, got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Expected %v at t=1, got %v", b, got)
	}

	mid := Lerp(Pt(0, 0), Pt(10, -4), 0.5)
	if mid != Pt(5, -2) {
		t.Errorf("Expected midpoint (5, -2), got %v", mid)
	}
}

func TestAddScale(t *testing.T) {
	p := Pt(1, 2).Scale(3).Add(Pt(-1, 1))
	if p != Pt(2, 7) {
		t.Errorf("Expected (2, 7), got %v", p)
	}
}
