package geometry

import (
	"math"
	"testing"
)

func TestRectangleContains(t *testing.T) {
	r := Rectangle{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 10, Y: 10}, true},
		{Point{X: 30, Y: 20}, true},
		{Point{X: 31, Y: 20}, false},
		{Point{X: 15, Y: 9}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectangleIntersect(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rectangle{X: 5, Y: 5, Width: 10, Height: 10}
	got, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected overlap")
	}
	if want := (Rectangle{X: 5, Y: 5, Width: 5, Height: 5}); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if _, ok := a.Intersect(Rectangle{X: 20, Y: 20, Width: 1, Height: 1}); ok {
		t.Error("expected no overlap")
	}
}

func TestRectangleUnion(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rectangle{X: 20, Y: 5, Width: 5, Height: 20}
	want := Rectangle{X: 0, Y: 0, Width: 25, Height: 25}
	if got := a.Union(b); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestSizeShrinkNeverNegative(t *testing.T) {
	got := Size{Width: 10, Height: 5}.Shrink(Size{Width: 20, Height: 2})
	if got != (Size{Width: 0, Height: 3}) {
		t.Errorf("Shrink = %v", got)
	}
}

func TestPaddingFit(t *testing.T) {
	p := All(20)
	got := p.Fit(Size{Width: 80, Height: 10}, Size{Width: 100, Height: 100})
	if got.Left != 10 || got.Right != 10 {
		t.Errorf("horizontal padding should be halved to 10, got %+v", got)
	}
	if got.Top != 20 || got.Bottom != 20 {
		t.Errorf("vertical padding should be unchanged, got %+v", got)
	}
}

func TestUnboundedIsInfinite(t *testing.T) {
	if !math.IsInf(Unbounded.Width, 1) || !math.IsInf(Unbounded.Height, 1) {
		t.Errorf("Unbounded = %v", Unbounded)
	}
}
