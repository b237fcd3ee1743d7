package graphics

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectContainsEdges(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 20)
	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"inside", Offset{X: 15, Y: 15}, true},
		{"top-left corner", Offset{X: 10, Y: 10}, true},
		{"right edge", Offset{X: 30, Y: 15}, false},
		{"bottom edge", Offset{X: 15, Y: 30}, false},
		{"outside", Offset{X: 5, Y: 5}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectIntersectDisjoint(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(20, 20, 10, 10)
	if got := a.Intersect(b); !got.IsEmpty() {
		t.Errorf("disjoint intersect = %+v, want empty", got)
	}
}

func TestRectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	want := Rect{Left: 0, Top: 0, Right: 15, Bottom: 15}
	if diff := cmp.Diff(want, a.Union(b)); diff != "" {
		t.Errorf("union mismatch (-want +got):\n%s", diff)
	}
}

func TestSizeSanitize(t *testing.T) {
	s := Size{Width: math.NaN(), Height: -5}.Sanitize()
	if s.Width != 0 || s.Height != 0 {
		t.Errorf("Sanitize = %+v, want zero size", s)
	}
}

func TestEdgeInsetsDeflateClampsAtCenter(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10)
	insets := EdgeInsetsAll(8)
	got := insets.Deflate(r)
	if !got.IsEmpty() {
		t.Errorf("over-deflated rect = %+v, want empty", got)
	}
	if got.Left != 5 || got.Top != 5 {
		t.Errorf("over-deflated rect collapsed at %+v, want center (5,5)", got)
	}
}

func TestEdgeInsetsInflate(t *testing.T) {
	insets := EdgeInsetsSymmetric(4, 2)
	got := insets.Inflate(Size{Width: 10, Height: 10})
	want := Size{Width: 18, Height: 14}
	if got != want {
		t.Errorf("Inflate = %+v, want %+v", got, want)
	}
}
