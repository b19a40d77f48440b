package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"same center", Circle{X: 10, Y: 10, R: 1}, Circle{X: 10, Y: 10, R: 1}, true},
		{"overlapping", Circle{X: 0, Y: 0, R: 15}, Circle{X: 20, Y: 0, R: 10}, true},
		{"touching (no overlap)", Circle{X: 0, Y: 0, R: 15}, Circle{X: 25, Y: 0, R: 10}, false},
		{"apart", Circle{X: 0, Y: 0, R: 15}, Circle{X: 100, Y: 100, R: 10}, false},
		{"diagonal overlap", Circle{X: 0, Y: 0, R: 15}, Circle{X: 12, Y: 12, R: 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleEdges(t *testing.T) {
	c := Circle{X: 100, Y: 50, R: 15}
	if c.Top() != 35 || c.Bottom() != 65 {
		t.Errorf("Top/Bottom = %v/%v, expected 35/65", c.Top(), c.Bottom())
	}
	if c.Left() != 85 || c.Right() != 115 {
		t.Errorf("Left/Right = %v/%v, expected 85/115", c.Left(), c.Right())
	}
}

func TestEffectiveRadius(t *testing.T) {
	tests := []struct {
		radius, w, h, expected float64
	}{
		{10, 0, 0, 10},   // explicit radius wins
		{10, 40, 40, 10}, // even when a box is present
		{0, 30, 30, 15},
		{0, 40, 20, 20},
		{0, 20, 50, 25},
	}

	for _, tc := range tests {
		if got := EffectiveRadius(tc.radius, tc.w, tc.h); got != tc.expected {
			t.Errorf("EffectiveRadius(%v, %v, %v) = %v, expected %v", tc.radius, tc.w, tc.h, got, tc.expected)
		}
	}
}

func TestDist(t *testing.T) {
	if got := Dist(0, 0, 3, 4); got != 5 {
		t.Errorf("Dist = %v, expected 5", got)
	}
	if got := Dist(2, 2, 2, 2); got != 0 {
		t.Errorf("Dist to self = %v, expected 0", got)
	}
}
