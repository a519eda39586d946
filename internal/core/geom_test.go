package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -1, 0.5)

	if got := a.Add(b); got != V3(5, 1, 3.5) {
		t.Errorf("Add() = %+v, expected {5 1 3.5}", got)
	}
	if got := a.Sub(b); got != V3(-3, 3, 2.5) {
		t.Errorf("Sub() = %+v, expected {-3 3 2.5}", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale() = %+v, expected {2 4 6}", got)
	}
}

func TestVec3LenDist(t *testing.T) {
	if got := V3(3, 4, 0).Len(); got != 5 {
		t.Errorf("Len() = %f, expected 5", got)
	}
	if got := V3(1, 1, 1).Dist(V3(1, 1, 1)); got != 0 {
		t.Errorf("Dist() to self = %f, expected 0", got)
	}
	if got := V3(0, 0, 0).Dist(V3(2, 3, 6)); got != 7 {
		t.Errorf("Dist() = %f, expected 7", got)
	}
}

func TestEntityIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Entity
		expected bool
	}{
		{
			name:     "same position",
			a:        Entity{Position: V3(0, 0, 0), Radius: 1},
			b:        Entity{Position: V3(0, 0, 0), Radius: 1},
			expected: true,
		},
		{
			name:     "exactly touching",
			a:        Entity{Position: V3(0, 0, 0), Radius: 1},
			b:        Entity{Position: V3(2, 0, 0), Radius: 1},
			expected: false,
		},
		{
			name:     "just inside",
			a:        Entity{Position: V3(0, 0, 0), Radius: 1},
			b:        Entity{Position: V3(2-1e-9, 0, 0), Radius: 1},
			expected: true,
		},
		{
			name:     "far apart on z",
			a:        Entity{Position: V3(0, 0, 0), Radius: 1},
			b:        Entity{Position: V3(0, 0, -50), Radius: 3.6},
			expected: false,
		},
		{
			name:     "diagonal overlap",
			a:        Entity{Position: V3(0, 0, 0), Radius: 1},
			b:        Entity{Position: V3(1, 1, 1), Radius: 1},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.1, -0.2, 0.2, 0.1},
		{-0.5, -0.2, 0.2, -0.2},
		{math.Inf(1), -10, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
