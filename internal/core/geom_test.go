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

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		n        int
		expected Rect
	}{
		{"pane border", NewRect(2, 3, 10, 6), 1, NewRect(3, 4, 8, 4)},
		{"zero", NewRect(2, 3, 10, 6), 0, NewRect(2, 3, 10, 6)},
		{"collapses", NewRect(0, 0, 3, 3), 2, NewRect(2, 2, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, expected %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	ints := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}
	for _, tc := range ints {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	floats := []struct {
		val, expected float64
	}{
		{0.5, 0.5},
		{-0.25, 0},
		{1.5, 1},
	}
	for _, tc := range floats {
		if got := Clamp(tc.val, 0, 1); got != tc.expected {
			t.Errorf("Clamp(%v, 0, 1) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	for in, want := range map[int]int{5: 5, -5: 5, 0: 0} {
		if got := Abs(in); got != want {
			t.Errorf("Abs(%d) = %d, expected %d", in, got, want)
		}
	}
}
