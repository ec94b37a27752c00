package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edge overlaps",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching vertical edge overlaps",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "sub-pixel gap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10.5, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			if Overlaps(tc.b, tc.a) != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", !tc.expected, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right corner", V(30, 25), true},
		{"outside left", V(5, 15), false},
		{"outside right", V(35, 15), false},
		{"outside top", V(15, 5), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(V(100, 50), 40, 20)

	if r.Left() != 80 || r.Right() != 120 {
		t.Errorf("horizontal edges = (%v, %v), expected (80, 120)", r.Left(), r.Right())
	}
	if r.Top() != 40 || r.Bottom() != 60 {
		t.Errorf("vertical edges = (%v, %v), expected (40, 60)", r.Top(), r.Bottom())
	}
	if c := r.Center(); c != V(100, 50) {
		t.Errorf("Center() = %v, expected (100, 50)", c)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should pick 5 from (5, 10) in either order")
	}
}
