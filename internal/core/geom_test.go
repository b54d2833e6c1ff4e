package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointAdd(t *testing.T) {
	assert.Equal(t, Pt(6, 5), Pt(5, 5).Add(Pt(1, 0)))
	assert.Equal(t, Pt(5, 4), Pt(5, 5).Add(Pt(0, -1)))
	assert.Equal(t, "(3,-2)", Pt(3, -2).String())
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
			assert.Equal(t, tc.expected, r.ContainsPoint(Pt(tc.x, tc.y)))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
	assert.Equal(t, 300, r.Area())

	cx, cy := r.Center()
	assert.Equal(t, 15, cx)
	assert.Equal(t, 17, cy)

	assert.Zero(t, NewRect(0, 0, -1, 4).Area())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.lo, tc.hi),
			"Clamp(%d, %d, %d)", tc.val, tc.lo, tc.hi)
	}
}
