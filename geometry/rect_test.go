package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRect(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		r, err := NewRect(1, 2, 3, 4)
		require.NoError(t, err)
		assert.Equal(t, Rect{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}, r)
	})

	t.Run("Degenerate", func(t *testing.T) {
		r, err := NewRect(5, 5, 5, 5)
		require.NoError(t, err)
		assert.True(t, r.IsPoint())
	})

	t.Run("InvertedX", func(t *testing.T) {
		_, err := NewRect(3, 0, 1, 1)
		assert.ErrorIs(t, err, ErrInvalidRect)
	})

	t.Run("InvertedY", func(t *testing.T) {
		_, err := NewRect(0, 4, 1, 2)
		assert.ErrorIs(t, err, ErrInvalidRect)
	})
}

func TestArea(t *testing.T) {
	tests := []struct {
		name     string
		rect     Rect
		expected float64
	}{
		{"Unit", Rect{0, 0, 1, 1}, 1},
		{"Wide", Rect{0, 0, 4, 2}, 8},
		{"Point", NewPoint(3, 7), 0},
		{"Line", Rect{0, 5, 10, 5}, 0},
		{"Negative coords", Rect{-2, -3, 2, 3}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rect.Area())
		})
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"Disjoint", Rect{0, 0, 1, 1}, Rect{2, 2, 3, 3}, Rect{0, 0, 3, 3}},
		{"Contained", Rect{0, 0, 10, 10}, Rect{2, 2, 3, 3}, Rect{0, 0, 10, 10}},
		{"Overlapping", Rect{0, 0, 2, 2}, Rect{1, 1, 3, 3}, Rect{0, 0, 3, 3}},
		{"Points", NewPoint(1, 5), NewPoint(4, 2), Rect{1, 2, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Union(tt.b))
			// Union is symmetric.
			assert.Equal(t, tt.expected, tt.b.Union(tt.a))
		})
	}
}

func TestEnlargement(t *testing.T) {
	t.Run("Contained needs none", func(t *testing.T) {
		r := Rect{0, 0, 10, 10}
		assert.Equal(t, 0.0, r.Enlargement(Rect{2, 2, 3, 3}))
	})

	t.Run("Disjoint", func(t *testing.T) {
		r := Rect{0, 0, 1, 1}
		// Union with (2,0)-(3,1) is (0,0)-(3,1), area 3, so growth is 2.
		assert.Equal(t, 2.0, r.Enlargement(Rect{2, 0, 3, 1}))
	})

	t.Run("Never negative", func(t *testing.T) {
		rects := []Rect{
			{0, 0, 1, 1},
			{-5, -5, 5, 5},
			NewPoint(2, 2),
			{1, 1, 9, 3},
		}
		for _, a := range rects {
			for _, b := range rects {
				assert.GreaterOrEqual(t, a.Enlargement(b), 0.0)
			}
		}
	})
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"Overlapping", Rect{0, 0, 2, 2}, Rect{1, 1, 3, 3}, true},
		{"Contained", Rect{0, 0, 10, 10}, Rect{4, 4, 5, 5}, true},
		{"Disjoint X", Rect{0, 0, 1, 1}, Rect{2, 0, 3, 1}, false},
		{"Disjoint Y", Rect{0, 0, 1, 1}, Rect{0, 2, 1, 3}, false},
		{"Touching edge", Rect{0, 0, 1, 1}, Rect{1, 0, 2, 1}, true},
		{"Touching corner", Rect{0, 0, 1, 1}, Rect{1, 1, 2, 2}, true},
		{"Point on edge", Rect{0, 0, 2, 2}, NewPoint(2, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.expected, tt.b.Intersects(tt.a))
		})
	}
}

func TestContainsPoint(t *testing.T) {
	r := Rect{0, 0, 4, 4}

	assert.True(t, r.ContainsPoint(2, 2))
	assert.True(t, r.ContainsPoint(0, 0), "corner is inclusive")
	assert.True(t, r.ContainsPoint(4, 2), "edge is inclusive")
	assert.False(t, r.ContainsPoint(5, 2))
	assert.False(t, r.ContainsPoint(2, -1))
}

func TestMinDist(t *testing.T) {
	r := Rect{1, 1, 4, 3}

	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"Inside", 2, 2, 0},
		{"On edge", 1, 2, 0},
		{"On corner", 4, 3, 0},
		{"Left of", -2, 2, 3},
		{"Above", 2, 7, 4},
		{"Diagonal to corner", 7, 7, 5}, // dx=3, dy=4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, r.MinDist(tt.x, tt.y), 1e-12)
		})
	}

	t.Run("Point rect exact distance", func(t *testing.T) {
		p := NewPoint(2, 3)
		assert.InDelta(t, math.Sqrt(13), p.MinDist(0, 0), 1e-12)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "(2,3)", NewPoint(2, 3).String())
	assert.Equal(t, "[(0,0)-(4,2)]", Rect{0, 0, 4, 2}.String())
}
