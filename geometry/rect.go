// Package geometry provides the axis-aligned rectangle arithmetic used by the
// spatial index: areas, unions, enlargement costs, intersection and containment
// tests, and point-distance lower bounds.
//
// Rect is a plain value type. All operations are pure; a Rect is never mutated
// in place.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRect indicates a rectangle whose minimum exceeds its maximum on
// some axis.
var ErrInvalidRect = errors.New("geometry: rectangle min exceeds max")

// Rect is an axis-aligned bounding rectangle (an MBR when it encloses other
// geometries). A degenerate rectangle with MinX == MaxX and MinY == MaxY
// represents a point.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from its corner coordinates.
// It returns ErrInvalidRect if minX > maxX or minY > maxY.
func NewRect(minX, minY, maxX, maxY float64) (Rect, error) {
	if minX > maxX || minY > maxY {
		return Rect{}, fmt.Errorf("%w: (%v,%v)-(%v,%v)", ErrInvalidRect, minX, minY, maxX, maxY)
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// NewPoint creates the degenerate rectangle covering exactly the point (x, y).
func NewPoint(x, y float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// IsPoint reports whether the rectangle is degenerate (zero extent on both axes).
func (r Rect) IsPoint() bool {
	return r.MinX == r.MaxX && r.MinY == r.MaxY
}

// Area returns the area of the rectangle. A point rectangle has area 0.
func (r Rect) Area() float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Union returns the tightest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, other.MinX),
		MinY: math.Min(r.MinY, other.MinY),
		MaxX: math.Max(r.MaxX, other.MaxX),
		MaxY: math.Max(r.MaxY, other.MaxY),
	}
}

// Enlargement returns the area growth required for r to enclose other.
// The result is always >= 0.
func (r Rect) Enlargement(other Rect) float64 {
	return r.Union(other).Area() - r.Area()
}

// Intersects reports whether r and other overlap. Bounds are closed intervals:
// rectangles that merely touch on an edge or corner intersect.
func (r Rect) Intersects(other Rect) bool {
	return !(r.MaxX < other.MinX ||
		r.MinX > other.MaxX ||
		r.MaxY < other.MinY ||
		r.MinY > other.MaxY)
}

// ContainsPoint reports whether (x, y) lies within r, bounds inclusive.
func (r Rect) ContainsPoint(x, y float64) bool {
	return r.MinX <= x && x <= r.MaxX && r.MinY <= y && y <= r.MaxY
}

// MinDist returns the minimum Euclidean distance from (x, y) to any point of r:
// 0 when the point is inside, otherwise the distance to the nearest edge or
// corner. For any geometry enclosed by r this is a lower bound on its true
// distance to (x, y), which is what makes it safe as a best-first search key.
func (r Rect) MinDist(x, y float64) float64 {
	dx := math.Max(math.Max(r.MinX-x, 0), x-r.MaxX)
	dy := math.Max(math.Max(r.MinY-y, 0), y-r.MaxY)
	return math.Sqrt(dx*dx + dy*dy)
}

// String renders a point rectangle as "(x,y)" and a general rectangle as
// "[(minX,minY)-(maxX,maxY)]".
func (r Rect) String() string {
	if r.IsPoint() {
		return fmt.Sprintf("(%g,%g)", r.MinX, r.MinY)
	}
	return fmt.Sprintf("[(%g,%g)-(%g,%g)]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
