package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AABBFromPoints returns the tightest axis-aligned box enclosing the given
// points. An empty slice yields the zero box.
func AABBFromPoints(points []mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Expand(p)
	}

	return box
}

// Expand grows the box just enough to contain the point.
func (a *AABB) Expand(p mgl64.Vec3) {
	a.Min[0] = math.Min(a.Min[0], p[0])
	a.Min[1] = math.Min(a.Min[1], p[1])
	a.Min[2] = math.Min(a.Min[2], p[2])

	a.Max[0] = math.Max(a.Max[0], p[0])
	a.Max[1] = math.Max(a.Max[1], p[1])
	a.Max[2] = math.Max(a.Max[2], p[2])
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// HalfExtents returns the half-width of the box along each world axis.
func (a AABB) HalfExtents() mgl64.Vec3 {
	return a.Max.Sub(a.Min).Mul(0.5)
}

// Area is the surface-area score of the box, on the same scale as OBB.Area
// so the two are directly comparable.
func (a AABB) Area() float64 {
	h := a.HalfExtents()
	return 8 * (h.X()*h.Y() + h.Y()*h.Z() + h.Z()*h.X())
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// OBB converts the box to its oriented representation: world axes, same
// center and half-extents.
func (a AABB) OBB() OBB {
	return OBB{
		Frame: Frame{
			Origin: a.Center(),
			VecX:   mgl64.Vec3{1, 0, 0},
			VecY:   mgl64.Vec3{0, 1, 0},
		},
		HalfExtents: a.HalfExtents(),
	}
}
