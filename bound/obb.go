// Package bound provides the bounding-volume value types of the kernel:
// axis-aligned boxes, oriented boxes and bounding spheres.
//
// All types are plain values with no shared state; a volume computed for one
// point cloud never aliases another. Degenerate volumes (zero extents, zero
// radius) are valid values, not errors.
package bound

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ContainsEpsilon pads containment tests so points sitting exactly on a face
// are not rejected by floating-point noise.
const ContainsEpsilon = 1e-6

// Frame is an orthonormal coordinate frame: an origin plus two unit axes.
// The third axis is implied as VecX × VecY, making the frame right-handed.
// Callers are responsible for keeping VecX and VecY unit length and
// perpendicular; the constructors in this module always do.
type Frame struct {
	Origin mgl64.Vec3
	VecX   mgl64.Vec3
	VecY   mgl64.Vec3
}

// VecZ returns the derived third axis of the frame.
func (f Frame) VecZ() mgl64.Vec3 {
	return f.VecX.Cross(f.VecY)
}

// OBB is an oriented bounding box: a frame whose origin is the box center,
// plus the half-width of the box along each frame axis.
//
// A zero half-extent means the input was flat along that axis (coplanar,
// collinear or a single point). That is a valid, degenerate box.
type OBB struct {
	Frame
	HalfExtents mgl64.Vec3
}

// Axes returns the three axes of the box as an array.
func (b OBB) Axes() [3]mgl64.Vec3 {
	return [3]mgl64.Vec3{b.VecX, b.VecY, b.VecZ()}
}

// Area is the surface-area score of the box: 8·(ex·ey + ey·ez + ez·ex).
// The scale is off the true surface area by a constant factor, which is
// irrelevant since scores are only ever compared against each other.
func (b OBB) Area() float64 {
	h := b.HalfExtents
	return 8 * (h.X()*h.Y() + h.Y()*h.Z() + h.Z()*h.X())
}

// Volume returns the volume of the box.
func (b OBB) Volume() float64 {
	// Volume = 8 * hx * hy * hz (full dimensions are 2*halfExtents)
	return 8 * b.HalfExtents.X() * b.HalfExtents.Y() * b.HalfExtents.Z()
}

// IsDegenerate reports whether the box is flat along at least one axis.
func (b OBB) IsDegenerate() bool {
	return b.HalfExtents.X() == 0 || b.HalfExtents.Y() == 0 || b.HalfExtents.Z() == 0
}

// ContainsPoint reports whether the point lies inside the box, within
// ContainsEpsilon of each face.
func (b OBB) ContainsPoint(point mgl64.Vec3) bool {
	d := point.Sub(b.Origin)
	for i, axis := range b.Axes() {
		if math.Abs(d.Dot(axis)) > b.HalfExtents[i]+ContainsEpsilon {
			return false
		}
	}
	return true
}

// Corners returns the eight corners of the box.
func (b OBB) Corners() [8]mgl64.Vec3 {
	axes := b.Axes()
	x := axes[0].Mul(b.HalfExtents.X())
	y := axes[1].Mul(b.HalfExtents.Y())
	z := axes[2].Mul(b.HalfExtents.Z())

	return [8]mgl64.Vec3{
		b.Origin.Sub(x).Sub(y).Sub(z),
		b.Origin.Add(x).Sub(y).Sub(z),
		b.Origin.Sub(x).Add(y).Sub(z),
		b.Origin.Add(x).Add(y).Sub(z),
		b.Origin.Sub(x).Sub(y).Add(z),
		b.Origin.Add(x).Sub(y).Add(z),
		b.Origin.Sub(x).Add(y).Add(z),
		b.Origin.Add(x).Add(y).Add(z),
	}
}

// OBBFromAxes materializes the tightest box with the given orthonormal axes
// around the points: every point is projected onto each axis, the projection
// interval gives the extent, and the center is recomposed from the interval
// midpoints. An empty slice yields the zero box.
func OBBFromAxes(points []mgl64.Vec3, axes [3]mgl64.Vec3) OBB {
	if len(points) == 0 {
		return OBB{}
	}

	var min, max [3]float64
	for i, axis := range axes {
		d := points[0].Dot(axis)
		min[i], max[i] = d, d
	}
	for _, p := range points[1:] {
		for i, axis := range axes {
			d := p.Dot(axis)
			if d < min[i] {
				min[i] = d
			}
			if d > max[i] {
				max[i] = d
			}
		}
	}

	var center mgl64.Vec3
	var half mgl64.Vec3
	for i, axis := range axes {
		center = center.Add(axis.Mul(0.5 * (min[i] + max[i])))
		half[i] = 0.5 * (max[i] - min[i])
	}

	return OBB{
		Frame:       Frame{Origin: center, VecX: axes[0], VecY: axes[1]},
		HalfExtents: half,
	}
}
