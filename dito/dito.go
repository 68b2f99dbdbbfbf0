// Package dito implements the DiTetrahedron ("DiTO") algorithm for computing
// a near-optimal oriented bounding box of a 3D point cloud.
//
// The algorithm samples a constant number of extremal points from the cloud,
// builds two tetrahedra sharing a base triangle that approximates the
// cloud's diameter, and searches the faces of that di-tetrahedron for box
// axes. Only the final tightening pass touches the full cloud again, so the
// cost is O(n) with a small constant.
//
// The result is never worse than the axis-aligned bounding box: the builder
// scores its best candidate against the AABB and keeps whichever is smaller.
//
// References:
//   - Larsson, Källberg: "Fast Computation of Tight-Fitting Oriented
//     Bounding Boxes" (Game Engine Gems 2, 2011)
//   - Ericson: "Real-Time Collision Detection" (2005), Ch. 4.4
package dito

import (
	"github.com/cadkit/caliper/bound"
	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon guards the degeneracy tests: spans, perpendicular distances and
// cross products shorter than this are treated as zero. It is a tolerance
// for floating-point noise, not a per-call tunable.
const Epsilon = 1e-6

// Build computes an oriented bounding box for the point cloud.
//
// Degenerate clouds (single point, collinear, coplanar) produce valid boxes
// with zero extent along the flat axes. The caller guarantees at least one
// point; the public entry point in the root package validates that.
func Build(points []mgl64.Vec3) bound.OBB {
	// Axis-aligned baseline. Computed up front: it is both the fallback for
	// degenerate clouds and the score every candidate has to beat.
	best := bound.AABBFromPoints(points).OBB()

	set := sampleExtremals(points)
	tet, shape := buildTetra(&set)

	switch shape {
	case shapePoint:
		return best
	case shapeLine:
		// Collinear cloud: align the box with the segment instead of
		// searching faces that cannot exist.
		segment := bound.OBBFromAxes(points, lineAxes(tet[1].Sub(tet[0])))
		if segment.Area() < best.Area() {
			return segment
		}
		return best
	}

	axes, ok := refineAxes(&tet, &set)
	if !ok {
		return best
	}

	// Tighten over the full cloud, not just the 14-point sample, then keep
	// the refined box only on strict improvement. The comparison is part of
	// the contract, not an optimization: the face search is a heuristic and
	// can lose to the AABB on already-aligned or adversarial clouds.
	refined := bound.OBBFromAxes(points, axes)
	if refined.Area() < best.Area() {
		return refined
	}
	return best
}
