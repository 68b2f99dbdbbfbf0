package caliper

import (
	"math"

	"github.com/cadkit/caliper/bound"
)

// satEpsilon pads the absolute rotation entries in the OBB separating-axis
// test. Without it, cross-product axes between near-parallel edges are
// near-zero vectors and the test becomes numerically meaningless.
const satEpsilon = 1e-10

// OBBOverlap reports whether two oriented boxes intersect, using the
// separating-axis test over the 15 candidate axes: the three face normals
// of each box and the nine pairwise edge cross products.
//
// The formulation follows Ericson's precomputed R-matrix version: express
// B's axes in A's frame once, then every axis test reduces to comparing a
// projected center distance against the sum of projected half-extents.
// Touching boxes count as overlapping.
func OBBOverlap(a, b bound.OBB) bool {
	aAxes := a.Axes()
	bAxes := b.Axes()

	// R[i][j] = aAxes[i] · bAxes[j], the relative rotation.
	var r, absR [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = aAxes[i].Dot(bAxes[j])
			absR[i][j] = math.Abs(r[i][j]) + satEpsilon
		}
	}

	// Center distance expressed in A's frame.
	d := b.Origin.Sub(a.Origin)
	var t [3]float64
	for i := 0; i < 3; i++ {
		t[i] = d.Dot(aAxes[i])
	}

	ea := a.HalfExtents
	eb := b.HalfExtents

	// A's face normals.
	for i := 0; i < 3; i++ {
		ra := ea[i]
		rb := eb[0]*absR[i][0] + eb[1]*absR[i][1] + eb[2]*absR[i][2]
		if math.Abs(t[i]) > ra+rb {
			return false
		}
	}

	// B's face normals.
	for j := 0; j < 3; j++ {
		ra := ea[0]*absR[0][j] + ea[1]*absR[1][j] + ea[2]*absR[2][j]
		rb := eb[j]
		if math.Abs(t[0]*r[0][j]+t[1]*r[1][j]+t[2]*r[2][j]) > ra+rb {
			return false
		}
	}

	// Edge cross products aAxes[i] × bAxes[j].
	for i := 0; i < 3; i++ {
		i1 := (i + 1) % 3
		i2 := (i + 2) % 3
		for j := 0; j < 3; j++ {
			j1 := (j + 1) % 3
			j2 := (j + 2) % 3

			ra := ea[i1]*absR[i2][j] + ea[i2]*absR[i1][j]
			rb := eb[j1]*absR[i][j2] + eb[j2]*absR[i][j1]
			if math.Abs(t[i2]*r[i1][j]-t[i1]*r[i2][j]) > ra+rb {
				return false
			}
		}
	}

	return true
}

// SphereOBBOverlap reports whether a sphere and an oriented box intersect.
// The closest point of the box to the sphere center is found by clamping
// the center in the box frame; the pair overlaps when that point lies
// within the radius.
func SphereOBBOverlap(s bound.Sphere, b bound.OBB) bool {
	d := s.Center.Sub(b.Origin)

	closest := b.Origin
	for i, axis := range b.Axes() {
		proj := d.Dot(axis)
		if proj > b.HalfExtents[i] {
			proj = b.HalfExtents[i]
		} else if proj < -b.HalfExtents[i] {
			proj = -b.HalfExtents[i]
		}
		closest = closest.Add(axis.Mul(proj))
	}

	return s.Center.Sub(closest).LenSqr() <= s.Radius*s.Radius
}

// AABBOverlap reports whether two axis-aligned boxes intersect. Touching
// boxes count as overlapping.
func AABBOverlap(a, b bound.AABB) bool {
	return a.Overlaps(b)
}
