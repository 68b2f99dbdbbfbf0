package dito

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// tetraFaces indexes the seven distinct faces of the di-tetrahedron into
// the diTetra array: the shared base triangle, then the three side faces of
// each tetrahedron.
var tetraFaces = [7][3]int{
	{0, 1, 2},
	{0, 1, 3},
	{1, 2, 3},
	{2, 0, 3},
	{0, 1, 4},
	{1, 2, 4},
	{2, 0, 4},
}

// refineAxes searches the di-tetrahedron's faces for the orthonormal frame
// producing the smallest box around the extremal sample.
//
// For every face and each of its three vertex rotations (so every edge gets
// a turn as the primary axis), the frame is built from the edge and the face
// normal, and scored by projecting only the 14 sample points. Zero-area
// faces contribute no usable normal and are skipped. Improvement is strict,
// so the first frame reaching the best score wins ties.
//
// ok is false when no face produced a usable frame (fully degenerate
// di-tetrahedron); the caller then keeps the axis-aligned frame.
func refineAxes(tet *diTetra, set *extremalSet) (axes [3]mgl64.Vec3, ok bool) {
	bestArea := math.MaxFloat64

	for _, face := range tetraFaces {
		a, b, c := tet[face[0]], tet[face[1]], tet[face[2]]

		for rotation := 0; rotation < 3; rotation++ {
			u := b.Sub(a)
			cross := u.Cross(c.Sub(a))
			if cross.LenSqr() > Epsilon*Epsilon && u.LenSqr() > Epsilon*Epsilon {
				w := cross.Normalize()
				un := u.Normalize()
				v := w.Cross(un)
				candidate := [3]mgl64.Vec3{un, v, w}

				if area := sampleArea(set, candidate); area < bestArea {
					bestArea = area
					axes = candidate
					ok = true
				}
			}

			a, b, c = b, c, a
		}
	}

	return axes, ok
}

// sampleArea scores a frame by the surface area of the sample's bounding
// box in that frame. Only relative ordering matters, so the constant factor
// of the full Area formula is dropped.
func sampleArea(set *extremalSet, axes [3]mgl64.Vec3) float64 {
	var min, max [3]float64
	for i, axis := range axes {
		d := set[0].Dot(axis)
		min[i], max[i] = d, d
	}
	for _, p := range set[1:] {
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

	dx := max[0] - min[0]
	dy := max[1] - min[1]
	dz := max[2] - min[2]

	return dx*dy + dy*dz + dz*dx
}
