package dito

import "github.com/go-gl/mathgl/mgl64"

// sampleAxes are the seven fixed sampling directions: the three canonical
// axes plus the four cube body-diagonals. They are deliberately left
// unnormalized; the sampler only compares projections along one axis at a
// time, so a consistent scale per axis is enough.
var sampleAxes = [7]mgl64.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
	{1, 1, -1},
	{1, -1, 1},
	{-1, 1, 1},
}

// extremalSet holds the two extremal input points per sampling axis:
// indices 0-6 are the minimal-projection points, indices 7-13 the maximal,
// both parallel to sampleAxes. Scratch data for a single build.
type extremalSet [14]mgl64.Vec3

// sampleExtremals projects every point onto each sampling axis and records
// the points achieving the extreme projections. Comparisons are strict so
// the first point reaching an extreme value wins ties, which keeps the
// construction deterministic for any input ordering.
//
// The caller guarantees at least one point.
func sampleExtremals(points []mgl64.Vec3) extremalSet {
	var set extremalSet
	var minProj, maxProj [7]float64

	for i, axis := range sampleAxes {
		d := points[0].Dot(axis)
		minProj[i], maxProj[i] = d, d
		set[i], set[i+7] = points[0], points[0]
	}

	for _, p := range points[1:] {
		for i, axis := range sampleAxes {
			d := p.Dot(axis)
			if d < minProj[i] {
				minProj[i] = d
				set[i] = p
			}
			if d > maxProj[i] {
				maxProj[i] = d
				set[i+7] = p
			}
		}
	}

	return set
}
