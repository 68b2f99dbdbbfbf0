package dito

import "github.com/go-gl/mathgl/mgl64"

// cloudShape classifies the extremal sample by dimensionality. Lower-rank
// clouds cannot support the triangle search and take dedicated paths.
type cloudShape int

const (
	// shapeFull: the sample spans a genuine triangle, both tetrahedra exist.
	shapeFull cloudShape = iota
	// shapeLine: all sample points are collinear (within Epsilon).
	shapeLine
	// shapePoint: all sample points coincide (within Epsilon).
	shapePoint
)

// diTetra is the five-point proxy for the whole cloud: a base triangle
// P0,P1,P2 approximating the cloud's diameter, plus two apex points Q0,Q1
// on either side of the base plane. Scratch data for a single build.
//
// Layout: [0]=P0 [1]=P1 [2]=P2 [3]=Q0 (min side) [4]=Q1 (max side).
type diTetra [5]mgl64.Vec3

// buildTetra constructs the di-tetrahedron from the 14 extremal points.
//
//  1. P0,P1 are the (min,max) pair with the largest pairwise distance among
//     the seven sampling axes; this bounds the cloud diameter from below.
//  2. P2 is the sample point with the largest perpendicular distance to the
//     infinite line P0P1.
//  3. Q0,Q1 are the sample points with extreme projections onto the base
//     triangle's normal.
//
// Degenerate clouds are reported through the shape result instead of a
// sentinel index: a collinear cloud has no usable base triangle and a
// single-point cloud has no usable span at all.
func buildTetra(set *extremalSet) (diTetra, cloudShape) {
	var tet diTetra

	// Longest axis-aligned span among the seven extremal pairs.
	bestPair := 0
	bestSpan := -1.0
	for i := 0; i < 7; i++ {
		if d := set[i+7].Sub(set[i]).LenSqr(); d > bestSpan {
			bestSpan = d
			bestPair = i
		}
	}
	p0, p1 := set[bestPair], set[bestPair+7]
	tet[0], tet[1] = p0, p1

	if bestSpan <= Epsilon*Epsilon {
		return tet, shapePoint
	}

	// Farthest sample point from the line P0P1. For v = p-P0 and unit line
	// direction û, the squared perpendicular distance is |v|² - (v·û)².
	dir := p1.Sub(p0)
	dirLenSqr := dir.LenSqr()
	p2 := p0
	bestPerp := -1.0
	for _, p := range set {
		v := p.Sub(p0)
		perp := v.LenSqr() - v.Dot(dir)*v.Dot(dir)/dirLenSqr
		if perp > bestPerp {
			bestPerp = perp
			p2 = p
		}
	}
	tet[2] = p2

	if bestPerp <= Epsilon*Epsilon {
		return tet, shapeLine
	}

	// Apex points: extreme projections onto the base normal. The normal is
	// non-degenerate here since P2 is off the P0P1 line.
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	q0, q1 := p0, p0
	minProj, maxProj := p0.Dot(normal), p0.Dot(normal)
	for _, p := range set {
		d := p.Dot(normal)
		if d < minProj {
			minProj = d
			q0 = p
		}
		if d > maxProj {
			maxProj = d
			q1 = p
		}
	}
	tet[3], tet[4] = q0, q1

	return tet, shapeFull
}

// lineAxes builds an orthonormal frame whose first axis follows the given
// non-zero direction. Used for collinear clouds, where the box is a segment
// and any perpendicular pair completes the frame.
func lineAxes(dir mgl64.Vec3) [3]mgl64.Vec3 {
	u := dir.Normalize()

	seed := mgl64.Vec3{1, 0, 0}
	if u.X() > 0.9 || u.X() < -0.9 {
		seed = mgl64.Vec3{0, 1, 0}
	}
	v := seed.Sub(u.Mul(seed.Dot(u))).Normalize()
	w := u.Cross(v)

	return [3]mgl64.Vec3{u, v, w}
}
