package dito

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/cadkit/caliper/bound"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxCorners returns the eight corners of a box with the given half extents,
// rotated and translated.
func boxCorners(half mgl64.Vec3, rot mgl64.Quat, offset mgl64.Vec3) []mgl64.Vec3 {
	var points []mgl64.Vec3
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				local := mgl64.Vec3{sx * half.X(), sy * half.Y(), sz * half.Z()}
				points = append(points, rot.Rotate(local).Add(offset))
			}
		}
	}
	return points
}

func sortedExtents(b bound.OBB) [3]float64 {
	e := []float64{b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()}
	sort.Float64s(e)
	return [3]float64{e[0], e[1], e[2]}
}

// assertOrthonormal checks the stored axes are unit length and perpendicular.
func assertOrthonormal(t *testing.T, b bound.OBB) {
	t.Helper()
	assert.InDelta(t, 1.0, b.VecX.Len(), 1e-4)
	assert.InDelta(t, 1.0, b.VecY.Len(), 1e-4)
	assert.InDelta(t, 0.0, b.VecX.Dot(b.VecY), 1e-4)
}

func TestBuild_AxisAlignedCube(t *testing.T) {
	// Corners of [0,10]^3. The refined candidates can at best tie the
	// axis-aligned box, and ties keep the axis-aligned result.
	var points []mgl64.Vec3
	for _, x := range []float64{0, 10} {
		for _, y := range []float64{0, 10} {
			for _, z := range []float64{0, 10} {
				points = append(points, mgl64.Vec3{x, y, z})
			}
		}
	}

	box := Build(points)

	assert.Equal(t, mgl64.Vec3{5, 5, 5}, box.Origin)
	assert.Equal(t, mgl64.Vec3{5, 5, 5}, box.HalfExtents)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, box.VecX)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, box.VecY)
	assert.Equal(t, bound.AABBFromPoints(points).Area(), box.Area())
}

func TestBuild_RotatedThinBox(t *testing.T) {
	// A 100x10x1 box rotated 37 degrees about Z. The di-tetrahedron faces
	// include a face of the cuboid itself, so the search recovers the exact
	// frame and extents.
	angle := 37 * math.Pi / 180
	rot := mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1})
	points := boxCorners(mgl64.Vec3{50, 5, 0.5}, rot, mgl64.Vec3{10, -20, 3})

	box := Build(points)
	assertOrthonormal(t, box)

	ext := sortedExtents(box)
	assert.InDelta(t, 0.5, ext[0], 1e-6)
	assert.InDelta(t, 5.0, ext[1], 1e-6)
	assert.InDelta(t, 50.0, ext[2], 1e-6)

	assert.InDelta(t, 10.0, box.Origin.X(), 1e-6)
	assert.InDelta(t, -20.0, box.Origin.Y(), 1e-6)
	assert.InDelta(t, 3.0, box.Origin.Z(), 1e-6)

	// Every box axis must be parallel to one of the rotated body axes.
	body := [3]mgl64.Vec3{
		rot.Rotate(mgl64.Vec3{1, 0, 0}),
		rot.Rotate(mgl64.Vec3{0, 1, 0}),
		rot.Rotate(mgl64.Vec3{0, 0, 1}),
	}
	for _, axis := range box.Axes() {
		bestDot := 0.0
		for _, b := range body {
			if d := math.Abs(axis.Dot(b)); d > bestDot {
				bestDot = d
			}
		}
		assert.InDelta(t, 1.0, bestDot, 1e-6, "axis %v not aligned with any body axis", axis)
	}

	for _, p := range points {
		assert.True(t, box.ContainsPoint(p))
	}
}

func TestBuild_DegenerateClouds(t *testing.T) {
	t.Run("single point", func(t *testing.T) {
		box := Build([]mgl64.Vec3{{3, -1, 2}})
		assert.Equal(t, mgl64.Vec3{3, -1, 2}, box.Origin)
		assert.Equal(t, mgl64.Vec3{0, 0, 0}, box.HalfExtents)
	})

	t.Run("duplicated point", func(t *testing.T) {
		box := Build([]mgl64.Vec3{{3, -1, 2}, {3, -1, 2}, {3, -1, 2}})
		assert.Equal(t, mgl64.Vec3{3, -1, 2}, box.Origin)
		assert.Equal(t, mgl64.Vec3{0, 0, 0}, box.HalfExtents)
	})

	t.Run("two points align with the segment", func(t *testing.T) {
		box := Build([]mgl64.Vec3{{0, 0, 0}, {3, 4, 0}})
		assertOrthonormal(t, box)

		// Flat box along the segment: half length 2.5, nothing across.
		ext := sortedExtents(box)
		assert.InDelta(t, 0.0, ext[0], 1e-9)
		assert.InDelta(t, 0.0, ext[1], 1e-9)
		assert.InDelta(t, 2.5, ext[2], 1e-9)

		assert.InDelta(t, 1.5, box.Origin.X(), 1e-9)
		assert.InDelta(t, 2.0, box.Origin.Y(), 1e-9)

		dir := mgl64.Vec3{0.6, 0.8, 0}
		assert.InDelta(t, 1.0, math.Abs(box.VecX.Dot(dir)), 1e-9)
	})

	t.Run("collinear cloud", func(t *testing.T) {
		points := []mgl64.Vec3{
			{0, 0, 0}, {1, 1, 1}, {2, 2, 2}, {5, 5, 5}, {3, 3, 3},
		}
		box := Build(points)

		ext := sortedExtents(box)
		assert.InDelta(t, 0.0, ext[0], 1e-9)
		assert.InDelta(t, 0.0, ext[1], 1e-9)
		assert.InDelta(t, 5*math.Sqrt(3)/2, ext[2], 1e-9)
		for _, p := range points {
			assert.True(t, box.ContainsPoint(p))
		}
	})

	t.Run("coplanar cloud has exactly one zero extent", func(t *testing.T) {
		var points []mgl64.Vec3
		for i := 0; i <= 10; i++ {
			points = append(points, mgl64.Vec3{float64(i), 0, 0})
		}
		for j := 1; j <= 10; j++ {
			points = append(points, mgl64.Vec3{0, float64(j), 0})
		}

		box := Build(points)
		ext := sortedExtents(box)
		assert.InDelta(t, 0.0, ext[0], 1e-9)
		assert.Greater(t, ext[1], 1.0)
		assert.Greater(t, ext[2], 1.0)
	})
}

func TestBuild_NeverWorseThanAABB(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		n := 3 + rng.Intn(200)
		points := make([]mgl64.Vec3, n)
		for j := range points {
			points[j] = mgl64.Vec3{
				rng.Float64()*20 - 10,
				rng.Float64()*6 - 3,
				rng.Float64()*2 - 1,
			}
		}

		box := Build(points)
		aabb := bound.AABBFromPoints(points)

		assert.LessOrEqual(t, box.Area(), aabb.Area())
		assertOrthonormal(t, box)
		for _, p := range points {
			require.True(t, box.ContainsPoint(p), "point %v escaped the box", p)
		}
	}
}

func TestBuild_RigidMotionCongruence(t *testing.T) {
	half := mgl64.Vec3{7, 3, 1}
	original := boxCorners(half, mgl64.QuatIdent(), mgl64.Vec3{})

	rot := mgl64.QuatRotate(0.4, mgl64.Vec3{1, 2, 3}.Normalize())
	moved := boxCorners(half, rot, mgl64.Vec3{-4, 9, 2})

	boxA := Build(original)
	boxB := Build(moved)

	extA := sortedExtents(boxA)
	extB := sortedExtents(boxB)
	for i := range extA {
		assert.InDelta(t, extA[i], extB[i], 1e-6)
	}
	assert.InDelta(t, boxA.Volume(), boxB.Volume(), 1e-6)
}
