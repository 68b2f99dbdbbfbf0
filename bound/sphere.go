package bound

import "github.com/go-gl/mathgl/mgl64"

// Sphere represents a bounding sphere.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// ContainsPoint reports whether the point lies inside the sphere, within
// ContainsEpsilon of the surface.
func (s Sphere) ContainsPoint(point mgl64.Vec3) bool {
	r := s.Radius + ContainsEpsilon
	return point.Sub(s.Center).LenSqr() <= r*r
}

// SphereFromPoints returns an approximate minimum enclosing sphere of the
// points, using Ritter's two-pass construction: guess a diameter from a pair
// of mutually far points, then grow the sphere over any point left outside.
// The result is guaranteed to contain every point but may be a few percent
// larger than the true minimum. An empty slice yields the zero sphere.
func SphereFromPoints(points []mgl64.Vec3) Sphere {
	if len(points) == 0 {
		return Sphere{}
	}

	// Point farthest from an arbitrary start, then the point farthest from
	// that one. The pair approximates a diameter of the cloud.
	a := farthestFrom(points[0], points)
	b := farthestFrom(a, points)

	center := a.Add(b).Mul(0.5)
	radius := b.Sub(center).Len()

	// Growth pass: any point still outside pushes the far side of the sphere
	// out to it, keeping the near side fixed.
	for _, p := range points {
		d := p.Sub(center).Len()
		if d <= radius {
			continue
		}
		radius = 0.5 * (radius + d)
		center = center.Add(p.Sub(center).Mul((d - radius) / d))
	}

	return Sphere{Center: center, Radius: radius}
}

func farthestFrom(from mgl64.Vec3, points []mgl64.Vec3) mgl64.Vec3 {
	best := from
	bestDist := -1.0
	for _, p := range points {
		if d := p.Sub(from).LenSqr(); d > bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}
