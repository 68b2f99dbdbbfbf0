// Package caliper computes tight-fitting bounding volumes for 3D point
// clouds and provides primitive overlap tests between them.
//
// The default OBB builder uses the di-tetrahedron search (see the dito
// package); a covariance-based fast path is available for callers that trade
// tightness for simplicity (see the pca package). Both are synchronous pure
// functions: all scratch state is call-local and calls may run concurrently
// from any number of goroutines.
package caliper

import (
	"errors"
	"fmt"

	"github.com/cadkit/caliper/bound"
	"github.com/cadkit/caliper/dito"
	"github.com/cadkit/caliper/pca"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoPoints is returned when a builder is invoked with an empty cloud.
// There is no meaningful bounding volume of nothing.
var ErrNoPoints = errors.New("point cloud is empty")

// ComputeOBB returns a near-optimal oriented bounding box for the cloud.
//
// The surface-area score of the result is never larger than the axis-aligned
// bounding box's score. Degenerate clouds (single point, collinear,
// coplanar) yield valid boxes with zero extent along the flat axes.
func ComputeOBB(points []mgl64.Vec3) (bound.OBB, error) {
	if len(points) == 0 {
		return bound.OBB{}, fmt.Errorf("ComputeOBB: %w", ErrNoPoints)
	}
	return dito.Build(points), nil
}

// ComputePCAOBB returns an oriented bounding box aligned with the principal
// components of the cloud.
//
// This is the fast, approximate path: a single pass with no candidate
// search, but the box fits the directions of maximum spread rather than
// minimum area and can be substantially looser than ComputeOBB — up to
// around 4x in area on adversarial clouds.
func ComputePCAOBB(points []mgl64.Vec3) (bound.OBB, error) {
	if len(points) == 0 {
		return bound.OBB{}, fmt.Errorf("ComputePCAOBB: %w", ErrNoPoints)
	}
	return pca.Build(points), nil
}

// ComputeBoundingSphere returns an approximate minimum enclosing sphere of
// the cloud (Ritter construction: within a few percent of optimal).
func ComputeBoundingSphere(points []mgl64.Vec3) (bound.Sphere, error) {
	if len(points) == 0 {
		return bound.Sphere{}, fmt.Errorf("ComputeBoundingSphere: %w", ErrNoPoints)
	}
	return bound.SphereFromPoints(points), nil
}
