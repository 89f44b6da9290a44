package material

import (
	"github.com/mtuchkov/raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter computes how an incoming ray bounces off a hit point.
	// The second return value is false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection. It lives
// for a single bounce: the integrator consumes it and moves on.
type HitRecord struct {
	T        float32   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Geometric normal at the intersection
	Material Material  // Material of the hit object
}
