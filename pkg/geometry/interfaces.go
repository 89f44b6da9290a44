package geometry

import (
	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
// Hit reports the nearest intersection with t in the open interval
// (tMin, tMax), or false when the ray misses.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float32) (*material.HitRecord, bool)
}
