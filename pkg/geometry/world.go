package geometry

import (
	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/material"
)

// World is an ordered collection of hittable surfaces. It is append-only
// during scene construction and immutable while rendering.
type World struct {
	objects []Hittable
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{objects: make([]Hittable, 0)}
}

// Add appends a surface to the world
func (w *World) Add(object Hittable) {
	w.objects = append(w.objects, object)
}

// Size returns the number of surfaces in the world
func (w *World) Size() int {
	return len(w.objects)
}

// Hit resolves the globally nearest intersection along the ray by scanning
// every surface. Shrinking closestSoFar rejects surfaces farther than the
// current best without collecting all hits first. Insertion order does not
// affect the result.
func (w *World) Hit(ray core.Ray, tMin, tMax float32) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range w.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
