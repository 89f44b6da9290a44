package material

import (
	"github.com/chewxy/math32"

	"github.com/mtuchkov/raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float32   // Index of refraction (e.g., 1.5 for glass)
	Attenuation     core.Vec3 // Clear glass absorbs nothing: (1,1,1)
}

// NewDielectric creates a new dielectric material with no absorption
func NewDielectric(refractiveIndex float32) *Dielectric {
	return &Dielectric{
		RefractiveIndex: refractiveIndex,
		Attenuation:     core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Scatter implements the Material interface for dielectric scattering.
// A dielectric never absorbs: the ray either refracts through the surface
// or reflects off it, chosen stochastically by the Schlick reflectance.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float32

	if rayIn.Direction.Dot(hit.Normal) > 0 {
		// Exiting the material (glass to air)
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
	} else {
		// Entering the material (air to glass)
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -rayIn.Direction.Dot(hit.Normal) / rayIn.Direction.Length()
	}

	direction := reflected
	if refracted, ok := refract(rayIn.Direction, outwardNormal, niOverNt); ok {
		// Both paths exist; pick one by the Fresnel reflectance
		if sampler.Get1D() >= Reflectance(cosine, d.RefractiveIndex) {
			direction = refracted
		}
	}
	// No real refraction means total internal reflection: keep `reflected`

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: d.Attenuation,
	}, true
}

// refract calculates the refraction of a vector using Snell's law.
// Returns false when no real solution exists (total internal reflection).
func refract(v, n core.Vec3, niOverNt float32) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math32.Sqrt(discriminant)))
	return refracted, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refIdx float32) float32 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
