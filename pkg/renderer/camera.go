package renderer

import (
	"github.com/chewxy/math32"

	"github.com/mtuchkov/raytracer/pkg/core"
)

// Camera generates rays for normalized image-plane coordinates (s, t) with
// the origin at the lower-left corner. Implementations may consume the
// sampler for lens sampling.
type Camera interface {
	GetRay(s, t float32, sampler core.Sampler) core.Ray
}

// CameraConfig describes a positionable thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float32 // Vertical field of view in degrees
	AspectRatio   float32 // Width / height
	Aperture      float32 // Lens diameter; 0 disables depth of field
	FocusDistance float32 // 0 = auto-calculate from LookFrom/LookAt
}

// ThinLensCamera is a positionable camera with a finite aperture. All fields
// are derived once at construction and immutable afterwards.
type ThinLensCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float32
}

// NewThinLensCamera creates a camera from the given configuration
func NewThinLensCamera(config CameraConfig) *ThinLensCamera {
	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = config.LookFrom.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math32.Pi / 180.0
	halfHeight := math32.Tan(theta / 2.0)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis: w points from the target back to the camera
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// All three basis terms scale by the focus distance, placing the image
	// plane exactly on the focal plane.
	lowerLeftCorner := config.LookFrom.
		Subtract(u.Multiply(halfWidth * focusDist)).
		Subtract(v.Multiply(halfHeight * focusDist)).
		Subtract(w.Multiply(focusDist))

	return &ThinLensCamera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDist),
		vertical:        v.Multiply(2 * halfHeight * focusDist),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2.0,
	}
}

// GetRay generates a ray through image-plane coordinates (s, t), with its
// origin jittered across the lens disk for depth of field. The returned
// direction is intentionally non-unit.
func (c *ThinLensCamera) GetRay(s, t float32, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}

// FixedCamera is the degenerate pinhole camera for the simplest scenes:
// fixed at the world origin with a hardcoded 2:1 viewport.
type FixedCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewFixedCamera creates the fixed pinhole camera
func NewFixedCamera() *FixedCamera {
	return &FixedCamera{
		origin:          core.NewVec3(0, 0, 0),
		lowerLeftCorner: core.NewVec3(-2, -1, -1),
		horizontal:      core.NewVec3(4, 0, 0),
		vertical:        core.NewVec3(0, 2, 0),
	}
}

// GetRay generates a ray through image-plane coordinates (s, t). The sampler
// is unused: a pinhole has no lens to sample.
func (c *FixedCamera) GetRay(s, t float32, _ core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
