package scene

import (
	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/geometry"
	"github.com/mtuchkov/raytracer/pkg/renderer"
)

// Scene bundles everything the renderer reads: camera, world, output
// dimensions, sampling configuration and the sky gradient colors. It is
// fully built before rendering starts and never mutated by the core.
type Scene struct {
	Camera         renderer.Camera
	World          *geometry.World
	Width          int
	Height         int
	SamplingConfig renderer.SamplingConfig
	TopColor       core.Vec3
	BottomColor    core.Vec3
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() *geometry.World {
	return s.World
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetDimensions implements renderer.Scene
func (s *Scene) GetDimensions() (int, int) {
	return s.Width, s.Height
}

// skyGradient returns the standard white-to-blue sky colors
func skyGradient() (top, bottom core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)
}
