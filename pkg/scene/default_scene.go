package scene

import (
	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/geometry"
	"github.com/mtuchkov/raytracer/pkg/material"
	"github.com/mtuchkov/raytracer/pkg/renderer"
)

// NewDefaultScene creates the five-sphere showcase scene: a blue diffuse
// sphere flanked by a gold metal sphere and a hollow glass sphere, resting
// on a big yellow ground sphere, viewed through a thin lens.
func NewDefaultScene(width, height int) *Scene {
	camera := renderer.NewThinLensCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(2, 2, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   float32(width) / float32(height),
		Aperture:      0.1,
		FocusDistance: 0, // Auto: distance from LookFrom to LookAt
	})

	world := geometry.NewWorld()

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianYellow := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)
	glass := material.NewDielectric(1.5)

	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue))
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianYellow))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass))
	// The negative radius keeps the geometry but flips the normal,
	// turning the glass sphere into a hollow shell
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass))

	top, bottom := skyGradient()

	return &Scene{
		Camera:         camera,
		World:          world,
		Width:          width,
		Height:         height,
		SamplingConfig: renderer.DefaultSamplingConfig(),
		TopColor:       top,
		BottomColor:    bottom,
	}
}
