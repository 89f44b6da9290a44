package scene

import (
	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/geometry"
	"github.com/mtuchkov/raytracer/pkg/material"
	"github.com/mtuchkov/raytracer/pkg/renderer"
)

// NewRandomScene creates the classic cover scene: a grid of ~480 small
// random spheres (80% diffuse, 15% metal, 5% glass) around three hero
// spheres on a gray ground. The sampler drives the placement, so a seeded
// sampler reproduces the same scene.
func NewRandomScene(width, height int, sampler core.Sampler) *Scene {
	camera := renderer.NewThinLensCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(2, 2, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   float32(width) / float32(height),
		Aperture:      0.1,
		FocusDistance: 0,
	})

	world := geometry.NewWorld()

	world.Add(geometry.NewSphere(
		core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float32(a)+0.9*sampler.Get1D(),
				0.2,
				float32(b)+0.9*sampler.Get1D())

			// Keep clear of the large glass hero sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			world.Add(geometry.NewSphere(center, 0.2, randomMaterial(sampler)))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0,
		material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
		material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
		material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

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

// randomMaterial picks a material for a small sphere: 80% diffuse,
// 15% metal, 5% glass
func randomMaterial(sampler core.Sampler) material.Material {
	choose := sampler.Get1D()
	switch {
	case choose < 0.8:
		albedo := core.NewVec3(
			sampler.Get1D()*sampler.Get1D(),
			sampler.Get1D()*sampler.Get1D(),
			sampler.Get1D()*sampler.Get1D())
		return material.NewLambertian(albedo)
	case choose < 0.95:
		albedo := core.NewVec3(
			0.5*(1+sampler.Get1D()),
			0.5*(1+sampler.Get1D()),
			0.5*(1+sampler.Get1D()))
		return material.NewMetal(albedo, 0.5*sampler.Get1D())
	default:
		return material.NewDielectric(1.5)
	}
}
