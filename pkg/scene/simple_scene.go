package scene

import (
	"fmt"

	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/geometry"
	"github.com/mtuchkov/raytracer/pkg/material"
	"github.com/mtuchkov/raytracer/pkg/renderer"
)

// NewSimpleScene creates the four-sphere scene for the fixed pinhole camera:
// two diffuse spheres and two metal spheres. The fixed camera's hardcoded
// viewport is 2:1, so the image dimensions must match that aspect ratio.
func NewSimpleScene(width, height int) (*Scene, error) {
	if height <= 0 || width != 2*height {
		return nil, fmt.Errorf("simple scene requires a 2:1 aspect ratio, got %dx%d", width, height)
	}

	world := geometry.NewWorld()

	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
		material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))))
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5,
		material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.2)))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.8)))

	top, bottom := skyGradient()

	return &Scene{
		Camera:         renderer.NewFixedCamera(),
		World:          world,
		Width:          width,
		Height:         height,
		SamplingConfig: renderer.DefaultSamplingConfig(),
		TopColor:       top,
		BottomColor:    bottom,
	}, nil
}
