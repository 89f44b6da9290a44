package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/chewxy/math32"

	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/geometry"
)

// tMinHit is the lower bound on acceptable hit distances. It guards against
// shadow acne: float error at a hit point would otherwise make the spawned
// ray re-intersect its own origin.
const tMinHit = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() Camera
	GetWorld() *geometry.World
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetSamplingConfig() SamplingConfig
	GetDimensions() (width, height int)
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene   Scene
	config  SamplingConfig
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(scene Scene, sampler core.Sampler, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:   scene,
		config:  scene.GetSamplingConfig(),
		sampler: sampler,
		logger:  logger,
	}
}

// SetSamplingConfig overrides the scene's sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// backgroundGradient returns the sky color for a ray that escaped all
// geometry: a vertical lerp between the scene's bottom and top colors
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor resolves the radiance along a ray by chaining intersection,
// scattering and recursion. Paths longer than MaxDepth contribute zero
// radiance; that is a design bound, not an error.
func (rt *Raytracer) rayColor(r core.Ray, depth int) core.Vec3 {
	if depth >= rt.config.MaxDepth {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetWorld().Hit(r, tMinHit, math32.MaxFloat32)
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.sampler)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth+1))
}

// samplePixel averages ns jittered samples for the pixel at column i, row j
// (rows counted from the image bottom) and returns the gamma-corrected color
func (rt *Raytracer) samplePixel(i, j, width, height int) core.Vec3 {
	camera := rt.scene.GetCamera()
	ns := rt.config.SamplesPerPixel

	var col core.Vec3
	for s := 0; s < ns; s++ {
		u := (float32(i) + rt.sampler.Get1D()) / float32(width)
		v := (float32(j) + rt.sampler.Get1D()) / float32(height)

		ray := camera.GetRay(u, v, rt.sampler)
		col = col.Add(rt.rayColor(ray, 0))
	}

	// Average first, then gamma-correct (gamma 2): the sqrt of the mean is
	// the behavior the output was tuned against.
	return col.Divide(float32(ns)).GammaCorrect(2.0)
}

// Render renders the whole scene and returns the image along with
// rendering statistics. Rows are produced in raster order, image top first.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	width, height := rt.scene.GetDimensions()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	stats := newRenderStats(width, height, rt.config.SamplesPerPixel)
	startTime := time.Now()

	for j := height - 1; j >= 0; j-- {
		for i := 0; i < width; i++ {
			col := rt.samplePixel(i, j, width, height)

			// Clamp before quantizing: bright highlights can exceed 1.0
			// and would overflow the byte channels.
			col = col.Clamp(0.0, 1.0)
			img.SetRGBA(i, height-1-j, color.RGBA{
				R: uint8(255.99 * col.X),
				G: uint8(255.99 * col.Y),
				B: uint8(255.99 * col.Z),
				A: 255,
			})
		}

		if rt.logger != nil && j%logEveryRows == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", j)
		}
	}

	stats.Elapsed = time.Since(startTime)
	return img, stats
}

// logEveryRows controls how often Render reports progress
const logEveryRows = 50
