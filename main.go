package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/mtuchkov/raytracer/pkg/core"
	"github.com/mtuchkov/raytracer/pkg/ppm"
	"github.com/mtuchkov/raytracer/pkg/renderer"
	"github.com/mtuchkov/raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'random' or 'simple'")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	output := flag.String("output", "", "Output file path (default: output/<scene>/render_<timestamp>.<format>)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere path tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Diffuse, metal and hollow glass spheres, thin-lens camera")
		fmt.Println("  random  - The random sphere grid cover scene")
		fmt.Println("  simple  - Four spheres through the fixed pinhole camera (2:1 aspect)")
		return
	}

	if err := run(*sceneType, *width, *height, *samples, *format, *output, *seed); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, height, samples int, format, output string, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))

	s, err := createScene(sceneType, width, height, sampler)
	if err != nil {
		return err
	}

	if samples > 0 {
		s.SamplingConfig.SamplesPerPixel = samples
	}

	logger := renderer.NewDefaultLogger()
	logger.Printf("Rendering '%s' scene at %dx%d, %d samples/pixel (seed %d)\n",
		sceneType, s.Width, s.Height, s.SamplingConfig.SamplesPerPixel, seed)

	rt := renderer.NewRaytracer(s, sampler, logger)
	img, stats := rt.Render()
	logger.Printf("Render completed: %s\n", stats)

	if output == "" {
		outputDir := filepath.Join("output", sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	if err := writeImage(output, format, img); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", output)
	return nil
}

// createScene builds a scene by name. Width and height of 0 select the
// scene's default dimensions.
func createScene(sceneType string, width, height int, sampler core.Sampler) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		if width == 0 {
			width, height = 200, 100
		}
		return scene.NewDefaultScene(width, height), nil
	case "random":
		if width == 0 {
			width, height = 1024, 512
		}
		return scene.NewRandomScene(width, height, sampler), nil
	case "simple":
		if width == 0 {
			width, height = 200, 100
		}
		return scene.NewSimpleScene(width, height)
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// writeImage encodes the rendered image to the given path. A failure leaves
// no valid output; partial files are not considered a result.
func writeImage(path, format string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = ppm.Encode(file, img)
	case "png":
		err = png.Encode(file, img)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}
