package scene

import (
	"math/rand"
	"testing"

	"github.com/mtuchkov/raytracer/pkg/core"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene(200, 100)

	if s.Width != 200 || s.Height != 100 {
		t.Errorf("Expected 200x100, got %dx%d", s.Width, s.Height)
	}
	// Four visible spheres plus the hollow shell
	if s.World.Size() != 5 {
		t.Errorf("Expected 5 surfaces, got %d", s.World.Size())
	}
	if s.Camera == nil {
		t.Error("Scene is missing a camera")
	}
	if s.SamplingConfig.MaxDepth != 50 {
		t.Errorf("Expected max depth 50, got %d", s.SamplingConfig.MaxDepth)
	}

	top, bottom := s.GetBackgroundColors()
	if top != core.NewVec3(0.5, 0.7, 1.0) || bottom != core.NewVec3(1, 1, 1) {
		t.Errorf("Unexpected sky gradient: top %v, bottom %v", top, bottom)
	}
}

func TestNewSimpleScene(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expectError   bool
	}{
		{"2:1 aspect", 200, 100, false},
		{"small 2:1 aspect", 20, 10, false},
		{"square", 100, 100, true},
		{"16:9", 160, 90, true},
		{"zero height", 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSimpleScene(tt.width, tt.height)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected an aspect ratio error for %dx%d", tt.width, tt.height)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.World.Size() != 4 {
				t.Errorf("Expected 4 surfaces, got %d", s.World.Size())
			}
		})
	}
}

func TestNewRandomScene(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	s := NewRandomScene(1024, 512, sampler)

	// Ground + 3 hero spheres + up to 484 small spheres
	if s.World.Size() < 100 || s.World.Size() > 488 {
		t.Errorf("Unexpected surface count %d", s.World.Size())
	}
}

func TestNewRandomScene_SeededReproducibility(t *testing.T) {
	first := NewRandomScene(1024, 512, core.NewRandomSampler(rand.New(rand.NewSource(7))))
	second := NewRandomScene(1024, 512, core.NewRandomSampler(rand.New(rand.NewSource(7))))

	if first.World.Size() != second.World.Size() {
		t.Errorf("Same seed produced different worlds: %d vs %d surfaces",
			first.World.Size(), second.World.Size())
	}
}
