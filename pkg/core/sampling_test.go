package core

import (
	"math/rand"
	"testing"
)

func TestRandomSampler_Get1DRange(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D returned %v, expected [0, 1)", v)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
	}
}

func TestRandomInUnitSphere_FillsAllOctants(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	var octants [8]int
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		idx := 0
		if p.X > 0 {
			idx |= 1
		}
		if p.Y > 0 {
			idx |= 2
		}
		if p.Z > 0 {
			idx |= 4
		}
		octants[idx]++
	}

	// A uniform distribution puts ~125 of 1000 points in each octant
	for i, count := range octants {
		if count == 0 {
			t.Errorf("Octant %d received no samples", i)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk point %v has non-zero z", p)
		}
		if p.Dot(p) >= 1.0 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
}
