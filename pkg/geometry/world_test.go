package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/mtuchkov/raytracer/pkg/core"
)

func TestWorld_Empty(t *testing.T) {
	world := NewWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := world.Hit(ray, 0.001, math32.MaxFloat32); isHit {
		t.Error("Empty world reported a hit")
	}
}

func TestWorld_NearestHitIsOrderIndependent(t *testing.T) {
	// Three spheres along -z at distances 2, 4 and 6 from the origin
	near := NewSphere(core.NewVec3(0, 0, -3), 1.0, stubMaterial{})
	mid := NewSphere(core.NewVec3(0, 0, -5), 1.0, stubMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -7), 1.0, stubMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	permutations := [][]Hittable{
		{near, mid, far},
		{near, far, mid},
		{mid, near, far},
		{mid, far, near},
		{far, near, mid},
		{far, mid, near},
	}

	for i, perm := range permutations {
		world := NewWorld()
		for _, s := range perm {
			world.Add(s)
		}

		hit, isHit := world.Hit(ray, 0.001, math32.MaxFloat32)
		if !isHit {
			t.Fatalf("Permutation %d: expected a hit", i)
		}
		if math32.Abs(hit.T-2.0) > 1e-5 {
			t.Errorf("Permutation %d: expected nearest hit at t=2, got %v", i, hit.T)
		}
	}
}

func TestWorld_ShrinkingInterval(t *testing.T) {
	// A sphere behind another must not shadow the near one even when it
	// is tested first
	world := NewWorld()
	world.Add(NewSphere(core.NewVec3(0, 0, -10), 1.0, stubMaterial{}))
	world.Add(NewSphere(core.NewVec3(0, 0, -3), 1.0, stubMaterial{}))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := world.Hit(ray, 0.001, math32.MaxFloat32)
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if math32.Abs(hit.T-2.0) > 1e-5 {
		t.Errorf("Expected t=2 for the near sphere, got %v", hit.T)
	}
}

func TestWorld_Size(t *testing.T) {
	world := NewWorld()
	if world.Size() != 0 {
		t.Errorf("Expected empty world, got size %d", world.Size())
	}
	world.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, stubMaterial{}))
	world.Add(NewSphere(core.NewVec3(0, 0, -2), 0.5, stubMaterial{}))
	if world.Size() != 2 {
		t.Errorf("Expected size 2, got %d", world.Size())
	}
}
