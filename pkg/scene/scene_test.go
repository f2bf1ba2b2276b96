package scene

import (
	"math"
	"testing"

	"github.com/plamenxpenchev/ray-tracing-primer/pkg/core"
	"github.com/plamenxpenchev/ray-tracing-primer/pkg/geometry"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.GetCamera() == nil {
		t.Fatal("Expected scene to have a camera")
	}

	shapes := s.GetShapes()
	if len(shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(shapes))
	}

	top, bottom := s.GetBackgroundColors()
	if top != core.NewVec3(0.5, 0.7, 1.0) {
		t.Errorf("Expected sky-blue top color, got %v", top)
	}
	if bottom != core.NewVec3(1.0, 1.0, 1.0) {
		t.Errorf("Expected white bottom color, got %v", bottom)
	}
}

func TestNewDefaultScene_Geometry(t *testing.T) {
	s := NewDefaultScene()

	// A ray straight down the -Z axis must hit the foreground sphere
	// at its near surface, z = -0.5
	world := geometry.NewShapeList(s.GetShapes()...)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := world.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit on foreground sphere")
	}
	if hit.T != 0.5 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}

	// A ray straight down must hit the ground sphere; its center sits at
	// (0, -100.5, -1), one unit behind the ray, so the nearest root is
	// t = 100.5 - sqrt(100² - 1)
	downRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	groundHit, isHit := world.Hit(downRay, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit on ground sphere")
	}
	expectedT := 100.5 - math.Sqrt(100*100-1)
	if math.Abs(groundHit.T-expectedT) > 1e-9 {
		t.Errorf("Expected ground at t=%f, got t=%f", expectedT, groundHit.T)
	}
}
