package scene

import (
	"github.com/plamenxpenchev/ray-tracing-primer/pkg/core"
	"github.com/plamenxpenchev/ray-tracing-primer/pkg/geometry"
	"github.com/plamenxpenchev/ray-tracing-primer/pkg/renderer"
)

// Scene holds the camera, the shapes, and the background gradient colors
type Scene struct {
	Camera      *renderer.Camera
	Shapes      []geometry.Shape
	TopColor    core.Vec3 // Background color at the top of the gradient
	BottomColor core.Vec3 // Background color at the bottom of the gradient
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShapes returns the scene's shapes
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetBackgroundColors returns the background gradient colors (top, bottom)
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// NewDefaultScene creates the two-sphere scene: a small sphere resting on
// a large ground sphere, under a white-to-blue sky gradient
func NewDefaultScene() *Scene {
	s := &Scene{
		Camera:      renderer.NewCamera(),
		Shapes:      make([]geometry.Shape, 0),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0), // blue sky
		BottomColor: core.NewVec3(1.0, 1.0, 1.0), // white horizon
	}

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5)
	sphereGround := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100)

	s.Shapes = append(s.Shapes, sphereCenter, sphereGround)

	return s
}
