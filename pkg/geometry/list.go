package geometry

import (
	"github.com/plamenxpenchev/ray-tracing-primer/pkg/core"
)

// ShapeList aggregates shapes and reports the closest intersection
// across its members. It satisfies the Shape interface itself.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a shape list from the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Hit tests the ray against every member and returns the closest hit.
// tMax narrows to the best t found so far, so later members can only
// improve on earlier hits.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
