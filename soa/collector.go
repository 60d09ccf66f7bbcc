// Package soa holds columnar (structure-of-arrays) collectors. All
// type-dependent branching happens once at population time, leaving flat
// float32 columns that package reduce consumes branch-free.
//
// Collectors are phase-ordered: populate with AddShape, then reduce. Callers
// must not interleave the two on the same collector, and must not mutate the
// exposed columns.
package soa

import (
	"shapesum/reduce"
	"shapesum/shape"
)

// AreaCollector accumulates one area per appended shape.
type AreaCollector struct {
	areas []float32
}

// AddShape appends s's area and returns s unchanged, so calls chain without
// giving up the shape.
func (c *AreaCollector) AddShape(s shape.Shape) shape.Shape {
	c.areas = append(c.areas, s.Area())
	return s
}

// Len returns the number of collected shapes.
func (c *AreaCollector) Len() int { return len(c.areas) }

// Areas exposes the area column for direct reduction. Read-only.
func (c *AreaCollector) Areas() []float32 { return c.areas }

// TotalArea reduces the area column with the vectorized engine.
func (c *AreaCollector) TotalArea() float32 {
	return reduce.Sum(c.areas)
}

// CornerCollector accumulates an area and a precomputed corner weight
// 1/(1+CornerCount) per appended shape, in parallel columns of equal length.
type CornerCollector struct {
	areas   []float32
	weights []float32
}

// AddShape appends s's area and corner weight and returns s unchanged.
func (c *CornerCollector) AddShape(s shape.Shape) shape.Shape {
	area := s.Area()
	weight := 1.0 / (1.0 + float32(s.CornerCount()))
	c.areas = append(c.areas, area)
	c.weights = append(c.weights, weight)
	return s
}

// Len returns the number of collected shapes.
func (c *CornerCollector) Len() int { return len(c.areas) }

// Areas exposes the area column. Read-only.
func (c *CornerCollector) Areas() []float32 { return c.areas }

// Weights exposes the weight column. Read-only.
func (c *CornerCollector) Weights() []float32 { return c.weights }

// TotalArea reduces the area column with the vectorized engine.
func (c *CornerCollector) TotalArea() float32 {
	return reduce.Sum(c.areas)
}

// CornerArea reduces area×weight with the engine's fused path.
func (c *CornerCollector) CornerArea() float32 {
	return reduce.WeightedSum(c.areas, c.weights)
}
