package soa

import (
	"testing"

	"shapesum/reduce"
)

var benchSink float32

func BenchmarkCollectorCornerArea(b *testing.B) {
	c := &CornerCollector{}
	for _, s := range testShapes(65536) {
		c.AddShape(s)
	}

	b.Run("Vector", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			benchSink = c.CornerArea()
		}
	})
	b.Run("Scalar", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			benchSink = reduce.WeightedSumScalar(c.Areas(), c.Weights())
		}
	})
}
