package reduce

import "testing"

var benchSink float32

func BenchmarkSum(b *testing.B) {
	for _, size := range []int{1024, 65536} {
		xs := patterned(size)

		b.Run("Vector", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink = Sum(xs)
			}
		})

		b.Run("Scalar", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink = SumScalar(xs)
			}
		})
	}
}

func BenchmarkWeightedSum(b *testing.B) {
	for _, size := range []int{1024, 65536} {
		areas := patterned(size)
		weights := make([]float32, size)
		for i := range weights {
			weights[i] = float32(i%5)*0.25 + 0.2
		}

		b.Run("Vector", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink = WeightedSum(areas, weights)
			}
		})

		b.Run("Scalar", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				benchSink = WeightedSumScalar(areas, weights)
			}
		})
	}
}
