package reduce

// SumScalar is the serial reference implementation of Sum: one accumulator,
// strict left-to-right order.
func SumScalar(xs []float32) float32 {
	var sum float32
	for i := 0; i < len(xs); i++ {
		sum += xs[i]
	}
	return sum
}

// WeightedSumScalar is the serial reference implementation of WeightedSum.
// Each term is multiplied and then added (two roundings), unlike the fused
// path, so the two differ in the last bits.
func WeightedSumScalar(areas, weights []float32) float32 {
	n := min(len(areas), len(weights))
	var sum float32
	for i := 0; i < n; i++ {
		sum += areas[i] * weights[i]
	}
	return sum
}
