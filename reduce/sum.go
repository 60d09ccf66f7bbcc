// Package reduce implements lane-parallel reductions over float32 columns:
// a plain sum and a weighted fused sum, each processing eight vector
// accumulators per loop iteration to keep several adds or FMAs in flight.
//
// The engine is allocation-free with respect to its inputs and performs no
// bounds checking beyond the slice lengths; phase ordering (populate, then
// reduce) is the caller's responsibility.
package reduce

// Sum returns the sum of xs, or 0 for an empty slice.
//
// The vectorized accumulation reassociates additions relative to a serial
// fold, so results agree with SumScalar only to a small relative tolerance,
// never bit-exactly.
func Sum(xs []float32) float32 {
	if len(xs) == 0 {
		return 0
	}
	return BaseSum(xs)
}

// WeightedSum returns Σ areas[i]×weights[i] over the common prefix of the
// two slices, or 0 if either is empty.
//
// Every product is accumulated with a fused multiply-add (single rounding),
// in the vector lanes and in the scalar tail alike; there is no two-rounding
// path. Callers needing the two-rounding reference should use
// WeightedSumScalar.
func WeightedSum(areas, weights []float32) float32 {
	if len(areas) == 0 || len(weights) == 0 {
		return 0
	}
	return BaseWeightedSum(areas, weights)
}
