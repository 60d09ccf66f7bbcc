package reduce

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// accumCount is the number of independent vector accumulators kept in flight
// by the bulk loops. Eight accumulators hide the latency of the add/FMA
// dependency chain; the bulk batch is therefore always accumCount lane-width
// loads per iteration.
const accumCount = 8

// prefetchBatches is how far ahead of the current position the bulk loops
// touch memory, in batches, so loads for upcoming iterations are already in
// cache on large inputs.
const prefetchBatches = 2

// BaseSum returns the sum of xs.
//
// The bulk loop consumes accumCount×L elements per iteration (L =
// hwy.MaxLanes for T), one lane-width load per accumulator. The accumulators
// are then combined pairwise 8→4→2→1, remaining full lane-width chunks feed
// the combined accumulator, hwy.ReduceSum collapses it to a scalar, and the
// final len(xs) mod L elements are added serially.
func BaseSum[T hwy.Floats](xs []T) T {
	lanes := hwy.MaxLanes[T]()
	batch := accumCount * lanes
	n := len(xs)

	acc0 := hwy.Zero[T]()
	acc1 := hwy.Zero[T]()
	acc2 := hwy.Zero[T]()
	acc3 := hwy.Zero[T]()
	acc4 := hwy.Zero[T]()
	acc5 := hwy.Zero[T]()
	acc6 := hwy.Zero[T]()
	acc7 := hwy.Zero[T]()

	i := 0
	for ; i+batch <= n; i += batch {
		if ahead := i + prefetchBatches*batch; ahead+batch <= n {
			// Touch the batch two iterations out to pull it into cache.
			_ = xs[ahead]
			_ = xs[ahead+batch-1]
		}
		acc0 = hwy.Add(acc0, hwy.Load(xs[i:]))
		acc1 = hwy.Add(acc1, hwy.Load(xs[i+lanes:]))
		acc2 = hwy.Add(acc2, hwy.Load(xs[i+2*lanes:]))
		acc3 = hwy.Add(acc3, hwy.Load(xs[i+3*lanes:]))
		acc4 = hwy.Add(acc4, hwy.Load(xs[i+4*lanes:]))
		acc5 = hwy.Add(acc5, hwy.Load(xs[i+5*lanes:]))
		acc6 = hwy.Add(acc6, hwy.Load(xs[i+6*lanes:]))
		acc7 = hwy.Add(acc7, hwy.Load(xs[i+7*lanes:]))
	}

	// Combine adjacent pairs: 8 -> 4 -> 2 -> 1.
	acc0 = hwy.Add(acc0, acc1)
	acc2 = hwy.Add(acc2, acc3)
	acc4 = hwy.Add(acc4, acc5)
	acc6 = hwy.Add(acc6, acc7)
	acc0 = hwy.Add(acc0, acc2)
	acc4 = hwy.Add(acc4, acc6)
	acc0 = hwy.Add(acc0, acc4)

	// Remaining full lane-width chunks.
	for ; i+lanes <= n; i += lanes {
		acc0 = hwy.Add(acc0, hwy.Load(xs[i:]))
	}

	total := hwy.ReduceSum(acc0)

	// Scalar tail.
	for ; i < n; i++ {
		total += xs[i]
	}
	return total
}

// BaseWeightedSum returns Σ areas[i]×weights[i] over the common prefix of
// the two slices.
//
// Structure is identical to BaseSum, with each accumulation an FMA of
// area×weight. The scalar tail uses math.FMA so every product sees a single
// rounding regardless of which path handled it.
func BaseWeightedSum[T hwy.Floats](areas, weights []T) T {
	lanes := hwy.MaxLanes[T]()
	batch := accumCount * lanes
	n := min(len(areas), len(weights))

	acc0 := hwy.Zero[T]()
	acc1 := hwy.Zero[T]()
	acc2 := hwy.Zero[T]()
	acc3 := hwy.Zero[T]()
	acc4 := hwy.Zero[T]()
	acc5 := hwy.Zero[T]()
	acc6 := hwy.Zero[T]()
	acc7 := hwy.Zero[T]()

	i := 0
	for ; i+batch <= n; i += batch {
		if ahead := i + prefetchBatches*batch; ahead+batch <= n {
			_ = areas[ahead]
			_ = areas[ahead+batch-1]
			_ = weights[ahead]
			_ = weights[ahead+batch-1]
		}
		acc0 = hwy.FMA(hwy.Load(areas[i:]), hwy.Load(weights[i:]), acc0)
		acc1 = hwy.FMA(hwy.Load(areas[i+lanes:]), hwy.Load(weights[i+lanes:]), acc1)
		acc2 = hwy.FMA(hwy.Load(areas[i+2*lanes:]), hwy.Load(weights[i+2*lanes:]), acc2)
		acc3 = hwy.FMA(hwy.Load(areas[i+3*lanes:]), hwy.Load(weights[i+3*lanes:]), acc3)
		acc4 = hwy.FMA(hwy.Load(areas[i+4*lanes:]), hwy.Load(weights[i+4*lanes:]), acc4)
		acc5 = hwy.FMA(hwy.Load(areas[i+5*lanes:]), hwy.Load(weights[i+5*lanes:]), acc5)
		acc6 = hwy.FMA(hwy.Load(areas[i+6*lanes:]), hwy.Load(weights[i+6*lanes:]), acc6)
		acc7 = hwy.FMA(hwy.Load(areas[i+7*lanes:]), hwy.Load(weights[i+7*lanes:]), acc7)
	}

	// Combine adjacent pairs: 8 -> 4 -> 2 -> 1.
	acc0 = hwy.Add(acc0, acc1)
	acc2 = hwy.Add(acc2, acc3)
	acc4 = hwy.Add(acc4, acc5)
	acc6 = hwy.Add(acc6, acc7)
	acc0 = hwy.Add(acc0, acc2)
	acc4 = hwy.Add(acc4, acc6)
	acc0 = hwy.Add(acc0, acc4)

	// Remaining full lane-width chunks.
	for ; i+lanes <= n; i += lanes {
		acc0 = hwy.FMA(hwy.Load(areas[i:]), hwy.Load(weights[i:]), acc0)
	}

	total := hwy.ReduceSum(acc0)

	// Scalar tail, fused to match the lane rounding.
	for ; i < n; i++ {
		total = T(math.FMA(float64(areas[i]), float64(weights[i]), float64(total)))
	}
	return total
}
