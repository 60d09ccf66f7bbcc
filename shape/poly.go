package shape

// TotalArea sums Area over shapes via dynamic dispatch.
func TotalArea(shapes []Shape) float32 {
	var accum float32
	for i := 0; i < len(shapes); i++ {
		accum += shapes[i].Area()
	}
	return accum
}

// TotalArea4 is the 4-way unrolled variant of TotalArea: four independent
// running sums combined once at the end, shortening the serial add chain.
//
// It processes exactly len(shapes)/4*4 elements; any 0-3 trailing shapes are
// dropped from the sum, not summed separately. The asymmetry with TotalArea
// is intentional and relied on by callers comparing the two.
func TotalArea4(shapes []Shape) float32 {
	var accum0, accum1, accum2, accum3 float32
	count := len(shapes) / 4
	for i := 0; i < count; i++ {
		base := i * 4
		accum0 += shapes[base].Area()
		accum1 += shapes[base+1].Area()
		accum2 += shapes[base+2].Area()
		accum3 += shapes[base+3].Area()
	}
	return accum0 + accum1 + accum2 + accum3
}

// CornerArea sums Area/(1+CornerCount) over shapes via dynamic dispatch.
func CornerArea(shapes []Shape) float32 {
	var accum float32
	for i := 0; i < len(shapes); i++ {
		accum += (1.0 / (1.0 + float32(shapes[i].CornerCount()))) * shapes[i].Area()
	}
	return accum
}

// CornerArea4 is the 4-way unrolled variant of CornerArea, with the same
// drop-tail behavior as TotalArea4.
func CornerArea4(shapes []Shape) float32 {
	var accum0, accum1, accum2, accum3 float32
	count := len(shapes) / 4
	for i := 0; i < count; i++ {
		base := i * 4
		accum0 += (1.0 / (1.0 + float32(shapes[base].CornerCount()))) * shapes[base].Area()
		accum1 += (1.0 / (1.0 + float32(shapes[base+1].CornerCount()))) * shapes[base+1].Area()
		accum2 += (1.0 / (1.0 + float32(shapes[base+2].CornerCount()))) * shapes[base+2].Area()
		accum3 += (1.0 / (1.0 + float32(shapes[base+3].CornerCount()))) * shapes[base+3].Area()
	}
	return accum0 + accum1 + accum2 + accum3
}
