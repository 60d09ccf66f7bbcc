package shape

// Area coefficients indexed by Kind: area = coefficient × Width × Height.
var areaCoeff = [numKinds]float32{
	KindSquare:    1.0,
	KindRectangle: 1.0,
	KindTriangle:  0.5,
	KindCircle:    Pi,
}

// Corner-area coefficients: the area coefficient folded together with the
// corner weight 1/(1+CornerCount), so one lookup and one multiply chain
// replaces both branches.
var cornerAreaCoeff = [numKinds]float32{
	KindSquare:    1.0 / (1.0 + 4.0),
	KindRectangle: 1.0 / (1.0 + 4.0),
	KindTriangle:  0.5 / (1.0 + 3.0),
	KindCircle:    Pi, // zero corners, weight is 1
}

// AreaFromTable computes a record's area from the coefficient table.
// Unknown kinds contribute zero, matching AreaSwitch's default.
func AreaFromTable(r Record) float32 {
	if r.Kind >= numKinds {
		return 0
	}
	return areaCoeff[r.Kind] * r.Width * r.Height
}

// CornerAreaFromTable computes Area/(1+CornerCount) for a record with a
// single folded-coefficient lookup.
func CornerAreaFromTable(r Record) float32 {
	if r.Kind >= numKinds {
		return 0
	}
	return cornerAreaCoeff[r.Kind] * r.Width * r.Height
}

// TotalAreaTable sums AreaFromTable over records.
func TotalAreaTable(records []Record) float32 {
	var accum float32
	for i := 0; i < len(records); i++ {
		accum += AreaFromTable(records[i])
	}
	return accum
}

// TotalAreaTable4 is the 4-way unrolled variant of TotalAreaTable, with the
// same drop-tail behavior as TotalArea4.
func TotalAreaTable4(records []Record) float32 {
	var accum0, accum1, accum2, accum3 float32
	count := len(records) / 4
	for i := 0; i < count; i++ {
		base := i * 4
		accum0 += AreaFromTable(records[base])
		accum1 += AreaFromTable(records[base+1])
		accum2 += AreaFromTable(records[base+2])
		accum3 += AreaFromTable(records[base+3])
	}
	return accum0 + accum1 + accum2 + accum3
}

// CornerAreaTable sums CornerAreaFromTable over records.
func CornerAreaTable(records []Record) float32 {
	var accum float32
	for i := 0; i < len(records); i++ {
		accum += CornerAreaFromTable(records[i])
	}
	return accum
}

// CornerAreaTable4 is the 4-way unrolled variant of CornerAreaTable, with
// the same drop-tail behavior as TotalArea4.
func CornerAreaTable4(records []Record) float32 {
	var accum0, accum1, accum2, accum3 float32
	count := len(records) / 4
	for i := 0; i < count; i++ {
		base := i * 4
		accum0 += CornerAreaFromTable(records[base])
		accum1 += CornerAreaFromTable(records[base+1])
		accum2 += CornerAreaFromTable(records[base+2])
		accum3 += CornerAreaFromTable(records[base+3])
	}
	return accum0 + accum1 + accum2 + accum3
}
