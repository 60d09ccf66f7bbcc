package shape

// Kind tags a Record with its shape type.
type Kind uint32

const (
	KindSquare Kind = iota
	KindRectangle
	KindTriangle
	KindCircle
	numKinds
)

// Record is the flat tagged layout used by the switch and table strategies.
//
// For squares and circles both parameters hold the single defining
// measurement (side or radius), so area is always coefficient × Width ×
// Height regardless of kind.
type Record struct {
	Kind   Kind
	Width  float32
	Height float32
}

// RecordOf flattens a Shape value into its Record form.
func RecordOf(s Shape) Record {
	switch v := s.(type) {
	case Square:
		return Record{Kind: KindSquare, Width: v.Side, Height: v.Side}
	case Rectangle:
		return Record{Kind: KindRectangle, Width: v.Width, Height: v.Height}
	case Triangle:
		return Record{Kind: KindTriangle, Width: v.Base, Height: v.Height}
	case Circle:
		return Record{Kind: KindCircle, Width: v.Radius, Height: v.Radius}
	}
	return Record{}
}

// AreaSwitch computes a record's area by branching on its tag.
// Unknown kinds contribute zero rather than panicking.
func AreaSwitch(r Record) float32 {
	switch r.Kind {
	case KindSquare:
		return r.Width * r.Width
	case KindRectangle:
		return r.Width * r.Height
	case KindTriangle:
		return 0.5 * r.Width * r.Height
	case KindCircle:
		return Pi * r.Width * r.Width
	default:
		return 0
	}
}

// CornerCountSwitch returns the corner count for a tag.
// Unknown kinds report zero corners.
func CornerCountSwitch(k Kind) uint32 {
	switch k {
	case KindSquare:
		return 4
	case KindRectangle:
		return 4
	case KindTriangle:
		return 3
	case KindCircle:
		return 0
	default:
		return 0
	}
}

// TotalAreaSwitch sums AreaSwitch over records.
func TotalAreaSwitch(records []Record) float32 {
	var accum float32
	for i := 0; i < len(records); i++ {
		accum += AreaSwitch(records[i])
	}
	return accum
}

// TotalAreaSwitch4 is the 4-way unrolled variant of TotalAreaSwitch, with
// the same drop-tail behavior as TotalArea4.
func TotalAreaSwitch4(records []Record) float32 {
	var accum0, accum1, accum2, accum3 float32
	count := len(records) / 4
	for i := 0; i < count; i++ {
		base := i * 4
		accum0 += AreaSwitch(records[base])
		accum1 += AreaSwitch(records[base+1])
		accum2 += AreaSwitch(records[base+2])
		accum3 += AreaSwitch(records[base+3])
	}
	return accum0 + accum1 + accum2 + accum3
}

// CornerAreaSwitch sums Area/(1+CornerCount) over records via tag branching.
func CornerAreaSwitch(records []Record) float32 {
	var accum float32
	for i := 0; i < len(records); i++ {
		accum += (1.0 / (1.0 + float32(CornerCountSwitch(records[i].Kind)))) * AreaSwitch(records[i])
	}
	return accum
}

// CornerAreaSwitch4 is the 4-way unrolled variant of CornerAreaSwitch, with
// the same drop-tail behavior as TotalArea4.
func CornerAreaSwitch4(records []Record) float32 {
	var accum0, accum1, accum2, accum3 float32
	count := len(records) / 4
	for i := 0; i < count; i++ {
		base := i * 4
		accum0 += (1.0 / (1.0 + float32(CornerCountSwitch(records[base].Kind)))) * AreaSwitch(records[base])
		accum1 += (1.0 / (1.0 + float32(CornerCountSwitch(records[base+1].Kind)))) * AreaSwitch(records[base+1])
		accum2 += (1.0 / (1.0 + float32(CornerCountSwitch(records[base+2].Kind)))) * AreaSwitch(records[base+2])
		accum3 += (1.0 / (1.0 + float32(CornerCountSwitch(records[base+3].Kind)))) * AreaSwitch(records[base+3])
	}
	return accum0 + accum1 + accum2 + accum3
}
