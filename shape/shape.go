// Package shape provides an immutable geometric shape value type and three
// interchangeable dispatch strategies for aggregating areas over shape
// collections: dynamic dispatch over the Shape interface (poly.go), explicit
// branching on a tagged flat record (record.go), and a coefficient-table
// lookup (table.go).
//
// The strategies are arithmetic restatements of the same formulas and are
// deliberately kept separate rather than unified behind one abstraction:
// comparing them side by side is the point of the package.
package shape

// Pi is the float32 π constant shared by every strategy, so circle areas
// agree exactly across them.
const Pi float32 = 3.14159265359

// Shape is the capability contract shared by all shape values.
//
// Area and CornerCount are pure functions of the value: negative or zero
// parameters are accepted as given and produce mathematically consistent
// (possibly zero or negative) results, never an error.
type Shape interface {
	Area() float32
	CornerCount() uint32
}

// Square is a square with the given side length.
type Square struct {
	Side float32
}

func (s Square) Area() float32 { return s.Side * s.Side }

func (s Square) CornerCount() uint32 { return 4 }

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  float32
	Height float32
}

func (r Rectangle) Area() float32 { return r.Width * r.Height }

func (r Rectangle) CornerCount() uint32 { return 4 }

// Triangle is a triangle described by base and height.
type Triangle struct {
	Base   float32
	Height float32
}

func (t Triangle) Area() float32 { return 0.5 * t.Base * t.Height }

func (t Triangle) CornerCount() uint32 { return 3 }

// Circle is a circle with the given radius.
type Circle struct {
	Radius float32
}

func (c Circle) Area() float32 { return Pi * c.Radius * c.Radius }

func (c Circle) CornerCount() uint32 { return 0 }
