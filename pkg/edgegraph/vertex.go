package edgegraph

import "fmt"

// Vertex is a point in the plane. It is a plain value type so it can be
// compared with == and used as a map key. Equality is exact, no tolerance.
type Vertex struct {
	X float64
	Y float64
}

// Compare orders vertices by X, then by Y.
func (v Vertex) Compare(o Vertex) int {
	if v.X < o.X {
		return -1
	}
	if v.X > o.X {
		return 1
	}
	if v.Y < o.Y {
		return -1
	}
	if v.Y > o.Y {
		return 1
	}
	return 0
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

type vertices []Vertex

func (s vertices) Len() int      { return len(s) }
func (s vertices) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// VerticesByXY sorts vertices by X, then Y.
type VerticesByXY struct{ vertices }

func NewVerticesByXY(vs []Vertex) VerticesByXY { return VerticesByXY{vs} }

func (s VerticesByXY) Less(i, j int) bool {
	return s.vertices[i].Compare(s.vertices[j]) < 0
}
