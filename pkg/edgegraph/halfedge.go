package edgegraph

import (
	"fmt"
	"math"
)

// HalfEdge is a directed edge of the planar graph. Every half-edge has a
// symmetric partner pointing the other way; together they represent one
// undirected segment. All half-edges sharing an origin are linked into a
// circular ring, ordered counterclockwise by outgoing direction.
//
// Half-edges are created and owned by an EdgeGraph. Pointers handed out by
// the graph stay valid until the graph itself is dropped.
type HalfEdge struct {
	orig Vertex
	sym  *HalfEdge
	next *HalfEdge
}

// Orig returns the origin vertex of the half-edge.
func (h *HalfEdge) Orig() Vertex { return h.orig }

// Dest returns the destination vertex, i.e. the origin of the partner.
func (h *HalfEdge) Dest() Vertex { return h.sym.orig }

// Sym returns the symmetric partner.
func (h *HalfEdge) Sym() *HalfEdge { return h.sym }

// ONext returns the next half-edge counterclockwise around the origin.
func (h *HalfEdge) ONext() *HalfEdge { return h.next }

// OPrev returns the previous half-edge in the origin ring.
func (h *HalfEdge) OPrev() *HalfEdge {
	e := h
	for e.next != h {
		e = e.next
	}
	return e
}

// Link pairs two freshly created half-edges symmetrically. Each one also
// becomes its own one-element ring. Must not be called on a half-edge that
// already has a partner.
func (h *HalfEdge) Link(sym *HalfEdge) {
	h.sym = sym
	sym.sym = h
	h.next = h
	sym.next = sym
}

// angle of the outgoing direction, in (-pi, pi].
func (h *HalfEdge) angle() float64 {
	d := h.Dest()
	return math.Atan2(d.Y-h.orig.Y, d.X-h.orig.X)
}

// Insert splices e into the ring containing h, keeping the ring sorted
// counterclockwise by outgoing direction. e must already be linked to its
// partner and must share h's origin; inserting an edge with a different
// origin corrupts the ring.
func (h *HalfEdge) Insert(e *HalfEdge) {
	if h.next == h {
		h.next = e
		e.next = h
		return
	}

	ea := e.angle()
	curr := h
	for {
		ca := curr.angle()
		na := curr.next.angle()
		if ca <= na {
			if ca <= ea && ea < na {
				break
			}
		} else {
			// the slot where the angle wraps from pi back to -pi
			if ea >= ca || ea < na {
				break
			}
		}
		curr = curr.next
		if curr == h {
			// all remaining angles tie; any slot works
			break
		}
	}
	e.next = curr.next
	curr.next = e
}

// Find walks the ring and returns the member whose destination equals dest,
// or nil if the origin has no edge to dest. Linear in the ring size.
func (h *HalfEdge) Find(dest Vertex) *HalfEdge {
	e := h
	for {
		if e.Dest() == dest {
			return e
		}
		e = e.next
		if e == h {
			return nil
		}
	}
}

// Degree returns the number of half-edges in the origin ring.
func (h *HalfEdge) Degree() int {
	n := 0
	e := h
	for {
		n++
		e = e.next
		if e == h {
			return n
		}
	}
}

func (h *HalfEdge) String() string {
	if h == nil {
		return "nil"
	}
	return fmt.Sprintf("%v->%v", h.orig, h.Dest())
}
