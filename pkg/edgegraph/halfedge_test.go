package edgegraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jellymann/geos/pkg/edgegraph"
)

func ringDests(rep *edgegraph.HalfEdge) []edgegraph.Vertex {
	var dests []edgegraph.Vertex
	e := rep
	for {
		dests = append(dests, e.Dest())
		e = e.ONext()
		if e == rep {
			return dests
		}
	}
}

func TestSingleEdgeRing(t *testing.T) {
	require := require.New(t)

	g := edgegraph.New()
	e := g.AddEdge(edgegraph.Vertex{X: 0, Y: 0}, edgegraph.Vertex{X: 1, Y: 0})

	require.Same(e, e.ONext(), "a lone edge forms its own one-element ring")
	require.Same(e, e.OPrev())
	require.Equal(1, e.Degree())
	require.Same(e.Sym(), e.Sym().ONext(), "the partner's ring is independent")
}

func TestRingCounterclockwiseOrder(t *testing.T) {
	require := require.New(t)

	hub := edgegraph.Vertex{X: 0, Y: 0}
	spokes := []edgegraph.Vertex{
		{X: 1, Y: 0},
		{X: -2, Y: 1},
		{X: 0, Y: 3},
		{X: -1, Y: -1},
		{X: 2, Y: 2},
		{X: 0, Y: -4},
		{X: -3, Y: 0},
	}

	g := edgegraph.New()
	for _, sp := range spokes {
		g.AddEdge(hub, sp)
	}

	rep := g.FindEdge(hub, spokes[0])
	require.NotNil(rep)
	require.Equal(len(spokes), rep.Degree())

	dests := ringDests(rep)
	require.Len(dests, len(spokes))

	// Walking the ring must visit destinations in increasing angle order,
	// starting from wherever the wrap from +pi to -pi happens to fall.
	angles := make([]float64, len(dests))
	for i, d := range dests {
		angles[i] = math.Atan2(d.Y-hub.Y, d.X-hub.X)
	}
	wraps := 0
	for i := 1; i < len(angles); i++ {
		if angles[i] < angles[i-1] {
			wraps++
		}
	}
	require.LessOrEqual(wraps, 1, "ring order %v is not a rotation of the sorted angle order", angles)
}

func TestRingFind(t *testing.T) {
	require := require.New(t)

	hub := edgegraph.Vertex{X: 0, Y: 0}
	n := edgegraph.Vertex{X: 0, Y: 1}
	e := edgegraph.Vertex{X: 1, Y: 0}
	w := edgegraph.Vertex{X: -1, Y: 0}

	g := edgegraph.New()
	g.AddEdge(hub, n)
	g.AddEdge(hub, e)
	g.AddEdge(hub, w)

	rep := g.FindEdge(hub, n)
	require.NotNil(rep)

	for _, dest := range []edgegraph.Vertex{n, e, w} {
		found := rep.Find(dest)
		require.NotNil(found, "every ring member must be findable from any entry point")
		require.Equal(hub, found.Orig())
		require.Equal(dest, found.Dest())
	}
	require.Nil(rep.Find(edgegraph.Vertex{X: 9, Y: 9}))
}

func TestOPrevInverse(t *testing.T) {
	require := require.New(t)

	hub := edgegraph.Vertex{X: 0, Y: 0}
	g := edgegraph.New()
	for _, sp := range []edgegraph.Vertex{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}} {
		g.AddEdge(hub, sp)
	}

	rep := g.FindEdge(hub, edgegraph.Vertex{X: 1, Y: 0})
	e := rep
	for i := 0; i < rep.Degree(); i++ {
		require.Same(e, e.ONext().OPrev())
		require.Same(e, e.OPrev().ONext())
		e = e.ONext()
	}
}

func TestHalfEdgeString(t *testing.T) {
	require := require.New(t)

	g := edgegraph.New()
	e := g.AddEdge(edgegraph.Vertex{X: 0, Y: 0}, edgegraph.Vertex{X: 1, Y: 2})
	require.Equal("(0, 0)->(1, 2)", e.String())

	var nilEdge *edgegraph.HalfEdge
	require.Equal("nil", nilEdge.String())
}
