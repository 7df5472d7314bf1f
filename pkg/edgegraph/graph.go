package edgegraph

// EdgeGraph builds a planar graph of half-edges over a set of vertices.
// Each undirected segment is stored exactly once as a symmetric pair, and
// every vertex keeps a ring of its outgoing half-edges, reachable through
// the vertex map.
//
// The graph owns every half-edge it creates. It is not safe for concurrent
// use; callers that share a graph across goroutines must serialize access.
type EdgeGraph struct {
	edges     *arena
	vertexMap map[Vertex]*HalfEdge
}

// New creates an empty graph with the default arena block size.
func New() *EdgeGraph {
	return NewWithBlockSize(DefaultBlockSize)
}

// NewWithBlockSize creates an empty graph whose half-edge storage grows in
// blocks of the given size. Non-positive sizes fall back to the default.
func NewWithBlockSize(blockSize int) *EdgeGraph {
	return &EdgeGraph{
		edges:     newArena(blockSize),
		vertexMap: make(map[Vertex]*HalfEdge),
	}
}

func (g *EdgeGraph) createEdge(orig Vertex) *HalfEdge {
	return g.edges.alloc(orig)
}

func (g *EdgeGraph) create(p0, p1 Vertex) *HalfEdge {
	e0 := g.createEdge(p0)
	e1 := g.createEdge(p1)
	e0.Link(e1)
	return e0
}

// AddEdge makes sure the undirected segment orig-dest exists in the graph
// and returns its orig-side half-edge. If the segment is already present
// the existing half-edge is returned and nothing is allocated. Degenerate
// input (orig == dest) is rejected with a nil return.
func (g *EdgeGraph) AddEdge(orig, dest Vertex) *HalfEdge {
	if !IsValidEdge(orig, dest) {
		return nil
	}

	// Reuse an existing edge if the segment is already in the graph.
	// A ring found at orig doubles as the insertion point otherwise.
	eAdj := g.vertexMap[orig]
	if eAdj != nil {
		if eSame := eAdj.Find(dest); eSame != nil {
			return eSame
		}
	}

	return g.insert(orig, dest, eAdj)
}

// IsValidEdge reports whether orig and dest form a non-degenerate segment.
func IsValidEdge(orig, dest Vertex) bool {
	return orig != dest
}

func (g *EdgeGraph) insert(orig, dest Vertex, eAdj *HalfEdge) *HalfEdge {
	e := g.create(orig, dest)

	if eAdj != nil {
		eAdj.Insert(e)
	} else {
		g.vertexMap[orig] = e
	}

	// The dest side is handled independently: dest may already carry edges
	// from earlier insertions even if it never appeared as an origin.
	if eAdjDest := g.vertexMap[dest]; eAdjDest != nil {
		eAdjDest.Insert(e.Sym())
	} else {
		g.vertexMap[dest] = e.Sym()
	}
	return e
}

// FindEdge returns the half-edge from orig to dest, or nil if either the
// vertex or the segment is not in the graph.
func (g *EdgeGraph) FindEdge(orig, dest Vertex) *HalfEdge {
	e := g.vertexMap[orig]
	if e == nil {
		return nil
	}
	return e.Find(dest)
}

// VertexEdges returns one half-edge per distinct vertex in the graph, each
// an entry point into that vertex's ring. Order follows map iteration and
// must not be relied on.
func (g *EdgeGraph) VertexEdges() []*HalfEdge {
	out := make([]*HalfEdge, 0, len(g.vertexMap))
	for _, e := range g.vertexMap {
		out = append(out, e)
	}
	return out
}

// VertexCount returns the number of distinct vertices.
func (g *EdgeGraph) VertexCount() int {
	return len(g.vertexMap)
}

// EdgeCount returns the number of undirected segments (symmetric pairs).
func (g *EdgeGraph) EdgeCount() int {
	return g.edges.len() / 2
}
