package edgegraph

import (
	"go.uber.org/zap"

	"github.com/jellymann/geos/pkg/logger"
)

// Builder feeds whole polylines into an EdgeGraph. Consecutive points of a
// path become segments; repeated and zero-length segments are skipped, not
// errors, so messy input (closed rings, retraced lines) still builds a
// clean graph.
type Builder struct {
	graph *EdgeGraph
	log   *logger.ZapLogger
}

// NewBuilder creates a builder over a fresh graph. The logger may be nil
// to build silently.
func NewBuilder(log *logger.ZapLogger) *Builder {
	return &Builder{
		graph: New(),
		log:   log,
	}
}

// NewBuilderFor wraps an existing graph, so paths can be mixed with direct
// AddEdge calls on the same structure.
func NewBuilderFor(g *EdgeGraph, log *logger.ZapLogger) *Builder {
	return &Builder{graph: g, log: log}
}

// Graph returns the graph under construction.
func (b *Builder) Graph() *EdgeGraph {
	return b.graph
}

// AddSegment adds one undirected segment and returns its a-side half-edge,
// or nil for degenerate input.
func (b *Builder) AddSegment(a, c Vertex) *HalfEdge {
	if !IsValidEdge(a, c) {
		if b.log != nil {
			b.log.Warn("[builder] degenerate segment skipped", zap.Any("at", a))
		}
		return nil
	}

	before := b.graph.EdgeCount()
	e := b.graph.AddEdge(a, c)
	if b.log != nil {
		if b.graph.EdgeCount() == before {
			b.log.Debug("[builder] duplicate segment reused", zap.Stringer("edge", e))
		} else {
			b.log.Debug("[builder] segment added", zap.Stringer("edge", e))
		}
	}
	return e
}

// AddPath adds every consecutive segment of the polyline.
func (b *Builder) AddPath(pts []Vertex) {
	if b.log != nil {
		b.log.Info("[builder] path", zap.Int("points", len(pts)))
	}
	for i := 1; i < len(pts); i++ {
		b.AddSegment(pts[i-1], pts[i])
	}
}
