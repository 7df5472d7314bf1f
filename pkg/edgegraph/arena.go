package edgegraph

// DefaultBlockSize is the number of half-edges per arena block.
const DefaultBlockSize = 1024

// arena stores half-edges in fixed-size blocks instead of allocating each
// one separately. Blocks are never resized or moved, so a *HalfEdge taken
// from the arena stays valid for the arena's whole lifetime.
type arena struct {
	blocks    [][]HalfEdge
	used      int // slots used in the last block
	blockSize int
}

func newArena(blockSize int) *arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &arena{blockSize: blockSize}
}

func (a *arena) alloc(orig Vertex) *HalfEdge {
	if len(a.blocks) == 0 || a.used == a.blockSize {
		a.blocks = append(a.blocks, make([]HalfEdge, a.blockSize))
		a.used = 0
	}
	he := &a.blocks[len(a.blocks)-1][a.used]
	a.used++
	he.orig = orig
	return he
}

func (a *arena) len() int {
	if len(a.blocks) == 0 {
		return 0
	}
	return (len(a.blocks)-1)*a.blockSize + a.used
}
