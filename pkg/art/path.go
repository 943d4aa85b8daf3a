package art

import "github.com/flier/dnsart/pkg/art/node"

// maxHeight bounds Path's level stack: every level consumes at least
// one routing octet from the key, and a key is at most 255 octets.
const maxHeight = 255

// Level records that, at key depth Depth, Slot is the address of the
// tree slot the descent passed through.
type Level[V any] struct {
	Depth int
	Slot  *node.Child[V]
}

// Path is a caller-owned, reusable descent record. levels[0] always
// refers to the tree's root slot at depth 0; each subsequent level
// refers to a child slot inside the previous level's node.
//
// A Path is a non-owning view: its Slot pointers become stale if a
// mutation (promotion or split) replaces the node they point into, so
// a Path must not outlive such a mutation performed through a
// different Path over the same tree.
type Path[V any] struct {
	levels [maxHeight]Level[V]
	height int
}

// NewPath allocates an empty Path.
func NewPath[V any]() *Path[V] {
	return &Path[V]{}
}

// Height reports how many levels are currently on the path.
func (p *Path[V]) Height() int { return p.height }

// Reset empties the path so it can be reused for another descent.
func (p *Path[V]) Reset() { p.height = 0 }

// Top returns the level at the tip of the path, or nil if the path is
// empty.
func (p *Path[V]) Top() *Level[V] {
	if p.height == 0 {
		return nil
	}

	return &p.levels[p.height-1]
}

// At returns the level at index i (0 is the root), or nil if i is out
// of range. Callers use this to inspect ancestor nodes along a descent
// -- e.g. the closest encloser of a query name -- without re-descending
// the tree.
func (p *Path[V]) At(i int) *Level[V] {
	if i < 0 || i >= p.height {
		return nil
	}

	return &p.levels[i]
}

// push appends a new level onto the path.
func (p *Path[V]) push(depth int, slot *node.Child[V]) {
	p.levels[p.height] = Level[V]{Depth: depth, Slot: slot}
	p.height++
}

// pop discards the level at the tip of the path.
func (p *Path[V]) pop() {
	p.height--
}
