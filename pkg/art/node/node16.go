package node

import (
	"github.com/flier/dnsart/pkg/art/simd"
	"github.com/flier/dnsart/pkg/opt"
)

// Node16 holds up to 16 children, searched with a vectorized-style
// equality compare rather than a plain linear scan.
type Node16[V any] struct {
	Base
	Keys     [16]byte
	Children [16]Child[V]
}

var _ Node[any] = (*Node16[any])(nil)

func (n *Node16[V]) Type() Type { return TypeNode16 }
func (n *Node16[V]) Full() bool { return n.children == 16 }

func (n *Node16[V]) FindChild(b byte) opt.Option[*Child[V]] {
	i := simd.FindEq16(&n.Keys, uint8(n.children), b)
	if i == 0 {
		return opt.None[*Child[V]]()
	}

	return opt.Some(&n.Children[i-1])
}

func (n *Node16[V]) insertChild(b byte, child Child[V]) *Child[V] {
	pos := int(simd.FindGt16(&n.Keys, uint8(n.children), b))
	var i int
	if pos == 0 {
		i = n.children
	} else {
		i = pos - 1
	}

	copy(n.Keys[i+1:n.children+1], n.Keys[i:n.children])
	copy(n.Children[i+1:n.children+1], n.Children[i:n.children])

	n.Keys[i] = b
	n.Children[i] = child
	n.children++

	return &n.Children[i]
}

func (n *Node16[V]) grow() Node[V] {
	if Have256() {
		g := &Node32[V]{Base: n.Base}

		copy(g.Keys[:], n.Keys[:n.children])
		copy(g.Children[:], n.Children[:n.children])
		g.children = n.children

		return g
	}

	return growToAlphabetOrN48(n.Base, n.Keys[:n.children], n.Children[:n.children])
}
