package node

import (
	"github.com/flier/dnsart/pkg/art/simd"
	"github.com/flier/dnsart/pkg/opt"
)

// Node32 holds up to 32 children, searched with a wider vectorized-style
// equality compare. It is only ever created when simd.Have256 (as
// currently configured) is true; see Have256/SetHave256.
type Node32[V any] struct {
	Base
	Keys     [32]byte
	Children [32]Child[V]
}

var _ Node[any] = (*Node32[any])(nil)

func (n *Node32[V]) Type() Type { return TypeNode32 }
func (n *Node32[V]) Full() bool { return n.children == 32 }

func (n *Node32[V]) FindChild(b byte) opt.Option[*Child[V]] {
	i := simd.FindEq32(&n.Keys, uint8(n.children), b)
	if i == 0 {
		return opt.None[*Child[V]]()
	}

	return opt.Some(&n.Children[i-1])
}

func (n *Node32[V]) insertChild(b byte, child Child[V]) *Child[V] {
	pos := int(simd.FindGt32(&n.Keys, uint8(n.children), b))
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

// grow promotes a full Node32 to either Node38 or Node48 depending on
// whether every existing key lies in the restricted hostname alphabet.
// The incoming key is not seen here: if it falls outside the alphabet,
// AddChild promotes the resulting Node38 on to Node48 before inserting.
func (n *Node32[V]) grow() Node[V] {
	return growToAlphabetOrN48(n.Base, n.Keys[:n.children], n.Children[:n.children])
}
