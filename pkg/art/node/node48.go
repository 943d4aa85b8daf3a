package node

import "github.com/flier/dnsart/pkg/opt"

// Node48 indexes up to 48 children through a 256-entry table of
// 1-based child slots; Keys[b] == 0 means octet b has no child,
// Keys[b] == i means Children[i-1] is its child.
type Node48[V any] struct {
	Base
	Keys     [256]byte
	Children [48]Child[V]
}

var _ Node[any] = (*Node48[any])(nil)

func (n *Node48[V]) Type() Type { return TypeNode48 }
func (n *Node48[V]) Full() bool { return n.children == 48 }

func (n *Node48[V]) FindChild(b byte) opt.Option[*Child[V]] {
	i := n.Keys[b]
	if i == 0 {
		return opt.None[*Child[V]]()
	}

	return opt.Some(&n.Children[i-1])
}

func (n *Node48[V]) insertChild(b byte, child Child[V]) *Child[V] {
	i := n.children
	n.Children[i] = child
	n.Keys[b] = byte(i + 1)
	n.children++

	return &n.Children[i]
}

func (n *Node48[V]) grow() Node[V] {
	g := &Node256[V]{Base: n.Base}

	for b := 0; b < 256; b++ {
		i := n.Keys[b]
		if i == 0 {
			continue
		}

		g.insertChild(byte(b), n.Children[i-1])
	}

	return g
}
