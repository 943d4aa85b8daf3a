package node

import "github.com/flier/dnsart/pkg/opt"

// Node4 is the smallest inner node, holding up to 4 children in two
// parallel sorted arrays. It is the node type every split and every
// freshly promoted leaf chain starts out as.
type Node4[V any] struct {
	Base
	Keys     [4]byte
	Children [4]Child[V]
}

var _ Node[any] = (*Node4[any])(nil)

func (n *Node4[V]) Type() Type { return TypeNode4 }
func (n *Node4[V]) Full() bool { return n.children == 4 }

func (n *Node4[V]) FindChild(b byte) opt.Option[*Child[V]] {
	for i := 0; i < n.children; i++ {
		if n.Keys[i] == b {
			return opt.Some(&n.Children[i])
		}
	}

	return opt.None[*Child[V]]()
}

func (n *Node4[V]) insertChild(b byte, child Child[V]) *Child[V] {
	i := 0
	for ; i < n.children; i++ {
		if n.Keys[i] > b {
			break
		}
	}

	copy(n.Keys[i+1:n.children+1], n.Keys[i:n.children])
	copy(n.Children[i+1:n.children+1], n.Children[i:n.children])

	n.Keys[i] = b
	n.Children[i] = child
	n.children++

	return &n.Children[i]
}

func (n *Node4[V]) grow() Node[V] {
	g := &Node16[V]{Base: n.Base}

	copy(g.Keys[:], n.Keys[:n.children])
	copy(g.Children[:], n.Children[:n.children])
	g.children = n.children

	return g
}
