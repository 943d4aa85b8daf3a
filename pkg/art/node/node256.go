package node

import "github.com/flier/dnsart/pkg/opt"

// maxWidth256 is the largest number of children an N256 can hold.
// Translated key octets top out at 0xE6 (230), so the remaining slots
// of the 256-entry array are simply never populated for valid keys
// (see Leaf and the key package's transform).
const maxWidth256 = 230

// Node256 indexes children directly by octet value. It is the terminal
// node variant: it never promotes further.
type Node256[V any] struct {
	Base
	Children [256]Child[V]
}

var _ Node[any] = (*Node256[any])(nil)

func (n *Node256[V]) Type() Type { return TypeNode256 }
func (n *Node256[V]) Full() bool { return n.children == maxWidth256 }

func (n *Node256[V]) FindChild(b byte) opt.Option[*Child[V]] {
	if n.Children[b].IsEmpty() {
		return opt.None[*Child[V]]()
	}

	return opt.Some(&n.Children[b])
}

func (n *Node256[V]) insertChild(b byte, child Child[V]) *Child[V] {
	wasEmpty := n.Children[b].IsEmpty()
	n.Children[b] = child
	if wasEmpty {
		n.children++
	}

	return &n.Children[b]
}

// grow is never called: Full reports true at N256's real capacity, but
// AddChild never promotes past N256.
func (n *Node256[V]) grow() Node[V] {
	panic("art/node: Node256 cannot grow further")
}
