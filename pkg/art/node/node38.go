package node

import (
	"github.com/flier/dnsart/pkg/art/key"
	"github.com/flier/dnsart/pkg/opt"
)

// Node38 stores hostname-alphabet keys exclusively: every present and
// every future child octet must translate through key.ToAlphabet. This
// lets it index 38 possible octets directly instead of scanning or
// consulting a 256-entry table.
type Node38[V any] struct {
	Base
	Children [38]Child[V]
}

var _ Node[any] = (*Node38[any])(nil)

func (n *Node38[V]) Type() Type { return TypeNode38 }
func (n *Node38[V]) Full() bool { return n.children == 38 }

func (n *Node38[V]) FindChild(b byte) opt.Option[*Child[V]] {
	idx, ok := key.ToAlphabet(b)
	if !ok {
		return opt.None[*Child[V]]()
	}

	c := &n.Children[idx]
	if c.IsEmpty() {
		return opt.None[*Child[V]]()
	}

	return opt.Some(c)
}

// insertChild assumes b is already known to be in the hostname
// alphabet; growToAlphabetOrN48 only builds a Node38 when that holds
// for every key involved, and AddChild only routes an insert into an
// existing Node38 after confirming the incoming octet still fits.
func (n *Node38[V]) insertChild(b byte, child Child[V]) *Child[V] {
	idx, ok := key.ToAlphabet(b)
	if !ok {
		panic("art/node: octet outside hostname alphabet routed to Node38")
	}

	wasEmpty := n.Children[idx].IsEmpty()
	n.Children[idx] = child
	if wasEmpty {
		n.children++
	}

	return &n.Children[idx]
}

func (n *Node38[V]) grow() Node[V] {
	g := &Node48[V]{Base: n.Base}

	for idx := range n.Children {
		if n.Children[idx].IsEmpty() {
			continue
		}

		o, ok := key.FromAlphabet(byte(idx))
		if !ok {
			continue
		}

		g.insertChild(o, n.Children[idx])
	}

	return g
}

// inAlphabet reports whether every byte in keys lies in the restricted
// hostname alphabet.
func inAlphabet(keys []byte) bool {
	for _, k := range keys {
		if _, ok := key.ToAlphabet(k); !ok {
			return false
		}
	}

	return true
}

// growToAlphabetOrN48 promotes a full Node16/Node32 into a Node38 when
// every existing key is in the restricted hostname alphabet, or a
// Node48 otherwise. Node48 is always a safe fallback since it can
// index any octet.
func growToAlphabetOrN48[V any](base Base, keys []byte, children []Child[V]) Node[V] {
	if inAlphabet(keys) {
		g := &Node38[V]{Base: base}

		for i, k := range keys {
			g.insertChild(k, children[i])
		}

		return g
	}

	g := &Node48[V]{Base: base}

	for i, k := range keys {
		g.insertChild(k, children[i])
	}

	return g
}
