package node

import "github.com/flier/dnsart/pkg/art/key"

// AddChild inserts child under octet b into the node referenced by
// self, promoting self.Node to the next larger compatible variant
// first if necessary, and returns the address of the newly occupied
// child slot in whichever node ends up holding it.
//
// self is both input and output: on promotion, self.Node is replaced
// with the grown node before the insert happens, so callers always
// see the current node through self afterward.
func AddChild[V any](self *Child[V], b byte, child Child[V]) *Child[V] {
	n := self.Node

	if n38, ok := n.(*Node38[V]); ok {
		if _, inAlpha := key.ToAlphabet(b); !inAlpha {
			self.Node = n38.grow()

			return AddChild(self, b, child)
		}
	}

	if n.Full() {
		self.Node = n.grow()

		return AddChild(self, b, child)
	}

	return n.insertChild(b, child)
}
