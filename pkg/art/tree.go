// Package art implements a DNS-specialized Adaptive Radix Tree: a
// space-efficient, prefix-compressed trie keyed on the sortkeys
// produced by pkg/art/key, using the six node variants from
// pkg/art/node.
package art

import (
	"github.com/flier/dnsart/internal/debug"
	"github.com/flier/dnsart/pkg/art/key"
	"github.com/flier/dnsart/pkg/art/node"
)

// Tree is an Adaptive Radix Tree specialized for DNS names. The zero
// value is not usable; construct one with New.
type Tree[V any] struct {
	root node.Child[V]
}

// New constructs an empty Tree whose root is an empty N4.
func New[V any](opts ...Option) *Tree[V] {
	c := newConfig(opts)
	c.apply()

	return &Tree[V]{root: node.Child[V]{Node: &node.Node4[V]{}}}
}

// FindPath descends the tree looking for k, recording every node
// passed through in path. path may already hold a prefix descent
// (height > 0); the search resumes from its tip.
func (t *Tree[V]) FindPath(path *Path[V], k key.Key) Retcode {
	if t == nil || path == nil || len(k) == 0 {
		return BadParameter
	}

	return t.descend(path, k, false)
}

// MakePath descends the tree looking for k, creating whatever leaves
// and inner nodes are needed along the way, and records the resulting
// descent in path.
func (t *Tree[V]) MakePath(path *Path[V], k key.Key) Retcode {
	if t == nil || path == nil || len(k) == 0 {
		return BadParameter
	}

	return t.descend(path, k, true)
}

// descend implements the shared traversal described for FindPath and
// MakePath: it walks from path's current tip (pushing path.levels[0]
// for the root slot if path is empty) until it lands on k's leaf, a
// mismatch, or (when create is true) has built whatever was missing.
func (t *Tree[V]) descend(path *Path[V], k []byte, create bool) Retcode {
	if path.height == 0 {
		path.push(0, &t.root)
	}

	for {
		top := path.Top()
		depth := top.Depth
		slot := top.Slot

		debug.Assert(!slot.IsEmpty(), "descent reached an empty slot")

		if slot.IsLeaf() {
			leaf := slot.Leaf
			cnt := depth + commonPrefixLen(k[depth:], leaf.Key[depth:])

			if cnt == len(k) && cnt == len(leaf.Key) {
				return Ok
			}

			if !create {
				path.pop()

				return NotFound
			}

			debug.Assert(cnt < len(k) && cnt < len(leaf.Key),
				"a stored key must never be a prefix of another")

			splitLeaf(path, slot, depth, cnt, k, leaf)

			return Ok
		}

		n := slot.Node
		prefix := n.Prefix()

		if len(prefix) > 0 {
			pcnt := commonPrefixLen(k[depth:], prefix)

			if pcnt < len(prefix) {
				if !create {
					return NotFound
				}

				splitNode(slot, pcnt, n, prefix)

				continue
			}

			depth += len(prefix)
		}

		c := n.FindChild(k[depth])
		if c.IsNone() {
			if !create {
				return NotFound
			}

			newLeaf := &node.Leaf[V]{Key: cloneBytes(k)}
			newSlot := node.AddChild(slot, k[depth], node.LeafChild(newLeaf))
			path.push(depth+1, newSlot)

			return Ok
		}

		path.push(depth+1, c.Unwrap())
	}
}

// splitLeaf replaces the leaf at *slot (entered at depth D0, diverging
// from k at offset cnt) with a chain of N4 nodes spanning [D0, cnt),
// each consuming one routing octet plus up to key.MaxPrefix octets of
// compressed prefix, then attaches the old and new leaves as two
// children of the chain's final link.
func splitLeaf[V any](path *Path[V], slot *node.Child[V], d0, cnt int, k []byte, leaf *node.Leaf[V]) {
	depth := d0
	cur := slot
	first := true

	for {
		remaining := cnt - depth
		p := remaining
		if p > key.MaxPrefix {
			p = key.MaxPrefix
		}

		n4 := &node.Node4[V]{}
		if p > 0 {
			n4.SetPrefix(cloneBytes(k[depth : depth+p]))
		}

		*cur = node.NodeChild[V](n4)

		// cur's slot is already the path's current top entry on the
		// first link -- descend pushed it before calling splitLeaf, and
		// *cur's address hasn't changed, only its contents -- so only
		// chain links created from here on are new path entries.
		if !first {
			path.push(depth, cur)
		}
		first = false
		depth += p

		if depth == cnt {
			node.AddChild(cur, leaf.Key[cnt], node.LeafChild(leaf))
			newLeaf := &node.Leaf[V]{Key: cloneBytes(k)}
			newSlot := node.AddChild(cur, k[cnt], node.LeafChild(newLeaf))
			path.push(cnt+1, newSlot)

			return
		}

		next := node.AddChild(cur, k[depth], node.Child[V]{})
		depth++
		cur = next
	}
}

// splitNode handles a prefix mismatch at an inner node: it carves off
// the common portion of the node's prefix into a new N4 (which becomes
// the node's new parent in its old slot), demotes the diverging byte
// of the old prefix into a routing octet under the new N4, and shortens
// the old node's own prefix accordingly.
func splitNode[V any](slot *node.Child[V], pcnt int, oldNode node.Node[V], oldPrefix []byte) {
	n4 := &node.Node4[V]{}
	if pcnt > 0 {
		n4.SetPrefix(cloneBytes(oldPrefix[:pcnt]))
	}

	replacement := node.Child[V]{Node: n4}
	node.AddChild(&replacement, oldPrefix[pcnt], node.NodeChild[V](oldNode))

	oldNode.SetPrefix(cloneBytes(oldPrefix[pcnt+1:]))

	// slot is already the path's current top entry -- descend pushed it
	// before calling splitNode, and slot's address hasn't changed, only
	// the Child value stored there -- so the existing entry already
	// reflects the replacement and nothing new needs to be pushed.
	*slot = replacement
}

// commonPrefixLen returns how many leading bytes a and b share.
func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
