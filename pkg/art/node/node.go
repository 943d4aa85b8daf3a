// Package node implements the six node variants of a DNS-specialized
// Adaptive Radix Tree: N4, N16, N32, N38, N48 and N256. Each variant
// trades capacity against the cost of the {key octet -> child slot}
// lookup, and the tree promotes a node to the next variant once it
// outgrows its current one.
package node

import (
	"github.com/flier/dnsart/pkg/art/simd"
	"github.com/flier/dnsart/pkg/opt"
)

// Type identifies which of the six node variants a Node is.
type Type int

const (
	// TypeNode4 is the smallest inner node, searched linearly.
	TypeNode4 Type = iota
	// TypeNode16 is searched with a 128-bit-style SIMD equality compare.
	TypeNode16
	// TypeNode32 is searched with a 256-bit-style SIMD equality compare,
	// and only ever created when Have256 reports true (simd.Have256
	// unless overridden with SetHave256).
	TypeNode32
	// TypeNode38 stores hostname-alphabet keys exclusively, indexed
	// directly via the alphabet translation.
	TypeNode38
	// TypeNode48 indexes a 256-entry byte table of 1-based child slots.
	TypeNode48
	// TypeNode256 indexes children directly by octet value.
	TypeNode256
)

func (t Type) String() string {
	switch t {
	case TypeNode4:
		return "Node4"
	case TypeNode16:
		return "Node16"
	case TypeNode32:
		return "Node32"
	case TypeNode38:
		return "Node38"
	case TypeNode48:
		return "Node48"
	case TypeNode256:
		return "Node256"
	default:
		return "Unknown"
	}
}

// Leaf is a payload holder: the terminal element of a descent, owning a
// full copy of the key that led to it.
//
// HasValue distinguishes a leaf that was only just allocated (during a
// split, before the caller has stored anything into it) from one
// carrying a real payload. A generic V cannot be compared against a
// universal "empty" sentinel, so this is the Go equivalent of the
// original "a null payload marks a fresh leaf" convention.
type Leaf[V any] struct {
	Key      []byte
	Value    V
	HasValue bool
}

// Match reports whether key equals this leaf's own key exactly. Because
// no valid key is ever a prefix of another, equal-length mismatch is
// the only way a descent can reach the wrong leaf.
func (l *Leaf[V]) Match(key []byte) bool {
	return len(key) == len(l.Key) && string(key) == string(l.Key)
}

// Child is a sum type standing in for the original source's
// pointer-tagged nsd_node_t*: exactly one of Leaf or Node is non-nil at
// any time. Unlike pkg/arena/art/node.Ref[T], which tags the low bit of
// a raw pointer, this has no unsafe component.
type Child[V any] struct {
	Leaf *Leaf[V]
	Node Node[V]
}

// IsLeaf reports whether this slot holds a leaf.
func (c Child[V]) IsLeaf() bool { return c.Leaf != nil }

// IsNode reports whether this slot holds an inner node.
func (c Child[V]) IsNode() bool { return c.Node != nil }

// IsEmpty reports whether this slot holds neither a leaf nor a node,
// i.e. it is the zero Child.
func (c Child[V]) IsEmpty() bool { return c.Leaf == nil && c.Node == nil }

// LeafChild wraps a leaf as a Child.
func LeafChild[V any](l *Leaf[V]) Child[V] { return Child[V]{Leaf: l} }

// NodeChild wraps an inner node as a Child.
func NodeChild[V any](n Node[V]) Child[V] { return Child[V]{Node: n} }

// Node is the common interface satisfied by all six inner node
// variants.
type Node[V any] interface {
	// Type reports which of the six variants this is.
	Type() Type

	// Full reports whether this node is at capacity and must be
	// promoted before it can accept another child.
	Full() bool

	// NumChildren reports how many children are currently present.
	NumChildren() int

	// Prefix returns the node's compressed key prefix (at most
	// key.MaxPrefix octets).
	Prefix() []byte

	// SetPrefix replaces the node's compressed key prefix.
	SetPrefix(prefix []byte)

	// FindChild returns the address of the child slot for octet b, or
	// None if no child exists for that octet.
	FindChild(b byte) opt.Option[*Child[V]]

	// insertChild stores child under octet b in a node known not to be
	// full, returning the address of the newly occupied slot. Callers
	// outside this package should use the package-level AddChild, which
	// handles promotion; insertChild assumes non-full and is only used
	// internally and by AddChild itself.
	insertChild(b byte, child Child[V]) *Child[V]

	// grow copies this node's header and children into the next larger
	// compatible variant and returns it. It does not insert the child
	// that triggered the promotion; AddChild does that afterward.
	grow() Node[V]
}

// Base holds the fields every node variant shares: the compressed
// prefix and how many children are currently occupied.
type Base struct {
	prefix   []byte
	children int
}

// Prefix returns the node's compressed key prefix.
func (b *Base) Prefix() []byte { return b.prefix }

// SetPrefix replaces the node's compressed key prefix.
func (b *Base) SetPrefix(prefix []byte) { b.prefix = prefix }

// NumChildren reports how many children are currently present.
func (b *Base) NumChildren() int { return b.children }

// have256 is a package-level var (not simd.Have256 directly) so tests
// can force N32 off regardless of GOARCH, the same way art.WithSIMD32
// does for the tree package.
var have256 = simd.Have256

// SetHave256 overrides whether N16->N32 promotion is available. It
// exists for art.WithSIMD32 and for deterministic tests; production
// code should not need to call it.
func SetHave256(v bool) { have256 = v }

// Have256 reports whether N16 promotes to N32 on this build, as
// currently configured.
func Have256() bool { return have256 }
