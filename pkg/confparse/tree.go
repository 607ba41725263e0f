// Package confparse reconstructs structured configuration from the flat
// "set" statement list a device reports, via an intermediate tree.
package confparse

import (
	"strconv"

	"github.com/vyops/vyops/pkg/util"
)

// Node is one node of the reconstructed configuration tree: either a leaf
// (a full statement path terminates here) or a branch of named children.
// Children keep insertion order so multi-valued paths round-trip in the
// order the device reported them.
type Node struct {
	leaf     bool
	children map[string]*Node
	order    []string
}

// NewNode returns an empty branch node.
func NewNode() *Node {
	return &Node{}
}

// IsLeaf reports whether a statement path terminates at this node.
func (n *Node) IsLeaf() bool {
	return n != nil && n.leaf && len(n.children) == 0
}

// At walks the given path and returns the node there, or nil. Safe to call
// on a nil node, so lookups compose without existence checks.
func (n *Node) At(path ...string) *Node {
	cur := n
	for _, seg := range path {
		if cur == nil {
			return nil
		}
		cur = cur.children[seg]
	}
	return cur
}

// Keys returns the child names in insertion order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	return n.order
}

// Value reads a scalar at path: a node with exactly one child key encodes
// that key as its value. Returns "" when the path is missing or not scalar.
func (n *Node) Value(path ...string) string {
	node := n.At(path...)
	if node == nil || len(node.order) != 1 {
		return ""
	}
	return node.order[0]
}

// IntValue reads a scalar at path as an integer, 0 when absent or malformed.
func (n *Node) IntValue(path ...string) int {
	v, err := strconv.Atoi(n.Value(path...))
	if err != nil {
		return 0
	}
	return v
}

// Values returns all child keys at path, in insertion order. Missing paths
// yield nil.
func (n *Node) Values(path ...string) []string {
	return n.At(path...).Keys()
}

// Flag reports a bare leaf at path, the encoding of a boolean true
// (e.g. "disable"). Absence means false.
func (n *Node) Flag(path ...string) bool {
	return n.At(path...).IsLeaf()
}

func (n *Node) ensureChild(name string) *Node {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if c, ok := n.children[name]; ok {
		return c
	}
	c := NewNode()
	n.children[name] = c
	n.order = append(n.order, name)
	return c
}

// insert records one statement path. Conflicting assertions are resolved
// branch-wins: a leaf in the middle of a longer path is coerced to a
// branch, and a leaf asserted where a branch exists is dropped. Both cases
// are logged at debug level rather than reported.
func (n *Node) insert(path []string) {
	cur := n
	for _, seg := range path[:len(path)-1] {
		cur = cur.ensureChild(seg)
		if cur.leaf {
			util.Debugf("confparse: coercing leaf to branch at %q", seg)
			cur.leaf = false
		}
	}
	last := cur.ensureChild(path[len(path)-1])
	if len(last.children) > 0 {
		util.Debugf("confparse: ignoring leaf assertion on branch %q", path[len(path)-1])
		return
	}
	last.leaf = true
}
