// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/ecucodec/lzss

package lzss

// node is one binary search tree record, keyed (elsewhere, by addNode) on
// the lookAhead-byte string starting at its own window position. Storage is
// an array of w+1 records indexed by window position; index treeRoot is the
// permanent sentinel root.
type node struct {
	parent, smallChild, largeChild uint32
}

// tree is the binary search tree over window positions, stored as a flat
// parent-array rather than linked nodes: the 3-field record array is
// cache-friendly and bounds memory exactly, and indices are the only
// "pointers".
type tree struct {
	nodes []node // len w+1; nodes[treeRoot] is the sentinel
	root  uint32 // == treeRoot
}

// resize (re)allocates the tree's backing array for w+1 nodes, reusing the
// existing slice when possible (mirrors window.resize; see encoder_pool.go).
func (t *tree) resize(w uint) {
	n := w + 1
	if cap(t.nodes) < int(n) {
		t.nodes = make([]node, n)
	} else {
		t.nodes = t.nodes[:n]
		for i := range t.nodes {
			t.nodes[i] = node{}
		}
	}
	t.root = uint32(w)
}

// live reports whether n is currently linked into the tree: either it is the
// root sentinel, or it has a parent. This is what lets deleteNode tolerate
// being called on a position that was never inserted.
func (t *tree) live(n uint32) bool {
	if n == t.root {
		return true
	}
	return t.nodes[n].parent != unused
}

// initTree establishes the tree with a single real node.
func (t *tree) initTree(rootChild uint32) {
	t.nodes[t.root] = node{parent: unused, smallChild: unused, largeChild: rootChild}
	t.nodes[rootChild] = node{parent: uint32(t.root), smallChild: unused, largeChild: unused}
}

// replaceChildPointer rewrites whichever of parent's children equals old to
// new. Checks largeChild first.
func (t *tree) replaceChildPointer(parent, old, new uint32) {
	if t.nodes[parent].largeChild == old {
		t.nodes[parent].largeChild = new
	} else {
		t.nodes[parent].smallChild = new
	}
}

// contractNode splices new into old's slot under old's parent and clears
// old. new must already be a descendant of old, or unused.
func (t *tree) contractNode(old, new uint32) {
	t.nodes[new].parent = t.nodes[old].parent
	t.replaceChildPointer(t.nodes[old].parent, old, new)
	t.nodes[old] = node{}
}

// replaceNode splices new — not currently in the tree — into old's exact
// position, inheriting both children. Used only for the exact-match
// "duplicate replace" path in addNode.
func (t *tree) replaceNode(old, new uint32) {
	t.replaceChildPointer(t.nodes[old].parent, old, new)
	t.nodes[new] = t.nodes[old]
	t.nodes[t.nodes[new].smallChild].parent = new
	t.nodes[t.nodes[new].largeChild].parent = new
	t.nodes[old] = node{}
}

// findNextNode returns the maximum of n's left subtree. Precondition:
// n.smallChild != unused. The result has no largeChild.
func (t *tree) findNextNode(n uint32) uint32 {
	n = t.nodes[n].smallChild
	for t.nodes[n].largeChild != unused {
		n = t.nodes[n].largeChild
	}
	return n
}

// deleteNode removes n from the tree. Tolerates n not currently being
// live — the driver deletes window positions that were never inserted
// during the initial fill phase.
func (t *tree) deleteNode(n uint32) {
	if n == unused || !t.live(n) {
		return
	}

	large, small := t.nodes[n].largeChild, t.nodes[n].smallChild
	switch {
	case large == unused:
		t.contractNode(n, small)
	case small == unused:
		t.contractNode(n, large)
	default:
		r := t.findNextNode(n)
		t.contractNode(r, t.nodes[r].smallChild)
		t.replaceNode(n, r)
	}
}
