// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/ecucodec/lzss

package lzss

// addNode is the heart of the match engine: it simultaneously finds
// the best match for window position new and links new into the tree.
//
// Guard: new == endOfStream (i.e. 0) returns matchLen 0 without touching the
// tree — position 0 is never inserted (invariant 1).
func (e *Encoder) addNode(new uint32) (matchLen uint, matchPos uint32) {
	if new == endOfStream {
		return 0, 0
	}

	lookAhead := e.params.lookAhead
	testNode := e.tr.nodes[e.tr.root].largeChild

	for {
		i := uint(0)
		var delta int16
		for ; i < lookAhead; i++ {
			delta = int16(e.win.at(uint(new)+i)) - int16(e.win.at(uint(testNode)+i))
			if delta != 0 {
				break
			}
		}
		length := i
		if delta == 0 {
			length = lookAhead
		}

		if length >= matchLen {
			matchLen = length
			matchPos = testNode
		}

		if length >= lookAhead {
			// Exact match across the whole look-ahead: purge the older,
			// identical position from the tree so duplicates don't
			// accumulate without bound.
			e.tr.replaceNode(testNode, new)
			return matchLen, matchPos
		}

		var child *uint32
		if delta >= 0 {
			child = &e.tr.nodes[testNode].largeChild
		} else {
			child = &e.tr.nodes[testNode].smallChild
		}

		if *child == unused {
			*child = new
			e.tr.nodes[new] = node{parent: testNode, smallChild: unused, largeChild: unused}
			return matchLen, matchPos
		}

		testNode = *child
	}
}
