package lzss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_ResizeReusesBackingArray(t *testing.T) {
	var win window
	win.resize(16)
	win.set(0, 0xFF)

	buf := win.buf
	win.resize(8)
	require.Same(t, &buf[0], &win.buf[0], "resize to a smaller size should reuse the backing array")
	require.Equal(t, byte(0), win.at(0), "resize must zero the reused buffer")
}

func TestWindow_AddressingWrapsModuloW(t *testing.T) {
	var win window
	win.resize(8)
	win.set(10, 0x7A) // 10 mod 8 == 2
	require.Equal(t, byte(0x7A), win.at(2))
	require.Equal(t, byte(0x7A), win.at(10))
}

// collectLiveNodes walks the tree from n and records every node reachable
// from it in out. The tests use the result to check the tree invariant:
// every live non-root node is reachable from the root.
func collectLiveNodes(tr *tree, n uint32, out map[uint32]bool) {
	if n == unused && n != tr.root {
		return
	}
	out[n] = true
	if tr.nodes[n].smallChild != unused {
		collectLiveNodes(tr, tr.nodes[n].smallChild, out)
	}
	if tr.nodes[n].largeChild != unused {
		collectLiveNodes(tr, tr.nodes[n].largeChild, out)
	}
}

func TestTree_InvariantAfterInsertsAndDeletes(t *testing.T) {
	p, err := newCodecParams(defaultIndexBits, defaultLengthBits)
	require.NoError(t, err)

	e := &Encoder{}
	e.reset(p)

	for i := 0; i < int(p.w); i++ {
		e.win.setDirect(uint(i), byte(i*7))
	}
	e.tr.initTree(1)

	for pos := uint32(2); pos < uint32(p.w); pos++ {
		e.addNode(pos)

		reachable := map[uint32]bool{}
		collectLiveNodes(&e.tr, e.tr.root, reachable)

		for n := uint32(1); n <= pos; n++ {
			if !e.tr.live(n) {
				continue
			}
			require.True(t, reachable[n], "live node %d not reachable from root after inserting %d", n, pos)

			parent := e.tr.nodes[n].parent
			isSmall := e.tr.nodes[parent].smallChild == n
			isLarge := e.tr.nodes[parent].largeChild == n
			require.True(t, isSmall != isLarge, "node %d must be exactly one of its parent's children", n)
		}
	}

	// Deleting every inserted node must leave only the root standing.
	for pos := uint32(1); pos < uint32(p.w); pos++ {
		e.tr.deleteNode(pos)
	}
	require.Equal(t, uint32(unused), e.tr.nodes[e.tr.root].largeChild, "tree should be empty after deleting every inserted node")
}

func TestTree_DeleteNodeTakesAllThreeCases(t *testing.T) {
	p, err := newCodecParams(minIndexBits, minLengthBits)
	require.NoError(t, err)

	e := &Encoder{}
	e.reset(p)
	// Distinct, non-monotonic bytes (37 is odd, so i*37 mod 256 never
	// repeats for i < 64): inserting positions 2..39 in order builds a tree
	// with leaves, one-child nodes and two-child nodes, so the deletes below
	// reach all three deleteNode cases.
	for i := 0; i < int(p.w); i++ {
		e.win.setDirect(uint(i), byte(i*37))
	}
	e.tr.initTree(1)

	for pos := uint32(2); pos < 40; pos++ {
		e.addNode(pos)
	}

	// deleteNode on a window position that was never inserted must be a
	// no-op, not a panic (the driver calls this during the initial fill
	// phase).
	require.NotPanics(t, func() { e.tr.deleteNode(uint32(p.w) - 1) })

	// Delete leaves, one-child nodes and two-child nodes; in every case
	// deleteNode must leave the remaining nodes reachable from the root.
	for pos := uint32(2); pos < 40; pos++ {
		e.tr.deleteNode(pos)
	}

	reachable := map[uint32]bool{}
	collectLiveNodes(&e.tr, e.tr.root, reachable)
	require.True(t, reachable[1], "the one node never deleted must still be reachable")
}

func TestAddNode_GuardsEndOfStreamPosition(t *testing.T) {
	p, err := newCodecParams(defaultIndexBits, defaultLengthBits)
	require.NoError(t, err)
	e := &Encoder{}
	e.reset(p)
	e.tr.initTree(1)

	matchLen, matchPos := e.addNode(uint32(endOfStream))
	require.Equal(t, uint(0), matchLen)
	require.Equal(t, uint32(0), matchPos)
	require.False(t, e.tr.live(unused), "position 0 must never become a live tree member")
}

func TestAddNode_ExactMatchTriggersReplaceNode(t *testing.T) {
	p, err := newCodecParams(defaultIndexBits, defaultLengthBits)
	require.NoError(t, err)
	e := &Encoder{}
	e.reset(p)

	for i := 0; i < int(p.w); i++ {
		e.win.setDirect(uint(i), 'A')
	}
	e.tr.initTree(1)

	matchLen, matchPos := e.addNode(2)
	require.Equal(t, p.lookAhead, matchLen, "identical look-ahead windows must match in full")
	require.Equal(t, uint32(1), matchPos)

	// Position 1 was spliced out by replaceNode and is no longer live;
	// position 2 took its slot in the tree.
	require.False(t, e.tr.live(1))
	require.True(t, e.tr.live(2))
}

func TestCodecParams_RejectsOutOfRangeBits(t *testing.T) {
	_, err := newCodecParams(minIndexBits-1, defaultLengthBits)
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = newCodecParams(maxIndexBits+1, defaultLengthBits)
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = newCodecParams(defaultIndexBits, minLengthBits-1)
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = newCodecParams(defaultIndexBits, maxLengthBits+1)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestCodecParams_RejectsLookAheadTooCloseToWindow(t *testing.T) {
	// minIndexBits=6 (a 64-byte window) with maxLengthBits=8 (256 raw lengths) would
	// make LookAhead dwarf the window; this must be rejected rather than
	// silently producing a broken prefill.
	_, err := newCodecParams(minIndexBits, maxLengthBits)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestCodecParams_BreakEvenZeroIsReachable(t *testing.T) {
	p, err := newCodecParams(minIndexBits, minLengthBits)
	require.NoError(t, err)
	require.Equal(t, uint(0), p.breakEven, "the firstEmission guard in CompressData is only exercised when BreakEven == 0")
}

func TestEncoderProfile_OptionsMatchPresets(t *testing.T) {
	require.Equal(t, &EncoderOptions{IndexBits: 8, LengthBits: 4}, ProfileTiny.Options())
	require.Equal(t, &EncoderOptions{IndexBits: defaultIndexBits, LengthBits: defaultLengthBits}, ProfileDefault.Options())
	require.Equal(t, &EncoderOptions{IndexBits: 12, LengthBits: 5}, ProfileWide.Options())

	// Unknown profile values fall back to ProfileDefault.
	require.Equal(t, ProfileDefault.Options(), EncoderProfile(99).Options())
}
