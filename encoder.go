// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/ecucodec/lzss

package lzss

// EncodeStats carries counters accumulated during CompressData, purely for
// introspection; it changes no encoding decision.
type EncodeStats struct {
	LiteralCount int // number of literal records emitted
	MatchCount   int // number of match records emitted (excluding the terminator)
	LiteralBytes int // total bytes carried by literal records
	MatchedBytes int // total bytes covered by match records
}

// Encoder owns the window and tree for one compression, so there is no
// package-level mutable state and no re-entrancy hazard between concurrent
// compressions. Use the package-level pool (encoder_pool.go) to avoid
// re-allocating its backing arrays across runs.
type Encoder struct {
	params codecParams
	win    window
	tr     tree
}

// NewEncoder returns an Encoder configured per opts. opts may be nil (uses
// DefaultEncoderOptions).
func NewEncoder(opts *EncoderOptions) (*Encoder, error) {
	p, err := resolveEncoderParams(opts)
	if err != nil {
		return nil, err
	}

	e := &Encoder{}
	e.reset(p)
	return e, nil
}

// reset (re)sizes the window and tree for p, reusing existing backing
// arrays where possible.
func (e *Encoder) reset(p codecParams) {
	e.params = p
	e.win.resize(p.w)
	e.tr.resize(p.w)
}

// CompressData runs the full fill/encode/advance loop reading from in and
// writing bit records to out. Returns accumulated statistics, and
// ErrInternal if a match ever falls outside the format's legal bounds:
// unreachable under correct operation, but checked rather than trusted
// since a broken tree would otherwise silently corrupt the output stream.
//
// If in or out implements Err() error (ReaderInputSource and WriterBitSink
// both do), the driver polls it between records and aborts on the first
// failure without writing the terminator.
//
// Phase A prefills the look-ahead, Phase B is the main literal-vs-match
// loop, Phase C emits the end-of-stream terminator.
func (e *Encoder) CompressData(in InputSource, out BitSink) (EncodeStats, error) {
	var stats EncodeStats

	inErr, _ := in.(errTracker)
	outErr, _ := out.(errTracker)

	lookAhead := e.params.lookAhead
	breakEven := e.params.breakEven
	indexBits := e.params.indexBits
	lengthBits := e.params.lengthBits

	winPos := uint(1)
	aheadBytes := uint(0)
	eos := false

	// Phase A — prefill look-ahead.
	for aheadBytes < lookAhead && !eos {
		c := in.ReadByte()
		if c == endOfInput {
			eos = true
			break
		}
		e.win.setDirect(winPos+aheadBytes, byte(c))
		aheadBytes++
	}

	e.tr.initTree(uint32(winPos))

	var matchLen uint
	var matchPos uint32
	firstEmission := true

	// Phase B — main loop.
	for aheadBytes > 0 {
		if matchLen > aheadBytes {
			matchLen = aheadBytes
		}

		var replCnt uint
		// The first emission happens before any addNode has run
		// (matchLen/matchPos are still zero); with BreakEven==0 that would
		// otherwise look like a zero-length match at position 0, which is
		// indistinguishable from the terminator. Force a literal.
		if matchLen <= breakEven || firstEmission {
			replCnt = 1
			out.WriteBit(1)
			out.WriteBits(uint32(e.win.at(winPos)), 8)
			stats.LiteralCount++
			stats.LiteralBytes++
		} else {
			if matchLen > lookAhead || matchPos == unused {
				return stats, ErrInternal
			}
			out.WriteBit(0)
			out.WriteBits(uint32(matchPos), indexBits)
			out.WriteBits(uint32(matchLen-(breakEven+1)), lengthBits)
			replCnt = matchLen
			stats.MatchCount++
			stats.MatchedBytes += int(matchLen)
		}
		firstEmission = false

		for i := uint(0); i < replCnt; i++ {
			e.tr.deleteNode(uint32((winPos + lookAhead) & e.win.mask))

			c := in.ReadByte()
			if c == endOfInput {
				aheadBytes--
			} else {
				e.win.set(winPos+lookAhead, byte(c))
			}
			winPos = (winPos + 1) & e.win.mask

			if aheadBytes != 0 {
				matchLen, matchPos = e.addNode(uint32(winPos))
			}
		}

		if err := streamErr(inErr, outErr); err != nil {
			return stats, err
		}
	}

	if err := streamErr(inErr, outErr); err != nil {
		return stats, err
	}

	// Phase C — end-of-stream terminator.
	out.WriteBit(0)
	out.WriteBits(endOfStream, indexBits)

	return stats, nil
}

// streamErr surfaces the first sticky adapter error, input side first: a
// read failure means the records already emitted may cover bytes the caller
// never intended to commit, so it takes precedence over a write failure.
func streamErr(in, out errTracker) error {
	if in != nil {
		if err := in.Err(); err != nil {
			return err
		}
	}
	if out != nil {
		if err := out.Err(); err != nil {
			return err
		}
	}
	return nil
}
