// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/ecucodec/lzss

/*
Package lzss implements a bounded-memory, deterministic LZSS byte compressor
aimed at embedded/ECU targets: a fixed-size sliding window, a binary search
tree match finder, and a bit-packed wire format (no byte-aligned framing
beyond a terminator).

The encoder maintains a single match class (unlike LZO's M1–M4): every
record is either a literal byte or a window position + length back-reference.
The stream ends with a terminator record (position 0, no length field).

# Compress

Options may be nil (defaults to IndexBits=10, LengthBits=4, a 1 KiB window):

	out, stats, err := lzss.Compress(data, nil)
	out, stats, err := lzss.Compress(data, &lzss.EncoderOptions{IndexBits: 12, LengthBits: 5})

Profiles bundle common (IndexBits, LengthBits) pairs the way compression
levels bundle tuning knobs in other codecs:

	out, stats, err := lzss.Compress(data, lzss.ProfileWide.Options())

Streaming, for inputs that should not be buffered in full (read and write
errors abort the stream before the terminator):

	stats, err := lzss.CompressStream(r, w, nil)

# Decompress

MaxOutputLen is required (use DecoderOptions) and must match the IndexBits/
LengthBits the stream was encoded with:

	out, err := lzss.Decompress(compressed, lzss.DefaultDecoderOptions(expectedLen))

From an io.Reader:

	out, err := lzss.DecompressFromReader(r, lzss.DefaultDecoderOptions(expectedLen))
*/
package lzss
