// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ecucodec
// Source: github.com/ecucodec/lzss

package lzss

import "io"

// Compress compresses src with the LZSS format described in doc.go. opts
// may be nil (uses DefaultEncoderOptions). Returns the bit-packed output and
// the accumulated EncodeStats.
func Compress(src []byte, opts *EncoderOptions) ([]byte, EncodeStats, error) {
	p, err := resolveEncoderParams(opts)
	if err != nil {
		return nil, EncodeStats{}, err
	}

	e := acquireEncoder(p)
	defer releaseEncoder(e)

	in := NewSliceInputSource(src)
	out := NewByteBitSink()

	stats, err := e.CompressData(in, out)
	if err != nil {
		return nil, stats, err
	}
	return out.Bytes(), stats, nil
}

// CompressStream compresses bytes read from r and streams the bit-packed
// output to w, without buffering either side in full. Read errors other
// than io.EOF and write errors both abort the stream before the terminator
// is written and are returned to the caller.
func CompressStream(r io.Reader, w io.Writer, opts *EncoderOptions) (EncodeStats, error) {
	p, err := resolveEncoderParams(opts)
	if err != nil {
		return EncodeStats{}, err
	}

	e := acquireEncoder(p)
	defer releaseEncoder(e)

	in := NewReaderInputSource(r)
	out := NewWriterBitSink(w)

	stats, err := e.CompressData(in, out)
	if err != nil {
		return stats, err
	}
	return stats, out.Flush()
}
