// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ecucodec
// Source: github.com/ecucodec/lzss

package lzss

import (
	"bufio"
	"io"
)

// endOfInput is returned by InputSource.ReadByte once the source is
// exhausted. It is representable because the result is wider than a byte
//; ReadByte is idempotent after it is first returned.
const endOfInput = -1

// InputSource supplies bytes one at a time to the encoder. ReadByte returns
// a value in 0..255, or endOfInput once exhausted. Calling it again after
// endOfInput continues to return endOfInput.
type InputSource interface {
	ReadByte() int
}

// sliceInputSource reads sequentially from an in-memory byte slice.
type sliceInputSource struct {
	data []byte
	pos  int
}

// NewSliceInputSource returns an InputSource that reads src sequentially.
func NewSliceInputSource(src []byte) InputSource {
	return &sliceInputSource{data: src}
}

func (s *sliceInputSource) ReadByte() int {
	if s.pos >= len(s.data) {
		return endOfInput
	}
	b := s.data[s.pos]
	s.pos++
	return int(b)
}

// ReaderInputSource adapts an io.Reader, reading one byte at a time. A
// read error other than io.EOF is remembered and surfaced via Err; the
// encoder itself only ever observes endOfInput.
type ReaderInputSource struct {
	r   io.ByteReader
	err error
}

// NewReaderInputSource adapts r as an InputSource. If r does not already
// implement io.ByteReader it is wrapped with bufio.
func NewReaderInputSource(r io.Reader) *ReaderInputSource {
	if br, ok := r.(io.ByteReader); ok {
		return &ReaderInputSource{r: br}
	}
	return &ReaderInputSource{r: bufio.NewReader(r)}
}

func (s *ReaderInputSource) ReadByte() int {
	if s.err != nil {
		return endOfInput
	}
	b, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return endOfInput
	}
	return int(b)
}

// Err returns the first non-EOF read error encountered, if any.
func (s *ReaderInputSource) Err() error {
	return s.err
}
