// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ecucodec
// Source: github.com/ecucodec/lzss

package lzss

import (
	"bufio"
	"io"
)

// BitSink accepts single-bit and multi-bit writes, packing MSB-first. The
// sink is responsible for byte alignment and final flush; the core never
// inspects byte boundaries. A sink whose backing store can fail
// additionally implements Err() error; the driver polls it between records
// and aborts without writing the terminator.
type BitSink interface {
	// WriteBit writes a single bit (0 or 1).
	WriteBit(b uint8)
	// WriteBits writes the low k bits of v, most-significant-bit first, for
	// k in 1..32.
	WriteBits(v uint32, k uint)
}

// errTracker is the optional interface stream adapters implement to surface
// deferred I/O errors. ReaderInputSource and WriterBitSink both do.
type errTracker interface {
	Err() error
}

// ByteBitSink is the in-memory BitSink: it packs bits MSB-first into a
// []byte, flushing a partial trailing byte with zero bits once Bytes is
// called. It cannot fail, so it carries no Err.
type ByteBitSink struct {
	out     []byte
	cur     byte
	curBits uint // number of bits already placed in cur, 0..7
}

// NewByteBitSink returns a BitSink writing into a fresh internal buffer.
func NewByteBitSink() *ByteBitSink {
	return &ByteBitSink{}
}

func (s *ByteBitSink) WriteBit(b uint8) {
	s.cur = s.cur<<1 | (b & 1)
	s.curBits++
	if s.curBits == 8 {
		s.out = append(s.out, s.cur)
		s.cur = 0
		s.curBits = 0
	}
}

func (s *ByteBitSink) WriteBits(v uint32, k uint) {
	v = lowBits(v, k)
	for i := int(k) - 1; i >= 0; i-- {
		s.WriteBit(uint8(v>>uint(i)) & 1)
	}
}

// Bytes flushes any partial trailing byte (padded with zero bits in the low
// positions) and returns the packed output. Safe to call more than once.
func (s *ByteBitSink) Bytes() []byte {
	if s.curBits > 0 {
		s.out = append(s.out, s.cur<<(8-s.curBits))
		s.cur = 0
		s.curBits = 0
	}
	return s.out
}

// Reset clears the sink for reuse, keeping the backing buffer.
func (s *ByteBitSink) Reset() {
	s.out = s.out[:0]
	s.cur = 0
	s.curBits = 0
}

// WriterBitSink packs bits MSB-first and streams completed bytes to an
// io.Writer through a bufio.Writer. Write errors are sticky: after the
// first failure every WriteBit/WriteBits call is a no-op, and the driver
// picks the error up via Err between records.
type WriterBitSink struct {
	bw      *bufio.Writer
	cur     byte
	curBits uint
	err     error
}

// NewWriterBitSink returns a BitSink streaming packed bytes to w.
func NewWriterBitSink(w io.Writer) *WriterBitSink {
	return &WriterBitSink{bw: bufio.NewWriter(w)}
}

func (s *WriterBitSink) WriteBit(b uint8) {
	if s.err != nil {
		return
	}
	s.cur = s.cur<<1 | (b & 1)
	s.curBits++
	if s.curBits == 8 {
		s.err = s.bw.WriteByte(s.cur)
		s.cur = 0
		s.curBits = 0
	}
}

func (s *WriterBitSink) WriteBits(v uint32, k uint) {
	v = lowBits(v, k)
	for i := int(k) - 1; i >= 0; i-- {
		s.WriteBit(uint8(v>>uint(i)) & 1)
	}
}

// Err returns the first write error encountered, if any.
func (s *WriterBitSink) Err() error {
	return s.err
}

// Flush pads any partial trailing byte with zero bits and flushes the
// underlying writer. Returns the sticky write error if one occurred.
func (s *WriterBitSink) Flush() error {
	if s.err == nil && s.curBits > 0 {
		s.err = s.bw.WriteByte(s.cur << (8 - s.curBits))
		s.cur = 0
		s.curBits = 0
	}
	if s.err != nil {
		return s.err
	}
	s.err = s.bw.Flush()
	return s.err
}
