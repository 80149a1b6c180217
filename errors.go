// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/ecucodec/lzss

package lzss

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrEmptyInput is returned when the input slice is empty where a non-empty one is required.
	ErrEmptyInput = errors.New("empty input")
	// ErrOutputOverrun is returned when the decoder would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrUnexpectedEOF is returned when the stream ends before the terminator.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrOptionsRequired is returned when Decompress is called with nil options (MaxOutputLen is required).
	ErrOptionsRequired = errors.New("options required: MaxOutputLen must be set")
	// ErrInvalidOptions is returned when IndexBits/LengthBits are out of the supported range.
	ErrInvalidOptions = errors.New("invalid encoder/decoder options")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrInternal is returned by the encoder when a match it is about to emit falls outside the
	// format's bounds (length above LookAhead, or position 0). The decoder does not return it.
	// Callers can use errors.Is(err, lzss.ErrInternal).
	ErrInternal = errors.New("internal lzss invariant violation")
)
