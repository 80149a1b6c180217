// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/ecucodec/lzss

package lzss

// EncoderOptions configures compression. IndexBits/LengthBits determine the
// window size, the maximum match length, and the wire format; both must
// match between the encoder that produced a stream and any decoder reading
// it back. Zero values mean "use the default".
type EncoderOptions struct {
	// IndexBits is the number of bits used to encode a window position.
	// Window size is 1<<IndexBits. Default 10 (1 KiB window).
	IndexBits int
	// LengthBits is the number of bits used to encode a biased match length.
	// Default 4.
	LengthBits int
}

// DefaultEncoderOptions returns options for the default (IndexBits=10, LengthBits=4) parameters.
func DefaultEncoderOptions() *EncoderOptions {
	return &EncoderOptions{IndexBits: defaultIndexBits, LengthBits: defaultLengthBits}
}

// DecoderOptions configures decompression.
// MaxOutputLen is required (expected decompressed size, used for buffer allocation and
// as an overrun bound); IndexBits/LengthBits must match the encoder that produced the
// stream. MaxInputSize bounds the input accepted by DecompressFromReader.
type DecoderOptions struct {
	// MaxOutputLen bounds the decompressed size (required).
	MaxOutputLen int
	// IndexBits must match the encoder. Default 10 if zero.
	IndexBits int
	// LengthBits must match the encoder. Default 4 if zero.
	LengthBits int
	// MaxInputSize is the largest input DecompressFromReader accepts (0 = no limit). The
	// reader is still read to the end; a longer input is then rejected with ErrInputTooLarge.
	MaxInputSize int
}

// DefaultDecoderOptions returns options with the given output bound, default
// IndexBits/LengthBits, and no input limit.
func DefaultDecoderOptions(maxOutputLen int) *DecoderOptions {
	return &DecoderOptions{MaxOutputLen: maxOutputLen, IndexBits: defaultIndexBits, LengthBits: defaultLengthBits}
}
