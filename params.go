package lzss

// codecParams holds the derived parameters for one (IndexBits, LengthBits)
// pair: everything about the format that is computed rather than chosen
// directly. All fields are unexported; callers only ever see an
// EncoderOptions/DecoderOptions or an EncoderProfile.
type codecParams struct {
	indexBits  uint // bits used to encode a window position
	lengthBits uint // bits used to encode an encoded match length

	w            uint // window size: 1 << indexBits
	rawLookAhead uint // number of distinct encodable match lengths: 1 << lengthBits
	breakEven    uint // (1 + indexBits + lengthBits) / 9
	lookAhead    uint // rawLookAhead + breakEven
	treeRoot     uint // sentinel root index: w
}

// newCodecParams derives window size, look-ahead and break-even from a
// chosen (indexBits, lengthBits) pair, keeping the dependent constants in
// lockstep with the two tunables.
func newCodecParams(indexBits, lengthBits int) (codecParams, error) {
	if indexBits < minIndexBits || indexBits > maxIndexBits ||
		lengthBits < minLengthBits || lengthBits > maxLengthBits {
		return codecParams{}, ErrInvalidOptions
	}

	p := codecParams{
		indexBits:  uint(indexBits),
		lengthBits: uint(lengthBits),
	}
	p.w = 1 << p.indexBits
	p.rawLookAhead = 1 << p.lengthBits
	p.breakEven = (1 + p.indexBits + p.lengthBits) / 9
	p.lookAhead = p.rawLookAhead + p.breakEven
	p.treeRoot = p.w

	// The window must comfortably outlive a full look-ahead plus the prefill
	// margin (the prefill phase writes up to LookAhead bytes unmodulated, at
	// indices 1..LookAhead);
	// a LengthBits large enough to make LookAhead approach W would break the
	// match engine rather than just waste memory, so reject it outright.
	if p.lookAhead*2 > p.w {
		return codecParams{}, ErrInvalidOptions
	}

	return p, nil
}

// resolveEncoderParams applies option defaults (nil opts, zero fields) and
// derives the working codecParams.
func resolveEncoderParams(opts *EncoderOptions) (codecParams, error) {
	if opts == nil {
		opts = DefaultEncoderOptions()
	}
	indexBits, lengthBits := opts.IndexBits, opts.LengthBits
	if indexBits == 0 {
		indexBits = defaultIndexBits
	}
	if lengthBits == 0 {
		lengthBits = defaultLengthBits
	}
	return newCodecParams(indexBits, lengthBits)
}

// EncoderProfile names a preset (IndexBits, LengthBits) pair for a common
// embedded memory budget. A profile's Options() is equivalent to hand-writing
// the same EncoderOptions.
type EncoderProfile int

const (
	// ProfileTiny uses an 256-byte window; smallest RAM footprint, shortest match reach.
	ProfileTiny EncoderProfile = iota
	// ProfileDefault is the standard default: 1 KiB window, matches up to 17 bytes.
	ProfileDefault
	// ProfileWide uses a 4 KiB window and a 5-bit length field for longer matches.
	ProfileWide
)

// profilePresets is a fixed array of tuning presets selected by a small integer.
var profilePresets = [...]struct {
	indexBits  int
	lengthBits int
}{
	ProfileTiny:    {indexBits: 8, lengthBits: 4},
	ProfileDefault: {indexBits: defaultIndexBits, lengthBits: defaultLengthBits},
	ProfileWide:    {indexBits: 12, lengthBits: 5},
}

// Options returns the EncoderOptions for this profile. Unknown profile values
// fall back to ProfileDefault.
func (p EncoderProfile) Options() *EncoderOptions {
	if p < 0 || int(p) >= len(profilePresets) {
		p = ProfileDefault
	}
	preset := profilePresets[p]
	return &EncoderOptions{IndexBits: preset.indexBits, LengthBits: preset.lengthBits}
}
