package khseg

import (
	"github.com/jamesainslie/go-khseg/internal/script"
)

// The rule engine encodes a small fixed set of orthographic constraints
// the frequency model cannot express. Rules only concatenate adjacent
// segments; they never modify bytes, so concatenation of the segment list
// is preserved. All matches are byte-exact; there is no regex here.
//
// Scan protocol: rules are tried in priority order at each index. A
// left-merge steps the index back one and a right-merge stays, so the
// merged segment is re-evaluated before the scan moves on.

const (
	// ka and da with the Ahsda sign form real words (ក៏, ដ៏) that rule 3
	// would otherwise tear out of position.
	segKa0 = "\xe1\x9e\x80\xe1\x9f\x8f" // ក៏
	segDa0 = "\xe1\x9e\x8a\xe1\x9f\x8f" // ដ៏

	segQa = "\xe1\x9e\xa2" // អ alone attaches forward
)

// consonantSign reports whether seg is exactly one base consonant followed
// by one of the given third sign bytes (all signs here are E1 9F xx).
func consonantSign(seg string, signs ...byte) bool {
	if len(seg) != 6 {
		return false
	}
	if seg[0] != 0xE1 || seg[1] != 0x9E || seg[2] < 0x80 || seg[2] > 0xA2 {
		return false
	}
	if seg[3] != 0xE1 || seg[4] != 0x9F {
		return false
	}
	for _, b := range signs {
		if seg[5] == b {
			return true
		}
	}
	return false
}

// startsWithSeparator reports whether the first codepoint of seg is a
// separator.
func startsWithSeparator(seg string) bool {
	if seg == "" {
		return false
	}
	cp, _ := script.Decode(seg, 0)
	return script.IsSeparator(cp)
}

// isInvalidSingle reports whether seg is a single Khmer codepoint that
// cannot stand alone: not a base, not a digit, not a separator.
func isInvalidSingle(seg string) bool {
	if seg == "" {
		return false
	}
	cp, w := script.Decode(seg, 0)
	if cp == 0 || w != len(seg) || !script.IsKhmer(cp) {
		return false
	}
	if script.IsBase(cp) || script.IsDigit(cp) || script.IsSeparator(cp) {
		return false
	}
	return true
}

// applyRules runs the hardcoded merge/keep rules over segs in place and
// returns the (possibly shorter) list.
func applyRules(segs []string) []string {
	i := 0
	for i < len(segs) {
		seg := segs[i]

		// Rule 1: preserve ក៏ and ដ៏ untouched.
		if seg == segKa0 || seg == segDa0 {
			i++
			continue
		}

		// Rule 2: orphan អ attaches to the following word.
		if seg == segQa && i+1 < len(segs) && !startsWithSeparator(segs[i+1]) {
			segs[i] = seg + segs[i+1]
			segs = append(segs[:i+1], segs[i+2:]...)
			continue
		}

		// Rule 3: consonant + Yuukaleapintu/Robat/Kakabat/Ahsda belongs to
		// the previous word.
		if consonantSign(seg, 0x8B, 0x8C, 0x8E, 0x8F) && i > 0 {
			segs[i-1] += seg
			segs = append(segs[:i], segs[i+1:]...)
			i--
			continue
		}

		// Rule 4: consonant + Samyok Sannya belongs to the next word.
		if consonantSign(seg, 0x90) && i+1 < len(segs) {
			segs[i] = seg + segs[i+1]
			segs = append(segs[:i+1], segs[i+2:]...)
			continue
		}

		// Rule 5: a single codepoint that cannot stand alone snaps onto
		// the previous word unless that word is a separator.
		if isInvalidSingle(seg) && i > 0 && !startsWithSeparator(segs[i-1]) {
			segs[i-1] += seg
			segs = append(segs[:i], segs[i+1:]...)
			i--
			continue
		}

		i++
	}
	return segs
}
