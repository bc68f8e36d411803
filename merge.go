package khseg

import (
	"strings"

	"github.com/jamesainslie/go-khseg/internal/script"
)

// mergeUnknowns coalesces runs of adjacent segments the dictionary does
// not recognize into single segments, so an out-of-vocabulary name comes
// back as one token instead of a cluster per token. Order and
// concatenation are preserved.
func (s *Segmenter) mergeUnknowns(segs []string) []string {
	out := segs[:0]
	var unknown strings.Builder

	for _, seg := range segs {
		if s.isKnown(seg) {
			if unknown.Len() > 0 {
				out = append(out, unknown.String())
				unknown.Reset()
			}
			out = append(out, seg)
			continue
		}
		unknown.WriteString(seg)
	}
	if unknown.Len() > 0 {
		out = append(out, unknown.String())
	}
	return out
}

// isKnown classifies a segment as recognized. A segment is known when its
// first codepoint is a separator and the segment is short, when it starts
// with a digit, when its exact bytes are a dictionary word, when it is a
// single stand-alone Khmer base, or when it looks like a dotted acronym.
func (s *Segmenter) isKnown(seg string) bool {
	if seg == "" {
		return false
	}
	cp, w := script.Decode(seg, 0)
	if len(seg) <= 4 && script.IsSeparator(cp) {
		return true
	}
	if script.IsDigit(cp) {
		return true
	}
	if s.dict.Contains(seg) {
		return true
	}
	if w == len(seg) && script.IsBase(cp) {
		return true
	}
	if len(seg) >= 2 && strings.IndexByte(seg, '.') >= 0 {
		return true
	}
	return false
}
