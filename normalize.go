package khseg

import (
	"sort"
	"strings"

	"github.com/jamesainslie/go-khseg/internal/script"
)

// Normalization reduces visual-order input to canonical storage order so
// that dictionary lookup can use plain byte equality. Two passes:
//
//  1. a linear pre-pass that strips U+200B and rewrites the composite
//     vowel sequences e+i -> oe and e+aa -> au,
//  2. a cluster pass that stably reorders the parts of each orthographic
//     cluster behind its base: subscripts first (Ro last among them), then
//     register shifters, dependent vowels, and signs.

const (
	zwsp        = 0x200B
	vowelE      = 0x17C1
	vowelII     = 0x17B8
	vowelAA     = 0x17B6
	vowelOE     = "ើ"
	vowelAU     = "ោ"
	roSubscript = 0x179A
)

// maxClusterParts bounds a single cluster; a cluster is flushed as soon as
// it holds maxClusterParts-1 parts so pathological input cannot grow the
// part buffer.
const maxClusterParts = 64

type partClass int

const (
	classBase partClass = iota + 1
	classCoeng
	classRegister
	classVowel
	classSign
)

func classify(cp rune) partClass {
	switch {
	case script.IsBase(cp):
		return classBase
	case cp == script.Coeng:
		return classCoeng
	case script.IsRegister(cp):
		return classRegister
	case script.IsDepVowel(cp):
		return classVowel
	case script.IsSign(cp):
		return classSign
	}
	return 0
}

type clusterPart struct {
	text  string // one codepoint, or COENG + consonant
	class partClass
	sub   rune // subscript consonant for coeng pairs, 0 otherwise
}

func (p clusterPart) priority() int {
	switch p.class {
	case classCoeng:
		if p.sub == roSubscript {
			return 20
		}
		return 10
	case classRegister:
		return 30
	case classVowel:
		return 40
	case classSign:
		return 50
	}
	return 100
}

// Normalize returns text in canonical storage order. It is pure and
// idempotent; the zero-width space U+200B never survives it.
func Normalize(text string) string {
	pre := prePass(text)

	var out strings.Builder
	out.Grow(len(pre))

	cluster := make([]clusterPart, 0, 16)
	flush := func() {
		if len(cluster) == 0 {
			return
		}
		if len(cluster) > 2 {
			rest := cluster[1:]
			sort.SliceStable(rest, func(a, b int) bool {
				return rest[a].priority() < rest[b].priority()
			})
		}
		for _, p := range cluster {
			out.WriteString(p.text)
		}
		cluster = cluster[:0]
	}

	n := len(pre)
	for i := 0; i < n; {
		cp, w := script.Decode(pre, i)
		cls := classify(cp)
		switch cls {
		case classBase:
			flush()
			cluster = append(cluster, clusterPart{text: pre[i : i+w], class: classBase})
			i += w
		case classCoeng:
			if i+w < n {
				sub, sw := script.Decode(pre, i+w)
				if script.IsConsonant(sub) {
					cluster = append(cluster, clusterPart{text: pre[i : i+w+sw], class: classCoeng, sub: sub})
					i += w + sw
					break
				}
			}
			// stray coeng, kept as its own part
			cluster = append(cluster, clusterPart{text: pre[i : i+w], class: classCoeng})
			i += w
		case classRegister, classVowel, classSign:
			if len(cluster) > 0 {
				cluster = append(cluster, clusterPart{text: pre[i : i+w], class: cls})
			} else {
				// isolated modifier, no cluster to join
				out.WriteString(pre[i : i+w])
			}
			i += w
		default:
			flush()
			out.WriteString(pre[i : i+w])
			i += w
		}
		if len(cluster) >= maxClusterParts-1 {
			flush()
		}
	}
	flush()

	return out.String()
}

// prePass strips U+200B and rewrites the two composite vowel sequences.
func prePass(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	n := len(text)
	for i := 0; i < n; {
		cp, w := script.Decode(text, i)
		if cp == zwsp {
			i += w
			continue
		}
		if cp == vowelE && i+w < n {
			next, nw := script.Decode(text, i+w)
			if next == vowelII {
				b.WriteString(vowelOE)
				i += w + nw
				continue
			}
			if next == vowelAA {
				b.WriteString(vowelAU)
				i += w + nw
				continue
			}
		}
		b.WriteString(text[i : i+w])
		i += w
	}
	return b.String()
}
