package khseg

import (
	"github.com/jamesainslie/go-khseg/internal/script"
	"github.com/jamesainslie/go-khseg/kdict"
)

// The engine is a cost-minimizing dynamic program over byte positions of
// the normalized text. dp[i] holds the cheapest known cost of segmenting
// the first i bytes and the start of the segment that achieves it.
// Relaxation is strictly-less-than, so ties keep the earliest proposal and
// the output is deterministic.

// unreachable marks dp slots no transition has relaxed yet. A large finite
// sentinel keeps float32 arithmetic away from actual infinities.
const unreachable float32 = 1e9

// repairPenalty is added on top of the unknown cost when consuming a
// single malformed codepoint in repair mode.
const repairPenalty = 50.0

// numberCost and separatorCost are fixed transition costs; numbers and
// separators are cheaper than any dictionary word so the engine never
// splits a digit run to reach one.
const (
	numberCost    float32 = 1.0
	separatorCost float32 = 0.1
)

// invalidSinglePenalty is added when an unknown cluster is one Khmer
// codepoint that cannot stand alone.
const invalidSinglePenalty = 10.0

type dpState struct {
	cost float32
	prev int32
}

// coengBytes is the UTF-8 encoding of U+17D2.
const coengBytes = "\xe1\x9f\x92"

// viterbi runs the forward pass and backtracking over normalized text and
// returns consecutive byte slices covering it exactly. The fallback for an
// unreachable end position is the whole text as a single segment.
func (s *Segmenter) viterbi(text string) []string {
	n := len(text)
	if n == 0 {
		return nil
	}

	dp := make([]dpState, n+1)
	for i := range dp {
		dp[i] = dpState{cost: unreachable, prev: -1}
	}
	dp[0].cost = 0

	dict := s.dict
	maxWordLen := dict.MaxWordLen()
	defaultCost := dict.DefaultCost()
	unknownCost := dict.UnknownCost()

	relax := func(from, to int, cost float32) {
		if c := dp[from].cost + cost; c < dp[to].cost {
			dp[to].cost = c
			dp[to].prev = int32(from)
		}
	}

	for i := 0; i < n; {
		cp, charLen := script.Decode(text, i)

		if dp[i].cost >= unreachable {
			i += charLen
			continue
		}

		// Repair transitions for malformed input: an orphaned subscript
		// marker before a consonant, or an isolated dependent vowel.
		// Either forces a single high-penalty step past the offending
		// codepoint so the DP cannot stall.
		if s.cfg.repairMode {
			forceRepair := script.IsDepVowel(cp)
			if !forceRepair && i >= len(coengBytes) && script.IsConsonant(cp) {
				forceRepair = text[i-len(coengBytes):i] == coengBytes
			}
			if forceRepair {
				relax(i, i+charLen, unknownCost+repairPenalty)
				i += charLen
				continue
			}
		}

		// Number and currency groups. A currency symbol directly before a
		// digit suppresses the separator transition so the symbol falls
		// through to the unknown step and stays its own token.
		currencyStart := false
		if script.IsCurrency(cp) && i+charLen < n {
			next, _ := script.Decode(text, i+charLen)
			currencyStart = script.IsDigit(next)
		}
		if script.IsDigit(cp) || currencyStart {
			if runLen := script.NumberLen(text, i); runLen > 0 {
				relax(i, i+runLen, numberCost)
			}
		} else if script.IsSeparator(cp) {
			relax(i, i+charLen, separatorCost)
		}

		// Acronym sequences: cluster + '.' repetitions.
		if s.cfg.acronyms && script.IsAcronymStart(text, i) {
			relax(i, i+script.AcronymLen(text, i), defaultCost)
		}

		// Dictionary matches with incremental hashing: every candidate
		// prefix reuses the hash state of the one before it.
		endLimit := i + maxWordLen
		if endLimit > n {
			endLimit = n
		}
		h := kdict.HashSeed
		for j := i; j < endLimit; {
			_, w := script.Decode(text, j)
			for k := 0; k < w; k++ {
				h = kdict.HashByte(h, text[j+k])
			}
			j += w
			if cost, ok := dict.LookupPrefix(h, text, i, j); ok {
				if !s.cfg.frequencyCosts {
					cost = defaultCost
				}
				relax(i, j, cost)
			}
		}

		// Unknown cluster fallback.
		clusterLen := charLen
		isKhmer := script.IsKhmer(cp)
		if isKhmer {
			clusterLen = script.ClusterLen(text, i)
		}
		cost := unknownCost
		if isKhmer && clusterLen == charLen && !script.IsBase(cp) {
			cost += invalidSinglePenalty
		}
		relax(i, i+clusterLen, cost)

		i += charLen
	}

	if dp[n].prev < 0 {
		return []string{text}
	}

	count := 0
	for curr := n; curr > 0; curr = int(dp[curr].prev) {
		count++
	}
	segs := make([]string, count)
	for curr := n; curr > 0; curr = int(dp[curr].prev) {
		count--
		segs[count] = text[dp[curr].prev:curr]
	}
	return segs
}
