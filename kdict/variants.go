package kdict

import "strings"

const (
	coengTa = "្ត"
	coengDa = "្ដ"
	roCp    = 'រ'
	coengCp = '្'
)

// Variants returns the orthographic variants of word that are stored at the
// same cost at build time so that runtime lookup stays a single exact-match
// probe:
//
//   - Coeng-Ta and Coeng-Da subscripts swapped for each other,
//   - adjacent subscript pairs with Coeng-Ro reordered (Ro first vs. Ro
//     second). Only directly adjacent two-subscript pairs are rewritten;
//     longer subscript stacks are left alone.
//
// The returned slice excludes word itself and may be empty.
func Variants(word string) []string {
	base := map[string]struct{}{word: {}}
	if v := strings.ReplaceAll(word, coengTa, coengDa); v != word {
		base[v] = struct{}{}
	}
	if v := strings.ReplaceAll(word, coengDa, coengTa); v != word {
		base[v] = struct{}{}
	}

	out := make(map[string]struct{}, len(base)*2)
	for w := range base {
		out[w] = struct{}{}
		if s := swapCoengRo(w); s != w {
			out[s] = struct{}{}
		}
	}

	delete(out, word)
	vs := make([]string, 0, len(out))
	for v := range out {
		vs = append(vs, v)
	}
	return vs
}

// swapCoengRo rewrites Coeng+Ro adjacent to Coeng+other (in either order)
// so both subscript orderings resolve to the same dictionary entry.
func swapCoengRo(word string) string {
	runes := []rune(word)
	n := len(runes)
	if n < 4 {
		return word
	}

	out := make([]rune, 0, n)
	changed := false
	for i := 0; i < n; {
		if i+3 < n && runes[i] == coengCp && runes[i+2] == coengCp {
			a, b := runes[i+1], runes[i+3]
			if (a == roCp) != (b == roCp) {
				out = append(out, runes[i+2], runes[i+3], runes[i], runes[i+1])
				i += 4
				changed = true
				continue
			}
		}
		out = append(out, runes[i])
		i++
	}
	if !changed {
		return word
	}
	return string(out)
}
