package kdict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jamesainslie/go-khseg/internal/script"
)

const (
	coengStr = "្"
	lekAttak = "៷" // Khmer symbol filtered from word lists
	qaaOr    = "ឬ" // ឬ, the "or" conjunction
)

// ReadWordList reads a plain UTF-8 word list, one word per line, stripping
// CR/LF and skipping empty lines. It applies the standard filters:
//
//   - single-codepoint words outside the base range are dropped,
//   - words beginning with COENG are dropped,
//   - words containing U+17F7 are dropped,
//   - compound words built around the conjunction U+17AC whose remaining
//     parts are all themselves list words are dropped, forcing the engine
//     to split at the conjunction.
func ReadWordList(r io.Reader) ([]string, error) {
	set := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		w := strings.TrimRight(sc.Text(), "\r\n")
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if cp, width := script.Decode(w, 0); width == len(w) && !script.IsBase(cp) {
			continue
		}
		if strings.HasPrefix(w, coengStr) {
			continue
		}
		if strings.Contains(w, lekAttak) {
			continue
		}
		set[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	dropOrCompounds(set)

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	return words, nil
}

// LoadWordList reads a word list file via ReadWordList.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return ReadWordList(f)
}

// dropOrCompounds removes words containing the ឬ conjunction when every
// other part of the word is itself in the set.
func dropOrCompounds(set map[string]struct{}) {
	var remove []string
	for w := range set {
		if !strings.Contains(w, qaaOr) || len([]rune(w)) <= 1 {
			continue
		}
		switch {
		case strings.HasPrefix(w, qaaOr):
			if _, ok := set[strings.TrimPrefix(w, qaaOr)]; ok {
				remove = append(remove, w)
			}
		case strings.HasSuffix(w, qaaOr):
			if _, ok := set[strings.TrimSuffix(w, qaaOr)]; ok {
				remove = append(remove, w)
			}
		default:
			all := true
			for _, p := range strings.Split(w, qaaOr) {
				if p == "" {
					continue
				}
				if _, ok := set[p]; !ok {
					all = false
					break
				}
			}
			if all {
				remove = append(remove, w)
			}
		}
	}
	for _, w := range remove {
		delete(set, w)
	}
}
