//go:build ignore

// Count dictionary-word frequencies over a cleaned corpus using an
// existing baked dictionary, emitting the word -> count JSON consumed by
// khseg-build. Bootstrapping: build a dictionary without frequencies
// first, count with it, then rebuild with the counts.
// Usage: go run ./scripts/count-frequencies.go -dict khmer_dictionary.kdict corpus.txt > khmer_word_frequencies.json
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	khseg "github.com/jamesainslie/go-khseg"
)

func main() {
	dictPath := flag.String("dict", "khmer_dictionary.kdict", "Baked dictionary used for tokenization")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: count-frequencies.go [-dict DICT] CORPUS...")
		os.Exit(1)
	}

	seg, err := khseg.New(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer seg.Close()

	counts := make(map[string]int64)
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			for _, tok := range seg.SegmentTokens(line) {
				if seg.Dict().Contains(tok) {
					counts[tok]++
				}
			}
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		f.Close()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")
	if err := enc.Encode(counts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
