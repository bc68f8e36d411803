//go:build ignore

// Clean raw corpus dumps into one-sentence-per-line input for frequency
// counting: strips zero-width characters, drops lines with no Khmer
// content, and splits on the Khmer full stop.
// Usage: go run ./scripts/clean-corpus.go input.txt > corpus.txt
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: clean-corpus.go INPUT...")
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	replacer := strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "")

	for _, path := range os.Args[1:] {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for sc.Scan() {
			line := replacer.Replace(strings.TrimSpace(sc.Text()))
			if line == "" {
				continue
			}
			// Split on the Khmer full stop so each output line is one
			// sentence-ish unit.
			for _, part := range strings.Split(line, "។") {
				part = strings.TrimSpace(part)
				if part == "" || !hasKhmer(part) {
					continue
				}
				fmt.Fprintln(out, part)
			}
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
			os.Exit(1)
		}
		f.Close()
	}
}

func hasKhmer(s string) bool {
	for _, r := range s {
		if r >= 0x1780 && r <= 0x17FF {
			return true
		}
	}
	return false
}
