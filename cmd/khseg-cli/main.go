package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	khseg "github.com/jamesainslie/go-khseg"
)

func main() {
	dictPath := flag.String("dict", "khmer_dictionary.kdict", "Path to baked dictionary file")
	inputs := flag.String("input", "", "Comma-separated input files; default reads args or stdin")
	limit := flag.Int("limit", 0, "Limit number of lines from input files (0 = no limit)")
	sep := flag.String("sep", " | ", "Token separator for display output")
	raw := flag.Bool("raw", false, "Emit tokens joined with U+200B instead of the display separator")
	noNorm := flag.Bool("no-norm", false, "Disable input normalization")
	noRepair := flag.Bool("no-repair", false, "Disable repair mode for malformed input")
	noAcronyms := flag.Bool("no-acronyms", false, "Disable acronym detection")
	noMerge := flag.Bool("no-merge", false, "Disable merging of unknown segments")

	flag.Parse()

	opts := []khseg.Option{
		khseg.WithNormalization(!*noNorm),
		khseg.WithRepairMode(!*noRepair),
		khseg.WithAcronymDetection(!*noAcronyms),
		khseg.WithUnknownMerging(!*noMerge),
	}
	if !*raw {
		opts = append(opts, khseg.WithSeparator(*sep))
	}

	seg, err := khseg.New(*dictPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating segmenter: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = seg.Close() }() // Cleanup error ignored in CLI

	if *inputs != "" {
		if err := segmentFiles(seg, strings.Split(*inputs, ","), *limit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		text := strings.Join(flag.Args(), " ")
		fmt.Println(seg.Segment(text))
		return
	}

	// No arguments: segment stdin line by line.
	if err := segmentLines(seg, os.Stdin, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func segmentFiles(seg *khseg.Segmenter, paths []string, limit int) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = segmentLines(seg, f, limit)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func segmentLines(seg *khseg.Segmenter, r io.Reader, limit int) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for n := 0; sc.Scan(); {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(out, seg.Segment(line))
		n++
		if limit > 0 && n >= limit {
			break
		}
	}
	return sc.Err()
}
