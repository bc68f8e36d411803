package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	khseg "github.com/jamesainslie/go-khseg"
	"github.com/jamesainslie/go-khseg/internal/bench"
)

func main() {
	var (
		dictPath = flag.String("dict", "khmer_dictionary.kdict", "Path to baked dictionary file")
		dicts    = flag.String("dicts", "", "Comma-separated dictionary paths for comparison")
		inputs   = flag.String("input", "", "Comma-separated corpus files (required)")
		limit    = flag.Int("limit", 0, "Limit number of lines (0 = no limit)")
		threads  = flag.Int("threads", runtime.NumCPU(), "Workers for the concurrent pass")
		noNorm   = flag.Bool("no-norm", false, "Disable input normalization")
	)
	flag.Parse()

	if *inputs == "" {
		fmt.Fprintln(os.Stderr, "error: -input required")
		flag.Usage()
		os.Exit(1)
	}

	corpus, err := bench.LoadLines(strings.Split(*inputs, ","), *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d lines (%.2f MB)\n\n", len(corpus.Lines), float64(corpus.Bytes)/(1024*1024))

	ctx := context.Background()
	opts := []khseg.Option{khseg.WithNormalization(!*noNorm)}

	if *dicts != "" {
		runComparison(ctx, strings.Split(*dicts, ","), corpus, *threads, opts)
		return
	}
	runSingle(ctx, *dictPath, corpus, *threads, opts)
}

func runSingle(ctx context.Context, dictPath string, corpus *bench.Corpus, threads int, opts []khseg.Option) {
	seg, err := khseg.New(dictPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating segmenter: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = seg.Close() }()

	sequential, err := bench.Run(ctx, seg, corpus, 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error in sequential pass: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(sequential)

	if threads > 1 {
		concurrent, err := bench.Run(ctx, seg, corpus, threads)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error in concurrent pass: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(concurrent)
		fmt.Printf("Speedup: %.2fx\n", concurrent.Speedup(sequential))
	}
}

func runComparison(ctx context.Context, dictPaths []string, corpus *bench.Corpus, threads int, opts []khseg.Option) {
	fmt.Println("Dictionary Comparison")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-36s %-10s %-10s\n", "Dictionary", "lines/s", "MB/s")

	for _, path := range dictPaths {
		seg, err := khseg.New(path, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error with %s: %v\n", path, err)
			continue
		}
		r, err := bench.Run(ctx, seg, corpus, threads)
		_ = seg.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error with %s: %v\n", path, err)
			continue
		}
		fmt.Printf("%-36s %-10.0f %-10.2f\n", path, r.LinesPerSec(), r.MBPerSec())
	}
}
