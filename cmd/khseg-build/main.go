// khseg-build compiles a baked dictionary blob from a plain word list and
// a frequency source. This is the offline half of the system; the runtime
// core only ever reads the finished blob.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jamesainslie/go-khseg/kdict"
)

func main() {
	var (
		wordsPath  = flag.String("words", "khmer_dictionary_words.txt", "Plain word list, one word per line")
		freqJSON   = flag.String("freq-json", "", "Frequency JSON file (word -> raw count)")
		freqBin    = flag.String("freq-bin", "", "Legacy KLIB frequency file")
		outPath    = flag.String("out", "khmer_dictionary.kdict", "Output dictionary path")
		noVariants = flag.Bool("no-variants", false, "Skip Ta/Da and Ro-subscript variant generation")
		noFreq     = flag.Bool("no-frequency-costs", false, "Store the default cost for every word")
	)
	flag.Parse()

	words, err := kdict.LoadWordList(*wordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading word list: %v\n", err)
		os.Exit(1)
	}

	model := kdict.CostModel{DefaultCost: 10.0, UnknownCost: 20.0}
	switch {
	case *freqJSON != "":
		counts, err := kdict.LoadCountsJSON(*freqJSON)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading frequencies: %v\n", err)
			os.Exit(1)
		}
		model = kdict.CostsFromCounts(counts)
	case *freqBin != "":
		model, err = kdict.LoadKLIB(*freqBin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading frequencies: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "no frequency source given; every word gets the default cost")
	}

	b := kdict.NewBuilder(model.DefaultCost, model.UnknownCost)
	for _, w := range words {
		cost, ok := model.Costs[w]
		if !ok || *noFreq {
			cost = model.DefaultCost
		}
		b.Add(w, cost)
		if !*noVariants {
			b.AddVariants(w, cost)
		}
	}

	if err := b.WriteFile(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error writing dictionary: %v\n", err)
		os.Exit(1)
	}

	info, err := os.Stat(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Compiled %d words to %s (%.2f KB)\n", b.Len(), *outPath, float64(info.Size())/1024)
}
