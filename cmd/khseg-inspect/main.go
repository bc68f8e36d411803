// khseg-inspect prints the header of a baked dictionary blob, and
// optionally its stored words, for debugging the offline pipeline.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jamesainslie/go-khseg/kdict"
)

func main() {
	dictPath := flag.String("dict", "khmer_dictionary.kdict", "Path to baked dictionary file")
	words := flag.Bool("words", false, "Also dump every stored word with its cost")
	lookup := flag.String("lookup", "", "Look up a single word and print its cost")
	flag.Parse()

	d, err := kdict.Load(*dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = d.Close() }()

	fmt.Printf("Num Entries: %d\n", d.Len())
	fmt.Printf("Table Size: %d\n", d.TableSize())
	fmt.Printf("Default Cost: %g\n", d.DefaultCost())
	fmt.Printf("Unknown Cost: %g\n", d.UnknownCost())
	fmt.Printf("Max Word Length: %d\n", d.MaxWordLen())

	if *lookup != "" {
		if cost, ok := d.Lookup(*lookup); ok {
			fmt.Printf("%s\t%g\n", *lookup, cost)
		} else {
			fmt.Printf("%s\tnot found\n", *lookup)
		}
	}

	if *words {
		d.Walk(func(w string, cost float32) bool {
			fmt.Printf("%s\t%g\n", w, cost)
			return true
		})
	}
}
