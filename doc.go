// Package khseg segments Khmer-script text into words using a
// dictionary-weighted shortest-path search over the input bytes, followed
// by a deterministic rule pass.
//
// # Quick Start
//
//	seg, err := khseg.New("khmer_dictionary.kdict")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer seg.Close()
//
//	out := seg.Segment("កងកម្លាំងរក្សាសន្តិសុខ")
//	fmt.Println(out) // words joined with U+200B
//
// # Thread Safety
//
// Segmenter is safe for concurrent use. The dictionary is immutable after
// load and every Segment call works on its own scratch state, so the same
// Segmenter may be shared across any number of goroutines and produces
// byte-identical results.
//
// # Dictionary Files
//
// The runtime reads a single baked dictionary blob (see package kdict).
// Blobs are compiled offline by cmd/khseg-build from a plain word list and
// a frequency source.
package khseg
