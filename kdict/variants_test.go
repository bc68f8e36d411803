package kdict

import (
	"sort"
	"testing"
)

func TestVariantsTaDa(t *testing.T) {
	vs := Variants("ប្តូរ") // contains Coeng-Ta
	found := false
	for _, v := range vs {
		if v == "ប្ដូរ" {
			found = true
		}
		if v == "ប្តូរ" {
			t.Error("Variants returned the input word itself")
		}
	}
	if !found {
		t.Errorf("Variants(ប្តូរ) = %q, missing Coeng-Da form", vs)
	}
}

func TestVariantsRoSwap(t *testing.T) {
	// ្រ directly followed by ្ក swaps to ្ក ្រ and vice versa.
	word := "ស្រ្កា"
	swapped := "ស្ក្រា"

	has := func(vs []string, w string) bool {
		for _, v := range vs {
			if v == w {
				return true
			}
		}
		return false
	}

	if vs := Variants(word); !has(vs, swapped) {
		t.Errorf("Variants(%q) = %q, missing %q", word, vs, swapped)
	}
	if vs := Variants(swapped); !has(vs, word) {
		t.Errorf("Variants(%q) = %q, missing %q", swapped, vs, word)
	}
}

func TestVariantsNone(t *testing.T) {
	if vs := Variants("កង"); len(vs) != 0 {
		t.Errorf("Variants(កង) = %q, want none", vs)
	}
}

func TestVariantsDeterministicSet(t *testing.T) {
	a := Variants("ប្តូរ")
	b := Variants("ប្តូរ")
	sort.Strings(a)
	sort.Strings(b)
	if len(a) != len(b) {
		t.Fatalf("variant sets differ in size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("variant sets differ: %q vs %q", a[i], b[i])
		}
	}
}
