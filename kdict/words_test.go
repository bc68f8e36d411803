package kdict

import (
	"sort"
	"strings"
	"testing"
)

func TestReadWordList(t *testing.T) {
	input := strings.Join([]string{
		"កងកម្លាំង",
		"",
		"រក្សា\r",
		"  សុខ  ",
		"ា",     // single non-base codepoint: filtered
		"ក",     // single base consonant: kept
		"ឬ",     // single independent vowel: kept
		"្រ",    // starts with coeng: filtered
		"ក៷ង",   // contains U+17F7: filtered
		"រក្សា", // duplicate
	}, "\n")

	words, err := ReadWordList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadWordList failed: %v", err)
	}
	sort.Strings(words)

	want := []string{"ក", "កងកម្លាំង", "ឬ", "រក្សា", "សុខ"}
	sort.Strings(want)
	if len(words) != len(want) {
		t.Fatalf("got %d words %q, want %d %q", len(words), words, len(want), want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestDropOrCompounds(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		drop []string
		keep []string
	}{
		{
			name: "prefix form",
			in:   []string{"ឬហៅ", "ហៅ"},
			drop: []string{"ឬហៅ"},
			keep: []string{"ហៅ"},
		},
		{
			name: "suffix form",
			in:   []string{"មកឬ", "មក"},
			drop: []string{"មកឬ"},
			keep: []string{"មក"},
		},
		{
			name: "middle form",
			in:   []string{"មែនឬទេ", "មែន", "ទេ"},
			drop: []string{"មែនឬទេ"},
			keep: []string{"មែន", "ទេ"},
		},
		{
			name: "kept when parts unknown",
			in:   []string{"ឬហៅ"},
			keep: []string{"ឬហៅ"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := make(map[string]struct{})
			for _, w := range tt.in {
				set[w] = struct{}{}
			}
			dropOrCompounds(set)
			for _, w := range tt.drop {
				if _, ok := set[w]; ok {
					t.Errorf("%q survived, want dropped", w)
				}
			}
			for _, w := range tt.keep {
				if _, ok := set[w]; !ok {
					t.Errorf("%q dropped, want kept", w)
				}
			}
		})
	}
}
