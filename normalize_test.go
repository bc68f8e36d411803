package khseg

import "testing"

func TestNormalizeStripsZeroWidthSpace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"interior", "ក​ង", "កង"},
		{"leading and trailing", "​កង​", "កង"},
		{"only zwsp", "​​", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeComposites(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"e plus i becomes oe", "សេី", "សើ"},
		{"e plus aa becomes au", "សេា", "សោ"},
		{"bare e untouched", "សេ", "សេ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeReorder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			// sign typed before the subscript moves behind it
			"sign before subscript",
			"កំ្រ",
			"ក្រំ",
		},
		{
			// Ro subscript sorts after other subscripts
			"ro subscript last",
			"ស្រ្ក",
			"ស្ក្រ",
		},
		{
			// register shifter precedes the vowel
			"vowel before register",
			"បឹ៉",
			"ប៉ឹ",
		},
		{
			// equal priorities keep first-seen order
			"stable among vowels",
			"កិា",
			"កិា",
		},
		{"canonical input unchanged", "កងកម្លាំងរក្សាសន្តិសុខ", "កងកម្លាំងរក្សាសន្តិសុខ"},
		{"isolated modifier verbatim", "ាក", "ាក"},
		{"ascii untouched", "hello, world", "hello, world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"កងកម្លាំងរក្សាសន្តិសុខ",
		"កំ្រ",
		"សេីង",
		"ស្រ្ក",
		"១ ០០០ ០០០ ដុល្លារ",
		"$10,000.00",
		"ស.ភ.ភ.ព.",
		"mixed ខ្មែរ and english",
		"\xff\x92broken\xe1utf8",
		"ក្", // trailing coeng
		"្រក", // leading subscript
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeMalformedInput(t *testing.T) {
	// Malformed bytes pass through byte for byte.
	in := "\xffក\x92ង"
	got := Normalize(in)
	if got != in {
		t.Errorf("Normalize(%q) = %q, want unchanged", in, got)
	}
}

func TestNormalizeLongCluster(t *testing.T) {
	// A cluster far beyond the part bound still comes back intact.
	in := "ក"
	for i := 0; i < 100; i++ {
		in += "ំ"
	}
	got := Normalize(in)
	if len(got) != len(in) {
		t.Errorf("Normalize dropped bytes on oversized cluster: %d != %d", len(got), len(in))
	}
	if Normalize(got) != got {
		t.Error("Normalize not idempotent on oversized cluster")
	}
}
