package khseg

import (
	"reflect"
	"testing"
)

func TestApplyRules(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "ka ahsda preserved",
			in:   []string{"ក៏", "ទៅ"},
			want: []string{"ក៏", "ទៅ"},
		},
		{
			name: "da ahsda preserved",
			in:   []string{"ដ៏", "ធំ"},
			want: []string{"ដ៏", "ធំ"},
		},
		{
			name: "orphan qa merges right",
			in:   []string{"អ", "ខក"},
			want: []string{"អខក"},
		},
		{
			name: "orphan qa blocked by separator",
			in:   []string{"អ", " ", "ខក"},
			want: []string{"អ", " ", "ខក"},
		},
		{
			name: "orphan qa at end unchanged",
			in:   []string{"ខក", "អ"},
			want: []string{"ខក", "អ"},
		},
		{
			name: "consonant robat merges left",
			in:   []string{"ខ", "ក៌"},
			want: []string{"ខក៌"},
		},
		{
			name: "consonant yuukaleapintu merges left",
			in:   []string{"ទៅ", "ស់"},
			want: []string{"ទៅស់"},
		},
		{
			name: "consonant ahsda non ka da merges left",
			in:   []string{"ខ", "ទ៏"},
			want: []string{"ខទ៏"},
		},
		{
			name: "robat without previous unchanged",
			in:   []string{"ក៌", "ខ"},
			want: []string{"ក៌", "ខ"},
		},
		{
			name: "samyok sannya merges right",
			in:   []string{"ក័", "ខង"},
			want: []string{"ក័ខង"},
		},
		{
			name: "samyok sannya at end unchanged",
			in:   []string{"ខង", "ក័"},
			want: []string{"ខង", "ក័"},
		},
		{
			name: "invalid single sign merges left",
			in:   []string{"កង", "ំ"},
			want: []string{"កងំ"},
		},
		{
			name: "invalid single blocked by separator",
			in:   []string{" ", "ំ"},
			want: []string{" ", "ំ"},
		},
		{
			name: "valid single base untouched",
			in:   []string{"កង", "ក"},
			want: []string{"កង", "ក"},
		},
		{
			name: "cascade after merge",
			in:   []string{"ខ", "ក៌", "ស់"},
			want: []string{"ខក៌ស់"},
		},
		{
			name: "empty list",
			in:   []string{},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.in...)
			got := applyRules(in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("applyRules(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyRulesPreservesConcatenation(t *testing.T) {
	lists := [][]string{
		{"អ", "ខក", "ំ", "ក័", "ខង"},
		{"ក៏", "ដ៏", " ", "ំ"},
		{"ខ", "ក៌", "ស់", "ទ៏"},
	}
	for _, segs := range lists {
		var before string
		for _, s := range segs {
			before += s
		}
		out := applyRules(append([]string(nil), segs...))
		var after string
		for _, s := range out {
			after += s
		}
		if before != after {
			t.Errorf("concatenation changed: %q -> %q", before, after)
		}
	}
}
