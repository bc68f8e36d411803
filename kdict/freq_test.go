package kdict

import (
	"math"
	"strings"
	"testing"
)

func TestCostsFromCounts(t *testing.T) {
	// ទៅ is frequent, មក sits exactly at the floor, កង is clamped up to it.
	counts := map[string]float64{
		"ទៅ": 95,
		"មក": 5,
		"កង": 1,
	}
	m := CostsFromCounts(counts)

	total := 95.0 + 5.0 + 5.0
	wantDefault := float32(-math.Log10(5.0 / total))
	if m.DefaultCost != wantDefault {
		t.Errorf("DefaultCost = %v, want %v", m.DefaultCost, wantDefault)
	}
	if m.UnknownCost != m.DefaultCost+5.0 {
		t.Errorf("UnknownCost = %v, want DefaultCost+5", m.UnknownCost)
	}

	if got, want := m.Costs["ទៅ"], float32(-math.Log10(95.0/total)); got != want {
		t.Errorf("Costs[ទៅ] = %v, want %v", got, want)
	}
	// Floor applies: the rare word costs the same as an unseen one.
	if m.Costs["កង"] != m.DefaultCost {
		t.Errorf("Costs[កង] = %v, want floor cost %v", m.Costs["កង"], m.DefaultCost)
	}
	// Frequent words are cheaper than rare ones.
	if m.Costs["ទៅ"] >= m.Costs["មក"] {
		t.Errorf("frequent word not cheaper: %v vs %v", m.Costs["ទៅ"], m.Costs["មក"])
	}
}

func TestCostsFromCountsEmpty(t *testing.T) {
	m := CostsFromCounts(nil)
	if len(m.Costs) != 0 {
		t.Errorf("Costs = %v, want empty", m.Costs)
	}
	if m.UnknownCost != m.DefaultCost+5.0 {
		t.Errorf("UnknownCost = %v, want DefaultCost+5", m.UnknownCost)
	}
}

func TestReadCountsJSON(t *testing.T) {
	counts, err := ReadCountsJSON(strings.NewReader(`{"កង": 42, "ទៅ": 7.5}`))
	if err != nil {
		t.Fatalf("ReadCountsJSON failed: %v", err)
	}
	if counts["កង"] != 42 || counts["ទៅ"] != 7.5 {
		t.Errorf("counts = %v", counts)
	}

	if _, err := ReadCountsJSON(strings.NewReader(`[1,2]`)); err == nil {
		t.Error("expected error for non-object JSON")
	}
}
