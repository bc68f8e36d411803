package kdict

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// minFreqFloor is the minimum effective count applied to every word, so
// that unseen dictionary words and rare corpus words cost the same.
const minFreqFloor = 5.0

// CostModel maps words to additive penalties derived from corpus counts.
type CostModel struct {
	Costs       map[string]float32
	DefaultCost float32
	UnknownCost float32
}

// CostsFromCounts converts raw corpus counts into -log10 probability costs
// with a frequency floor. DefaultCost is the cost at the floor;
// UnknownCost sits a fixed margin above it.
func CostsFromCounts(counts map[string]float64) CostModel {
	effective := make(map[string]float64, len(counts))
	var total float64
	for w, c := range counts {
		eff := math.Max(c, minFreqFloor)
		effective[w] = eff
		total += eff
	}
	if total == 0 {
		total = 1
	}

	m := CostModel{
		Costs:       make(map[string]float32, len(effective)),
		DefaultCost: float32(-math.Log10(minFreqFloor / total)),
	}
	m.UnknownCost = m.DefaultCost + 5.0
	for w, eff := range effective {
		m.Costs[w] = float32(-math.Log10(eff / total))
	}
	return m
}

// ReadCountsJSON reads a word -> raw count JSON object, the primary
// frequency source of the offline pipeline.
func ReadCountsJSON(r io.Reader) (map[string]float64, error) {
	var counts map[string]float64
	if err := json.NewDecoder(r).Decode(&counts); err != nil {
		return nil, fmt.Errorf("parsing frequency JSON: %w", err)
	}
	return counts, nil
}

// LoadCountsJSON reads a frequency JSON file via ReadCountsJSON.
func LoadCountsJSON(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening frequency file: %w", err)
	}
	defer f.Close()
	return ReadCountsJSON(f)
}
