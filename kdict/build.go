package kdict

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"sort"
)

// loadFactor bounds table occupancy; the table is sized to the smallest
// power of two that keeps occupancy at or below this.
const loadFactor = 0.70

// Builder assembles a baked dictionary blob. It is an offline tool; the
// runtime core only ever sees the finished blob.
type Builder struct {
	costs       map[string]float32
	defaultCost float32
	unknownCost float32
}

// NewBuilder returns a Builder with the given fallback costs.
func NewBuilder(defaultCost, unknownCost float32) *Builder {
	return &Builder{
		costs:       make(map[string]float32),
		defaultCost: defaultCost,
		unknownCost: unknownCost,
	}
}

// Add stores word with an explicit cost. Adding a word twice keeps the
// lower cost.
func (b *Builder) Add(word string, cost float32) {
	if word == "" {
		return
	}
	if prev, ok := b.costs[word]; ok && prev <= cost {
		return
	}
	b.costs[word] = cost
}

// AddDefault stores word at the builder's default cost unless a cheaper
// cost is already recorded.
func (b *Builder) AddDefault(word string) {
	b.Add(word, b.defaultCost)
}

// AddVariants stores the orthographic variants of word (Ta/Da swaps and
// Ro-subscript position swaps) at the same cost as word itself.
func (b *Builder) AddVariants(word string, cost float32) {
	for _, v := range Variants(word) {
		b.Add(v, cost)
	}
}

// Len returns the number of distinct words recorded.
func (b *Builder) Len() int { return len(b.costs) }

func nextPowerOfTwo(n int) uint32 {
	if n <= 1 {
		return 1
	}
	v := uint32(1)
	for int(v) < n {
		v <<= 1
	}
	return v
}

// Build serializes the blob. Output is bit-reproducible: words enter the
// string pool and the hash table in sorted order.
func (b *Builder) Build() []byte {
	words := make([]string, 0, len(b.costs))
	maxLen := 0
	for w := range b.costs {
		words = append(words, w)
		if len(w) > maxLen {
			maxLen = len(w)
		}
	}
	sort.Strings(words)

	tableSize := nextPowerOfTwo(int(math.Ceil(float64(len(words)) / loadFactor)))
	mask := tableSize - 1

	pool := make([]byte, 1, len(words)*8+1) // leading NUL reserves offset 0
	offsets := make(map[string]uint32, len(words))
	for _, w := range words {
		offsets[w] = uint32(len(pool))
		pool = append(pool, w...)
		pool = append(pool, 0)
	}

	table := make([]byte, int(tableSize)*entrySize)
	for _, w := range words {
		idx := Hash(w) & mask
		for binary.LittleEndian.Uint32(table[idx*entrySize:]) != 0 {
			idx = (idx + 1) & mask
		}
		e := table[idx*entrySize:]
		binary.LittleEndian.PutUint32(e, offsets[w])
		binary.LittleEndian.PutUint32(e[4:], math.Float32bits(b.costs[w]))
	}

	blob := make([]byte, 0, headerSize+len(table)+len(pool))
	blob = append(blob, Magic...)
	blob = binary.LittleEndian.AppendUint32(blob, Version)
	blob = binary.LittleEndian.AppendUint32(blob, uint32(len(words)))
	blob = binary.LittleEndian.AppendUint32(blob, tableSize)
	blob = binary.LittleEndian.AppendUint32(blob, math.Float32bits(b.defaultCost))
	blob = binary.LittleEndian.AppendUint32(blob, math.Float32bits(b.unknownCost))
	blob = binary.LittleEndian.AppendUint32(blob, uint32(maxLen))
	blob = binary.LittleEndian.AppendUint32(blob, 0)
	blob = append(blob, table...)
	blob = append(blob, pool...)
	return blob
}

// WriteFile serializes the blob to path.
func (b *Builder) WriteFile(path string) error {
	if err := os.WriteFile(path, b.Build(), 0o644); err != nil {
		return fmt.Errorf("writing dictionary: %w", err)
	}
	return nil
}
