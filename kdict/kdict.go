// Package kdict implements the baked Khmer dictionary: an open-addressed
// hash table laid out as a single contiguous binary blob, designed for
// zero-copy load and incremental hashing during lookup.
//
// Blob layout (all integers little-endian):
//
//	[0]   magic: 'K','D','I','C'
//	[4]   version: u32 (currently 1)
//	[8]   num_entries: u32
//	[12]  table_size: u32 (power of two)
//	[16]  default_cost: f32
//	[20]  unknown_cost: f32
//	[24]  max_word_length: u32 (bytes)
//	[28]  padding: u32
//	[32]  table: table_size x {name_offset u32, cost f32}
//	[...] string_pool: NUL-terminated UTF-8 words; pool[0] is NUL so that
//	      name_offset 0 marks an empty slot
//
// Words are placed by linear probing over the DJB2 hash of their bytes.
// A loaded Dict is immutable and safe for unsynchronized concurrent reads.
package kdict

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Magic identifies a baked dictionary blob.
const Magic = "KDIC"

// Version is the only supported blob version.
const Version = 1

const (
	headerSize = 32
	entrySize  = 8
)

// HashSeed is the DJB2 initial state.
const HashSeed uint32 = 5381

// HashByte folds one byte into a DJB2 hash state.
func HashByte(h uint32, b byte) uint32 {
	return ((h << 5) + h) + uint32(b)
}

// Hash returns the DJB2 hash of s.
func Hash(s string) uint32 {
	h := HashSeed
	for i := 0; i < len(s); i++ {
		h = HashByte(h, s[i])
	}
	return h
}

// ErrInvalid indicates a blob that failed validation: bad magic, wrong
// version, non-power-of-two table size, truncated regions, or offsets
// pointing outside the string pool.
var ErrInvalid = errors.New("kdict: invalid dictionary")

// Dict is a loaded baked dictionary.
type Dict struct {
	data []byte
	m    mmap.MMap // nil when the blob is owned in memory

	table []byte // table region of data
	pool  []byte // string pool region of data
	mask  uint32

	numEntries  int
	maxWordLen  int
	defaultCost float32
	unknownCost float32
}

// Load memory-maps the blob at path and validates it.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping dictionary: %w", err)
	}

	d, err := fromBytes(m)
	if err != nil {
		_ = m.Unmap()
		return nil, err
	}
	d.m = m
	return d, nil
}

// FromBytes validates a blob held in memory. The Dict aliases data; the
// caller must not mutate it afterwards.
func FromBytes(data []byte) (*Dict, error) {
	return fromBytes(data)
}

func fromBytes(data []byte) (*Dict, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than the header", ErrInvalid, len(data))
	}
	if string(data[0:4]) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalid, data[0:4])
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalid, v)
	}

	numEntries := binary.LittleEndian.Uint32(data[8:12])
	tableSize := binary.LittleEndian.Uint32(data[12:16])
	if tableSize == 0 || tableSize&(tableSize-1) != 0 {
		return nil, fmt.Errorf("%w: table size %d is not a power of two", ErrInvalid, tableSize)
	}

	tableBytes := int64(tableSize) * entrySize
	poolOffset := int64(headerSize) + tableBytes
	if poolOffset >= int64(len(data)) {
		return nil, fmt.Errorf("%w: truncated table region", ErrInvalid)
	}

	d := &Dict{
		data:        data,
		table:       data[headerSize:poolOffset],
		pool:        data[poolOffset:],
		mask:        tableSize - 1,
		numEntries:  int(numEntries),
		maxWordLen:  int(binary.LittleEndian.Uint32(data[24:28])),
		defaultCost: math.Float32frombits(binary.LittleEndian.Uint32(data[16:20])),
		unknownCost: math.Float32frombits(binary.LittleEndian.Uint32(data[20:24])),
	}

	if d.pool[0] != 0 {
		return nil, fmt.Errorf("%w: string pool does not start with NUL", ErrInvalid)
	}
	if d.pool[len(d.pool)-1] != 0 {
		return nil, fmt.Errorf("%w: string pool is not NUL-terminated", ErrInvalid)
	}
	empty := false
	for i := uint32(0); i <= d.mask; i++ {
		off := binary.LittleEndian.Uint32(d.table[i*entrySize:])
		if off == 0 {
			empty = true
			continue
		}
		if int64(off) >= int64(len(d.pool)) {
			return nil, fmt.Errorf("%w: entry %d offset %d outside string pool", ErrInvalid, i, off)
		}
	}
	if !empty {
		// Probing terminates at an empty slot; a full table would loop.
		return nil, fmt.Errorf("%w: hash table has no empty slot", ErrInvalid)
	}
	return d, nil
}

// Close releases the mapping, if any. The Dict must not be used afterwards.
func (d *Dict) Close() error {
	if d.m == nil {
		return nil
	}
	m := d.m
	d.m = nil
	d.data = nil
	d.table = nil
	d.pool = nil
	return m.Unmap()
}

// Len returns the number of words stored.
func (d *Dict) Len() int { return d.numEntries }

// TableSize returns the hash table slot count.
func (d *Dict) TableSize() int { return int(d.mask) + 1 }

// MaxWordLen returns the byte length of the longest stored word; it bounds
// the dictionary-match window of the segmentation engine.
func (d *Dict) MaxWordLen() int { return d.maxWordLen }

// DefaultCost returns the penalty for dictionary words without a frequency.
func (d *Dict) DefaultCost() float32 { return d.defaultCost }

// UnknownCost returns the penalty for a cluster absent from the dictionary.
func (d *Dict) UnknownCost() float32 { return d.unknownCost }

func (d *Dict) entry(idx uint32) (nameOff uint32, cost float32) {
	e := d.table[idx*entrySize:]
	return binary.LittleEndian.Uint32(e), math.Float32frombits(binary.LittleEndian.Uint32(e[4:]))
}

// LookupPrefix probes for text[i:j] given h, the DJB2 hash of that slice.
// This is the hot path of the engine: the caller extends the hash
// incrementally and probes once per candidate prefix.
func (d *Dict) LookupPrefix(h uint32, text string, i, j int) (float32, bool) {
	idx := h & d.mask
	first := text[i]
	n := j - i
	for {
		off, cost := d.entry(idx)
		if off == 0 {
			return 0, false
		}
		w := d.pool[off:]
		if w[0] == first && len(w) > n && w[n] == 0 && prefixEqual(w, text, i, n) {
			return cost, true
		}
		idx = (idx + 1) & d.mask
	}
}

// prefixEqual reports whether w[1:n] matches text[i+1:i+n]; byte 0 is
// compared by the caller.
func prefixEqual(w []byte, text string, i, n int) bool {
	for k := 1; k < n; k++ {
		if w[k] != text[i+k] {
			return false
		}
	}
	return true
}

// Lookup returns the cost stored for s and whether s is present.
func (d *Dict) Lookup(s string) (float32, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return d.LookupPrefix(Hash(s), s, 0, len(s))
}

// Contains reports whether s is a dictionary word.
func (d *Dict) Contains(s string) bool {
	_, ok := d.Lookup(s)
	return ok
}

// Walk calls fn for every stored word in table order until fn returns
// false. Table order is stable for a given blob.
func (d *Dict) Walk(fn func(word string, cost float32) bool) {
	for i := uint32(0); i <= d.mask; i++ {
		off, cost := d.entry(i)
		if off == 0 {
			continue
		}
		w := d.pool[off:]
		end := 0
		for w[end] != 0 {
			end++
		}
		if !fn(string(w[:end]), cost) {
			return
		}
	}
}
