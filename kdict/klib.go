package kdict

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// klibMagic identifies the legacy binary frequency format, accepted by the
// offline builder for backward compatibility. The runtime core never reads
// it.
const klibMagic = "KLIB"

// ErrInvalidKLIB indicates a legacy frequency file with a bad magic or an
// unsupported version.
var ErrInvalidKLIB = errors.New("kdict: invalid KLIB frequency file")

// ReadKLIB parses the legacy frequency format:
//
//	magic "KLIB", u32 version=1, f32 default_cost, f32 unknown_cost,
//	u32 entry_count, then per entry {u16 word_len, word bytes, f32 cost}.
//
// Integers are little-endian.
func ReadKLIB(r io.Reader) (CostModel, error) {
	br := bufio.NewReader(r)

	var header [16]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return CostModel{}, fmt.Errorf("%w: short header: %w", ErrInvalidKLIB, err)
	}
	if string(header[0:4]) != klibMagic {
		return CostModel{}, fmt.Errorf("%w: bad magic %q", ErrInvalidKLIB, header[0:4])
	}
	if v := binary.LittleEndian.Uint32(header[4:8]); v != 1 {
		return CostModel{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidKLIB, v)
	}

	m := CostModel{
		Costs:       make(map[string]float32),
		DefaultCost: math.Float32frombits(binary.LittleEndian.Uint32(header[8:12])),
		UnknownCost: math.Float32frombits(binary.LittleEndian.Uint32(header[12:16])),
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(br, countBuf[:]); err != nil {
		return CostModel{}, fmt.Errorf("%w: short entry count: %w", ErrInvalidKLIB, err)
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	var entry [6]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, entry[:2]); err != nil {
			return CostModel{}, fmt.Errorf("%w: entry %d truncated: %w", ErrInvalidKLIB, i, err)
		}
		wordLen := binary.LittleEndian.Uint16(entry[:2])
		word := make([]byte, wordLen)
		if _, err := io.ReadFull(br, word); err != nil {
			return CostModel{}, fmt.Errorf("%w: entry %d truncated: %w", ErrInvalidKLIB, i, err)
		}
		if _, err := io.ReadFull(br, entry[2:6]); err != nil {
			return CostModel{}, fmt.Errorf("%w: entry %d truncated: %w", ErrInvalidKLIB, i, err)
		}
		m.Costs[string(word)] = math.Float32frombits(binary.LittleEndian.Uint32(entry[2:6]))
	}
	return m, nil
}

// LoadKLIB reads a legacy frequency file via ReadKLIB.
func LoadKLIB(path string) (CostModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return CostModel{}, fmt.Errorf("opening frequency file: %w", err)
	}
	defer f.Close()
	return ReadKLIB(f)
}
