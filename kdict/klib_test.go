package kdict

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func writeKLIB(defaultCost, unknownCost float32, entries map[string]float32) []byte {
	var buf bytes.Buffer
	buf.WriteString("KLIB")
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	binary.Write(&buf, binary.LittleEndian, math.Float32bits(defaultCost))
	binary.Write(&buf, binary.LittleEndian, math.Float32bits(unknownCost))
	binary.Write(&buf, binary.LittleEndian, uint32(len(entries)))
	for w, c := range entries {
		binary.Write(&buf, binary.LittleEndian, uint16(len(w)))
		buf.WriteString(w)
		binary.Write(&buf, binary.LittleEndian, math.Float32bits(c))
	}
	return buf.Bytes()
}

func TestReadKLIB(t *testing.T) {
	entries := map[string]float32{"កង": 3.5, "ទៅ": 2.25}
	data := writeKLIB(10.5, 15.5, entries)

	m, err := ReadKLIB(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadKLIB failed: %v", err)
	}
	if m.DefaultCost != 10.5 || m.UnknownCost != 15.5 {
		t.Errorf("costs = (%v, %v), want (10.5, 15.5)", m.DefaultCost, m.UnknownCost)
	}
	if len(m.Costs) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(m.Costs), len(entries))
	}
	for w, want := range entries {
		if got := m.Costs[w]; got != want {
			t.Errorf("Costs[%q] = %v, want %v", w, got, want)
		}
	}
}

func TestReadKLIBInvalid(t *testing.T) {
	valid := writeKLIB(10, 20, map[string]float32{"កង": 1})

	badMagic := bytes.Clone(valid)
	copy(badMagic, "XLIB")

	badVersion := bytes.Clone(valid)
	binary.LittleEndian.PutUint32(badVersion[4:], 9)

	tests := []struct {
		name string
		data []byte
	}{
		{"bad magic", badMagic},
		{"bad version", badVersion},
		{"short header", valid[:8]},
		{"truncated entry", valid[:len(valid)-2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadKLIB(bytes.NewReader(tt.data)); !errors.Is(err, ErrInvalidKLIB) {
				t.Errorf("ReadKLIB = %v, want ErrInvalidKLIB", err)
			}
		})
	}
}
