// Package bench provides corpus loading and throughput measurement for the
// benchmark harness. The segmentation core itself stays synchronous and
// stateless; everything here is host plumbing around it.
package bench

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Corpus is a set of input lines with their total UTF-8 byte size.
type Corpus struct {
	Lines []string
	Bytes int64
}

// LoadLines reads non-empty lines from the given files, up to limit lines
// in total. A limit <= 0 means no limit.
func LoadLines(paths []string, limit int) (*Corpus, error) {
	c := &Corpus{}
	for _, path := range paths {
		if limit > 0 && len(c.Lines) >= limit {
			break
		}
		if err := c.appendFile(path, limit); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Corpus) appendFile(path string, limit int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		if limit > 0 && len(c.Lines) >= limit {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c.Lines = append(c.Lines, line)
		c.Bytes += int64(len(line))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
