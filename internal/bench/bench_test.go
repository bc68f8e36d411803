package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	khseg "github.com/jamesainslie/go-khseg"
	"github.com/jamesainslie/go-khseg/kdict"
)

func writeCorpusFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLines(t *testing.T) {
	path := writeCorpusFile(t, "កងកម្លាំង\n\n  \nទៅសាលា\nhello\n")

	c, err := LoadLines([]string{path}, 0)
	if err != nil {
		t.Fatalf("LoadLines failed: %v", err)
	}
	if len(c.Lines) != 3 {
		t.Fatalf("got %d lines %q, want 3", len(c.Lines), c.Lines)
	}
	wantBytes := int64(len("កងកម្លាំង") + len("ទៅសាលា") + len("hello"))
	if c.Bytes != wantBytes {
		t.Errorf("Bytes = %d, want %d", c.Bytes, wantBytes)
	}
}

func TestLoadLinesLimit(t *testing.T) {
	path := writeCorpusFile(t, "a\nb\nc\nd\n")

	c, err := LoadLines([]string{path, path}, 3)
	if err != nil {
		t.Fatalf("LoadLines failed: %v", err)
	}
	if len(c.Lines) != 3 {
		t.Errorf("got %d lines, want 3", len(c.Lines))
	}
}

func TestLoadLinesMissingFile(t *testing.T) {
	if _, err := LoadLines([]string{"does-not-exist.txt"}, 0); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResultMetrics(t *testing.T) {
	r := Result{
		Workers:  1,
		Lines:    1000,
		Bytes:    2 * 1024 * 1024,
		Duration: 2 * time.Second,
	}
	if got := r.LinesPerSec(); got != 500 {
		t.Errorf("LinesPerSec = %v, want 500", got)
	}
	if got := r.MBPerSec(); got != 1 {
		t.Errorf("MBPerSec = %v, want 1", got)
	}

	base := Result{Duration: 4 * time.Second}
	if got := r.Speedup(base); got != 2 {
		t.Errorf("Speedup = %v, want 2", got)
	}

	var zero Result
	if zero.LinesPerSec() != 0 || zero.MBPerSec() != 0 || zero.Speedup(base) != 0 {
		t.Error("zero-duration results should report zero rates")
	}
}

func TestRun(t *testing.T) {
	b := kdict.NewBuilder(10, 20)
	b.Add("កងកម្លាំង", 4)
	b.Add("ទៅ", 3)
	d, err := kdict.FromBytes(b.Build())
	if err != nil {
		t.Fatal(err)
	}
	seg := khseg.NewFromDict(d)

	corpus := &Corpus{}
	for i := 0; i < 200; i++ {
		corpus.Lines = append(corpus.Lines, "កងកម្លាំងទៅ")
		corpus.Bytes += int64(len("កងកម្លាំងទៅ"))
	}

	ctx := context.Background()
	for _, workers := range []int{1, 4} {
		r, err := Run(ctx, seg, corpus, workers)
		if err != nil {
			t.Fatalf("Run(%d workers) failed: %v", workers, err)
		}
		if r.Lines != len(corpus.Lines) {
			t.Errorf("Run(%d workers): Lines = %d, want %d", workers, r.Lines, len(corpus.Lines))
		}
		if r.Workers != workers {
			t.Errorf("Run(%d workers): Workers = %d", workers, r.Workers)
		}
		if r.Duration <= 0 {
			t.Errorf("Run(%d workers): non-positive duration", workers)
		}
	}
}
