package bench

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	khseg "github.com/jamesainslie/go-khseg"
)

// Run segments every corpus line on the given number of workers sharing
// one Segmenter and returns throughput figures. workers <= 1 runs the
// pass inline on the calling goroutine.
func Run(ctx context.Context, seg *khseg.Segmenter, corpus *Corpus, workers int) (Result, error) {
	if workers < 1 {
		workers = 1
	}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	if workers == 1 {
		for _, line := range corpus.Lines {
			seg.Segment(line)
		}
	} else {
		var next atomic.Int64
		g, ctx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				for {
					if err := ctx.Err(); err != nil {
						return err
					}
					i := int(next.Add(1)) - 1
					if i >= len(corpus.Lines) {
						return nil
					}
					seg.Segment(corpus.Lines[i])
				}
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	return Result{
		Workers:   workers,
		Lines:     len(corpus.Lines),
		Bytes:     corpus.Bytes,
		Duration:  elapsed,
		HeapDelta: int64(after.HeapAlloc) - int64(before.HeapAlloc),
	}, nil
}
