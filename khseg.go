package khseg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jamesainslie/go-khseg/kdict"
)

// Segmenter segments Khmer text against a baked dictionary.
// It is safe for concurrent use.
type Segmenter struct {
	dict   *kdict.Dict
	cfg    config
	logger *slog.Logger

	ownsDict bool
}

// New creates a Segmenter from a baked dictionary file.
func New(dictPath string, opts ...Option) (*Segmenter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := os.Stat(dictPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDictNotFound, dictPath)
		}
		return nil, fmt.Errorf("checking dictionary file: %w", err)
	}

	dict, err := kdict.Load(dictPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDict, err)
	}

	cfg.logger.Debug("loaded baked dictionary",
		"path", dictPath,
		"words", dict.Len(),
		"table_size", dict.TableSize(),
		"max_word_len", dict.MaxWordLen())

	return &Segmenter{
		dict:     dict,
		cfg:      cfg,
		logger:   cfg.logger,
		ownsDict: true,
	}, nil
}

// NewFromDict creates a Segmenter over an already loaded dictionary. The
// caller keeps ownership of dict; Close does not release it.
func NewFromDict(dict *kdict.Dict, opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Segmenter{
		dict:   dict,
		cfg:    cfg,
		logger: cfg.logger,
	}
}

// Dict returns the underlying dictionary.
func (s *Segmenter) Dict() *kdict.Dict { return s.dict }

// Segment splits text into tokens joined by the configured separator.
// Any byte sequence is valid input; the result for empty input is empty.
func (s *Segmenter) Segment(text string) string {
	return strings.Join(s.SegmentTokens(text), s.cfg.separator)
}

// SegmentTokens splits text and returns the token list. Concatenating the
// tokens yields the normalized text exactly.
func (s *Segmenter) SegmentTokens(text string) []string {
	if text == "" {
		return nil
	}

	if s.cfg.normalization {
		text = Normalize(text)
	}
	if text == "" {
		return nil
	}

	segs := s.viterbi(text)
	segs = applyRules(segs)
	if s.cfg.unknownMerging {
		segs = s.mergeUnknowns(segs)
	}
	return segs
}

// Close releases the dictionary mapping when the Segmenter owns it.
func (s *Segmenter) Close() error {
	if !s.ownsDict || s.dict == nil {
		return nil
	}
	return s.dict.Close()
}
