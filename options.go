package khseg

import "log/slog"

// DefaultSeparator joins output tokens: U+200B ZERO WIDTH SPACE. The
// normalizer strips it from input, so splitting output on it reconstructs
// the token list exactly.
const DefaultSeparator = "\u200b"

// Option configures a Segmenter.
type Option func(*config)

type config struct {
	separator string
	logger    *slog.Logger

	normalization  bool
	repairMode     bool
	acronyms       bool
	unknownMerging bool
	frequencyCosts bool
}

func defaultConfig() config {
	return config{
		separator:      DefaultSeparator,
		logger:         slog.Default(),
		normalization:  true,
		repairMode:     true,
		acronyms:       true,
		unknownMerging: true,
		frequencyCosts: true,
	}
}

// WithSeparator sets the token separator (default: U+200B).
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// WithLogger sets the logger (default: slog.Default()). The hot path never
// logs; only construction does.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithNormalization toggles canonical cluster reordering before
// segmentation (default: on). When off, raw input bytes feed the engine
// directly.
func WithNormalization(on bool) Option {
	return func(c *config) {
		c.normalization = on
	}
}

// WithRepairMode toggles recovery transitions for malformed input —
// orphaned subscript markers and isolated dependent vowels (default: on).
func WithRepairMode(on bool) Option {
	return func(c *config) {
		c.repairMode = on
	}
}

// WithAcronymDetection toggles recognition of dotted acronym sequences
// such as ស.ភ.ភ.ព. as single tokens (default: on).
func WithAcronymDetection(on bool) Option {
	return func(c *config) {
		c.acronyms = on
	}
}

// WithUnknownMerging toggles the post-pass that coalesces runs of
// segments the dictionary does not recognize (default: on).
func WithUnknownMerging(on bool) Option {
	return func(c *config) {
		c.unknownMerging = on
	}
}

// WithFrequencyCosts toggles per-word costs from the baked dictionary
// (default: on). When off, every dictionary hit costs the dictionary's
// default cost.
func WithFrequencyCosts(on bool) Option {
	return func(c *config) {
		c.frequencyCosts = on
	}
}
