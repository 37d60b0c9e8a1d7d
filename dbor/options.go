package dbor

// Option configures Decode. Options are applied on top of
// defaultDecodeConfig, not on top of the zero value of decodeConfig (whose
// strictCanonical is false and whose maxDepth is unlimited).
type Option func(*decodeConfig)

// decodeConfig holds the resolved decode-time limits and policy flags.
type decodeConfig struct {
	strictCanonical bool
	maxDepth        int
	maxSeqWidth     int
}

const (
	defaultMaxDepth    = 1024
	defaultMaxSeqWidth = 0 // 0 means unlimited
)

func defaultDecodeConfig() decodeConfig {
	return decodeConfig{
		strictCanonical: true,
		maxDepth:        defaultMaxDepth,
		maxSeqWidth:     defaultMaxSeqWidth,
	}
}

// WithStrictCanonical controls whether a non-minimal integer-token
// encoding is rejected with NonCanonical. Defaults to true.
func WithStrictCanonical(strict bool) Option {
	return func(c *decodeConfig) {
		c.strictCanonical = strict
	}
}

// WithMaxDepth bounds Sequence recursion depth. A value <= 0 is treated as
// unlimited. Defaults to 1024.
func WithMaxDepth(depth int) Option {
	return func(c *decodeConfig) {
		c.maxDepth = depth
	}
}

// WithMaxSequenceWidth bounds the number of direct children a Sequence may
// declare. A value <= 0 (the default) means unlimited.
func WithMaxSequenceWidth(width int) Option {
	return func(c *decodeConfig) {
		c.maxSeqWidth = width
	}
}
