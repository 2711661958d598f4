package quarry

import "log/slog"

// Chunker splits one document into an ordered chunk list. Implementations
// are pure and safe for concurrent use once constructed; malformed or empty
// input yields an empty list, never an error.
type Chunker interface {
	Split(doc Document) []Chunk
}

// --- Option for configuring chunkers and the selector ---

// Option configures a chunker or the strategy selector.
type Option func(*config)

type config struct {
	chunkSize    int
	chunkOverlap int

	// structure
	minChunk     int
	overlapRatio float64

	// dialogue
	maxTurns     int
	overlapTurns int
	maxChars     int
	speakers     []string

	// dual granularity
	smallSize    int
	smallOverlap int
	bigSize      int
	bigOverlap   int

	// parent/child
	parentSize    int
	parentOverlap int
	childSize     int
	childOverlap  int

	// selector
	defaultStrategy Strategy
	logger          *slog.Logger
}

func defaultChunkerConfig() config {
	return config{
		chunkSize:       512,
		chunkOverlap:    64,
		minChunk:        128,
		overlapRatio:    0.15,
		maxTurns:        10,
		overlapTurns:    2,
		maxChars:        1024,
		speakers:        defaultSpeakerLabels,
		smallSize:       256,
		smallOverlap:    32,
		bigSize:         1024,
		bigOverlap:      128,
		parentSize:      1024,
		parentOverlap:   128,
		childSize:       256,
		childOverlap:    32,
		defaultStrategy: StrategyAuto,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultChunkerConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithChunkSize sets the maximum chunk size in characters (runes).
func WithChunkSize(n int) Option {
	return func(c *config) { c.chunkSize = n }
}

// WithChunkOverlap sets the overlap between chunks in characters.
func WithChunkOverlap(n int) Option {
	return func(c *config) { c.chunkOverlap = n }
}

// WithMinChunk sets the merge threshold for undersized structural sections.
func WithMinChunk(n int) Option {
	return func(c *config) { c.minChunk = n }
}

// WithOverlapRatio sets the fraction of the chunk size budgeted for the
// breadcrumb prefix on structural chunks. Must be in [0, 1].
func WithOverlapRatio(r float64) Option {
	return func(c *config) { c.overlapRatio = r }
}

// WithMaxTurns sets the maximum dialogue turns per chunk.
func WithMaxTurns(n int) Option {
	return func(c *config) { c.maxTurns = n }
}

// WithOverlapTurns sets how many trailing turns repeat in the next window.
func WithOverlapTurns(n int) Option {
	return func(c *config) { c.overlapTurns = n }
}

// WithMaxChars sets the character budget of one dialogue window.
func WithMaxChars(n int) Option {
	return func(c *config) { c.maxChars = n }
}

// WithSpeakerLabels replaces the recognized dialogue speaker labels.
// Each label must include its trailing colon (e.g. "User:", "用户：").
func WithSpeakerLabels(labels ...string) Option {
	return func(c *config) { c.speakers = labels }
}

// WithSmallChunk sets size and overlap for the small (fine) granularity.
func WithSmallChunk(size, overlap int) Option {
	return func(c *config) { c.smallSize, c.smallOverlap = size, overlap }
}

// WithBigChunk sets size and overlap for the big (coarse) granularity.
func WithBigChunk(size, overlap int) Option {
	return func(c *config) { c.bigSize, c.bigOverlap = size, overlap }
}

// WithParentChunk sets size and overlap for parent-level chunks.
func WithParentChunk(size, overlap int) Option {
	return func(c *config) { c.parentSize, c.parentOverlap = size, overlap }
}

// WithChildChunk sets size and overlap for child-level chunks.
func WithChildChunk(size, overlap int) Option {
	return func(c *config) { c.childSize, c.childOverlap = size, overlap }
}

// WithDefaultStrategy sets the selector's strategy for inputs that carry no
// usable text. StrategyAuto resolves to StrategyRecursive.
func WithDefaultStrategy(s Strategy) Option {
	return func(c *config) { c.defaultStrategy = s }
}

// WithLogger sets an optional logger for selector decisions and fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// validateWindow rejects any size/overlap pair that cannot guarantee
// forward progress.
func validateWindow(field string, size, overlap int) error {
	if size <= 0 {
		return configErr(field, "chunk size must be positive, got %d", size)
	}
	if overlap < 0 {
		return configErr(field, "overlap must not be negative, got %d", overlap)
	}
	if overlap >= size {
		return configErr(field, "overlap %d must be smaller than chunk size %d", overlap, size)
	}
	return nil
}
