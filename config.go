package quarry

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the file-level configuration for a StrategySelector. Every
// recognized chunking option has a TOML key, so applications can tune
// chunk sizing without code changes.
type Config struct {
	ChunkSize       int     `toml:"chunk_size"`
	ChunkOverlap    int     `toml:"chunk_overlap"`
	MinChunk        int     `toml:"min_chunk"`
	OverlapRatio    float64 `toml:"overlap_ratio"`
	DefaultStrategy string  `toml:"default_strategy"`

	Dialogue DialogueConfig `toml:"dialogue"`
}

// DialogueConfig holds the turn-windowing options.
type DialogueConfig struct {
	MaxTurns      int      `toml:"max_turns"`
	OverlapTurns  int      `toml:"overlap_turns"`
	SpeakerLabels []string `toml:"speaker_labels"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	base := defaultChunkerConfig()
	return Config{
		ChunkSize:       base.chunkSize,
		ChunkOverlap:    base.chunkOverlap,
		MinChunk:        base.minChunk,
		OverlapRatio:    base.overlapRatio,
		DefaultStrategy: string(StrategyAuto),
		Dialogue: DialogueConfig{
			MaxTurns:     base.maxTurns,
			OverlapTurns: base.overlapTurns,
		},
	}
}

// LoadConfig reads config: defaults -> TOML file -> env vars (env wins).
// A missing file is not an error; the defaults stand.
func LoadConfig(path string) Config {
	cfg := DefaultConfig()

	if path == "" {
		path = "quarry.toml"
	}
	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	if v, err := strconv.Atoi(os.Getenv("QUARRY_CHUNK_SIZE")); err == nil && v > 0 {
		cfg.ChunkSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("QUARRY_CHUNK_OVERLAP")); err == nil && v >= 0 {
		cfg.ChunkOverlap = v
	}
	if v := os.Getenv("QUARRY_DEFAULT_STRATEGY"); v != "" {
		cfg.DefaultStrategy = v
	}

	return cfg
}

// Options converts the config into selector options.
func (c Config) Options() []Option {
	opts := []Option{
		WithChunkSize(c.ChunkSize),
		WithChunkOverlap(c.ChunkOverlap),
		WithMinChunk(c.MinChunk),
		WithOverlapRatio(c.OverlapRatio),
		WithDefaultStrategy(Strategy(c.DefaultStrategy)),
		WithMaxTurns(c.Dialogue.MaxTurns),
		WithOverlapTurns(c.Dialogue.OverlapTurns),
	}
	if len(c.Dialogue.SpeakerLabels) > 0 {
		opts = append(opts, WithSpeakerLabels(c.Dialogue.SpeakerLabels...))
	}
	return opts
}

// NewSelectorFromConfig builds a StrategySelector from a loaded config.
func NewSelectorFromConfig(cfg Config, extra ...Option) (*StrategySelector, error) {
	return NewSelector(append(cfg.Options(), extra...)...)
}
