package quarry

import (
	"log/slog"
	"strings"
)

// Splitter is the facade interface callers consume. StrategySelector is the
// canonical implementation; observer.WrapSplitter adds instrumentation.
type Splitter interface {
	SplitDocuments(docs []Document, override Strategy) []Chunk
}

var _ Splitter = (*StrategySelector)(nil)

// Per-strategy multipliers applied to the base chunk size.
const (
	structureSizeFactor = 1.8
	dialogueCharsFactor = 2
	coarseSizeFactor    = 2
)

// StrategySelector resolves an explicit override, a configured default, or
// a feature-driven decision to one of the seven strategies and delegates
// splitting. All chunkers are built eagerly at construction, so a selector
// is read-only afterwards and safe for concurrent use.
type StrategySelector struct {
	defaultStrategy Strategy
	detector        *FeatureDetector
	chunkers        map[Strategy]Chunker
	logger          *slog.Logger
}

// NewSelector builds a selector and one chunker per strategy, each sized
// by a fixed multiplier of the base chunk size and overlap. Invalid
// configuration fails here, before any splitting.
func NewSelector(opts ...Option) (*StrategySelector, error) {
	cfg := applyOptions(opts)
	size, overlap := cfg.chunkSize, cfg.chunkOverlap
	if err := validateWindow("selector", size, overlap); err != nil {
		return nil, err
	}

	fixed, err := NewFixedWindowChunker(WithChunkSize(size), WithChunkOverlap(overlap))
	if err != nil {
		return nil, err
	}
	sentence, err := NewSentenceChunker(WithChunkSize(size), WithChunkOverlap(overlap))
	if err != nil {
		return nil, err
	}
	recursive, err := NewRecursiveChunker(WithChunkSize(size), WithChunkOverlap(overlap))
	if err != nil {
		return nil, err
	}
	structure, err := NewStructuralChunker(
		WithChunkSize(int(structureSizeFactor*float64(size))),
		WithMinChunk(cfg.minChunk),
		WithOverlapRatio(cfg.overlapRatio),
	)
	if err != nil {
		return nil, err
	}
	dialogue, err := NewDialogueChunker(
		WithMaxTurns(cfg.maxTurns),
		WithOverlapTurns(cfg.overlapTurns),
		WithMaxChars(dialogueCharsFactor*size),
		WithSpeakerLabels(cfg.speakers...),
	)
	if err != nil {
		return nil, err
	}
	smallBig, err := NewDualGranularityChunker(
		WithSmallChunk(size/2, overlap/2),
		WithBigChunk(coarseSizeFactor*size, coarseSizeFactor*overlap),
	)
	if err != nil {
		return nil, err
	}
	parentChild, err := NewHierarchicalChunker(
		WithParentChunk(coarseSizeFactor*size, coarseSizeFactor*overlap),
		WithChildChunk(size/2, overlap/2),
		WithMinChunk(cfg.minChunk),
		WithOverlapRatio(cfg.overlapRatio),
	)
	if err != nil {
		return nil, err
	}

	return &StrategySelector{
		defaultStrategy: cfg.defaultStrategy,
		detector:        NewFeatureDetector(cfg.speakers...),
		chunkers: map[Strategy]Chunker{
			StrategyFixed:       fixed,
			StrategySentence:    sentence,
			StrategyRecursive:   recursive,
			StrategyStructure:   structure,
			StrategyDialogue:    dialogue,
			StrategySmallBig:    smallBig,
			StrategyParentChild: parentChild,
		},
		logger: cfg.logger,
	}, nil
}

// Chunker returns the chunker registered for a strategy.
func (s *StrategySelector) Chunker(strategy Strategy) (Chunker, bool) {
	c, ok := s.chunkers[strategy]
	return c, ok
}

// Resolve picks the strategy for text. An override naming a known strategy
// wins outright; an unknown one is logged and downgraded to auto. Blank
// text falls back to the configured default (recursive when that default
// is auto); anything else is decided by the feature detector.
func (s *StrategySelector) Resolve(text string, override Strategy) Strategy {
	if override != "" && override != StrategyAuto {
		if _, ok := s.chunkers[override]; ok {
			return override
		}
		if s.logger != nil {
			s.logger.Warn("unknown chunking strategy, using auto selection",
				"strategy", string(override))
		}
	}

	if strings.TrimSpace(text) == "" {
		if s.defaultStrategy == StrategyAuto || s.defaultStrategy == "" {
			return StrategyRecursive
		}
		return s.defaultStrategy
	}

	f := s.detector.Detect(text)
	switch {
	case f.IsDialogue:
		return StrategyDialogue
	case f.IsMarkdown && f.HasStructure:
		return StrategyStructure
	case f.ParagraphCount > 10 && f.HasStructure:
		return StrategyParentChild
	case f.AvgSentenceLen > 100:
		return StrategySentence
	default:
		return StrategyRecursive
	}
}

// Split chunks a single document with the resolved strategy.
func (s *StrategySelector) Split(doc Document, override Strategy) []Chunk {
	strategy := s.Resolve(doc.Text, override)
	chunks := s.chunkers[strategy].Split(doc)
	if s.logger != nil {
		s.logger.Debug("document split",
			"document_id", doc.ID,
			"strategy", string(strategy),
			"chunks", len(chunks))
	}
	return chunks
}

// SplitDocuments chunks each document independently and concatenates the
// per-document outputs. Pass StrategyAuto (or "") to select per document.
func (s *StrategySelector) SplitDocuments(docs []Document, override Strategy) []Chunk {
	var out []Chunk
	for _, doc := range docs {
		out = append(out, s.Split(doc, override)...)
	}
	return out
}
