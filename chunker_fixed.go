package quarry

import "strings"

var _ Chunker = (*FixedWindowChunker)(nil)

// FixedWindowChunker splits text into fixed-size overlapping character
// windows. It ignores all structure; every window except possibly the last
// is exactly chunkSize runes long.
type FixedWindowChunker struct {
	chunkSize int
	overlap   int
}

// NewFixedWindowChunker creates a FixedWindowChunker. It fails with
// *ErrConfig when the overlap is not smaller than the chunk size.
func NewFixedWindowChunker(opts ...Option) (*FixedWindowChunker, error) {
	cfg := applyOptions(opts)
	if err := validateWindow("fixed", cfg.chunkSize, cfg.chunkOverlap); err != nil {
		return nil, err
	}
	return &FixedWindowChunker{chunkSize: cfg.chunkSize, overlap: cfg.chunkOverlap}, nil
}

// Split cuts the document into windows advancing chunkSize-overlap runes
// per step.
func (c *FixedWindowChunker) Split(doc Document) []Chunk {
	text := strings.TrimSpace(cleanText(doc.Text))
	if text == "" {
		return nil
	}

	var chunks []Chunk
	for _, w := range c.splitText(text) {
		chunks = append(chunks, newChunk(doc, StrategyFixed, w))
	}
	return numberChunks(chunks)
}

func (c *FixedWindowChunker) splitText(text string) []string {
	runes := []rune(text)
	if len(runes) <= c.chunkSize {
		return []string{text}
	}

	var windows []string
	step := c.chunkSize - c.overlap
	for start := 0; start < len(runes); start += step {
		end := min(start+c.chunkSize, len(runes))
		windows = append(windows, string(runes[start:end]))
	}
	return windows
}
