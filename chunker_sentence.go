package quarry

import "strings"

var _ Chunker = (*SentenceChunker)(nil)

// SentenceChunker packs whole sentences into chunks bounded by a character
// budget, seeding each new chunk with the tail of the previous one. A single
// sentence longer than the budget becomes its own oversized chunk rather
// than being cut mid-sentence.
type SentenceChunker struct {
	chunkSize int
	overlap   int
}

// NewSentenceChunker creates a SentenceChunker. It fails with *ErrConfig
// when the overlap is not smaller than the chunk size.
func NewSentenceChunker(opts ...Option) (*SentenceChunker, error) {
	cfg := applyOptions(opts)
	if err := validateWindow("sentence", cfg.chunkSize, cfg.chunkOverlap); err != nil {
		return nil, err
	}
	return &SentenceChunker{chunkSize: cfg.chunkSize, overlap: cfg.chunkOverlap}, nil
}

// Split segments the document into sentences and bin-packs them.
func (c *SentenceChunker) Split(doc Document) []Chunk {
	var chunks []Chunk
	for _, t := range c.splitText(cleanText(doc.Text)) {
		chunks = append(chunks, newChunk(doc, StrategySentence, t))
	}
	return numberChunks(chunks)
}

func (c *SentenceChunker) splitText(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return packUnits(Sentences(text), "", c.chunkSize, c.overlap)
}
