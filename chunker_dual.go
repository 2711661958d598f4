package quarry

var _ Chunker = (*DualGranularityChunker)(nil)

// previewRunes bounds the big-chunk preview stored on small chunks.
const previewRunes = 200

// DualGranularityChunker emits the same document at two granularities:
// small chunks for precise matching and big chunks for context expansion.
// Each big chunk's small chunks come first and point forward at the big
// chunk's position, so a retrieval hit on a small chunk resolves to its
// surrounding context.
type DualGranularityChunker struct {
	big   *RecursiveChunker
	small *SentenceChunker
}

// NewDualGranularityChunker creates a DualGranularityChunker from the
// small/big size options.
func NewDualGranularityChunker(opts ...Option) (*DualGranularityChunker, error) {
	cfg := applyOptions(opts)
	if err := validateWindow("small_big.small", cfg.smallSize, cfg.smallOverlap); err != nil {
		return nil, err
	}
	if err := validateWindow("small_big.big", cfg.bigSize, cfg.bigOverlap); err != nil {
		return nil, err
	}
	big, err := NewRecursiveChunker(WithChunkSize(cfg.bigSize), WithChunkOverlap(cfg.bigOverlap))
	if err != nil {
		return nil, err
	}
	small, err := NewSentenceChunker(WithChunkSize(cfg.smallSize), WithChunkOverlap(cfg.smallOverlap))
	if err != nil {
		return nil, err
	}
	return &DualGranularityChunker{big: big, small: small}, nil
}

// Split emits, per big chunk, all of its small chunks followed by the big
// chunk itself.
func (c *DualGranularityChunker) Split(doc Document) []Chunk {
	bigTexts := c.big.splitText(cleanText(doc.Text))
	if len(bigTexts) == 0 {
		return nil
	}

	var chunks []Chunk
	for _, bigText := range bigTexts {
		smallTexts := c.small.splitText(bigText)
		// The big chunk lands right after its small chunks, so its final
		// ChunkID is the current position plus the small count.
		bigID := len(chunks) + len(smallTexts)
		preview := truncateRunes(bigText, previewRunes)

		for _, smallText := range smallTexts {
			ch := newChunk(doc, StrategySmallBig, smallText)
			ch.Meta.ChunkType = ChunkTypeSmall
			ch.Meta.ParentID = bigID
			ch.Meta.ParentPreview = preview
			chunks = append(chunks, ch)
		}

		bigChunk := newChunk(doc, StrategySmallBig, bigText)
		bigChunk.Meta.ChunkType = ChunkTypeBig
		bigChunk.Meta.ChildCount = len(smallTexts)
		chunks = append(chunks, bigChunk)
	}
	return numberChunks(chunks)
}
