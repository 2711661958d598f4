package quarry

import "strings"

var _ Chunker = (*RecursiveChunker)(nil)

// RecursiveChunker splits text by paragraphs, then sentences, then words,
// and merges the resulting segments back into overlapping chunks. It is the
// selector's default strategy for unstructured prose.
type RecursiveChunker struct {
	chunkSize int
	overlap   int
}

// NewRecursiveChunker creates a RecursiveChunker. It fails with *ErrConfig
// when the overlap is not smaller than the chunk size.
func NewRecursiveChunker(opts ...Option) (*RecursiveChunker, error) {
	cfg := applyOptions(opts)
	if err := validateWindow("recursive", cfg.chunkSize, cfg.chunkOverlap); err != nil {
		return nil, err
	}
	return &RecursiveChunker{chunkSize: cfg.chunkSize, overlap: cfg.chunkOverlap}, nil
}

// Split splits the document into overlapping chunks.
func (c *RecursiveChunker) Split(doc Document) []Chunk {
	var chunks []Chunk
	for _, t := range c.splitText(cleanText(doc.Text)) {
		chunks = append(chunks, newChunk(doc, StrategyRecursive, t))
	}
	return numberChunks(chunks)
}

func (c *RecursiveChunker) splitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if runeLen(text) <= c.chunkSize {
		return []string{text}
	}
	segments := c.splitSegments(text)
	return packUnits(segments, "\n", c.chunkSize, c.overlap)
}

// splitSegments breaks text into units no larger than chunkSize, trying
// paragraph boundaries first, then sentences, then words.
func (c *RecursiveChunker) splitSegments(text string) []string {
	paragraphs := splitParagraphs(text)
	if len(paragraphs) > 1 {
		var segments []string
		for _, p := range paragraphs {
			if runeLen(p) <= c.chunkSize {
				segments = append(segments, p)
			} else {
				segments = append(segments, c.splitSentenceSegments(p)...)
			}
		}
		return segments
	}
	return c.splitSentenceSegments(text)
}

func (c *RecursiveChunker) splitSentenceSegments(text string) []string {
	sentences := Sentences(text)
	if len(sentences) <= 1 {
		return splitOnWords(text, c.chunkSize)
	}

	var segments []string
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if runeLen(s) <= c.chunkSize {
			segments = append(segments, s)
		} else {
			segments = append(segments, splitOnWords(s, c.chunkSize)...)
		}
	}
	return segments
}

// splitOnWords packs whitespace-separated words into segments of at most
// maxRunes each. A single word longer than maxRunes is cut at rune
// boundaries.
func splitOnWords(text string, maxRunes int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var segments []string
	var current strings.Builder
	currentRunes := 0

	for _, word := range words {
		wordRunes := runeLen(word)
		if wordRunes > maxRunes {
			if currentRunes > 0 {
				segments = append(segments, current.String())
				current.Reset()
				currentRunes = 0
			}
			runes := []rune(word)
			for i := 0; i < len(runes); i += maxRunes {
				end := min(i+maxRunes, len(runes))
				segments = append(segments, string(runes[i:end]))
			}
			continue
		}

		needed := wordRunes
		if currentRunes > 0 {
			needed = currentRunes + 1 + wordRunes
		}
		if needed > maxRunes {
			segments = append(segments, current.String())
			current.Reset()
			currentRunes = 0
		}
		if currentRunes > 0 {
			current.WriteByte(' ')
			currentRunes++
		}
		current.WriteString(word)
		currentRunes += wordRunes
	}

	if currentRunes > 0 {
		segments = append(segments, current.String())
	}
	return segments
}
