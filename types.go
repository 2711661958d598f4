package quarry

import "unicode/utf8"

// Strategy names a chunking algorithm.
type Strategy string

const (
	// StrategyAuto lets the selector pick a strategy from document features.
	StrategyAuto Strategy = "auto"
	// StrategyFixed splits into fixed-size overlapping character windows.
	StrategyFixed Strategy = "fixed"
	// StrategySentence packs sentences into size-bounded chunks.
	StrategySentence Strategy = "sentence"
	// StrategyRecursive splits by paragraphs, then sentences, then words.
	StrategyRecursive Strategy = "recursive"
	// StrategyStructure segments by markdown heading hierarchy.
	StrategyStructure Strategy = "structure"
	// StrategyDialogue windows speaker-tagged turns.
	StrategyDialogue Strategy = "dialogue"
	// StrategySmallBig emits dual-granularity small and big chunks.
	StrategySmallBig Strategy = "small_big"
	// StrategyParentChild emits explicit two-level parent/child chunks.
	StrategyParentChild Strategy = "parent_child"
)

// ChunkType distinguishes levels in dual-granularity and parent/child output.
type ChunkType string

const (
	ChunkTypeSmall  ChunkType = "small"
	ChunkTypeBig    ChunkType = "big"
	ChunkTypeParent ChunkType = "parent"
	ChunkTypeChild  ChunkType = "child"
)

// Document is an input unit owned by the caller. It is never mutated here.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]any
}

// NewDocument creates a Document with a generated ID and a copy of meta.
func NewDocument(text string, meta map[string]any) Document {
	m := make(map[string]any, len(meta))
	for k, v := range meta {
		m[k] = v
	}
	return Document{ID: NewID(), Text: text, Metadata: m}
}

// Chunk is one retrieval unit of text plus provenance metadata.
// Chunks are value types and are never mutated after a split returns.
type Chunk struct {
	Text string
	Meta Metadata
}

// Metadata is the fixed set of fields a strategy may attach to a chunk.
// Fields that do not apply to the producing strategy keep their zero value
// (-1 for the id references). Extra holds a copy of the source document's
// metadata, so strategy fields can never collide with caller keys.
type Metadata struct {
	ChunkID    int
	DocumentID string
	Strategy   Strategy
	ChunkSize  int

	// structure
	SectionTitle string
	Breadcrumbs  []string
	SectionLevel int

	// dialogue
	Speakers  []string
	TurnStart int
	TurnEnd   int
	TurnCount int

	// hierarchy
	ChunkType     ChunkType
	ParentID      int
	ChildID       int
	ChildCount    int
	ParentPreview string
	ParentTitle   string

	Extra map[string]any
}

// newChunk builds a chunk for doc with the common fields filled in.
// ChunkID is assigned later, once the full list for the document is known.
func newChunk(doc Document, strategy Strategy, text string) Chunk {
	extra := make(map[string]any, len(doc.Metadata))
	for k, v := range doc.Metadata {
		extra[k] = v
	}
	return Chunk{
		Text: text,
		Meta: Metadata{
			DocumentID: doc.ID,
			Strategy:   strategy,
			ChunkSize:  utf8.RuneCountInString(text),
			TurnStart: -1,
			TurnEnd:   -1,
			ParentID:  -1,
			ChildID:   -1,
			Extra:     extra,
		},
	}
}

// numberChunks assigns 0-based ChunkIDs in emit order.
func numberChunks(chunks []Chunk) []Chunk {
	for i := range chunks {
		chunks[i].Meta.ChunkID = i
	}
	return chunks
}
