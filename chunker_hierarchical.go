package quarry

var _ Chunker = (*HierarchicalChunker)(nil)

// HierarchicalChunker emits explicit two-level parent/child chunk pairs:
// parents follow the document's heading structure, children are
// sentence-packed slices of their parent. Every parent precedes its
// children in the returned sequence.
type HierarchicalChunker struct {
	parent *StructuralChunker
	child  *SentenceChunker
}

// NewHierarchicalChunker creates a HierarchicalChunker from the
// parent/child size options.
func NewHierarchicalChunker(opts ...Option) (*HierarchicalChunker, error) {
	cfg := applyOptions(opts)
	if err := validateWindow("parent_child.child", cfg.childSize, cfg.childOverlap); err != nil {
		return nil, err
	}
	parent, err := NewStructuralChunker(
		WithChunkSize(cfg.parentSize),
		WithMinChunk(cfg.minChunk),
		WithOverlapRatio(cfg.overlapRatio),
	)
	if err != nil {
		return nil, err
	}
	child, err := NewSentenceChunker(WithChunkSize(cfg.childSize), WithChunkOverlap(cfg.childOverlap))
	if err != nil {
		return nil, err
	}
	return &HierarchicalChunker{parent: parent, child: child}, nil
}

// Split interleaves each parent chunk with all of its children.
func (c *HierarchicalChunker) Split(doc Document) []Chunk {
	parents := c.parent.sectionChunks(doc, StrategyParentChild)
	if len(parents) == 0 {
		return nil
	}

	var chunks []Chunk
	for parentID, parent := range parents {
		childTexts := c.child.splitText(parent.Text)

		parent.Meta.ChunkType = ChunkTypeParent
		parent.Meta.ParentID = parentID
		parent.Meta.ChildCount = len(childTexts)
		chunks = append(chunks, parent)

		for childID, childText := range childTexts {
			ch := newChunk(doc, StrategyParentChild, childText)
			ch.Meta.ChunkType = ChunkTypeChild
			ch.Meta.ParentID = parentID
			ch.Meta.ChildID = childID
			ch.Meta.ParentTitle = parent.Meta.SectionTitle
			ch.Meta.Breadcrumbs = parent.Meta.Breadcrumbs
			chunks = append(chunks, ch)
		}
	}
	return numberChunks(chunks)
}
