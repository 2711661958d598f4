package quarry

import (
	"slices"
	"strings"
)

var _ Chunker = (*StructuralChunker)(nil)

// StructuralChunker segments markdown-like text by its heading hierarchy.
// Each section becomes one chunk carrying its title and breadcrumb path;
// oversized sections fall back to greedy paragraph packing, undersized
// siblings merge, and every chunk is prefixed with a breadcrumb header so
// it stays self-describing after retrieval.
type StructuralChunker struct {
	chunkSize    int
	minChunk     int
	overlapRatio float64
}

// NewStructuralChunker creates a StructuralChunker. The overlap ratio sizes
// the breadcrumb-prefix budget and must be in [0, 1].
func NewStructuralChunker(opts ...Option) (*StructuralChunker, error) {
	cfg := applyOptions(opts)
	if cfg.chunkSize <= 0 {
		return nil, configErr("structure", "chunk size must be positive, got %d", cfg.chunkSize)
	}
	if cfg.minChunk < 0 {
		return nil, configErr("structure", "min chunk must not be negative, got %d", cfg.minChunk)
	}
	if cfg.overlapRatio < 0 || cfg.overlapRatio > 1 {
		return nil, configErr("structure", "overlap ratio must be in [0,1], got %g", cfg.overlapRatio)
	}
	return &StructuralChunker{
		chunkSize:    cfg.chunkSize,
		minChunk:     cfg.minChunk,
		overlapRatio: cfg.overlapRatio,
	}, nil
}

// Split segments the document by heading structure.
func (c *StructuralChunker) Split(doc Document) []Chunk {
	return c.sectionChunks(doc, StrategyStructure)
}

// section is one heading-delimited region of the document. Breadcrumbs hold
// the full heading chain, nearest-last, including the section's own title.
type section struct {
	title  string
	level  int
	crumbs []string
	body   string
}

// sectionChunk is a chunk under construction, before metadata assembly.
type sectionChunk struct {
	text    string
	section section
}

// sectionChunks runs the full structural pipeline. The strategy parameter
// lets HierarchicalChunker reuse it for parent-level chunks.
func (c *StructuralChunker) sectionChunks(doc Document, strategy Strategy) []Chunk {
	text := cleanText(doc.Text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var pending []sectionChunk
	for _, sec := range parseSections(text) {
		if runeLen(sec.body) <= c.chunkSize {
			pending = append(pending, sectionChunk{text: sec.body, section: sec})
			continue
		}
		// Oversized section: greedily pack blank-line-delimited paragraphs.
		// A single paragraph over budget stays one oversized chunk.
		for _, part := range packUnits(splitParagraphs(sec.body), "\n\n", c.chunkSize, 0) {
			pending = append(pending, sectionChunk{text: part, section: sec})
		}
	}

	pending = c.mergeUndersized(pending)
	c.prefixBreadcrumbs(pending)

	var chunks []Chunk
	for _, sc := range pending {
		ch := newChunk(doc, strategy, sc.text)
		ch.Meta.SectionTitle = sc.section.title
		ch.Meta.Breadcrumbs = sc.section.crumbs
		ch.Meta.SectionLevel = sc.section.level
		chunks = append(chunks, ch)
	}
	return numberChunks(chunks)
}

// parseSections scans the token stream, tracking the heading stack. Heading
// lines inside fenced code blocks are body text, not section boundaries.
func parseSections(text string) []section {
	var sections []section
	var stack []section // only title/level used

	cur := section{}
	var lines []string

	closeSection := func() {
		body := strings.TrimSpace(strings.Join(lines, "\n"))
		if body != "" {
			cur.body = body
			sections = append(sections, cur)
		}
		lines = nil
	}

	for _, tok := range tokenizeLines(text, nil) {
		if tok.kind != tokenHeading {
			lines = append(lines, tok.line)
			continue
		}
		closeSection()
		for len(stack) > 0 && stack[len(stack)-1].level >= tok.level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, section{title: tok.title, level: tok.level})
		crumbs := make([]string, len(stack))
		for i, s := range stack {
			crumbs[i] = s.title
		}
		cur = section{title: tok.title, level: tok.level, crumbs: crumbs}
	}
	closeSection()
	return sections
}

// mergeUndersized appends chunks shorter than minChunk to their predecessor
// when both share the exact same breadcrumb path.
func (c *StructuralChunker) mergeUndersized(pending []sectionChunk) []sectionChunk {
	var merged []sectionChunk
	for _, sc := range pending {
		if len(merged) > 0 && runeLen(sc.text) < c.minChunk {
			prev := &merged[len(merged)-1]
			if slices.Equal(prev.section.crumbs, sc.section.crumbs) {
				prev.text += "\n\n" + sc.text
				continue
			}
		}
		merged = append(merged, sc)
	}
	return merged
}

// prefixBreadcrumbs prepends a breadcrumb header built from the last three
// breadcrumb levels, e.g. "[A > B > C]". Texts that already start with the
// header are left alone, so the pass is idempotent. Headers longer than the
// overlap-ratio budget are skipped.
func (c *StructuralChunker) prefixBreadcrumbs(pending []sectionChunk) {
	budget := int(c.overlapRatio * float64(c.chunkSize))
	for i := range pending {
		crumbs := pending[i].section.crumbs
		if len(crumbs) == 0 {
			continue
		}
		tail := crumbs
		if len(tail) > 3 {
			tail = tail[len(tail)-3:]
		}
		prefix := "[" + strings.Join(tail, " > ") + "]"
		if runeLen(prefix) > budget {
			continue
		}
		if strings.HasPrefix(pending[i].text, prefix) {
			continue
		}
		pending[i].text = prefix + "\n" + pending[i].text
	}
}
