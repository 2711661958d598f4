package quarry

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Features summarizes the structural shape of a text, driving automatic
// strategy selection.
type Features struct {
	IsMarkdown     bool
	HeadingCount   int
	HasStructure   bool
	IsDialogue     bool
	SpeakerLines   int
	AvgSentenceLen float64
	ParagraphCount int
}

// FeatureDetector is a pure heuristic scorer: deterministic, no I/O.
// Markdown signals are counted on the goldmark AST; dialogue signals on
// speaker-labeled lines.
type FeatureDetector struct {
	md     goldmark.Markdown
	labels []string
}

// NewFeatureDetector creates a detector. Passing no labels uses the
// default speaker label set.
func NewFeatureDetector(labels ...string) *FeatureDetector {
	if len(labels) == 0 {
		labels = defaultSpeakerLabels
	}
	return &FeatureDetector{md: goldmark.New(), labels: labels}
}

// Detect scores text. Empty input yields the zero Features value.
func (d *FeatureDetector) Detect(text string) Features {
	if strings.TrimSpace(text) == "" {
		return Features{}
	}

	var f Features
	headings, fences, bullets, numbered := d.countMarkdownSignals(text)
	f.HeadingCount = headings
	f.HasStructure = headings >= 2

	signals := 0
	for _, n := range []int{headings, fences, bullets, numbered} {
		if n > 0 {
			signals++
		}
	}
	f.IsMarkdown = signals >= 2

	for _, line := range strings.Split(text, "\n") {
		if _, ok := matchSpeaker(strings.TrimSpace(line), d.labels); ok {
			f.SpeakerLines++
		}
	}
	f.IsDialogue = f.SpeakerLines >= 3

	sentences := Sentences(text)
	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += runeLen(s)
		}
		f.AvgSentenceLen = float64(total) / float64(len(sentences))
	}
	f.ParagraphCount = len(splitParagraphs(text))
	return f
}

// countMarkdownSignals walks the goldmark AST counting headings, fenced
// code blocks, and bullet/numbered list items.
func (d *FeatureDetector) countMarkdownSignals(text string) (headings, fences, bullets, numbered int) {
	source := []byte(text)
	root := d.md.Parser().Parse(gtext.NewReader(source))

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			headings++
		case *ast.FencedCodeBlock:
			fences++
		case *ast.List:
			items := n.ChildCount()
			if n.IsOrdered() {
				numbered += items
			} else {
				bullets += items
			}
		}
		return ast.WalkContinue, nil
	})
	return headings, fences, bullets, numbered
}
