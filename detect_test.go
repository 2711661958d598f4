package quarry

import (
	"strings"
	"testing"
)

func TestDetectEmpty(t *testing.T) {
	d := NewFeatureDetector()
	f := d.Detect("   \n  ")
	if f != (Features{}) {
		t.Errorf("expected zero features, got %+v", f)
	}
}

func TestDetectMarkdown(t *testing.T) {
	d := NewFeatureDetector()
	text := "# Title\n\nIntro paragraph.\n\n## Section\n\n- one\n- two\n\n```go\nfmt.Println()\n```"
	f := d.Detect(text)
	if !f.IsMarkdown {
		t.Error("expected markdown")
	}
	if f.HeadingCount != 2 {
		t.Errorf("expected 2 headings, got %d", f.HeadingCount)
	}
	if !f.HasStructure {
		t.Error("expected structure")
	}
	if f.IsDialogue {
		t.Error("markdown doc misread as dialogue")
	}
}

func TestDetectSingleSignalNotMarkdown(t *testing.T) {
	d := NewFeatureDetector()
	f := d.Detect("# Only Heading\n\nplain prose after it, nothing else.")
	if f.IsMarkdown {
		t.Error("one signal type should not count as markdown")
	}
	if f.HeadingCount != 1 {
		t.Errorf("expected 1 heading, got %d", f.HeadingCount)
	}
}

func TestDetectFencedHeadingIgnored(t *testing.T) {
	d := NewFeatureDetector()
	f := d.Detect("```\n# not a heading\n## also not\n```\n\nprose")
	if f.HeadingCount != 0 {
		t.Errorf("fenced headings counted: %d", f.HeadingCount)
	}
}

func TestDetectDialogue(t *testing.T) {
	d := NewFeatureDetector()
	text := "User: hello\nAssistant: hi\nUser: how are you\nAssistant: fine"
	f := d.Detect(text)
	if !f.IsDialogue {
		t.Error("expected dialogue")
	}
	if f.SpeakerLines != 4 {
		t.Errorf("expected 4 speaker lines, got %d", f.SpeakerLines)
	}
}

func TestDetectTwoSpeakerLinesNotDialogue(t *testing.T) {
	d := NewFeatureDetector()
	f := d.Detect("User: hello\nAssistant: hi\nplain closing line")
	if f.IsDialogue {
		t.Error("two speaker lines should not count as dialogue")
	}
}

func TestDetectSentenceAndParagraphStats(t *testing.T) {
	d := NewFeatureDetector()
	text := "短句。短句。\n\n" + strings.Repeat("长", 96) + "。"
	f := d.Detect(text)
	if f.ParagraphCount != 2 {
		t.Errorf("expected 2 paragraphs, got %d", f.ParagraphCount)
	}
	if f.AvgSentenceLen <= 0 {
		t.Errorf("expected positive avg sentence length, got %f", f.AvgSentenceLen)
	}
}

func TestDetectCustomLabels(t *testing.T) {
	d := NewFeatureDetector("Agent:", "Caller:")
	text := "Agent: hello\nCaller: hi\nAgent: anything else\nUser: ignored label"
	f := d.Detect(text)
	if f.SpeakerLines != 3 {
		t.Errorf("expected 3 speaker lines with custom labels, got %d", f.SpeakerLines)
	}
}
