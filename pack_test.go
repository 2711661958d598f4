package quarry

import (
	"strings"
	"testing"
)

func TestPackUnitsRespectsSize(t *testing.T) {
	units := []string{"aaaa", "bbbb", "cccc", "dddd", "eeee"}
	chunks := packUnits(units, " ", 10, 0)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %v", chunks)
	}
	for _, c := range chunks {
		if runeLen(c) > 10 {
			t.Errorf("chunk %q exceeds size", c)
		}
	}
}

func TestPackUnitsOversizedUnit(t *testing.T) {
	units := []string{"short", strings.Repeat("x", 50), "tail"}
	chunks := packUnits(units, " ", 10, 0)
	found := false
	for _, c := range chunks {
		if strings.Contains(c, strings.Repeat("x", 50)) {
			found = true
			if strings.Contains(c, "short") || strings.Contains(c, "tail") {
				t.Errorf("oversized unit not emitted alone: %q", c)
			}
		}
	}
	if !found {
		t.Error("oversized unit missing from output")
	}
}

func TestPackUnitsOverlapSeed(t *testing.T) {
	units := []string{strings.Repeat("a", 8), strings.Repeat("b", 8)}
	chunks := packUnits(units, "", 12, 3)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %v", chunks)
	}
	if !strings.HasPrefix(chunks[1], "aaa") {
		t.Errorf("second chunk not seeded with overlap: %q", chunks[1])
	}
}

func TestPackUnitsNeverEmpty(t *testing.T) {
	chunks := packUnits([]string{"", "x", ""}, "\n", 5, 0)
	for _, c := range chunks {
		if strings.TrimSpace(c) == "" {
			t.Error("empty chunk emitted")
		}
	}
}

func TestTailRunes(t *testing.T) {
	if got := tailRunes("你好世界", 2); got != "世界" {
		t.Errorf("expected 世界, got %q", got)
	}
	if got := tailRunes("ab", 5); got != "ab" {
		t.Errorf("expected ab, got %q", got)
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("one\n\ntwo\n\n\n\nthree")
	if len(got) != 3 {
		t.Errorf("expected 3 paragraphs, got %d: %v", len(got), got)
	}
}
