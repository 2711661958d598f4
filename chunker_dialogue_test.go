package quarry

import (
	"fmt"
	"strings"
	"testing"
)

func dialogueText(turns int) string {
	var b strings.Builder
	for i := 0; i < turns; i++ {
		speaker := "User"
		if i%2 == 1 {
			speaker = "Assistant"
		}
		fmt.Fprintf(&b, "%s: message number %d\n", speaker, i)
	}
	return b.String()
}

func TestDialogueWindowing(t *testing.T) {
	c, err := NewDialogueChunker(WithMaxTurns(10), WithOverlapTurns(2), WithMaxChars(4096))
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Split(Document{Text: dialogueText(12)})
	if len(chunks) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(chunks))
	}
	first, second := chunks[0].Meta, chunks[1].Meta
	if first.TurnStart != 0 || first.TurnEnd != 9 || first.TurnCount != 10 {
		t.Errorf("first window turns [%d,%d] count %d", first.TurnStart, first.TurnEnd, first.TurnCount)
	}
	if second.TurnStart != 8 || second.TurnEnd != 11 || second.TurnCount != 4 {
		t.Errorf("second window turns [%d,%d] count %d", second.TurnStart, second.TurnEnd, second.TurnCount)
	}
}

func TestDialogueOverlapRepeatsTurns(t *testing.T) {
	c, err := NewDialogueChunker(WithMaxTurns(4), WithOverlapTurns(1), WithMaxChars(4096))
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Split(Document{Text: dialogueText(8)})
	if len(chunks) < 2 {
		t.Fatal("expected multiple windows")
	}
	for i := 1; i < len(chunks); i++ {
		if chunks[i].Meta.TurnStart != chunks[i-1].Meta.TurnEnd {
			t.Errorf("window %d does not repeat the previous trailing turn", i)
		}
	}
}

func TestDialogueSpeakers(t *testing.T) {
	c, err := NewDialogueChunker()
	if err != nil {
		t.Fatal(err)
	}
	text := "User: hello\nAssistant: hi there\nUser: bye"
	chunks := c.Split(Document{Text: text})
	if len(chunks) != 1 {
		t.Fatalf("expected 1 window, got %d", len(chunks))
	}
	got := chunks[0].Meta.Speakers
	if len(got) != 2 || got[0] != "Assistant" || got[1] != "User" {
		t.Errorf("expected sorted speaker set, got %v", got)
	}
	if chunks[0].Meta.Strategy != StrategyDialogue {
		t.Errorf("unexpected strategy %s", chunks[0].Meta.Strategy)
	}
}

func TestDialoguePreambleTurn(t *testing.T) {
	c, err := NewDialogueChunker()
	if err != nil {
		t.Fatal(err)
	}
	text := "Support transcript from Monday.\n\nUser: my order is late\nAssistant: let me check"
	chunks := c.Split(Document{Text: text})
	if len(chunks) != 1 {
		t.Fatalf("expected 1 window, got %d", len(chunks))
	}
	speakers := chunks[0].Meta.Speakers
	found := false
	for _, s := range speakers {
		if s == UnknownSpeaker {
			found = true
		}
	}
	if !found {
		t.Errorf("preamble not attributed to %s: %v", UnknownSpeaker, speakers)
	}
	if chunks[0].Meta.TurnCount != 3 {
		t.Errorf("expected 3 turns, got %d", chunks[0].Meta.TurnCount)
	}
}

func TestDialogueMultilineTurn(t *testing.T) {
	c, err := NewDialogueChunker()
	if err != nil {
		t.Fatal(err)
	}
	text := "User: first line\nsecond line of the same turn\nAssistant: reply"
	chunks := c.Split(Document{Text: text})
	if len(chunks) != 1 || chunks[0].Meta.TurnCount != 2 {
		t.Fatalf("continuation line started a new turn: %v", chunks)
	}
	if !strings.Contains(chunks[0].Text, "second line of the same turn") {
		t.Error("continuation line lost")
	}
}

func TestDialogueCJKLabels(t *testing.T) {
	c, err := NewDialogueChunker()
	if err != nil {
		t.Fatal(err)
	}
	text := "用户：你好\n助手：你好，有什么可以帮您？\n用户：查订单"
	chunks := c.Split(Document{Text: text})
	if len(chunks) != 1 || chunks[0].Meta.TurnCount != 3 {
		t.Fatalf("CJK speaker labels not recognized: %v", chunks)
	}
}

func TestDialogueOversizedTurnAlone(t *testing.T) {
	c, err := NewDialogueChunker(WithMaxTurns(10), WithMaxChars(50))
	if err != nil {
		t.Fatal(err)
	}
	long := "User: " + strings.Repeat("x", 200)
	text := long + "\nAssistant: short reply"
	chunks := c.Split(Document{Text: text})
	if len(chunks) != 2 {
		t.Fatalf("expected oversized turn in its own window, got %d chunks", len(chunks))
	}
	if chunks[0].Meta.TurnCount != 1 {
		t.Errorf("oversized turn grouped with others: %d turns", chunks[0].Meta.TurnCount)
	}
}

func TestDialogueCharBudget(t *testing.T) {
	c, err := NewDialogueChunker(WithMaxTurns(100), WithOverlapTurns(0), WithMaxChars(60))
	if err != nil {
		t.Fatal(err)
	}
	chunks := c.Split(Document{Text: dialogueText(10)})
	if len(chunks) < 2 {
		t.Fatal("expected the char budget to force multiple windows")
	}
	for i, ch := range chunks {
		if ch.Meta.TurnCount > 1 && runeLen(ch.Text) > 60 {
			t.Errorf("window %d: %d runes over budget", i, runeLen(ch.Text))
		}
	}
}

func TestDialogueEmpty(t *testing.T) {
	c, err := NewDialogueChunker()
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Split(Document{Text: "   \n  "}); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestDialogueInvalidConfig(t *testing.T) {
	if _, err := NewDialogueChunker(WithMaxTurns(0)); err == nil {
		t.Error("expected error for zero max turns")
	}
	if _, err := NewDialogueChunker(WithSpeakerLabels()); err == nil {
		t.Error("expected error for empty speaker labels")
	}
}
