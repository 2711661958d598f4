package quarry

import (
	"slices"
	"strings"
)

var _ Chunker = (*DialogueChunker)(nil)

// UnknownSpeaker labels lines appearing before any recognized speaker tag.
const UnknownSpeaker = "Unknown"

// DialogueChunker parses speaker-tagged turns ("User: ...", "助手：...")
// and windows them into chunks bounded by a turn count and a character
// budget, repeating trailing turns across windows for context continuity.
type DialogueChunker struct {
	maxTurns     int
	maxChars     int
	overlapTurns int
	labels       []string
}

// NewDialogueChunker creates a DialogueChunker. Turn and character budgets
// must be positive; the overlap may be any non-negative value because the
// window advance is clamped to at least one turn.
func NewDialogueChunker(opts ...Option) (*DialogueChunker, error) {
	cfg := applyOptions(opts)
	if cfg.maxTurns <= 0 {
		return nil, configErr("dialogue", "max turns must be positive, got %d", cfg.maxTurns)
	}
	if cfg.maxChars <= 0 {
		return nil, configErr("dialogue", "max chars must be positive, got %d", cfg.maxChars)
	}
	if cfg.overlapTurns < 0 {
		return nil, configErr("dialogue", "overlap turns must not be negative, got %d", cfg.overlapTurns)
	}
	if len(cfg.speakers) == 0 {
		return nil, configErr("dialogue", "at least one speaker label is required")
	}
	return &DialogueChunker{
		maxTurns:     cfg.maxTurns,
		maxChars:     cfg.maxChars,
		overlapTurns: cfg.overlapTurns,
		labels:       cfg.speakers,
	}, nil
}

// turn is one speaker's utterance, possibly spanning multiple lines.
type turn struct {
	speaker string
	text    string // raw lines including the speaker tag
}

// Split windows the parsed turns into chunks.
func (c *DialogueChunker) Split(doc Document) []Chunk {
	turns := c.parseTurns(cleanText(doc.Text))
	if len(turns) == 0 {
		return nil
	}

	var chunks []Chunk
	i := 0
	for i < len(turns) {
		length := c.windowLength(turns[i:])
		window := turns[i : i+length]

		texts := make([]string, len(window))
		speakers := make([]string, 0, len(window))
		for j, t := range window {
			texts[j] = t.text
			if !slices.Contains(speakers, t.speaker) {
				speakers = append(speakers, t.speaker)
			}
		}
		slices.Sort(speakers)

		ch := newChunk(doc, StrategyDialogue, strings.Join(texts, "\n"))
		ch.Meta.Speakers = speakers
		ch.Meta.TurnStart = i
		ch.Meta.TurnEnd = i + length - 1
		ch.Meta.TurnCount = length
		chunks = append(chunks, ch)

		if i+length >= len(turns) {
			break
		}
		// The +1 floor guarantees forward progress even when the overlap
		// covers the whole window.
		i = max(i+length-c.overlapTurns, i+1)
	}
	return numberChunks(chunks)
}

// windowLength grows a window from the first remaining turn while both the
// turn and character budgets hold. An oversized first turn is taken alone.
func (c *DialogueChunker) windowLength(turns []turn) int {
	length := 0
	chars := 0
	for _, t := range turns {
		if length >= c.maxTurns {
			break
		}
		turnChars := runeLen(t.text)
		if length > 0 && chars+1+turnChars > c.maxChars {
			break
		}
		length++
		chars += turnChars + 1
	}
	if length == 0 {
		length = 1
	}
	return length
}

// parseTurns groups lines into turns. Lines before the first recognized
// speaker tag collapse into a single Unknown turn; untagged lines after a
// tag continue the current turn.
func (c *DialogueChunker) parseTurns(text string) []turn {
	var turns []turn
	var cur *turn
	var preamble []string

	flushPreamble := func() {
		body := strings.TrimSpace(strings.Join(preamble, "\n"))
		if body != "" {
			turns = append(turns, turn{speaker: UnknownSpeaker, text: body})
		}
		preamble = nil
	}

	for _, tok := range tokenizeLines(text, c.labels) {
		if tok.kind == tokenSpeaker {
			flushPreamble()
			if cur != nil {
				turns = append(turns, *cur)
			}
			cur = &turn{speaker: tok.speaker, text: strings.TrimSpace(tok.line)}
			continue
		}
		if cur == nil {
			preamble = append(preamble, tok.line)
			continue
		}
		if strings.TrimSpace(tok.line) != "" {
			cur.text += "\n" + strings.TrimSpace(tok.line)
		}
	}
	flushPreamble()
	if cur != nil {
		turns = append(turns, *cur)
	}
	return turns
}
