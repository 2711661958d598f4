package quarry

import (
	"regexp"
	"strings"
)

// tokenKind classifies one line of input text.
type tokenKind int

const (
	tokenPlain tokenKind = iota
	tokenBlank
	tokenHeading
	tokenFence
	tokenSpeaker
)

// lineToken is one line of text with its structural role resolved. Chunkers
// operate on the token stream instead of re-scanning raw text.
type lineToken struct {
	kind tokenKind
	line string // raw line without trailing newline

	// tokenHeading
	level int
	title string

	// tokenSpeaker
	speaker string
}

var headingRe = regexp.MustCompile(`^(#{1,6})[ \t]+(.+)$`)

// defaultSpeakerLabels are the turn prefixes recognized in dialogue
// transcripts, covering both ASCII and full-width colon forms.
var defaultSpeakerLabels = []string{
	"User:", "Assistant:", "System:", "Q:", "A:",
	"User：", "Assistant：", "System：",
	"用户:", "助手:", "客服:", "系统:", "问:", "答:",
	"用户：", "助手：", "客服：", "系统：", "问：", "答：",
}

// tokenizeLines scans text line by line. Fence delimiter lines (``` or ~~~)
// toggle an in-code flag; headings and speaker turns are only recognized
// outside code blocks. A nil speakers slice disables speaker recognition.
func tokenizeLines(text string, speakers []string) []lineToken {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	tokens := make([]lineToken, 0, len(lines))

	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isFenceDelimiter(trimmed) {
			inFence = !inFence
			tokens = append(tokens, lineToken{kind: tokenFence, line: line})
			continue
		}
		if inFence {
			tokens = append(tokens, lineToken{kind: tokenPlain, line: line})
			continue
		}
		if trimmed == "" {
			tokens = append(tokens, lineToken{kind: tokenBlank, line: line})
			continue
		}
		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			tokens = append(tokens, lineToken{
				kind:  tokenHeading,
				line:  line,
				level: len(m[1]),
				title: strings.TrimSpace(m[2]),
			})
			continue
		}
		if speaker, ok := matchSpeaker(trimmed, speakers); ok {
			tokens = append(tokens, lineToken{
				kind:    tokenSpeaker,
				line:    line,
				speaker: speaker,
			})
			continue
		}
		tokens = append(tokens, lineToken{kind: tokenPlain, line: line})
	}
	return tokens
}

func isFenceDelimiter(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// matchSpeaker reports whether line starts with one of the speaker labels.
// The returned speaker is the label without its trailing colon.
func matchSpeaker(line string, labels []string) (string, bool) {
	for _, label := range labels {
		if strings.HasPrefix(line, label) {
			return strings.TrimRight(label, ":："), true
		}
	}
	return "", false
}
