package quarry

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// cleanText normalizes a document before chunking: CRLF line endings become
// LF and the text is brought to NFC so size accounting is stable across
// composed and decomposed input.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return norm.NFC.String(text)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// tailRunes returns the last n runes of s.
func tailRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := len(s); i > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		count++
		if count == n {
			return s[i:]
		}
	}
	return s
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// splitParagraphs returns the blank-line-delimited segments of text,
// trimmed, with empty segments dropped.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// packUnits greedily packs sequential units (sentences, paragraphs) into
// chunks of at most size runes, joined by sep. When a chunk flushes, the new
// buffer is seeded with the last overlap runes of the flushed text, but only
// when the flushed text is at least overlap runes long and the seed still
// leaves room for the next unit. A single unit longer than size becomes its
// own oversized chunk. Never returns an empty chunk.
func packUnits(units []string, sep string, size, overlap int) []string {
	var chunks []string
	var buf strings.Builder
	bufRunes := 0

	flush := func(next string) {
		flushed := buf.String()
		chunks = append(chunks, flushed)
		buf.Reset()
		bufRunes = 0
		if overlap > 0 && runeLen(flushed) >= overlap {
			seed := tailRunes(flushed, overlap)
			if runeLen(seed)+runeLen(sep)+runeLen(next) <= size {
				buf.WriteString(seed)
				bufRunes = runeLen(seed)
			}
		}
	}

	for _, unit := range units {
		if unit == "" {
			continue
		}
		unitRunes := runeLen(unit)
		needed := unitRunes
		if bufRunes > 0 {
			needed = bufRunes + runeLen(sep) + unitRunes
		}
		if bufRunes > 0 && needed > size {
			flush(unit)
		}
		if bufRunes > 0 {
			buf.WriteString(sep)
			bufRunes += runeLen(sep)
		}
		buf.WriteString(unit)
		bufRunes += unitRunes
	}

	if bufRunes > 0 {
		final := buf.String()
		if strings.TrimSpace(final) != "" {
			chunks = append(chunks, final)
		}
	}
	return chunks
}
