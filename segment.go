package quarry

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations that should NOT be treated as sentence boundaries.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true,
	"prof": true, "sr": true, "jr": true,
	"vs": true, "etc": true, "inc": true, "ltd": true,
	"e.g": true, "i.e": true, "viz": true, "al": true,
	"approx": true, "dept": true, "est": true,
	"fig": true, "no": true, "vol": true,
}

// Sentences splits text into sentences. A sentence is the longest run of
// characters ending in one or more terminal marks (。！？； and their ASCII
// counterparts .!?;), plus any trailing remainder with no terminal mark at
// end of input. An ASCII dot inside a decimal number (3.14) or after a
// common abbreviation (Mr., e.g.) is not terminal. Empty input returns nil.
//
// The concatenation of the returned sentences is exactly the input text.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	pos := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !isTerminal(text, pos, r) {
			pos += size
			continue
		}
		// Consume the full run of terminal marks (e.g. "？！").
		end := pos + size
		for end < len(text) {
			nr, nsize := utf8.DecodeRuneInString(text[end:])
			if !isTerminal(text, end, nr) {
				break
			}
			end += nsize
		}
		sentences = append(sentences, text[start:end])
		start = end
		pos = end
	}

	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

func isTerminal(text string, pos int, r rune) bool {
	switch r {
	case '。', '！', '？', '；', '!', '?', ';':
		return true
	case '.':
		return !isDecimalDot(text, pos) && !isAbbreviation(text, pos)
	}
	return false
}

// isDecimalDot checks if the dot at dotPos is part of a number (e.g. 3.14, $1.50).
func isDecimalDot(text string, dotPos int) bool {
	if dotPos == 0 || dotPos+1 >= len(text) {
		return false
	}
	prevByte := text[dotPos-1]
	nextByte := text[dotPos+1]
	return prevByte >= '0' && prevByte <= '9' && nextByte >= '0' && nextByte <= '9'
}

// isAbbreviation checks if the text ending at the dot at dotPos is a common
// abbreviation.
func isAbbreviation(text string, dotPos int) bool {
	// Walk backward to find the start of the word before the dot.
	start := dotPos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		start -= size
	}
	word := strings.ToLower(text[start:dotPos])
	return abbreviations[word]
}
