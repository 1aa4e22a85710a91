package helpers

import (
	"strings"
)

// SplitSentences splits text on sentence-terminal punctuation (., ?, !)
// followed by whitespace, discarding empty fragments. Boundaries are naive:
// abbreviations, decimals and quoted punctuation are not treated specially.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if (r == '.' || r == '?' || r == '!') && i+1 < len(runes) && isSpace(runes[i+1]) {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
			// Skip the whitespace run separating sentences.
			for i+1 < len(runes) && isSpace(runes[i+1]) {
				i++
			}
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// SentenceBlocks groups the sentences of text into blocks of size sentences
// each, joined with single spaces; the last block may be shorter. Original
// order is preserved. Empty input yields no blocks.
func SentenceBlocks(text string, size int) []string {
	if size <= 0 {
		size = 3
	}
	sentences := SplitSentences(text)
	var blocks []string
	for i := 0; i < len(sentences); i += size {
		end := i + size
		if end > len(sentences) {
			end = len(sentences)
		}
		blocks = append(blocks, strings.Join(sentences[i:end], " "))
	}
	return blocks
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
