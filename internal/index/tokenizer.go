// Package index implements the lexical ranking core: tokenization and
// an IDF-smoothed BM25 ranker with phrase boost.
package index

import (
	"strings"
	"unicode"
)

// minLatinTokenLen is the shortest Latin token kept by the tokenizer.
// Tokens of 2 characters or fewer are treated as noise.
const minLatinTokenLen = 3

// isCJK reports whether r falls in the CJK Unified Ideographs block.
func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// Tokenize normalizes text into index terms. The input is lower-cased,
// every rune that is neither alphanumeric, whitespace, nor CJK becomes
// a space, and the result is split on whitespace. CJK is unsegmented,
// so chunks containing a CJK rune are decomposed into one token per
// rune; Latin chunks are kept whole but dropped below minLatinTokenLen.
// Order and repetition are preserved; term frequency depends on both.
// Total over all inputs: any string yields a (possibly empty) slice.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	var tokens []string
	for _, chunk := range strings.Fields(b.String()) {
		if containsCJK(chunk) {
			for _, r := range chunk {
				tokens = append(tokens, string(r))
			}
			continue
		}
		if len([]rune(chunk)) >= minLatinTokenLen {
			tokens = append(tokens, chunk)
		}
	}
	return tokens
}

func containsCJK(s string) bool {
	for _, r := range s {
		if isCJK(r) {
			return true
		}
	}
	return false
}
