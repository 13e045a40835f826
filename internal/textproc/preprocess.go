// Package textproc holds the display-only normalization applied to each
// question before it is sent.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// nonWord matches every rune that is neither a word character nor
// whitespace. Word characters are Unicode letters, Unicode numbers and '_';
// combining marks are not word characters. Whitespace is the Unicode
// White_Space set plus the ASCII separators U+001C..U+001F, the same set
// isSpace splits on.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\p{Z}\x{85}\x{1C}-\x{1F}]`)

type View struct {
	Normalized string
	Tokens     []string
}

// Preprocess lowercases text, strips punctuation and splits the result on
// whitespace. It never fails and has no side effects.
func Preprocess(text string) View {
	normalized := Normalize(text)
	return View{
		Normalized: normalized,
		Tokens:     Tokenize(normalized),
	}
}

func Normalize(text string) string {
	return nonWord.ReplaceAllString(lower(text), "")
}

const (
	capitalSigma = '\u03a3'
	smallSigma   = '\u03c3'
	finalSigma   = '\u03c2'
)

// lower is strings.ToLower plus the Final_Sigma rule: a capital sigma that
// ends a word becomes ς instead of σ.
func lower(text string) string {
	if !strings.ContainsRune(text, capitalSigma) {
		return strings.ToLower(text)
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i, r := range runes {
		if r == capitalSigma {
			b.WriteRune(sigmaAt(runes, i))
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// sigmaAt picks the lowercase form of the capital sigma at runes[i]: final
// when a cased letter precedes it and none follows, skipping case-ignorable
// runes in both directions.
func sigmaAt(runes []rune, i int) rune {
	j := i - 1
	for j >= 0 && isCaseIgnorable(runes[j]) {
		j--
	}
	if j < 0 || !isCased(runes[j]) {
		return smallSigma
	}

	j = i + 1
	for j < len(runes) && isCaseIgnorable(runes[j]) {
		j++
	}
	if j < len(runes) && isCased(runes[j]) {
		return smallSigma
	}
	return finalSigma
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) ||
		unicode.In(r, unicode.Other_Lowercase, unicode.Other_Uppercase)
}

// midLetter holds the word-internal punctuation Unicode treats as
// case-ignorable (Word_Break MidLetter, MidNumLet and Single_Quote).
var midLetter = map[rune]bool{
	'\'': true, '.': true, ':': true, '\u00b7': true, '\u0387': true,
	'\u055f': true, '\u05f4': true, '\u2018': true, '\u2019': true,
	'\u2024': true, '\u2027': true, '\ufe13': true, '\ufe52': true,
	'\ufe55': true, '\uff07': true, '\uff0e': true, '\uff1a': true,
}

func isCaseIgnorable(r rune) bool {
	return midLetter[r] || unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}

// Tokenize splits text on runs of whitespace, dropping empty fragments. The
// result is never nil.
func Tokenize(text string) []string {
	tokens := strings.FieldsFunc(text, isSpace)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}
