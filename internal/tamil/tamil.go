// Package tamil holds the client-side checks run on input text before it is
// sent for analysis.
package tamil

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// Tamil Unicode block
const (
	BlockStart = '\u0B80'
	BlockEnd   = '\u0BFF'
)

var (
	ErrEmptyInput    = errors.New("தயவுசெய்து உரையை உள்ளிடவும் (Please enter some text)")
	ErrNoTamilScript = errors.New("தயவுசெய்து தமிழ் உரையை உள்ளிடவும் (Please enter Tamil text)")
)

// Validate trims text and checks, in order, that it is not empty and that it
// contains at least one Tamil character. The trimmed text is returned.
func Validate(text string) (string, error) {
	text = strings.TrimFunc(text, isTrimmed)

	if text == "" {
		return "", ErrEmptyInput
	}
	if !HasScript(text) {
		return "", ErrNoTamilScript
	}

	return text, nil
}

// isTrimmed matches what a browser's String.prototype.trim removes, which
// includes the byte order mark.
func isTrimmed(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func HasScript(text string) bool {
	return strings.ContainsFunc(text, IsTamil)
}

func IsTamil(r rune) bool {
	return r >= BlockStart && r <= BlockEnd
}

// CharCount returns the length of text in UTF-16 code units, the figure a
// browser text field reports.
func CharCount(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}

	return n
}

// Letters counts user-perceived characters. A Tamil consonant with its vowel
// sign is one letter but two code points.
func Letters(text string) int {
	return uniseg.GraphemeClusterCount(text)
}
