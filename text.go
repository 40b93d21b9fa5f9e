package elematch

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Text is an immutable text value compared by content rather than surface
// form. The zero value is the empty text.
type Text struct {
	raw string
}

// NewText returns a Text wrapping the given raw string.
func NewText(raw string) Text {
	return Text{raw: raw}
}

// Raw returns the underlying raw string.
func (t Text) Raw() string {
	return t.raw
}

// Title returns the raw string with surrounding whitespace removed,
// suitable for display.
func (t Text) Title() string {
	return strings.TrimSpace(t.raw)
}

// Normalized returns the lower-cased, alphanumeric-only projection of the
// text. All similarity comparisons operate on this form. Normalization is
// deterministic and idempotent.
//
// This is where tokenization or lemmatization would hook in; for now the
// projection is purely character-level.
func (t Text) Normalized() string {
	var sb strings.Builder
	for _, r := range strings.ToLower(t.raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Equal reports whether two texts have identical normalized forms.
// Surface formatting, whitespace and case are ignored.
func (t Text) Equal(other Text) bool {
	return t.Normalized() == other.Normalized()
}

// Similarity returns the Ratcliff/Obershelp sequence-match ratio between the
// normalized forms of two texts: 2*M/T where M is the total length of the
// matching blocks and T the sum of both lengths. The result is symmetric,
// bounded in [0, 1], 1.0 iff the normalized forms are identical, and defined
// as 1.0 when both are empty.
func (t Text) Similarity(other Text) float64 {
	a := splitRunes(t.Normalized())
	b := splitRunes(other.Normalized())
	return difflib.NewMatcher(a, b).Ratio()
}

// splitRunes splits a string into one element per rune so the sequence
// matcher compares characters, not lines.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
