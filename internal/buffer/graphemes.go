package buffer

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// grapheme is a single grapheme cluster and its byte offset in the string it
// was taken from.
type grapheme struct {
	offset int
	text   string
}

func splitGraphemes(s string) []grapheme {
	if s == "" {
		return nil
	}
	result := make([]grapheme, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		from, _ := g.Positions()
		result = append(result, grapheme{offset: from, text: g.Str()})
	}
	return result
}

// isWhitespace returns whether all of the cluster's runes are whitespace.
func isWhitespace(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// GraphemeOffset returns the byte offset of the grapheme with the given index
// in s. Indices past the end give len(s).
func GraphemeOffset(s string, index int) int {
	if index <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(s)
	for i := 0; g.Next(); i++ {
		if i == index {
			from, _ := g.Positions()
			return from
		}
	}
	return len(s)
}

// GraphemeIndex returns the index of the grapheme starting at the given byte
// offset in s, i.e. the number of grapheme clusters before it.
func GraphemeIndex(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(s) {
		offset = len(s)
	}
	return uniseg.GraphemeClusterCount(s[:offset])
}

// TrimLastGrapheme returns s without its last grapheme cluster.
// An empty string stays empty.
func TrimLastGrapheme(s string) string {
	graphemes := splitGraphemes(s)
	if len(graphemes) == 0 {
		return s
	}
	return s[:graphemes[len(graphemes)-1].offset]
}
