package buffer

// Motions follow those of POSIX vi:
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/vi.html
//
// A bigword is a maximal run of non-whitespace grapheme clusters.
// The motions here take and return byte offsets into the text, which must lie
// on grapheme boundaries; they iterate grapheme clusters, so combining
// sequences move as single units.

func clampOffset(text string, index int) int {
	switch {
	case index < 0:
		return 0
	case index > len(text):
		return len(text)
	default:
		return index
	}
}

// BigWordForwards returns the offset of the start of the next bigword after
// index.
//
// From inside a bigword this moves past its remainder and the whitespace
// following it, from inside whitespace it moves to the start of the next
// bigword. When no grapheme follows the one at index, index is returned.
//
//	"hi   there" (1) -> 5
func BigWordForwards(text string, index int) int {
	index = clampOffset(text, index)
	graphemes := splitGraphemes(text[index:])

	last := 0
	for i := 0; i+1 < len(graphemes); i++ {
		curr, next := graphemes[i], graphemes[i+1]
		last = next.offset
		// stop on the first grapheme of a bigword that follows whitespace
		if isWhitespace(curr.text) && !isWhitespace(next.text) {
			break
		}
	}
	return index + last
}

// BigWordBackwards returns the offset of the start of the bigword before
// index.
//
// Whitespace directly preceding index is skipped first, so that from the
// start of a bigword (or from within whitespace) this moves to the start of
// the previous bigword, and from inside a bigword to the start of that
// bigword. At the start of the text, index is returned.
//
//	"hi   there" (6) -> 5
//	"hi   there" (5) -> 0
func BigWordBackwards(text string, index int) int {
	index = clampOffset(text, index)
	if index == 0 {
		return index
	}

	trimmed := trimTrailingWhitespace(text[:index])
	graphemes := splitGraphemes(trimmed)

	start := len(trimmed)
	for i := len(graphemes) - 1; i >= 0; i-- {
		if isWhitespace(graphemes[i].text) {
			break
		}
		start = graphemes[i].offset
	}
	return start
}

// trims whole whitespace clusters, never splitting one
func trimTrailingWhitespace(s string) string {
	graphemes := splitGraphemes(s)
	end := len(s)
	for i := len(graphemes) - 1; i >= 0 && isWhitespace(graphemes[i].text); i-- {
		end = graphemes[i].offset
	}
	return s[:end]
}
