package ui

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Glyph is a grapheme cluster placed onto the cells of a terminal.
type Glyph struct {
	Cluster string
	Col     int
	Row     int
	Width   int
}

// Wrap lays out the grapheme clusters of the given text row by row within the
// given width. A new row is started whenever the next cluster would not fit
// into the current one; a cluster wider than the entire width gets a row of its
// own.
func Wrap(text string, width int) []Glyph {
	if width <= 0 {
		return nil
	}

	glyphs := make([]Glyph, 0, len(text))
	col, row := 0, 0
	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		w := ClusterWidth(cluster)
		if col > 0 && col+w > width {
			col = 0
			row++
		}
		glyphs = append(glyphs, Glyph{Cluster: cluster, Col: col, Row: row, Width: w})
		col += w
	}
	return glyphs
}

// ClusterWidth returns the number of cells the given grapheme cluster takes
// up. Every cluster takes up at least one cell, so that a cursor on it is
// visible.
func ClusterWidth(cluster string) int {
	return max(runewidth.StringWidth(cluster), 1)
}

// CursorCell returns the cell of the cursor at the given grapheme index of the
// wrapped glyphs. An index past the last glyph is placed after it, wrapping if
// the row is full.
func CursorCell(glyphs []Glyph, index int, width int) (col, row int) {
	switch {
	case len(glyphs) == 0 || index < 0:
		return 0, 0
	case index < len(glyphs):
		return glyphs[index].Col, glyphs[index].Row
	}

	last := glyphs[len(glyphs)-1]
	col, row = last.Col+last.Width, last.Row
	if col >= width {
		col, row = 0, row+1
	}
	return col, row
}
