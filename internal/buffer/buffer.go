package buffer

import (
	"github.com/rivo/uniseg"
)

// Buffer is the text being edited together with the cursor position.
//
// Cursor is a grapheme index, i.e. the number of grapheme clusters in Text
// before the cursor, not a byte offset. It always holds that
// 0 <= Cursor <= GraphemeCount().
type Buffer struct {
	Text   string
	Cursor int
}

// GraphemeCount returns the number of grapheme clusters in the text.
func (b *Buffer) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(b.Text)
}

// IsEmpty returns whether the buffer has no text.
func (b *Buffer) IsEmpty() bool { return b.Text == "" }

// AtEnd returns whether the cursor is past the last grapheme.
func (b *Buffer) AtEnd() bool {
	return b.Cursor >= b.GraphemeCount()
}

// ByteOffset returns the byte offset in the text the cursor corresponds to.
func (b *Buffer) ByteOffset() int {
	return GraphemeOffset(b.Text, b.Cursor)
}

// TextBeforeCursor returns the part of the text before the cursor.
func (b *Buffer) TextBeforeCursor() string {
	return b.Text[:b.ByteOffset()]
}

// Insert inserts the given character at the cursor and moves the cursor past
// it.
//
// If the character combines with the grapheme before the cursor (e.g. a
// combining accent), the cursor stays after that now-extended grapheme.
func (b *Buffer) Insert(c rune) {
	offset := b.ByteOffset()
	s := string(c)
	b.Text = b.Text[:offset] + s + b.Text[offset:]
	b.Cursor = GraphemeIndex(b.Text, offset+len(s))
	b.clamp()
}

// MoveLeft moves the cursor one grapheme to the left, stopping at the start.
func (b *Buffer) MoveLeft() {
	if b.Cursor > 0 {
		b.Cursor--
	}
	b.clamp()
}

// MoveRight moves the cursor one grapheme to the right, stopping at the end.
func (b *Buffer) MoveRight() {
	if !b.AtEnd() {
		b.Cursor++
	}
	b.clamp()
}

// MoveBigWordForwards moves the cursor to the start of the next bigword.
func (b *Buffer) MoveBigWordForwards() {
	b.Cursor = GraphemeIndex(b.Text, BigWordForwards(b.Text, b.ByteOffset()))
}

// MoveBigWordBackwards moves the cursor to the start of the previous (or
// current) bigword.
func (b *Buffer) MoveBigWordBackwards() {
	b.Cursor = GraphemeIndex(b.Text, BigWordBackwards(b.Text, b.ByteOffset()))
}

func (b *Buffer) clamp() {
	if b.Cursor < 0 {
		b.Cursor = 0
	}
	if count := b.GraphemeCount(); b.Cursor > count {
		b.Cursor = count
	}
}
