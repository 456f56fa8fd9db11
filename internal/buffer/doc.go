// Package buffer implements the text buffer of the editor: the text content,
// a cursor expressed as a grapheme cluster index, and vi-style motions over
// that text.
//
// The buffer knows nothing of modes or key inputs.
package buffer
