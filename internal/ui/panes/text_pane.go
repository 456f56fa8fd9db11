package panes

import (
	"github.com/pcaisse/vic/internal/state"
	"github.com/pcaisse/vic/internal/styling"
	"github.com/pcaisse/vic/internal/ui"
)

const textPaneCursorRequester = "text-pane"

// TextPane displays the buffer's text, wrapped at the pane's width, and places
// the cursor on it.
//
// If the cursor would be below the pane, the text is scrolled up far enough
// for the cursor's row to be the pane's last.
type TextPane struct {
	Leaf

	cursorController ui.CursorLocationRequestHandler
}

// Draw draws the buffer.
func (p *TextPane) Draw() {
	x, y, w, h := p.Dimensions()
	s := p.view()

	p.renderer.DrawBox(x, y, w, h, p.stylesheet.Text)
	if w <= 0 || h <= 0 {
		p.cursorController.Delete(textPaneCursorRequester)
		return
	}

	glyphs := ui.Wrap(s.Buffer.Text, w)
	cursorCol, cursorRow := ui.CursorCell(glyphs, s.Buffer.Cursor, w)
	scroll := max(cursorRow-(h-1), 0)

	for _, g := range glyphs {
		row := g.Row - scroll
		if row < 0 {
			continue
		}
		if row >= h {
			break
		}
		p.renderer.DrawText(x+g.Col, y+row, g.Width, 1, p.stylesheet.Text, g.Cluster)
	}

	location := ui.CursorLocation{X: x + cursorCol, Y: y + cursorRow - scroll}
	switch s.Mode.(type) {
	case state.Insert:
		location.Shape = ui.CursorShapeBar
		p.cursorController.Put(location, textPaneCursorRequester)
	case state.Normal:
		location.Shape = ui.CursorShapeDefault
		p.cursorController.Put(location, textPaneCursorRequester)
	default:
		p.cursorController.Delete(textPaneCursorRequester)
	}
}

// NewTextPane constructs and returns a new TextPane.
func NewTextPane(
	renderer ui.ConstrainedRenderer,
	stylesheet styling.Stylesheet,
	view func() *state.EditorState,
	cursorController ui.CursorLocationRequestHandler,
) *TextPane {
	return &TextPane{
		Leaf:             newLeaf(renderer, stylesheet, view),
		cursorController: cursorController,
	}
}
