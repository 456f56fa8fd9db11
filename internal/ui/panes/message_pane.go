package panes

import (
	"github.com/pcaisse/vic/internal/state"
	"github.com/pcaisse/vic/internal/styling"
	"github.com/pcaisse/vic/internal/ui"
)

const messagePaneCursorRequester = "message-pane"

// MessagePane is the bottom line of the editor. It shows the error of the
// last input if there is one, and the command being typed in command line
// mode otherwise.
type MessagePane struct {
	Leaf

	cursorController ui.CursorLocationRequestHandler
}

// Draw draws this pane.
func (p *MessagePane) Draw() {
	x, y, w, h := p.Dimensions()
	s := p.view()

	p.renderer.DrawBox(x, y, w, h, p.stylesheet.CommandLine)

	if mode, ok := s.Mode.(state.CommandLine); ok {
		line := ":" + mode.Command
		glyphs := ui.Wrap(line, w)
		p.renderer.DrawText(x, y, w, h, p.stylesheet.CommandLine, line)
		col, row := ui.CursorCell(glyphs, len(glyphs), w)
		if row >= h {
			col, row = max(w-1, 0), h-1
		}
		p.cursorController.Put(ui.CursorLocation{X: x + col, Y: y + row, Shape: ui.CursorShapeBar}, messagePaneCursorRequester)
		return
	}

	p.cursorController.Delete(messagePaneCursorRequester)
	if s.Error != nil {
		p.renderer.DrawBox(x, y, w, h, p.stylesheet.Error)
		p.renderer.DrawText(x, y, w, h, p.stylesheet.Error, s.Error.Error())
	}
}

// NewMessagePane constructs and returns a new MessagePane.
func NewMessagePane(
	renderer ui.ConstrainedRenderer,
	stylesheet styling.Stylesheet,
	view func() *state.EditorState,
	cursorController ui.CursorLocationRequestHandler,
) *MessagePane {
	return &MessagePane{
		Leaf:             newLeaf(renderer, stylesheet, view),
		cursorController: cursorController,
	}
}
