package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pcaisse/vic/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	textPane    ui.Pane
	statusPane  ui.Pane
	messagePane ui.Pane

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	for _, pane := range []ui.Pane{p.textPane, p.statusPane, p.messagePane} {
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
	p.log.Trace().Msg("drew root pane")
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	textPane ui.Pane,
	statusPane ui.Pane,
	messagePane ui.Pane,
) *RootPane {
	return &RootPane{
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		textPane:       textPane,
		statusPane:     statusPane,
		messagePane:    messagePane,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
}

// EditorLayout splits the dimensions the given function returns into those of
// the text area, the status line and the message line, the latter two taking
// up the bottom two rows. The split is made anew on every call, so it follows
// changes in the underlying dimensions (e.g., on resize).
//
// On screens too small for all three, the text area is dropped first, then
// the status line.
func EditorLayout(dimensions func() (x, y, w, h int)) (text, status, message func() (x, y, w, h int)) {
	text = func() (int, int, int, int) {
		x, y, w, h := dimensions()
		return x, y, w, max(h-2, 0)
	}
	status = func() (int, int, int, int) {
		x, y, w, h := dimensions()
		if h < 2 {
			return x, y, w, 0
		}
		return x, y + h - 2, w, 1
	}
	message = func() (int, int, int, int) {
		x, y, w, h := dimensions()
		if h < 1 {
			return x, y, w, 0
		}
		return x, y + h - 1, w, 1
	}
	return text, status, message
}
