package panes

import (
	"fmt"

	"github.com/pcaisse/vic/internal/state"
	"github.com/pcaisse/vic/internal/styling"
	"github.com/pcaisse/vic/internal/ui"
)

// StatusPane is a status bar that displays the current mode and the cursor's
// position in the buffer.
type StatusPane struct {
	Leaf
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	s := p.view()

	bgStyle := p.stylesheet.Status
	p.renderer.DrawBox(x, y, w, h, bgStyle)

	modeStr := fmt.Sprintf("-- %s --", s.Mode.String())
	p.renderer.DrawText(x+1, y, len(modeStr), 1, bgStyle.Bolded(), modeStr)

	positionStr := fmt.Sprintf("%d/%d", s.Buffer.Cursor, s.Buffer.GraphemeCount())
	if len(modeStr)+len(positionStr)+3 <= w {
		p.renderer.DrawText(x+w-len(positionStr)-1, y, len(positionStr), 1, bgStyle.DefaultDimmed(), positionStr)
	}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	stylesheet styling.Stylesheet,
	view func() *state.EditorState,
) *StatusPane {
	return &StatusPane{
		Leaf: newLeaf(renderer, stylesheet, view),
	}
}
