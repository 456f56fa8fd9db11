// Package panes provides the concrete UI panes of the editor.
package panes

import (
	"github.com/pcaisse/vic/internal/state"
	"github.com/pcaisse/vic/internal/styling"
	"github.com/pcaisse/vic/internal/ui"
)

// Leaf is the data shared by panes that do not have subpanes but instead make
// actual draw calls.
type Leaf struct {
	renderer   ui.ConstrainedRenderer
	dimensions func() (x, y, w, h int)
	stylesheet styling.Stylesheet

	// view returns the editor state to display.
	view func() *state.EditorState
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *Leaf) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

func newLeaf(
	renderer ui.ConstrainedRenderer,
	stylesheet styling.Stylesheet,
	view func() *state.EditorState,
) Leaf {
	return Leaf{
		renderer:   renderer,
		dimensions: renderer.Dimensions,
		stylesheet: stylesheet,
		view:       view,
	}
}
