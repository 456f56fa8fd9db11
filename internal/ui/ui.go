// Package ui provides the building blocks of the editor's terminal user
// interface: panes, the renderer interfaces they draw through, and the
// layout of text onto terminal cells.
package ui

import (
	"fmt"

	"github.com/pcaisse/vic/internal/styling"
)

// Pane is a UI pane.
//
// A pane occupies a rectangle of the screen, given by Dimensions, and draws
// itself into that rectangle when asked to.
type Pane interface {
	Draw()
	Dimensions() (x, y, w, h int)
}

type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and dimensions,
	// but limited to the constraint (bounding box) of the renderer.
	// Text is wrapped per grapheme cluster (see Wrap).
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorShape is the shape a text cursor is drawn in.
type CursorShape int

const (
	// CursorShapeDefault is whatever cursor the terminal shows by default.
	CursorShapeDefault CursorShape = iota
	// CursorShapeBar is a bar in front of the cell under the cursor, as used
	// for entering text.
	CursorShapeBar
)

func (s CursorShape) String() string {
	switch s {
	case CursorShapeDefault:
		return "default"
	case CursorShapeBar:
		return "bar"
	}
	return "[unknown cursor shape]"
}

// CursorLocation is the location (and shape) of a text cursor on the screen.
type CursorLocation struct {
	X     int
	Y     int
	Shape CursorShape
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d(%s)", l.X, l.Y, l.Shape.String())
}
