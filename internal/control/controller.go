// Package control ties the editor state to the terminal: it polls the
// screen's events, feeds keys to the state and has the UI redrawn.
package control

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/pcaisse/vic/internal/input"
	"github.com/pcaisse/vic/internal/state"
	"github.com/pcaisse/vic/internal/styling"
	"github.com/pcaisse/vic/internal/tui"
	"github.com/pcaisse/vic/internal/ui"
	"github.com/pcaisse/vic/internal/ui/panes"
)

// Controller is the struct for the TUI controller.
type Controller struct {
	state    *state.EditorState
	rootPane ui.Pane

	// every key applied to the state, in order
	keys []input.Key

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

// NewController creates a new Controller, editing the given state on the
// given screen.
func NewController(
	renderer *tui.ScreenHandler,
	stylesheet styling.Stylesheet,
	editorState *state.EditorState,
) *Controller {
	controller := Controller{
		state: editorState,
	}

	view := func() *state.EditorState { return controller.state }
	cursorWrangler := ui.NewCursorWrangler(renderer)

	textDimensions, statusDimensions, messageDimensions := panes.EditorLayout(renderer.Dimensions)
	controller.rootPane = panes.NewRootPane(
		renderer,
		cursorWrangler,
		renderer.Dimensions,
		panes.NewTextPane(ui.NewConstrainedRenderer(renderer, textDimensions), stylesheet, view, cursorWrangler),
		panes.NewStatusPane(ui.NewConstrainedRenderer(renderer, statusDimensions), stylesheet, view),
		panes.NewMessagePane(ui.NewConstrainedRenderer(renderer, messageDimensions), stylesheet, view, cursorWrangler),
	)

	controller.screenEvents = renderer.GetEventPollable()
	controller.initializedScreen = renderer
	controller.syncer = renderer

	return &controller
}

// Run runs the event loop until the editor quits (or the screen stops
// delivering events), then finalizes the screen.
// Every key event is applied to the state in order, after which the UI is
// redrawn.
//
// Returns the final state.
func (c *Controller) Run() *state.EditorState {
	log.Info().Msg("vic TUI started")
	defer c.initializedScreen.Fini()

	c.rootPane.Draw()
	for {
		ev := c.screenEvents.PollEvent()

		switch e := ev.(type) {
		case nil:
			log.Warn().Msg("screen stopped delivering events")
			return c.state

		case *tcell.EventKey:
			key := input.KeyFromTcellEvent(e)
			c.keys = append(c.keys, key)
			c.state.Update(key)
			if c.state.Error != nil {
				log.Debug().Str("key", key.ToDebugString()).Err(c.state.Error).Msg("input resulted in error")
			}
			if c.state.Quit {
				log.Info().Msg("quitting")
				return c.state
			}

		case *tcell.EventResize:
			c.syncer.NeedsSync()

		}

		c.rootPane.Draw()
	}
}

// Keys returns the keys applied to the state so far, in order.
func (c *Controller) Keys() []input.Key {
	return c.keys
}
