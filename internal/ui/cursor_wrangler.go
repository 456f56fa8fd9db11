package ui

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

// CursorWrangler handles requests to place a (text/terminal) cursor on the
// screen.
//
// Several panes may want the cursor (e.g., the text pane in normal mode and
// the command line while a command is typed); the most recent request wins.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	desiredLocation     *CursorLocation
	mostRecentRequester *string
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{
		cc: controller,
	}
}

// Put places the cursor at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation != nil && *w.mostRecentRequester != requesterID {
		log.Debug().Msgf("being asked to put cursor (at %s) by '%s' while it is already placed by '%s' (at %s); will be overwritten", l.String(), requesterID, *w.mostRecentRequester, w.desiredLocation.String())
	}

	w.desiredLocation = &l
	w.mostRecentRequester = &requesterID
}

// Delete removes the cursor, if the given requester was the last to place it.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.mostRecentRequester == nil {
		return
	}

	if *w.mostRecentRequester != requesterID {
		log.Trace().Msgf("ignoring '%s's request to delete cursor, as current requestor is %s", requesterID, *w.mostRecentRequester)
		return
	}

	w.desiredLocation = nil
	w.mostRecentRequester = nil
}

// Location returns the currently requested cursor location, if any.
func (w *CursorWrangler) Location() (CursorLocation, bool) {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.desiredLocation == nil {
		return CursorLocation{}, false
	}
	return *w.desiredLocation, true
}

// Enact enacts the current cursor location request via the underlying
// cursor controller.
func (w *CursorWrangler) Enact() {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.desiredLocation != nil {
		w.cc.ShowCursor(*w.desiredLocation)
	} else {
		w.cc.HideCursor()
	}
}
