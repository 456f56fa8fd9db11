// Package state implements the editor core: a state machine that turns key
// inputs into operations on the editor's mode and buffer.
//
// Each input is handled in two phases. Resolve decides, purely from the
// current mode and the key, which operation (or error) the input means.
// EditorState.Apply then performs that operation.
package state

import (
	"github.com/rs/zerolog/log"

	"github.com/pcaisse/vic/internal/buffer"
	"github.com/pcaisse/vic/internal/input"
)

// EditorState is the complete state of the editor.
type EditorState struct {
	Mode   Mode
	Buffer buffer.Buffer

	// Quit is set once the editor should quit. The surrounding loop should
	// check it after every Update.
	Quit bool

	// Error is the error from the last input, if the last input was
	// erroneous.
	Error OpError
}

// New returns a pointer to a new EditorState in normal mode with an empty
// buffer.
func New() *EditorState {
	return &EditorState{
		Mode: Normal{},
	}
}

// Update updates the state according to the given key input.
func (s *EditorState) Update(key input.Key) *EditorState {
	op, err := Resolve(s.Mode, key)
	if err != nil {
		s.fail(err)
		return s
	}
	s.Apply(op)
	return s
}

// Apply performs the given operation on the state.
func (s *EditorState) Apply(op Op) {
	log.Debug().Str("mode", s.Mode.String()).Str("op", opName(op)).Msg("applying op")

	switch o := op.(type) {

	case EnterCommandMode:
		s.Mode = CommandLine{}
		s.Error = nil

	case EnterInsertMode:
		s.Mode = Insert{}
		s.Error = nil

	case EnterInsertModeAppend:
		s.Mode = Insert{}
		s.Error = nil
		if !s.Buffer.IsEmpty() && !s.Buffer.AtEnd() {
			s.Buffer.MoveRight()
		}

	case EnterNormalMode:
		s.Mode = Normal{}
		s.Error = nil
		// back onto the character before the insertion point; stays at the
		// start of an empty buffer
		s.Buffer.MoveLeft()

	case Quit:
		s.Quit = true

	case PushToCommand:
		s.Mode = CommandLine{Command: o.Command}
		s.Error = nil

	case PopFromCommand:
		s.Mode = CommandLine{Command: o.Command}
		s.Error = nil

	case InsertChar:
		s.Buffer.Insert(o.Char)

	case MoveBigWordForward:
		s.Buffer.MoveBigWordForwards()

	case MoveBigWordBackward:
		s.Buffer.MoveBigWordBackwards()

	default:
		log.Error().Msgf("unhandled op %#v, likely logic error", op)

	}
}

// fail records the error and returns to normal mode, aborting whatever was
// being typed.
func (s *EditorState) fail(err OpError) {
	log.Debug().Str("mode", s.Mode.String()).Err(err).Msg("could not resolve input")
	s.Error = err
	s.Mode = Normal{}
}

func opName(op Op) string {
	switch op.(type) {
	case EnterCommandMode:
		return "enter-command-mode"
	case EnterInsertMode:
		return "enter-insert-mode"
	case EnterInsertModeAppend:
		return "enter-insert-mode-append"
	case EnterNormalMode:
		return "enter-normal-mode"
	case Quit:
		return "quit"
	case PushToCommand:
		return "push-to-command"
	case PopFromCommand:
		return "pop-from-command"
	case InsertChar:
		return "insert-char"
	case MoveBigWordForward:
		return "move-bigword-forward"
	case MoveBigWordBackward:
		return "move-bigword-backward"
	default:
		return "unknown"
	}
}
