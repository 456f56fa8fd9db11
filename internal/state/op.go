package state

import (
	"github.com/pcaisse/vic/internal/buffer"
	"github.com/pcaisse/vic/internal/input"
)

// Op is an operation on the editor state, as resolved from a single key
// input.
type Op interface {
	isOp()
}

// EnterCommandMode switches to an empty command line.
type EnterCommandMode struct{}

// EnterInsertMode switches to insert mode with the cursor where it is.
type EnterInsertMode struct{}

// EnterInsertModeAppend switches to insert mode after the grapheme under the
// cursor.
type EnterInsertModeAppend struct{}

// EnterNormalMode switches (back) to normal mode.
type EnterNormalMode struct{}

// Quit makes the editor quit.
type Quit struct{}

// PushToCommand replaces the command line with the given command, which has
// one more character than the previous one.
type PushToCommand struct{ Command string }

// PopFromCommand replaces the command line with the given command, which has
// one less character than the previous one.
type PopFromCommand struct{ Command string }

// InsertChar inserts a character into the buffer.
type InsertChar struct{ Char rune }

// MoveBigWordForward moves the cursor to the next bigword.
type MoveBigWordForward struct{}

// MoveBigWordBackward moves the cursor to the previous bigword.
type MoveBigWordBackward struct{}

func (EnterCommandMode) isOp()      {}
func (EnterInsertMode) isOp()       {}
func (EnterInsertModeAppend) isOp() {}
func (EnterNormalMode) isOp()       {}
func (Quit) isOp()                  {}
func (PushToCommand) isOp()         {}
func (PopFromCommand) isOp()        {}
func (InsertChar) isOp()            {}
func (MoveBigWordForward) isOp()    {}
func (MoveBigWordBackward) isOp()   {}

// the only command there is
const quitCommand = "q"

// Resolve returns the operation the given key means in the given mode.
//
// It has no side effects. Any key with no meaning in the mode resolves to an
// UnknownKeyCodeError.
func Resolve(mode Mode, key input.Key) (Op, OpError) {
	switch m := mode.(type) {

	case Normal:
		if key.IsRune() {
			switch key.Ch {
			case ':':
				return EnterCommandMode{}, nil
			case 'i':
				return EnterInsertMode{}, nil
			case 'a':
				return EnterInsertModeAppend{}, nil
			case 'W':
				return MoveBigWordForward{}, nil
			case 'B':
				return MoveBigWordBackward{}, nil
			}
		}

	case CommandLine:
		switch {
		case key.IsPrintable():
			return PushToCommand{Command: m.Command + string(key.Ch)}, nil
		case key.IsBackspace():
			return PopFromCommand{Command: buffer.TrimLastGrapheme(m.Command)}, nil
		case key.IsEnter():
			if m.Command == quitCommand {
				return Quit{}, nil
			}
			return nil, InvalidCommandError{Command: m.Command}
		case key.IsEscape():
			return EnterNormalMode{}, nil
		}

	case Insert:
		switch {
		case key.IsEscape():
			return EnterNormalMode{}, nil
		case key.IsPrintable():
			return InsertChar{Char: key.Ch}, nil
		}

	}

	return nil, UnknownKeyCodeError{Key: key}
}
