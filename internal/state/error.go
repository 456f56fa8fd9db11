package state

import (
	"fmt"

	"github.com/pcaisse/vic/internal/input"
)

// OpError is an error resolving a key input to an operation.
// It is either an InvalidCommandError or an UnknownKeyCodeError.
type OpError interface {
	error
	isOpError()
}

// InvalidCommandError is the error for a command line command that is not
// known.
type InvalidCommandError struct {
	Command string
}

// UnknownKeyCodeError is the error for a key that means nothing in the
// current mode.
type UnknownKeyCodeError struct {
	Key input.Key
}

func (InvalidCommandError) isOpError() {}
func (UnknownKeyCodeError) isOpError() {}

func (e InvalidCommandError) Error() string {
	return fmt.Sprintf("Invalid command: %s", e.Command)
}

func (e UnknownKeyCodeError) Error() string {
	return fmt.Sprintf("Unknown key code: %s", e.Key.String())
}
