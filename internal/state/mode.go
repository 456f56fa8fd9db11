package state

// Mode is the mode the editor is in.
//
// It is one of Normal, Insert, or CommandLine. The command being typed is
// part of the CommandLine mode itself, so there is no command text outside of
// command line mode.
type Mode interface {
	isMode()

	// String returns the name of the mode for display.
	String() string
}

// Normal is the mode for navigation. Keys are commands, not text.
type Normal struct{}

// Insert is the mode for text entry. Printable keys are inserted into the
// buffer.
type Insert struct{}

// CommandLine is the mode for entering a colon command.
type CommandLine struct {
	// Command is the command typed so far, without the leading colon.
	Command string
}

func (Normal) isMode()      {}
func (Insert) isMode()      {}
func (CommandLine) isMode() {}

func (Normal) String() string      { return "NORMAL" }
func (Insert) String() string      { return "INSERT" }
func (CommandLine) String() string { return "COMMAND" }
