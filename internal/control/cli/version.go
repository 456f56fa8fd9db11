package cli

import (
	"fmt"
	"io"
	"os"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// Flags for the `version` command line command, for `go-flags` to parse
// command line args into.
type VersionCommand struct {
	out io.Writer
}

// Executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	out := command.out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "%s (%s)\n", version, hash)
	return err
}
