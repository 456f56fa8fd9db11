package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pcaisse/vic/internal/input"
	"github.com/pcaisse/vic/internal/state"
)

// Flags for the `replay` command line command, for `go-flags` to parse
// command line args into.
type ReplayCommand struct {
	Keys string `short:"k" long:"keys" description:"the keys to feed to the editor, e.g. 'ihello<esc>:q<cr>' (read from stdin if omitted)" value-name:"<keyspec>"`
	YAML bool   `long:"yaml" description:"print the resulting state as YAML"`

	in  io.Reader
	out io.Writer
}

// ReplayResult is the editor state after a replay, as it is printed.
type ReplayResult struct {
	Mode         string `yaml:"mode"`
	Command      string `yaml:"command,omitempty"`
	Text         string `yaml:"text"`
	Cursor       int    `yaml:"cursor"`
	Quit         bool   `yaml:"quit"`
	Error        string `yaml:"error,omitempty"`
	KeysConsumed int    `yaml:"keys-consumed"`
}

// Executes the replay command.
// (This gets called by `go-flags` when `replay` is provided on the command
// line)
func (command *ReplayCommand) Execute(args []string) error {
	in, out := command.in, command.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	spec := command.Keys
	if spec == "" {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("could not read keys from stdin (%w)", err)
		}
		spec = strings.TrimRight(string(data), "\r\n")
	}

	keys, err := input.ConfigKeyspecToKeys(input.Keyspec(spec))
	if err != nil {
		return fmt.Errorf("invalid keys '%s' (%w)", spec, err)
	}

	result := Replay(keys)

	if command.YAML {
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("could not marshal result (%w)", err)
		}
		_, err = out.Write(data)
		return err
	}
	_, err = fmt.Fprint(out, result.String())
	return err
}

// Replay feeds the given keys to a new editor state, stopping early once the
// editor quits.
func Replay(keys []input.Key) ReplayResult {
	s := state.New()
	consumed := 0
	for _, k := range keys {
		if s.Quit {
			break
		}
		s.Update(k)
		consumed++
	}
	return resultFromState(s, consumed)
}

func resultFromState(s *state.EditorState, consumed int) ReplayResult {
	result := ReplayResult{
		Mode:         s.Mode.String(),
		Text:         s.Buffer.Text,
		Cursor:       s.Buffer.Cursor,
		Quit:         s.Quit,
		KeysConsumed: consumed,
	}
	if commandLine, ok := s.Mode.(state.CommandLine); ok {
		result.Command = commandLine.Command
	}
	if s.Error != nil {
		result.Error = s.Error.Error()
	}
	return result
}

// String formats the result as plain text, one field per line.
func (r ReplayResult) String() string {
	var b strings.Builder
	line := func(name string, value any) {
		fmt.Fprintf(&b, "%-8s %v\n", name+":", value)
	}
	line("mode", r.Mode)
	if r.Mode == (state.CommandLine{}).String() {
		line("command", fmt.Sprintf("%q", r.Command))
	}
	line("text", fmt.Sprintf("%q", r.Text))
	line("cursor", r.Cursor)
	line("quit", r.Quit)
	if r.Error != "" {
		line("error", r.Error)
	}
	line("keys", r.KeysConsumed)
	return b.String()
}
