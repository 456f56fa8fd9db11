package state_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pcaisse/vic/internal/input"
	"github.com/pcaisse/vic/internal/state"
)

var (
	esc       = input.Key{Key: tcell.KeyEscape}
	enter     = input.Key{Key: tcell.KeyEnter}
	backspace = input.Key{Key: tcell.KeyBackspace2}
)

func TestResolve(t *testing.T) {

	expectOp := func(t *testing.T, mode state.Mode, key input.Key, expected state.Op) {
		t.Helper()
		op, err := state.Resolve(mode, key)
		if err != nil {
			t.Errorf("unexpected error resolving %s in %s: %s", key, mode, err.Error())
			return
		}
		if op != expected {
			t.Errorf("resolved %s in %s to %#v instead of %#v", key, mode, op, expected)
		}
	}

	t.Run("normal mode", func(t *testing.T) {
		expectOp(t, state.Normal{}, input.Rune(':'), state.EnterCommandMode{})
		expectOp(t, state.Normal{}, input.Rune('i'), state.EnterInsertMode{})
		expectOp(t, state.Normal{}, input.Rune('a'), state.EnterInsertModeAppend{})
		expectOp(t, state.Normal{}, input.Rune('W'), state.MoveBigWordForward{})
		expectOp(t, state.Normal{}, input.Rune('B'), state.MoveBigWordBackward{})
	})

	t.Run("command line mode", func(t *testing.T) {
		expectOp(t, state.CommandLine{}, input.Rune('q'), state.PushToCommand{Command: "q"})
		expectOp(t, state.CommandLine{Command: "w"}, input.Rune('q'), state.PushToCommand{Command: "wq"})
		expectOp(t, state.CommandLine{Command: "w"}, input.Rune(' '), state.PushToCommand{Command: "w "})
		expectOp(t, state.CommandLine{Command: "wq"}, backspace, state.PopFromCommand{Command: "w"})
		expectOp(t, state.CommandLine{Command: "wq"}, input.Key{Key: tcell.KeyBackspace}, state.PopFromCommand{Command: "w"})
		expectOp(t, state.CommandLine{Command: "é"}, backspace, state.PopFromCommand{Command: ""})
		expectOp(t, state.CommandLine{}, backspace, state.PopFromCommand{Command: ""})
		expectOp(t, state.CommandLine{Command: "q"}, enter, state.Quit{})
		expectOp(t, state.CommandLine{Command: "q"}, esc, state.EnterNormalMode{})
	})

	t.Run("insert mode", func(t *testing.T) {
		expectOp(t, state.Insert{}, input.Rune('x'), state.InsertChar{Char: 'x'})
		expectOp(t, state.Insert{}, input.Rune(':'), state.InsertChar{Char: ':'})
		expectOp(t, state.Insert{}, input.Rune('न'), state.InsertChar{Char: 'न'})
		expectOp(t, state.Insert{}, esc, state.EnterNormalMode{})
	})

	t.Run("invalid command", func(t *testing.T) {
		for _, command := range []string{"", "i", "qq", "w", "q!"} {
			op, err := state.Resolve(state.CommandLine{Command: command}, enter)
			if op != nil {
				t.Errorf("got op %#v for invalid command '%s'", op, command)
			}
			if err != (state.InvalidCommandError{Command: command}) {
				t.Errorf("got error %#v for invalid command '%s'", err, command)
			}
		}
	})

	t.Run("unknown keys", func(t *testing.T) {
		cases := []struct {
			mode state.Mode
			key  input.Key
		}{
			{state.Normal{}, input.Rune('x')},
			{state.Normal{}, input.Rune('w')},
			{state.Normal{}, esc},
			{state.Normal{}, enter},
			{state.Normal{}, backspace},
			{state.Normal{}, input.Key{Key: tcell.KeyLeft}},
			{state.Insert{}, enter},
			{state.Insert{}, backspace},
			{state.Insert{}, input.Key{Key: tcell.KeyTab}},
			{state.Insert{}, input.Key{Key: tcell.KeyCtrlA}},
			{state.Insert{}, input.Rune('\x01')},
			{state.CommandLine{Command: "q"}, input.Key{Key: tcell.KeyUp}},
			{state.CommandLine{}, input.Key{Key: tcell.KeyDelete}},
		}
		for _, c := range cases {
			op, err := state.Resolve(c.mode, c.key)
			if op != nil {
				t.Errorf("got op %#v for %s in %s", op, c.key, c.mode)
			}
			if err != (state.UnknownKeyCodeError{Key: c.key}) {
				t.Errorf("got error %#v instead of unknown key code for %s in %s", err, c.key, c.mode)
			}
		}
	})

	t.Run("pure", func(t *testing.T) {
		mode := state.CommandLine{Command: "w"}
		first, _ := state.Resolve(mode, input.Rune('q'))
		second, _ := state.Resolve(mode, input.Rune('q'))
		if first != second {
			t.Error("same inputs resolved differently:", first, second)
		}
		if mode.Command != "w" {
			t.Error("resolving modified the mode")
		}
	})
}

func TestModeString(t *testing.T) {
	for mode, expected := range map[state.Mode]string{
		state.Normal{}:                    "NORMAL",
		state.Insert{}:                    "INSERT",
		state.CommandLine{Command: "abc"}: "COMMAND",
	} {
		if mode.String() != expected {
			t.Errorf("mode displayed as '%s' instead of '%s'", mode.String(), expected)
		}
	}
}

func TestOpErrorMessages(t *testing.T) {
	if msg := (state.InvalidCommandError{Command: "i"}).Error(); msg != "Invalid command: i" {
		t.Error("unexpected message:", msg)
	}
	if msg := (state.UnknownKeyCodeError{Key: esc}).Error(); msg != "Unknown key code: <esc>" {
		t.Error("unexpected message:", msg)
	}
}
