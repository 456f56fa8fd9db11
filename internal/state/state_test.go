package state_test

import (
	"testing"

	"github.com/pcaisse/vic/internal/buffer"
	"github.com/pcaisse/vic/internal/input"
	"github.com/pcaisse/vic/internal/state"
)

// feeds the keys of the given keyspec to the state
func feed(t *testing.T, s *state.EditorState, spec input.Keyspec) {
	t.Helper()
	keys, err := input.ConfigKeyspecToKeys(spec)
	if err != nil {
		t.Fatalf("invalid keyspec '%s' in test: %s", spec, err.Error())
	}
	for _, k := range keys {
		s.Update(k)
	}
}

func TestNew(t *testing.T) {
	s := state.New()
	if s.Mode != (state.Normal{}) {
		t.Error("initial mode not normal but", s.Mode)
	}
	if s.Buffer.Text != "" || s.Buffer.Cursor != 0 {
		t.Error("initial buffer not empty:", s.Buffer)
	}
	if s.Quit {
		t.Error("initially quitting")
	}
	if s.Error != nil {
		t.Error("initially erroneous:", s.Error)
	}
}

func TestUpdate(t *testing.T) {

	t.Run("switch to insert mode", func(t *testing.T) {
		s := state.New()
		feed(t, s, "i")
		if s.Mode != (state.Insert{}) {
			t.Error("not in insert mode but", s.Mode)
		}
	})

	t.Run("switch to insert mode append on empty buffer", func(t *testing.T) {
		s := state.New()
		feed(t, s, "a")
		if s.Mode != (state.Insert{}) {
			t.Error("not in insert mode but", s.Mode)
		}
		if s.Buffer.Text != "" || s.Buffer.Cursor != 0 {
			t.Error("buffer changed:", s.Buffer)
		}
	})

	t.Run("quit", func(t *testing.T) {
		s := state.New()
		feed(t, s, ":q<cr>")
		if !s.Quit {
			t.Error("not quitting")
		}
	})

	t.Run("invalid command", func(t *testing.T) {
		s := state.New()
		feed(t, s, ":i<cr>")
		if s.Error != (state.InvalidCommandError{Command: "i"}) {
			t.Error("unexpected error:", s.Error)
		}
		if s.Mode != (state.Normal{}) {
			t.Error("not back in normal mode but", s.Mode)
		}
		if s.Quit {
			t.Error("quitting on invalid command")
		}
	})

	t.Run("error is cleared by next successful transition", func(t *testing.T) {
		s := state.New()
		feed(t, s, "x")
		if s.Error != (state.UnknownKeyCodeError{Key: input.Rune('x')}) {
			t.Error("unexpected error:", s.Error)
		}
		feed(t, s, "i")
		if s.Error != nil {
			t.Error("error not cleared:", s.Error)
		}
	})

	t.Run("error aborts command", func(t *testing.T) {
		s := state.New()
		feed(t, s, ":wq<left>")
		if s.Mode != (state.Normal{}) {
			t.Error("not back in normal mode but", s.Mode)
		}
		if _, ok := s.Error.(state.UnknownKeyCodeError); !ok {
			t.Error("unexpected error:", s.Error)
		}
		feed(t, s, ":q<cr>")
		if !s.Quit {
			t.Error("aborted command not cleared")
		}
	})

	t.Run("error in insert mode returns to normal mode", func(t *testing.T) {
		s := state.New()
		feed(t, s, "iab<cr>")
		if s.Mode != (state.Normal{}) {
			t.Error("not back in normal mode but", s.Mode)
		}
		if s.Buffer.Text != "ab" || s.Buffer.Cursor != 2 {
			t.Error("buffer affected by error:", s.Buffer)
		}
	})

	t.Run("command line editing", func(t *testing.T) {
		s := state.New()
		feed(t, s, ":wx<bs>")
		if s.Mode != (state.CommandLine{Command: "w"}) {
			t.Error("unexpected mode", s.Mode)
		}
		feed(t, s, "<bs><bs><bs>")
		if s.Mode != (state.CommandLine{Command: ""}) {
			t.Error("unexpected mode", s.Mode)
		}
		feed(t, s, "q<cr>")
		if !s.Quit {
			t.Error("not quitting")
		}
	})

	t.Run("insert text repeatedly", func(t *testing.T) {
		s := state.New()
		feed(t, s, "ia<esc>ib")
		if s.Buffer.Text != "ba" {
			t.Errorf("unexpected text '%s'", s.Buffer.Text)
		}
	})

	t.Run("append text repeatedly", func(t *testing.T) {
		s := state.New()
		feed(t, s, "aa<esc>ab")
		if s.Buffer.Text != "ab" {
			t.Errorf("unexpected text '%s'", s.Buffer.Text)
		}
	})

	t.Run("escape on empty buffer keeps cursor at start", func(t *testing.T) {
		s := state.New()
		feed(t, s, "i<esc>")
		if s.Buffer.Cursor != 0 {
			t.Error("cursor moved to", s.Buffer.Cursor)
		}
		feed(t, s, ":<esc>")
		if s.Buffer.Cursor != 0 {
			t.Error("cursor moved to", s.Buffer.Cursor)
		}
	})

	t.Run("escape moves back onto inserted character", func(t *testing.T) {
		s := state.New()
		feed(t, s, "ifoo<esc>")
		if s.Buffer.Cursor != 2 {
			t.Error("unexpected cursor", s.Buffer.Cursor)
		}
		feed(t, s, "a")
		if s.Buffer.Cursor != 3 {
			t.Error("unexpected cursor after append", s.Buffer.Cursor)
		}
	})

	t.Run("bigword motions", func(t *testing.T) {
		s := state.New()
		feed(t, s, "ihi<space><space><space>there<esc>")
		if s.Buffer.Text != "hi   there" {
			t.Fatalf("unexpected text '%s'", s.Buffer.Text)
		}
		feed(t, s, "B")
		if s.Buffer.Cursor != 5 {
			t.Error("unexpected cursor after B", s.Buffer.Cursor)
		}
		feed(t, s, "B")
		if s.Buffer.Cursor != 0 {
			t.Error("unexpected cursor after BB", s.Buffer.Cursor)
		}
		feed(t, s, "W")
		if s.Buffer.Cursor != 5 {
			t.Error("unexpected cursor after W", s.Buffer.Cursor)
		}
		if s.Mode != (state.Normal{}) || s.Error != nil {
			t.Error("motion changed mode or error:", s.Mode, s.Error)
		}
	})

	t.Run("motions keep previous error", func(t *testing.T) {
		s := state.New()
		feed(t, s, "xW")
		if s.Error == nil {
			t.Error("motion cleared error")
		}
	})
}

func TestApply(t *testing.T) {

	t.Run("insert char", func(t *testing.T) {
		s := state.New()
		s.Mode = state.Insert{}
		s.Buffer = buffer.Buffer{Text: "foo bar", Cursor: 3}
		s.Apply(state.InsertChar{Char: 's'})
		if s.Buffer.Text != "foos bar" || s.Buffer.Cursor != 4 {
			t.Error("unexpected buffer", s.Buffer)
		}
		if s.Mode != (state.Insert{}) {
			t.Error("mode changed to", s.Mode)
		}
	})

	t.Run("quit changes nothing else", func(t *testing.T) {
		s := state.New()
		s.Mode = state.CommandLine{Command: "q"}
		s.Error = state.InvalidCommandError{Command: "x"}
		s.Apply(state.Quit{})
		if !s.Quit {
			t.Error("not quitting")
		}
		if s.Mode != (state.CommandLine{Command: "q"}) || s.Error == nil {
			t.Error("quit changed mode or error:", s.Mode, s.Error)
		}
	})

	t.Run("append at end does not move cursor", func(t *testing.T) {
		s := state.New()
		s.Buffer = buffer.Buffer{Text: "ab", Cursor: 2}
		s.Apply(state.EnterInsertModeAppend{})
		if s.Buffer.Cursor != 2 {
			t.Error("cursor moved to", s.Buffer.Cursor)
		}
	})

	t.Run("append moves by grapheme", func(t *testing.T) {
		s := state.New()
		s.Buffer = buffer.Buffer{Text: "नमस्ते", Cursor: 0}
		s.Apply(state.EnterInsertModeAppend{})
		if s.Buffer.Cursor != 1 {
			t.Error("unexpected cursor", s.Buffer.Cursor)
		}
	})

	t.Run("enter command mode clears error", func(t *testing.T) {
		s := state.New()
		s.Error = state.UnknownKeyCodeError{Key: esc}
		s.Apply(state.EnterCommandMode{})
		if s.Mode != (state.CommandLine{}) || s.Error != nil {
			t.Error("unexpected mode or error:", s.Mode, s.Error)
		}
	})
}

func TestUnknownKeysAlwaysReturnToNormal(t *testing.T) {
	modes := []state.Mode{state.Normal{}, state.Insert{}, state.CommandLine{Command: "wq"}}
	keys, _ := input.ConfigKeyspecToKeys("<left><right><up><down><del><tab><c-a><c-w>")
	for _, mode := range modes {
		for _, key := range keys {
			s := state.New()
			s.Mode = mode
			s.Update(key)
			if s.Mode != (state.Normal{}) {
				t.Errorf("%s in %s left mode %s", key, mode, s.Mode)
			}
			if s.Error != (state.UnknownKeyCodeError{Key: key}) {
				t.Errorf("%s in %s gave error %#v", key, mode, s.Error)
			}
		}
	}
}
