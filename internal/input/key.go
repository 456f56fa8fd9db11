package input

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Key is a single discrete key input, as delivered to the editor core.
//
// Any Key for a tcell.EventKey should be created via KeyFromTcellEvent, so
// that equal inputs compare equal.
type Key struct {
	Key tcell.Key
	Ch  rune
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// Rune returns a key for the given character.
func Rune(r rune) Key {
	return Key{Key: tcell.KeyRune, Ch: r}
}

// IsRune returns whether the key is a character (rather than a special key).
func (k Key) IsRune() bool { return k.Key == tcell.KeyRune }

// IsPrintable returns whether the key is a printable character (space
// included).
func (k Key) IsPrintable() bool {
	return k.IsRune() && strconv.IsPrint(k.Ch)
}

// IsEscape returns whether the key is the escape key.
func (k Key) IsEscape() bool { return k.Key == tcell.KeyEscape }

// IsEnter returns whether the key is the enter (carriage return) key.
func (k Key) IsEnter() bool { return k.Key == tcell.KeyEnter }

// IsBackspace returns whether the key is a backspace.
// Terminals disagree on whether to send BS or DEL for it, so both count.
func (k Key) IsBackspace() bool {
	return k.Key == tcell.KeyBackspace || k.Key == tcell.KeyBackspace2
}

// String returns the configuration identifier of the key where one exists,
// and a debug description otherwise.
func (k Key) String() string {
	if identifier, ok := keyToIdentifier[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return k.ToDebugString()
}

// ToDebugString returns a verbose description of the key, e.g. for logging.
func (k Key) ToDebugString() string {
	name, ok := tcell.KeyNames[k.Key]
	if !ok {
		name = "unnamed"
	}
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		name,
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}
