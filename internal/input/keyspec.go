package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a textual key sequence specification, e.g. ":q<cr>" meaning the
// ':' key, then the 'q' key, then the enter key.
type Keyspec string

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "i<space>x<esc>" meaning the I key, then the SPACE key, then the X key,
// then ESCAPE) to the appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range specR {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("unclosed special context at end of spec '%s'", spec)
	}

	result := make([]Key, 0)
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(keyIdentifier), err)
			}
			result = append(result, key)
		} else {
			result = append(result, Rune(keyIdentifier[0]))
		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifierToKey[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

var identifierToKey = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"lt":    {Key: tcell.KeyRune, Ch: '<'},
	"gt":    {Key: tcell.KeyRune, Ch: '>'},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"tab":   {Key: tcell.KeyTab},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},

	"c-bs": {Key: tcell.KeyBackspace},

	"c-a": {Key: tcell.KeyCtrlA},
	"c-b": {Key: tcell.KeyCtrlB},
	"c-c": {Key: tcell.KeyCtrlC},
	"c-d": {Key: tcell.KeyCtrlD},
	"c-e": {Key: tcell.KeyCtrlE},
	"c-f": {Key: tcell.KeyCtrlF},
	"c-g": {Key: tcell.KeyCtrlG},
	"c-k": {Key: tcell.KeyCtrlK},
	"c-l": {Key: tcell.KeyCtrlL},
	"c-n": {Key: tcell.KeyCtrlN},
	"c-o": {Key: tcell.KeyCtrlO},
	"c-p": {Key: tcell.KeyCtrlP},
	"c-q": {Key: tcell.KeyCtrlQ},
	"c-r": {Key: tcell.KeyCtrlR},
	"c-s": {Key: tcell.KeyCtrlS},
	"c-t": {Key: tcell.KeyCtrlT},
	"c-u": {Key: tcell.KeyCtrlU},
	"c-v": {Key: tcell.KeyCtrlV},
	"c-w": {Key: tcell.KeyCtrlW},
	"c-x": {Key: tcell.KeyCtrlX},
	"c-y": {Key: tcell.KeyCtrlY},
	"c-z": {Key: tcell.KeyCtrlZ},
}

// reverse of identifierToKey, for describing keys
var keyToIdentifier = func() map[Key]string {
	result := make(map[Key]string, len(identifierToKey))
	for identifier, key := range identifierToKey {
		result[key] = identifier
	}
	return result
}()

// ToConfigIdentifierString converts the given sequence of keys to its
// keyspec, such that ConfigKeyspecToKeys(ToConfigIdentifierString(keys))
// yields the same keys again.
func ToConfigIdentifierString(keys []Key) (Keyspec, error) {
	var b strings.Builder
	for _, k := range keys {
		identifier, ok := keyToIdentifier[k]
		switch {
		case ok:
			b.WriteString("<" + identifier + ">")
		case k.Key == tcell.KeyRune:
			b.WriteRune(k.Ch)
		default:
			return "", fmt.Errorf("undescribable key %s", k.ToDebugString())
		}
	}
	return Keyspec(b.String()), nil
}
