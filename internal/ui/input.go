package ui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

// namedKeys are the non-printable keys that can be bound by name
var namedKeys = map[string]tcell.Key{
	"up":    tcell.KeyUp,
	"down":  tcell.KeyDown,
	"left":  tcell.KeyLeft,
	"right": tcell.KeyRight,
	"enter": tcell.KeyEnter,
	"tab":   tcell.KeyTab,
	"home":  tcell.KeyHome,
	"end":   tcell.KeyEnd,
	"pgup":  tcell.KeyPgUp,
	"pgdn":  tcell.KeyPgDn,
}

// Keymap resolves terminal key events to game actions
type Keymap struct {
	keys  map[tcell.Key]game.Action
	runes map[rune]game.Action
}

// NewKeymap builds a keymap from key names: a single character, "space",
// or one of the named keys such as "up"
func NewKeymap(bindings map[game.Action]string) (*Keymap, error) {
	km := &Keymap{
		keys:  make(map[tcell.Key]game.Action),
		runes: make(map[rune]game.Action),
	}

	for action, name := range bindings {
		name = strings.ToLower(name)
		if name == "space" {
			name = " "
		}
		if key, ok := namedKeys[name]; ok {
			km.keys[key] = action
			continue
		}
		if utf8.RuneCountInString(name) == 1 {
			r, _ := utf8.DecodeRuneInString(name)
			km.runes[r] = action
			continue
		}
		return nil, fmt.Errorf("no terminal key named %q for %s", name, action)
	}
	return km, nil
}

// Action converts a key event to an action. Unbound keys give ActionNone.
// Letters match regardless of case.
func (km *Keymap) Action(key tcell.Key, r rune) game.Action {
	if key == tcell.KeyRune {
		if a, ok := km.runes[unicode.ToLower(r)]; ok {
			return a
		}
		return game.ActionNone
	}
	if a, ok := km.keys[key]; ok {
		return a
	}
	return game.ActionNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
