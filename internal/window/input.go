package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/diegok/duopong/internal/game"
)

// Binding ties a physical key to an action
type Binding struct {
	Key    ebiten.Key
	Action game.Action
}

// Keymap is the set of bindings polled every tick
type Keymap []Binding

// NewKeymap resolves key names such as "w", "up" or "space" to ebiten keys
func NewKeymap(bindings map[game.Action]string) (Keymap, error) {
	km := make(Keymap, 0, len(bindings))
	for _, action := range game.Actions() {
		name, ok := bindings[action]
		if !ok {
			continue
		}
		key, err := keyByName(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		km = append(km, Binding{Key: key, Action: action})
	}
	return km, nil
}

func keyByName(name string) (ebiten.Key, error) {
	var key ebiten.Key
	// Digits are named "Digit1" and arrows "ArrowUp" by ebiten
	for _, candidate := range []string{name, "Digit" + name, "Arrow" + name} {
		if err := key.UnmarshalText([]byte(candidate)); err == nil {
			return key, nil
		}
	}
	return 0, fmt.Errorf("no key named %q", name)
}

// Edges reports which bound keys went down and up since the last tick
func (km Keymap) Edges() (pressed, released []game.Action) {
	for _, b := range km {
		if inpututil.IsKeyJustPressed(b.Key) {
			pressed = append(pressed, b.Action)
		}
		if inpututil.IsKeyJustReleased(b.Key) {
			released = append(released, b.Action)
		}
	}
	return pressed, released
}

// Lookup returns the action bound to key
func (km Keymap) Lookup(key ebiten.Key) game.Action {
	for _, b := range km {
		if b.Key == key {
			return b.Action
		}
	}
	return game.ActionNone
}
