package game

import (
	"fmt"
	"time"
)

// Kind tags which variant of State is live
type Kind int

const (
	kindUnset Kind = iota
	KindCountdown
	KindPlay
)

var kindName = map[Kind]string{
	kindUnset:     "unset",
	KindCountdown: "countdown",
	KindPlay:      "play",
}

func (k Kind) String() string {
	return kindName[k]
}

// State is the round state machine. Exactly one of Countdown and Play is
// meaningful, selected by Kind. Update takes the state by value and returns
// its successor.
type State struct {
	Kind      Kind
	Countdown Countdown
	Play      Play
}

// Events records what happened during one update
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventScoreLeft
	EventScoreRight
	EventResume
)

// Has reports whether all bits of e are set
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Action is a logical input the players can issue
type Action int

const (
	ActionNone Action = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
)

var actionName = map[Action]string{
	ActionNone:      "none",
	ActionLeftUp:    "left-up",
	ActionLeftDown:  "left-down",
	ActionRightUp:   "right-up",
	ActionRightDown: "right-down",
}

func (a Action) String() string {
	return actionName[a]
}

// ParseAction maps a name produced by Action.String back to the action
func ParseAction(name string) (Action, bool) {
	for a, n := range actionName {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// Actions lists every bindable action
func Actions() []Action {
	return []Action{ActionLeftUp, ActionLeftDown, ActionRightUp, ActionRightDown}
}

// NewCountdownState wraps next in a countdown of the given length
func NewCountdownState(remaining time.Duration, next State) State {
	return State{
		Kind:      KindCountdown,
		Countdown: Countdown{Remaining: remaining, Next: &next},
	}
}

// NewPlayState wraps a play variant
func NewPlayState(p Play) State {
	return State{Kind: KindPlay, Play: p}
}

// NewInitialState is the state at process start: a countdown into a fresh round
func NewInitialState(rng Rand) State {
	return NewCountdownState(CountdownDuration, NewPlayState(NewPlay(rng)))
}

// Update advances the live variant by dt seconds
func (s State) Update(dt float64, rng Rand) (State, Events) {
	switch s.Kind {
	case KindCountdown:
		return s.Countdown.Update(dt)
	case KindPlay:
		return s.Play.Update(dt, rng)
	}
	panic(fmt.Sprintf("game: update on %s state", s.Kind))
}

// Press routes a key press to the paddles. Only Play reacts to input.
func (s *State) Press(a Action) {
	if s.Kind != KindPlay {
		return
	}
	s.Play.Press(a)
}

// Release routes a key release to the paddles. Only Play reacts to input.
func (s *State) Release(a Action) {
	if s.Kind != KindPlay {
		return
	}
	s.Play.Release(a)
}

// Render draws the live variant
func (s State) Render(r Renderer) {
	switch s.Kind {
	case KindCountdown:
		s.Countdown.Render(r)
	case KindPlay:
		s.Play.Render(r)
	default:
		panic(fmt.Sprintf("game: render on %s state", s.Kind))
	}
}
