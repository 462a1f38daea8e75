package ui

import (
	"time"

	"github.com/diegok/duopong/internal/game"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held until it stops repeating for a while.
const (
	// InitialHold covers the delay before the terminal starts auto-repeating
	InitialHold = 500 * time.Millisecond
	// RepeatHold is the gap between repeats after which the key counts as released
	RepeatHold = 120 * time.Millisecond
)

type hold struct {
	deadline time.Time
}

// HoldTracker turns a stream of key presses into press and release edges
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[game.Action]*hold
}

func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[game.Action]*hold),
	}
}

// Press records a key press at now. Returns true on a new press, false on a
// repeat of a key already held.
func (h *HoldTracker) Press(a game.Action, now time.Time) bool {
	if k, ok := h.held[a]; ok {
		k.deadline = now.Add(h.repeat)
		return false
	}
	h.held[a] = &hold{deadline: now.Add(h.initial)}
	return true
}

// Expired removes and returns the actions whose keys stopped repeating
func (h *HoldTracker) Expired(now time.Time) []game.Action {
	var released []game.Action
	for _, a := range game.Actions() {
		k, ok := h.held[a]
		if !ok || now.Before(k.deadline) {
			continue
		}
		delete(h.held, a)
		released = append(released, a)
	}
	return released
}

// Held reports whether the action's key is currently considered down
func (h *HoldTracker) Held(a game.Action) bool {
	_, ok := h.held[a]
	return ok
}
