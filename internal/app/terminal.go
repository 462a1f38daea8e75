package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/engine"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/ui"
)

// terminal runs the game inside a tcell screen. Terminals never report key
// releases so held keys are tracked by their auto-repeat.
type terminal struct {
	driver   *engine.Driver
	screen   *ui.Screen
	renderer *ui.Renderer
	keys     *ui.Keymap
	holds    *ui.HoldTracker
	last     time.Time
}

func newTerminal(driver *engine.Driver, screen *ui.Screen, renderer *ui.Renderer, keys *ui.Keymap, now time.Time) *terminal {
	return &terminal{
		driver:   driver,
		screen:   screen,
		renderer: renderer,
		keys:     keys,
		holds:    ui.NewHoldTracker(ui.InitialHold, ui.RepeatHold),
		last:     now,
	}
}

func (a *App) runTerminal() error {
	keys, err := ui.NewKeymap(a.cfg.Keys)
	if err != nil {
		return err
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	t := newTerminal(a.driver, screen, ui.NewRenderer(screen, a.cfg.Palette()), keys, time.Now())

	quit := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			close(quit)
		case <-quit:
		}
	}()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil

		case ev := <-events:
			if t.handleEvent(ev, time.Now()) {
				close(quit)
				return nil
			}

		case now := <-ticker.C:
			t.tick(now)
		}
	}
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (t *terminal) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		t.screen.Sync()
		t.renderer.Frame(t.driver.Render)
	}
	return false
}

func (t *terminal) handleKey(key tcell.Key, r rune, now time.Time) bool {
	if ui.IsQuitKey(key, r) {
		return true
	}
	a := t.keys.Action(key, r)
	if a == game.ActionNone {
		return false
	}
	if t.holds.Press(a, now) {
		t.driver.Press(a)
	}
	return false
}

// tick releases keys that stopped repeating, advances the simulation by the
// wall time since the last tick and draws the result
func (t *terminal) tick(now time.Time) {
	for _, a := range t.holds.Expired(now) {
		t.driver.Release(a)
	}
	t.driver.Advance(now.Sub(t.last))
	t.last = now
	t.renderer.Frame(t.driver.Render)
}
