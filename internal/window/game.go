package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/engine"
	"github.com/diegok/duopong/internal/game"
)

// Title is shown in the window's title bar
const Title = "duopong"

// Game adapts a driver to ebiten's game loop. ebiten calls Update at a fixed
// TPS, so every call is exactly one simulation step.
type Game struct {
	driver   *engine.Driver
	keys     Keymap
	renderer *Renderer
	dt       float64
}

func NewGame(driver *engine.Driver, keys Keymap, renderer *Renderer, tickRate int) *Game {
	return &Game{
		driver:   driver,
		keys:     keys,
		renderer: renderer,
		dt:       1 / float64(tickRate),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	pressed, released := g.keys.Edges()
	for _, a := range pressed {
		g.driver.Press(a)
	}
	for _, a := range released {
		g.driver.Release(a)
	}

	g.driver.Step(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Frame(screen, g.driver.Render)
}

// Layout keeps the logical screen at the field size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(game.WindowWidth), int(game.WindowHeight)
}

// Run opens the window and blocks until it is closed or Escape is pressed
func Run(cfg *config.Config, driver *engine.Driver, log logrus.FieldLogger) error {
	keys, err := NewKeymap(cfg.Keys)
	if err != nil {
		return errors.Wrap(err, "key bindings")
	}
	faces, err := LoadFaces()
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(game.WindowWidth), int(game.WindowHeight))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	log.WithField("tick_rate", cfg.TickRate).Info("window opened")

	g := NewGame(driver, keys, NewRenderer(faces, cfg.Palette()), cfg.TickRate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
