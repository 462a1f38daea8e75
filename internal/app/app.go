package app

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/engine"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/window"
)

// App owns the game driver and hands it to the configured frontend
type App struct {
	cfg    *config.Config
	log    *logrus.Entry
	driver *engine.Driver
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, log *logrus.Entry) *App {
	rng := game.NewRand(cfg.Seed)
	return &App{
		cfg: cfg,
		log: log,
		driver: engine.NewDriver(rng,
			engine.WithLogger(log),
			engine.WithTickRate(cfg.TickRate),
		),
	}
}

// Run blocks until the player quits
func (a *App) Run() error {
	a.log.WithFields(logrus.Fields{
		"frontend":  a.cfg.Frontend,
		"tick_rate": a.cfg.TickRate,
		"seed":      a.cfg.Seed,
	}).Info("game started")

	var err error
	switch a.cfg.Frontend {
	case config.FrontendWindow:
		err = window.Run(a.cfg, a.driver, a.log)
	case config.FrontendTerminal:
		err = a.runTerminal()
	default:
		err = errors.Errorf("unknown frontend %q", a.cfg.Frontend)
	}

	left, right := a.driver.Scores()
	entry := a.log.WithFields(logrus.Fields{
		"left":  left,
		"right": right,
		"ticks": a.driver.Ticks(),
	})
	if err != nil {
		entry.WithError(err).Error("game aborted")
		return err
	}
	entry.Info("game finished")
	return nil
}
