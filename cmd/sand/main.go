//go:build ebiten

package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/errors"
	flag "github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"mad-sand/internal/app"
	"mad-sand/internal/sims/sand"
)

var logger = loggo.GetLogger("madsand.cmd")

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse(true)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "sand: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	if err := cfg.ConfigureLogging(); err != nil {
		return errors.Trace(err)
	}
	sc, err := cfg.SandConfig()
	if err != nil {
		return errors.Trace(err)
	}

	world := sand.NewWithConfig(sc)
	session := app.NewSession(world, cfg.Seed)
	session.Reset()

	game := app.New(session, sc.BlockPixels, cfg.HUDWidth)
	size := world.Size()

	ebiten.SetWindowTitle("mad-sand: " + sc.Scene)
	ebiten.SetTPS(cfg.TickRate())
	ebiten.SetWindowSize(size.W*sc.BlockPixels+max(cfg.HUDWidth, 0), size.H*sc.BlockPixels)
	logger.Infof("running %dx%d world, scene %s", size.W, size.H, sc.Scene)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return errors.Trace(err)
	}
	return nil
}
