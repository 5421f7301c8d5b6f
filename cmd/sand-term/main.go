package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/juju/errors"
	flag "github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"mad-sand/internal/app"
	"mad-sand/internal/sims/sand"
	"mad-sand/internal/sound"
	"mad-sand/internal/term"
)

var logger = loggo.GetLogger("madsand.cmd")

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse(true)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "sand-term: %v\n", err)
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

	screen, err := term.Open()
	if err != nil {
		return errors.Trace(err)
	}
	defer screen.Fini()
	if !term.Fits(screen, sc.Size) {
		w, h := screen.Size()
		return errors.Errorf("a %d cell world needs %dx%d characters, terminal is %dx%d", sc.Size, 2*sc.Size, sc.Size+1, w, h)
	}

	world := sand.NewWithConfig(sc)
	session := app.NewSession(world, cfg.Seed)
	session.Reset()

	if cfg.Sound {
		player := sound.NewPlayer(40 * time.Millisecond)
		if err := player.Init(); err != nil {
			// Painting works without audio.
			logger.Warningf("%v", err)
		} else {
			defer player.Close()
			session.OnPaint = player.Play
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = term.New(screen, session, cfg.TickRate()).Run(ctx)
	if errors.Cause(err) == context.Canceled {
		return nil
	}
	return errors.Trace(err)
}
