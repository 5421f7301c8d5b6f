// Package sound plays the short click the terminal frontend emits while
// painting.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"mad-sand/internal/sims/sand"
)

var logger = loggo.GetLogger("madsand.sound")

const (
	sampleRate  = beep.SampleRate(44100)
	clickLength = 30 * time.Millisecond
	baseFreq    = 220.0
)

// Click returns a short tone whose pitch rises with the material index so
// each brush sounds different. Air is the lowest.
func Click(c sand.CellType) (beep.Streamer, error) {
	freq := baseFreq * (1 + 0.25*float64(c))
	if !c.Valid() {
		freq = baseFreq
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, errors.Annotatef(err, "tone for %s", c)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(clickLength), tone),
		Base:     2,
		Volume:   -2,
	}, nil
}

// Player rate-limits clicks onto the speaker. The zero value is usable
// and silent until Init succeeds.
type Player struct {
	mu     sync.Mutex
	ready  bool
	last   time.Time
	minGap time.Duration

	now func() time.Time
}

// NewPlayer returns a player that emits at most one click per gap.
func NewPlayer(gap time.Duration) *Player {
	return &Player{minGap: gap, now: time.Now}
}

// Init opens the audio device. Callers treat a failure as "no sound".
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return errors.Annotate(err, "cannot open audio device")
	}
	p.ready = true
	return nil
}

// Play queues the click for c unless one was played within the gap.
func (p *Player) Play(c sand.CellType) {
	if !p.allow() {
		return
	}
	s, err := Click(c)
	if err != nil {
		logger.Debugf("%v", err)
		return
	}
	speaker.Play(s)
}

func (p *Player) allow() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return false
	}
	now := time.Now()
	if p.now != nil {
		now = p.now()
	}
	if !p.last.IsZero() && now.Sub(p.last) < p.minGap {
		return false
	}
	p.last = now
	return true
}

// Close drops any queued clicks.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Clear()
		speaker.Close()
	}
	p.ready = false
}
