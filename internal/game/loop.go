package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const targetFrameTime = time.Second / TickRate

// Pacer holds the loop to a fixed tick rate by sleeping off whatever is left
// of each frame. A frame that overran is not made up for.
type Pacer struct {
	Frame time.Duration
	Now   func() time.Time
	Sleep func(time.Duration)

	frameStart time.Time
}

func NewPacer(frame time.Duration) *Pacer {
	return &Pacer{Frame: frame, Now: time.Now, Sleep: time.Sleep}
}

// Begin marks the start of a tick.
func (p *Pacer) Begin() {
	p.frameStart = p.Now()
}

// Wait blocks until the current tick's time slot has passed.
func (p *Pacer) Wait() {
	elapsed := p.Now().Sub(p.frameStart)
	if elapsed < p.Frame {
		p.Sleep(p.Frame - elapsed)
	}
}

// Loop is the main loop: it owns the session and drives the collaborators.
type Loop struct {
	Platform Platform
	Session  *Session
	Sprites  Sprites
	Sounds   Sounds
	Pacer    *Pacer
	Logger   *log.Logger
}

func NewLoop(p Platform, st *State, sp Sprites, snd Sounds, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		Platform: p,
		Session:  NewSession(st),
		Sprites:  sp,
		Sounds:   snd,
		Pacer:    NewPacer(targetFrameTime),
		Logger:   logger,
	}
}

// Run ticks until ctx is cancelled or the player asks to quit. Both are only
// checked at the top of a tick.
func (l *Loop) Run(ctx context.Context) error {
	if l.Sounds.Music != nil {
		l.Platform.PlayLooping(ChannelMusic, l.Sounds.Music)
	}
	defer l.Platform.Stop(ChannelNitro)
	defer l.Platform.Stop(ChannelMusic)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		l.Pacer.Begin()

		in := l.Platform.PollInput()
		if in.Quit {
			l.Logger.Debug("quit requested", "score", l.Session.State.Score)
			return nil
		}
		if err := l.Tick(in); err != nil {
			return err
		}

		l.Pacer.Wait()
	}
}

// Tick runs one phase update, its sound cues and the frame render.
func (l *Loop) Tick(in Input) error {
	prev := l.Session.Phase
	ev := l.Session.Update(in)
	if l.Session.Phase != prev {
		l.Logger.Debug("phase change", "from", prev, "to", l.Session.Phase, "score", l.Session.State.Score)
	}

	PlayCues(l.Platform, ev, l.Sounds)

	if err := RenderScene(l.Platform, l.Session, l.Sprites); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
