package game

import (
	"context"

	"github.com/milk9111/bikatown/ecs/render"
	"go.uber.org/zap"
)

// Runner drives a Context without a window: tick, render, pace.
type Runner struct {
	Ctx    *Context
	Canvas render.Canvas
	Pacer  *Pacer
	// MaxFrames stops the run after that many frames; zero means no limit.
	MaxFrames int
	Logger    *zap.Logger
}

// Run loops until quit is requested, the frame limit is hit, a frame fails,
// or ctx is cancelled. It returns the number of frames completed.
func (r *Runner) Run(ctx context.Context) (int, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		if r.MaxFrames > 0 && frames >= r.MaxFrames {
			return frames, nil
		}

		if r.Pacer != nil {
			r.Pacer.Begin()
		}
		r.Ctx.Tick()
		if err := r.Ctx.Render(r.Canvas); err != nil {
			return frames, err
		}
		frames++

		if r.Ctx.Control.Quit {
			logger.Info("quit requested", zap.Int("frames", frames))
			return frames, nil
		}
		if r.Pacer != nil {
			r.Pacer.Wait()
		}
	}
}
