package demo

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host loop.
type HeadlessConfig struct {
	Width, Height int
	Hz            int

	// Stop after this many frames (0 = run until the context is done).
	Frames uint64

	// Release the advance key every this many frames (0 = never).
	AdvanceEvery uint64
}

// RunHeadless drives the application's lifecycle without opening a window. The app is created, sized once, then
// rendered on every tick. It is always disposed before returning, even when Create fails.
func RunHeadless(ctx context.Context, a *App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	defer a.Dispose()
	if err := a.Create(); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	a.Dispatch(Event{Kind: EventResize, X: cfg.Width, Y: cfg.Height})

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			frame++
			if cfg.AdvanceEvery > 0 && frame%cfg.AdvanceEvery == 0 {
				a.Dispatch(Event{Kind: EventKeyDown, Key: AdvanceKey})
				a.Dispatch(Event{Kind: EventKeyUp, Key: AdvanceKey})
			}
			a.Render()
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
}
