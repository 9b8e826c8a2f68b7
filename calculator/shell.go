package calculator

import (
	"context"
	"errors"
	"io"
)

// DefaultPollInterval is how often Run checks the STO/RCL deadline while
// a slot digit is pending.
const DefaultPollInterval uint32 = 100

// KeySource delivers key presses. Poll never blocks. Wait blocks until a
// key arrives, the source is exhausted (io.EOF) or ctx is done.
type KeySource interface {
	Poll() (KeyEvent, bool)
	Wait(ctx context.Context) (KeyEvent, error)
}

// Clock is the shell's millisecond time source.
type Clock interface {
	NowMs() uint64
	SleepMs(ms uint32)
}

// Renderer draws the calculator after every change.
type Renderer func(*Calculator)

// Run feeds keys to c until ctx is done or keys is exhausted. While STO or
// RCL is waiting it polls so the deadline can expire between keys;
// otherwise it blocks on the next key.
func Run(ctx context.Context, c *Calculator, keys KeySource, clock Clock, render Renderer) error {
	render(c)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !c.Waiting() {
			ev, err := keys.Wait(ctx)
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			c.HandleEvent(ev, clock.NowMs())
			render(c)
			continue
		}

		if ev, ok := keys.Poll(); ok {
			c.HandleEvent(ev, clock.NowMs())
			render(c)
			continue
		}
		clock.SleepMs(c.pollInterval)
		if c.CheckTimeout(clock.NowMs()) {
			render(c)
		}
	}
}
