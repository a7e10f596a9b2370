package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStop ends a Driver run without reporting an error.
var ErrStop = errors.New("core: stop")

// TickFunc runs one logical frame.
type TickFunc func() error

// Driver calls a TickFunc once per frame until ctx is done, a tick fails or
// the driver's own limit is reached. Ticks never overlap.
type Driver interface {
	Run(ctx context.Context, tick TickFunc) error
}

// IntervalDriver ticks on a wall-clock period. Missed periods are dropped,
// not caught up, and no delta time is passed on.
type IntervalDriver struct {
	Period   time.Duration
	MaxTicks uint64 // 0 runs until ctx is done
}

func (d IntervalDriver) Run(ctx context.Context, tick TickFunc) error {
	if d.Period <= 0 {
		return fmt.Errorf("core: tick period must be > 0, got %v", d.Period)
	}
	t := time.NewTicker(d.Period)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := tick(); err != nil {
				return stopped(err)
			}
			n++
			if d.MaxTicks > 0 && n >= d.MaxTicks {
				return nil
			}
		}
	}
}

// ImmediateDriver runs a fixed number of ticks back to back.
type ImmediateDriver struct {
	Ticks uint64
}

func (d ImmediateDriver) Run(ctx context.Context, tick TickFunc) error {
	for i := uint64(0); i < d.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := tick(); err != nil {
			return stopped(err)
		}
	}
	return nil
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
