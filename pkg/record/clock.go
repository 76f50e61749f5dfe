// Package record implements the frame-timing and recording engine:
// the pacing clock, the dual-mode capture loop and the cancellation
// handoff for background recordings.
package record

import (
	"time"
)

// TimeUnit selects the unit for elapsed-time readings.
type TimeUnit int

const (
	// UnitNanosecond reports elapsed time in nanoseconds.
	UnitNanosecond TimeUnit = iota
	// UnitMillisecond reports elapsed time in milliseconds.
	UnitMillisecond
	// UnitSecond reports elapsed time in seconds.
	UnitSecond
)

// Clock paces the capture loop at a fixed frame rate. An FPS of 0 means
// uncapped: Tick never sleeps and the per-frame delay is zero.
type Clock struct {
	fps      int
	interval time.Duration
	lastTick time.Time
}

// NewClock creates a pacing clock for the given frame rate.
func NewClock(fps int) *Clock {
	var interval time.Duration
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}
	return &Clock{
		fps:      fps,
		interval: interval,
		lastTick: time.Now(),
	}
}

// FPS returns the target frame rate.
func (c *Clock) FPS() int {
	return c.fps
}

// Interval returns the target duration of one tick.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// DelayCS returns the per-frame display duration in hundredths of a
// second: the target interval in milliseconds divided by 10, truncated
// toward zero. The truncation rule is fixed so that recorded timings
// are reproducible.
func (c *Clock) DelayCS() int {
	return int(c.interval.Milliseconds() / 10)
}

// Elapsed returns the time since the last tick in the requested unit.
func (c *Clock) Elapsed(unit TimeUnit) float64 {
	ns := float64(time.Since(c.lastTick).Nanoseconds())
	switch unit {
	case UnitMillisecond:
		return ns / 1e6
	case UnitSecond:
		return ns / 1e9
	default:
		return ns
	}
}

// Tick suspends the calling goroutine for whatever remains of the
// target interval, then advances the reference instant. This is the
// sole suspension point of the synchronous capture path.
func (c *Clock) Tick() {
	if rest := c.interval - time.Since(c.lastTick); rest > 0 {
		time.Sleep(rest)
	}
	c.lastTick = time.Now()
}
