package record

import (
	"context"
	"fmt"

	"github.com/user/gifcast/pkg/frame"
	"github.com/user/gifcast/pkg/ports"
)

// StopFunc is a caller-supplied stop predicate. It is evaluated once
// per loop iteration, before the frame is captured; a predicate that is
// already true on entry yields an empty sequence.
type StopFunc func() bool

// Recorder runs the capture loop against an image source. A Recorder
// drives at most one recording; create a new one per recording.
type Recorder struct {
	source ports.ImageSource
	clock  *Clock
	logger ports.Logger
	cancel chan struct{}
}

// NewRecorder creates a recorder capturing from source at the given
// frame rate.
func NewRecorder(source ports.ImageSource, fps int, logger ports.Logger) *Recorder {
	return &Recorder{
		source: source,
		clock:  NewClock(fps),
		logger: logger.WithComponent("record"),
		cancel: make(chan struct{}),
	}
}

// Clock returns the recorder's pacing clock.
func (r *Recorder) Clock() *Clock {
	return r.clock
}

// Record runs the capture loop on the calling goroutine until the stop
// predicate fires or ctx is cancelled. It blocks for the entire
// recording and returns the captured sequence directly.
func (r *Recorder) Record(ctx context.Context, stop StopFunc) (frame.Sequence, error) {
	return r.loop(ctx, stop)
}

// Start moves the capture loop onto its own goroutine and immediately
// returns a Recording handle. The worker owns the in-progress sequence
// until it is retrieved through the handle.
func (r *Recorder) Start() *Recording {
	done := make(chan outcome, 1)
	go func() {
		frames, err := r.loop(context.Background(), nil)
		done <- outcome{frames: frames, err: err}
	}()
	return &Recording{cancel: r.cancel, done: done}
}

// loop is the capture cycle shared by both modes: poll cancellation,
// evaluate the stop predicate, tick the clock, capture, append. Every
// iteration either produces a frame or terminates the recording; a
// failing source aborts rather than skipping the tick.
func (r *Recorder) loop(ctx context.Context, stop StopFunc) (frame.Sequence, error) {
	frames := make(frame.Sequence, 0)
	delay := r.clock.DelayCS()
	for {
		select {
		case <-r.cancel:
			r.logger.Debug("Recording stopped after %d frames", len(frames))
			return frames, nil
		case <-ctx.Done():
			r.logger.Debug("Recording interrupted after %d frames", len(frames))
			return frames, nil
		default:
		}
		if stop != nil && stop() {
			r.logger.Debug("Stop condition reached after %d frames", len(frames))
			return frames, nil
		}
		r.clock.Tick()
		img, err := r.source.Capture()
		if err != nil {
			return frames, fmt.Errorf("capture frame %d: %w", len(frames), err)
		}
		frames = append(frames, frame.Frame{Image: img, DelayCS: delay})
	}
}
