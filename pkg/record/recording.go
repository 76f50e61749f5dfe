package record

import (
	"errors"
	"sync"

	"github.com/user/gifcast/pkg/frame"
)

// ErrRecordingFinished is returned by Finish when the recording has
// already been finished.
var ErrRecordingFinished = errors.New("recording already finished")

// outcome is the worker's terminal state, handed over exactly once.
type outcome struct {
	frames frame.Sequence
	err    error
}

// Recording is the handle for a background capture. It owns the sending
// half of the one-shot cancellation signal and the means to collect the
// captured sequence once the worker terminates.
//
// The handle is meant for a single controlling goroutine; Wait and Poll
// must not be called concurrently with each other.
type Recording struct {
	mu       sync.Mutex
	finished bool

	cancel chan struct{}
	done   <-chan outcome
	result *outcome
}

// Finish fires the one-shot cancellation signal. The worker observes it
// on its next loop iteration, so cancellation latency is about one
// frame interval. A second call is a caller error and returns
// ErrRecordingFinished without touching the signal.
func (r *Recording) Finish() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return ErrRecordingFinished
	}
	r.finished = true
	close(r.cancel)
	return nil
}

// Wait blocks until the capture worker terminates and returns the
// completed sequence. Ownership of the frames transfers to the caller
// at this point. If the worker terminated because the source became
// unavailable, the capture error is surfaced alongside the frames
// collected up to the failure.
func (r *Recording) Wait() (frame.Sequence, error) {
	if r.result == nil {
		out := <-r.done
		r.result = &out
	}
	return r.result.frames, r.result.err
}

// Poll is the non-blocking variant of Wait. It reports false until the
// worker has actually terminated.
func (r *Recording) Poll() (frame.Sequence, bool, error) {
	if r.result == nil {
		select {
		case out := <-r.done:
			r.result = &out
		default:
			return nil, false, nil
		}
	}
	return r.result.frames, true, r.result.err
}
