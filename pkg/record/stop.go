package record

import (
	"time"
)

// Never is a stop predicate that never fires; the recording runs until
// it is cancelled.
func Never() bool {
	return false
}

// StopAfter returns a stop predicate that fires once d has elapsed,
// measured from the moment this function is called.
func StopAfter(d time.Duration) StopFunc {
	deadline := time.Now().Add(d)
	return func() bool {
		return !time.Now().Before(deadline)
	}
}

// StopAfterFrames returns a stop predicate that fires after the
// predicate itself has been evaluated n times, i.e. after n frames have
// been captured.
func StopAfterFrames(n int) StopFunc {
	count := 0
	return func() bool {
		count++
		return count > n
	}
}
