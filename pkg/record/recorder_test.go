package record

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/user/gifcast/pkg/adapters/logger"
	"github.com/user/gifcast/pkg/mocks"
)

// numberedSource returns distinct 1x1 images so capture order can be
// verified by pixel value.
func numberedSource() *mocks.ImageSource {
	n := 0
	return &mocks.ImageSource{
		CaptureFunc: func() (image.Image, error) {
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.Set(0, 0, color.RGBA{R: uint8(n), A: 255})
			n++
			return img, nil
		},
	}
}

func TestRecord_ThreeTicks(t *testing.T) {
	source := numberedSource()
	r := NewRecorder(source, 1000, logger.NewNoop())

	frames, err := r.Record(context.Background(), StopAfterFrames(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected exactly 3 frames, got %d", len(frames))
	}

	// Frames must appear in strict capture order
	for i, f := range frames {
		red, _, _, _ := f.Image.At(0, 0).RGBA()
		if uint8(red>>8) != uint8(i) {
			t.Errorf("frame %d out of order: pixel value %d", i, red>>8)
		}
	}
}

func TestRecord_StopImmediately(t *testing.T) {
	source := numberedSource()
	r := NewRecorder(source, 10, logger.NewNoop())

	start := time.Now()
	frames, err := r.Record(context.Background(), func() bool { return true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The stop predicate is checked before the first capture
	if len(frames) != 0 {
		t.Errorf("expected an empty sequence, got %d frames", len(frames))
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("expected an immediate return, took %v", elapsed)
	}
	if source.Captures() != 0 {
		t.Errorf("expected no captures, got %d", source.Captures())
	}
}

func TestRecord_ContextCancelled(t *testing.T) {
	source := numberedSource()
	r := NewRecorder(source, 10, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames, err := r.Record(ctx, Never)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("expected an empty sequence, got %d frames", len(frames))
	}
}

func TestRecord_DelayMatchesClock(t *testing.T) {
	source := numberedSource()
	r := NewRecorder(source, 100, logger.NewNoop())

	frames, err := r.Record(context.Background(), StopAfterFrames(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := r.Clock().DelayCS()
	for i, f := range frames {
		if f.DelayCS != want {
			t.Errorf("frame %d: expected delay %d cs, got %d", i, want, f.DelayCS)
		}
	}
}

func TestRecord_SourceFailure(t *testing.T) {
	errBroken := errors.New("source gone")
	n := 0
	source := &mocks.ImageSource{
		CaptureFunc: func() (image.Image, error) {
			if n >= 2 {
				return nil, errBroken
			}
			n++
			return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
		},
	}
	r := NewRecorder(source, 1000, logger.NewNoop())

	frames, err := r.Record(context.Background(), Never)
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected source failure to surface, got %v", err)
	}
	if len(frames) != 2 {
		t.Errorf("expected the 2 frames captured before the failure, got %d", len(frames))
	}
}

func TestStart_FinishAndWait(t *testing.T) {
	for _, fps := range []int{1, 30, 100} {
		source := numberedSource()
		r := NewRecorder(source, fps, logger.NewNoop())

		recording := r.Start()
		time.Sleep(20 * time.Millisecond)
		if err := recording.Finish(); err != nil {
			t.Fatalf("fps %d: unexpected finish error: %v", fps, err)
		}

		done := make(chan struct{})
		go func() {
			recording.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("fps %d: Wait did not terminate", fps)
		}
	}
}

func TestStart_BackgroundCapture(t *testing.T) {
	// 100 fps, always-black 1x1 source, stop after 20ms of capture
	source := &mocks.ImageSource{
		CaptureFunc: func() (image.Image, error) {
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.Set(0, 0, color.Black)
			return img, nil
		},
	}
	r := NewRecorder(source, 100, logger.NewNoop())

	recording := r.Start()
	time.Sleep(20 * time.Millisecond)
	if err := recording.Finish(); err != nil {
		t.Fatalf("unexpected finish error: %v", err)
	}
	frames, err := recording.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(frames) == 0 {
		t.Fatal("expected at least one frame")
	}
	for i, f := range frames {
		if f.DelayCS != 1 {
			t.Errorf("frame %d: expected delay 1 cs at 100 fps, got %d", i, f.DelayCS)
		}
		bounds := f.Image.Bounds()
		if bounds.Dx() != 1 || bounds.Dy() != 1 {
			t.Errorf("frame %d: expected 1x1 geometry, got %dx%d", i, bounds.Dx(), bounds.Dy())
		}
	}
}

func TestStart_WorkerFailure(t *testing.T) {
	errBroken := errors.New("source gone")
	source := &mocks.ImageSource{
		CaptureFunc: func() (image.Image, error) {
			return nil, errBroken
		},
	}
	r := NewRecorder(source, 100, logger.NewNoop())

	recording := r.Start()
	// The worker dies on its own; retrieval must surface the failure
	// even though Finish is never called.
	frames, err := recording.Wait()
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected worker failure to surface, got %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("expected no frames, got %d", len(frames))
	}
}

func TestRecording_DoubleFinish(t *testing.T) {
	r := NewRecorder(numberedSource(), 100, logger.NewNoop())
	recording := r.Start()

	if err := recording.Finish(); err != nil {
		t.Fatalf("unexpected error on first finish: %v", err)
	}
	if err := recording.Finish(); !errors.Is(err, ErrRecordingFinished) {
		t.Errorf("expected ErrRecordingFinished on second finish, got %v", err)
	}
	recording.Wait()
}

func TestRecording_Poll(t *testing.T) {
	r := NewRecorder(numberedSource(), 100, logger.NewNoop())
	recording := r.Start()

	if _, ok, _ := recording.Poll(); ok {
		t.Error("expected Poll to report not finished while recording")
	}

	if err := recording.Finish(); err != nil {
		t.Fatalf("unexpected finish error: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		frames, ok, err := recording.Poll()
		if ok {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = frames
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Poll never reported completion")
		}
		time.Sleep(time.Millisecond)
	}
}
