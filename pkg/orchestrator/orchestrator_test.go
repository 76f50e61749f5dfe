package orchestrator

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/user/gifcast/pkg/adapters/logger"
	"github.com/user/gifcast/pkg/frame"
	"github.com/user/gifcast/pkg/mocks"
	"github.com/user/gifcast/pkg/ports"
)

type fixture struct {
	source   *mocks.ImageSource
	runner   *mocks.CommandRunner
	anim     *mocks.AnimationEncoder
	decoder  *mocks.AnimationDecoder
	still    *mocks.StillEncoder
	renderer *mocks.Renderer
	fs       *mocks.FileSystem
	sink     *mocks.DebugSink
}

func newFixture(sinkEnabled bool) (*fixture, *Orchestrator) {
	f := &fixture{
		source:   &mocks.ImageSource{},
		runner:   &mocks.CommandRunner{},
		anim:     &mocks.AnimationEncoder{},
		decoder:  &mocks.AnimationDecoder{},
		still:    &mocks.StillEncoder{},
		renderer: &mocks.Renderer{},
		fs:       mocks.NewFileSystem(),
		sink:     mocks.NewDebugSink(sinkEnabled),
	}
	orch := New(
		f.source, f.runner, f.anim, f.decoder, f.still,
		f.renderer, f.fs, f.sink, logger.NewNoop(),
	)
	return f, orch
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.FPS = 100
	cfg.OutputPath = "out.gif"
	cfg.BorderWidth = 0
	return cfg
}

func TestRecord_Synchronous(t *testing.T) {
	_, orch := newFixture(false)
	cfg := testConfig()
	cfg.Duration = 50 * time.Millisecond

	frames, err := orch.Record(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) == 0 {
		t.Error("expected frames from a 50ms recording at 100 fps")
	}
}

func TestRecord_WithCommand(t *testing.T) {
	f, orch := newFixture(false)
	f.runner.RunFunc = func(ctx context.Context, command string) error {
		time.Sleep(30 * time.Millisecond)
		return nil
	}
	cfg := testConfig()
	cfg.Command = "make build"

	frames, err := orch.Record(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) == 0 {
		t.Error("expected frames captured while the command ran")
	}
	if len(f.runner.Commands) != 1 || f.runner.Commands[0] != "make build" {
		t.Errorf("expected the configured command to run, got %v", f.runner.Commands)
	}
}

func TestRecord_CommandFailure(t *testing.T) {
	errCmd := errors.New("exit status 1")
	f, orch := newFixture(false)
	f.runner.RunFunc = func(ctx context.Context, command string) error {
		time.Sleep(20 * time.Millisecond)
		return errCmd
	}
	cfg := testConfig()
	cfg.Command = "false"

	frames, err := orch.Record(context.Background(), cfg)
	if !errors.Is(err, errCmd) {
		t.Fatalf("expected the command failure to surface, got %v", err)
	}
	// Frames are discarded, not saved, when the command fails
	if frames != nil {
		t.Errorf("expected discarded frames, got %d", len(frames))
	}
}

func TestRecord_SourceFailureWithCommand(t *testing.T) {
	errBroken := errors.New("display gone")
	f, orch := newFixture(false)
	f.source.CaptureFunc = func() (image.Image, error) {
		return nil, errBroken
	}
	f.runner.RunFunc = func(ctx context.Context, command string) error {
		time.Sleep(20 * time.Millisecond)
		return nil
	}
	cfg := testConfig()
	cfg.Command = "true"

	_, err := orch.Record(context.Background(), cfg)
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected the capture failure to surface, got %v", err)
	}
}

func TestRecord_DebugSink(t *testing.T) {
	f, orch := newFixture(true)
	cfg := testConfig()
	cfg.Duration = 30 * time.Millisecond

	frames, err := orch.Record(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.sink.RecordingJSON == nil {
		t.Error("expected recording metadata in the debug sink")
	}
	if f.sink.FrameCount() != len(frames) {
		t.Errorf("expected %d frames in the debug sink, got %d", len(frames), f.sink.FrameCount())
	}
}

func TestCapture_Still(t *testing.T) {
	_, orch := newFixture(false)
	cfg := testConfig()
	cfg.Countdown = 0

	frames, err := orch.Capture(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frames) != 1 {
		t.Fatalf("expected a single frame, got %d", len(frames))
	}
	if frames[0].DelayCS != 0 {
		t.Errorf("a still frame has no delay semantics, got %d", frames[0].DelayCS)
	}
}

func TestCapture_CancelledDuringCountdown(t *testing.T) {
	_, orch := newFixture(false)
	cfg := testConfig()
	cfg.Countdown = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := orch.Capture(ctx, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestSave_EmptySequence(t *testing.T) {
	_, orch := newFixture(false)

	if err := orch.Save(frame.Sequence{}, testConfig()); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func TestSave_GIF(t *testing.T) {
	f, orch := newFixture(false)
	cfg := testConfig()

	frames := frame.Sequence{
		{Image: image.NewRGBA(image.Rect(0, 0, 2, 2)), DelayCS: 10},
		{Image: image.NewRGBA(image.Rect(0, 0, 2, 2)), DelayCS: 10},
	}
	if err := orch.Save(frames, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.anim.Frames) != 2 {
		t.Errorf("expected 2 encoded frames, got %d", len(f.anim.Frames))
	}
	if f.anim.Width != 2 || f.anim.Height != 2 {
		t.Errorf("expected 2x2 canvas, got %dx%d", f.anim.Width, f.anim.Height)
	}
	if _, ok := f.fs.GetFile("out.gif"); !ok {
		t.Error("expected the artifact to be written to out.gif")
	}
}

func TestSave_Still(t *testing.T) {
	f, orch := newFixture(false)
	cfg := testConfig()
	cfg.Format = ports.FormatPNG
	cfg.OutputPath = "shot.png"

	frames := frame.Sequence{
		{Image: image.NewRGBA(image.Rect(0, 0, 2, 2))},
	}
	if err := orch.Save(frames, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.still.Images) != 1 {
		t.Errorf("expected a single still encode, got %d", len(f.still.Images))
	}
	if len(f.anim.Frames) != 0 {
		t.Error("expected the animation encoder to stay untouched")
	}
	if _, ok := f.fs.GetFile("shot.png"); !ok {
		t.Error("expected the artifact to be written to shot.png")
	}
}

func TestSave_Decoration(t *testing.T) {
	f, orch := newFixture(false)
	cfg := testConfig()
	cfg.BorderWidth = 2

	frames := frame.Sequence{
		{Image: image.NewRGBA(image.Rect(0, 0, 2, 2)), DelayCS: 5},
		{Image: image.NewRGBA(image.Rect(0, 0, 2, 2)), DelayCS: 5},
	}
	if err := orch.Save(frames, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.renderer.Decorated != 2 {
		t.Errorf("expected every frame decorated, got %d", f.renderer.Decorated)
	}
}

func TestSave_NoDecorationWhenDisabled(t *testing.T) {
	f, orch := newFixture(false)
	cfg := testConfig()

	frames := frame.Sequence{{Image: image.NewRGBA(image.Rect(0, 0, 2, 2))}}
	if err := orch.Save(frames, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.renderer.Decorated != 0 {
		t.Errorf("expected no decoration, got %d", f.renderer.Decorated)
	}
}

func TestEdit(t *testing.T) {
	f, orch := newFixture(false)
	cfg := testConfig()
	cfg.InputPath = "in.gif"
	cfg.OutputPath = "edited.gif"

	f.fs.WriteFile("in.gif", []byte("GIF89a"))
	f.decoder.DecodeFunc = func(data []byte) ([]ports.AnimationFrame, error) {
		return []ports.AnimationFrame{
			{Image: image.NewRGBA(image.Rect(0, 0, 3, 3)), DelayCS: 7},
			{Image: image.NewRGBA(image.Rect(0, 0, 3, 3)), DelayCS: 7},
		}, nil
	}

	if err := orch.Edit(context.Background(), cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.anim.Frames) != 2 {
		t.Errorf("expected 2 re-encoded frames, got %d", len(f.anim.Frames))
	}
	if f.anim.Delays[0] != 7 {
		t.Errorf("expected the original delay preserved, got %d", f.anim.Delays[0])
	}
	if _, ok := f.fs.GetFile("edited.gif"); !ok {
		t.Error("expected the edited artifact to be written")
	}
}

func TestEdit_MissingInput(t *testing.T) {
	_, orch := newFixture(false)
	cfg := testConfig()
	cfg.InputPath = "missing.gif"

	if err := orch.Edit(context.Background(), cfg); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
