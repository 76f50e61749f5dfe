// Package orchestrator coordinates capture, recording and output.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/gifcast/pkg/frame"
	"github.com/user/gifcast/pkg/ports"
	"github.com/user/gifcast/pkg/record"
)

// ErrNoFrames is returned when a save is attempted with an empty
// sequence.
var ErrNoFrames = errors.New("no frames to save")

// Config contains all configuration for the orchestrator.
type Config struct {
	// Output
	OutputPath string
	Format     ports.ImageFormat
	Quality    int // Still/animation quality (1-100)

	// Recording
	FPS       int
	Duration  time.Duration // 0 means record until the timeout
	Countdown time.Duration // Delay before a still capture
	Timeout   time.Duration // Upper bound for a recording
	Command   string        // Companion command; empty means none

	// Decoration
	Padding     ports.Padding
	BorderWidth int
	BorderColor color.Color

	// Animation
	Repeat int // Negative means loop forever
	Speed  float64
	Fast   bool

	// Edit
	InputPath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Format:      ports.FormatGIF,
		Quality:     75,
		FPS:         10,
		Countdown:   3 * time.Second,
		Timeout:     300 * time.Second,
		BorderWidth: 1,
		BorderColor: color.RGBA{R: 0x3A, G: 0xA4, B: 0x31, A: 0xFF},
		Repeat:      -1,
		Speed:       1.0,
	}
}

// recordingMeta is the debug-sink summary of a finished recording.
type recordingMeta struct {
	FPS        int    `json:"fps"`
	FrameCount int    `json:"frame_count"`
	DurationMs int64  `json:"duration_ms"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Command    string `json:"command,omitempty"`
}

// Orchestrator wires the capture core to its external collaborators.
type Orchestrator struct {
	source   ports.ImageSource
	runner   ports.CommandRunner
	anim     ports.AnimationEncoder
	decoder  ports.AnimationDecoder
	still    ports.StillEncoder
	renderer ports.Renderer
	fs       ports.FileSystem
	sink     ports.DebugSink
	logger   ports.Logger
}

// New creates a new Orchestrator.
func New(
	source ports.ImageSource,
	runner ports.CommandRunner,
	anim ports.AnimationEncoder,
	decoder ports.AnimationDecoder,
	still ports.StillEncoder,
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:   source,
		runner:   runner,
		anim:     anim,
		decoder:  decoder,
		still:    still,
		renderer: renderer,
		fs:       fs,
		sink:     sink,
		logger:   logger,
	}
}

// Record captures a frame sequence according to the configuration.
//
// With a companion command configured the capture loop runs in the
// background while the command executes; cancellation is sent once the
// command completes, and the frames are collected through the handle.
// A failing command still tears the worker down, but its frames are
// discarded. Without a command the loop runs synchronously on the
// calling goroutine, stopped by the configured duration or timeout.
func (o *Orchestrator) Record(ctx context.Context, config Config) (frame.Sequence, error) {
	recorder := record.NewRecorder(o.source, config.FPS, o.logger)

	var frames frame.Sequence
	var err error
	if config.Command != "" {
		o.logger.Info(l10n.F("Recording %d fps while running: %s", config.FPS, config.Command))
		recording := recorder.Start()
		cmdErr := o.runner.Run(ctx, config.Command)
		if finishErr := recording.Finish(); finishErr != nil {
			o.logger.Warn(l10n.F("Failed to finish the recording: %s", finishErr))
		}
		frames, err = recording.Wait()
		if cmdErr != nil {
			o.logger.Error(l10n.F("Command failed: %s", cmdErr))
			return nil, fmt.Errorf("run command: %w", cmdErr)
		}
	} else {
		stop := record.StopAfter(config.Timeout)
		if config.Duration > 0 {
			o.logger.Info(l10n.F("Recording %d fps for %.1f seconds", config.FPS, config.Duration.Seconds()))
			stop = record.StopAfter(config.Duration)
		} else {
			o.logger.Info(l10n.F("Recording %d fps until interrupted", config.FPS))
		}
		frames, err = recorder.Record(ctx, stop)
	}
	if err != nil {
		o.logger.Error(l10n.F("Failed to record: %s", err))
		return nil, fmt.Errorf("record: %w", err)
	}
	o.logger.Info(l10n.F("Captured %d frames", len(frames)))

	if o.sink.Enabled() {
		o.saveDebugOutput(frames, config)
	}

	return frames, nil
}

// Capture takes a single still frame after the configured countdown.
func (o *Orchestrator) Capture(ctx context.Context, config Config) (frame.Sequence, error) {
	if config.Countdown > 0 {
		o.logger.Info(l10n.F("Capturing in %.0f seconds", config.Countdown.Seconds()))
		select {
		case <-time.After(config.Countdown):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	img, err := o.source.Capture()
	if err != nil {
		o.logger.Error(l10n.F("Failed to capture: %s", err))
		return nil, fmt.Errorf("capture: %w", err)
	}
	o.logger.Info(l10n.T("Captured the image"))
	return frame.Sequence{{Image: img}}, nil
}

// Edit re-encodes an existing animated artifact with the configured
// decoration applied to every frame.
func (o *Orchestrator) Edit(ctx context.Context, config Config) error {
	data, err := o.fs.ReadFile(config.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	decoded, err := o.decoder.Decode(data)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode %s: %s", config.InputPath, err))
		return fmt.Errorf("decode input: %w", err)
	}
	o.logger.Info(l10n.F("Editing %d frames", len(decoded)))

	frames := make(frame.Sequence, 0, len(decoded))
	for _, f := range decoded {
		frames = append(frames, frame.Frame{Image: f.Image, DelayCS: f.DelayCS})
	}
	return o.Save(frames, config)
}

// Save decorates, encodes and writes the captured frames. A sequence
// recorded at more than one frame becomes an animation; a single frame
// is saved as a still in the configured format. An empty sequence is a
// fatal precondition failure.
func (o *Orchestrator) Save(frames frame.Sequence, config Config) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	frames = o.decorate(frames, config)

	var data []byte
	var err error
	if config.Format == ports.FormatGIF {
		data, err = o.encodeAnimation(frames, config)
	} else {
		data, err = o.still.Encode(frames[0].Image, config.Format, config.Quality)
	}
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode: %s", err))
		return fmt.Errorf("encode %s: %w", config.Format, err)
	}

	if err := o.fs.WriteFile(config.OutputPath, data); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Output saved to %s (%d bytes)", config.OutputPath, len(data)))
	return nil
}

// decorate applies padding and border to each frame if configured.
func (o *Orchestrator) decorate(frames frame.Sequence, config Config) frame.Sequence {
	opts := ports.DecorOptions{
		Padding:     config.Padding,
		BorderWidth: config.BorderWidth,
		BorderColor: config.BorderColor,
	}
	if opts.Padding.Empty() && opts.BorderWidth <= 0 {
		return frames
	}
	decorated := make(frame.Sequence, len(frames))
	for i, f := range frames {
		decorated[i] = frame.Frame{
			Image:   o.renderer.Decorate(f.Image, opts),
			DelayCS: f.DelayCS,
		}
	}
	return decorated
}

// encodeAnimation feeds the sequence through the animation encoder
// using the first frame's geometry as the canvas.
func (o *Orchestrator) encodeAnimation(frames frame.Sequence, config Config) ([]byte, error) {
	geometry := frames.Geometry()
	opts := ports.AnimationOptions{
		Repeat:  config.Repeat,
		Quality: config.Quality,
		Speed:   config.Speed,
		Fast:    config.Fast,
	}
	if err := o.anim.Begin(geometry.Dx(), geometry.Dy(), opts); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}
	for i, f := range frames {
		if err := o.anim.EncodeFrame(f.Image, f.DelayCS); err != nil {
			return nil, fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	return o.anim.End()
}

func (o *Orchestrator) saveDebugOutput(frames frame.Sequence, config Config) {
	geometry := frames.Geometry()
	meta := recordingMeta{
		FPS:        config.FPS,
		FrameCount: len(frames),
		DurationMs: frames.Duration().Milliseconds(),
		Width:      geometry.Dx(),
		Height:     geometry.Dy(),
		Command:    config.Command,
	}
	if data, err := json.MarshalIndent(meta, "", "  "); err == nil {
		o.sink.SaveRecordingJSON(data)
	}
	for i, f := range frames {
		o.sink.SaveFrame(i, f.Image)
	}
}
