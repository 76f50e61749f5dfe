// Package main provides the CLI entry point for gifcast.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/gifcast/pkg/adapters/filesink"
	"github.com/user/gifcast/pkg/adapters/ggrenderer"
	"github.com/user/gifcast/pkg/adapters/gifencoder"
	"github.com/user/gifcast/pkg/adapters/logger"
	"github.com/user/gifcast/pkg/adapters/nullsink"
	"github.com/user/gifcast/pkg/adapters/osfilesystem"
	"github.com/user/gifcast/pkg/adapters/screengrab"
	"github.com/user/gifcast/pkg/adapters/shellrunner"
	"github.com/user/gifcast/pkg/adapters/stillencoder"
	"github.com/user/gifcast/pkg/config"
	"github.com/user/gifcast/pkg/orchestrator"
	"github.com/user/gifcast/pkg/ports"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "gifcast",
		Usage:   "Record the screen as an animated GIF, or capture it as a still image.",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"C"}, Usage: "Path to a YAML configuration file."},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Usage: "Log level (debug, info, warn, error)."},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: "Suppress all log output."},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "Save intermediate frames for debugging."},
			&cli.StringFlag{Name: "debug-dir", Value: "./debug", Usage: "Directory for debug output."},
		},
		Commands: []*cli.Command{
			recordCommand(),
			captureCommand(),
			editCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path (default: t.<format>)."},
		&cli.BoolFlag{Name: "date", Usage: "Append the current date to the file name."},
		&cli.BoolFlag{Name: "timestamp", Usage: "Append the Unix timestamp to the file name."},
	}
}

func gifFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "repeat", Value: -1, Usage: "Loop count (negative loops forever)."},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Value: 75, Usage: "Encoding quality (1-100)."},
		&cli.Float64Flag{Name: "speed", Value: 1.0, Usage: "Playback speed multiplier."},
		&cli.BoolFlag{Name: "fast", Usage: "Encode faster with undithered quantization."},
	}
}

func decorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "border", Value: 1, Usage: "Border width in pixels (0 disables)."},
		&cli.StringFlag{Name: "color", Value: "3AA431", Usage: "Border color as hex RGB."},
		&cli.StringFlag{Name: "padding", Usage: "Padding as top:right:bottom:left."},
	}
}

func recordCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{Name: "fps", Value: 10, Usage: "Frames to capture per second (0 = uncapped)."},
		&cli.Float64Flag{Name: "duration", Usage: "Recording duration in seconds (0 = until interrupted)."},
		&cli.IntFlag{Name: "timeout", Value: 300, Usage: "Upper bound for the recording in seconds."},
		&cli.StringFlag{Name: "command", Aliases: []string{"c"}, Usage: "Record while this command runs, stop when it exits."},
		&cli.IntFlag{Name: "monitor", Usage: "Display index to record."},
		&cli.StringFlag{Name: "region", Usage: "Capture region as WxH+X+Y."},
	}
	flags = append(flags, decorFlags()...)
	flags = append(flags, gifFlags()...)
	flags = append(flags, outputFlags()...)
	return &cli.Command{
		Name:  "record",
		Usage: "Record the screen as an animated GIF.",
		Flags: flags,
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, orch *orchestrator.Orchestrator, cfg orchestrator.Config) error {
				frames, err := orch.Record(ctx, cfg)
				if err != nil {
					return err
				}
				return orch.Save(frames, cfg)
			})
		},
	}
}

func captureCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{Name: "countdown", Value: 3, Usage: "Countdown before the capture in seconds."},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "png", Usage: "Still format (png, jpg, bmp)."},
		&cli.IntFlag{Name: "monitor", Usage: "Display index to capture."},
		&cli.StringFlag{Name: "region", Usage: "Capture region as WxH+X+Y."},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Value: 90, Usage: "JPEG quality (1-100)."},
	}
	flags = append(flags, decorFlags()...)
	flags = append(flags, outputFlags()...)
	return &cli.Command{
		Name:  "capture",
		Usage: "Capture a single still image of the screen.",
		Flags: flags,
		Action: func(c *cli.Context) error {
			return run(c, func(ctx context.Context, orch *orchestrator.Orchestrator, cfg orchestrator.Config) error {
				frames, err := orch.Capture(ctx, cfg)
				if err != nil {
					return err
				}
				return orch.Save(frames, cfg)
			})
		},
	}
}

func editCommand() *cli.Command {
	flags := append(decorFlags(), gifFlags()...)
	flags = append(flags, outputFlags()...)
	return &cli.Command{
		Name:      "edit",
		Usage:     "Re-encode an existing GIF with decoration applied.",
		ArgsUsage: "<file>",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("edit requires exactly one input file")
			}
			input := c.Args().First()
			return run(c, func(ctx context.Context, orch *orchestrator.Orchestrator, cfg orchestrator.Config) error {
				cfg.InputPath = input
				return orch.Edit(ctx, cfg)
			})
		},
	}
}

// run loads the configuration, wires the adapters and invokes the
// selected operation with a signal-aware context.
func run(c *cli.Context, op func(context.Context, *orchestrator.Orchestrator, orchestrator.Config) error) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	region, err := config.ParseRegion(cfg.Record.Region)
	if err != nil {
		return err
	}
	source := screengrab.New(cfg.Record.Monitor, region)

	orch := orchestrator.New(
		source,
		shellrunner.New(),
		gifencoder.New(),
		gifencoder.NewDecoder(),
		stillencoder.New(renderer),
		renderer,
		fs,
		sink,
		log,
	)

	orchConfig, err := cfg.ToOrchestratorConfig()
	if err != nil {
		return err
	}
	return op(ctx, orch, orchConfig)
}

// buildConfig merges the optional config file with command line flags.
// Flags that were set explicitly win over the file.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.IsSet("fps") {
		cfg.Record.FPS = c.Int("fps")
	}
	if c.IsSet("duration") {
		cfg.Record.DurationSec = c.Float64("duration")
	}
	if c.IsSet("timeout") {
		cfg.Record.TimeoutSec = c.Int("timeout")
	}
	if c.IsSet("countdown") {
		cfg.Record.CountdownSec = c.Int("countdown")
	}
	if c.IsSet("command") {
		cfg.Record.Command = c.String("command")
	}
	if c.IsSet("monitor") {
		cfg.Record.Monitor = c.Int("monitor")
	}
	if c.IsSet("region") {
		cfg.Record.Region = c.String("region")
	}
	if c.IsSet("border") {
		cfg.Record.BorderWidth = c.Int("border")
	}
	if c.IsSet("color") {
		cfg.Record.BorderColor = c.String("color")
	}
	if c.IsSet("padding") {
		cfg.Record.Padding = c.String("padding")
	}
	if c.IsSet("repeat") {
		cfg.GIF.Repeat = c.Int("repeat")
	}
	if c.IsSet("quality") {
		cfg.GIF.Quality = c.Int("quality")
	}
	if c.IsSet("speed") {
		cfg.GIF.Speed = c.Float64("speed")
	}
	if c.IsSet("fast") {
		cfg.GIF.Fast = c.Bool("fast")
	}
	if c.IsSet("output") {
		cfg.Output.Path = c.String("output")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	} else if c.Command.Name == "capture" && cfg.Output.Format == "gif" {
		cfg.Output.Format = "png"
	}
	if c.IsSet("date") {
		cfg.Output.Date = c.Bool("date")
	}
	if c.IsSet("timestamp") {
		cfg.Output.Timestamp = c.Bool("timestamp")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	return cfg, nil
}
