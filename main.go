// ABOUTME: Entry point for the SAME warning encoder
// ABOUTME: Parses CLI flags, renders the configured warning and writes or plays it
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Resonate-Protocol/same-go/internal/config"
	"github.com/Resonate-Protocol/same-go/internal/ui"
	"github.com/Resonate-Protocol/same-go/internal/version"
	"github.com/Resonate-Protocol/same-go/pkg/audio"
	"github.com/Resonate-Protocol/same-go/pkg/audio/decode"
	"github.com/Resonate-Protocol/same-go/pkg/audio/encode"
	"github.com/Resonate-Protocol/same-go/pkg/audio/output"
	"github.com/Resonate-Protocol/same-go/pkg/audio/resample"
	"github.com/Resonate-Protocol/same-go/pkg/same"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	configPath  = flag.String("config", "warning.toml", "Warning descriptor (TOML)")
	outPath     = flag.String("out", "", "Output WAV path (overrides config)")
	sampleRate  = flag.Int("sample-rate", 0, "Output sample rate in Hz (overrides config)")
	play        = flag.Bool("play", false, "Play the warning after writing it")
	noTUI       = flag.Bool("no-tui", false, "Disable the playback TUI")
	workers     = flag.Int("workers", runtime.NumCPU(), "Section render concurrency")
	verbose     = flag.Bool("v", false, "Development logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// playChunk is how many samples are handed to the device between progress updates
const playChunk = 4096

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", version.Product, version.Version)
		return
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("warning failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, logger *zap.Logger) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}
	if *sampleRate > 0 {
		cfg.Output.SampleRate = *sampleRate
	}
	if *play {
		cfg.Output.Play = true
	}

	warning, err := cfg.Warning()
	if err != nil {
		return err
	}

	logger = logger.With(
		zap.String("id", uuid.NewString()),
		zap.String("version", version.Version),
		zap.Int("rate", cfg.Output.SampleRate),
	)
	logger.Info("building warning",
		zap.String("header", warning.Header().String()),
		zap.Stringer("attention", warning.Attention().Kind()),
		zap.Bool("critical", cfg.Message.Critical),
	)

	message, err := loadMessage(cfg.Message.Path, cfg.Output.SampleRate, logger)
	if err != nil {
		return err
	}

	sections := warning.Sections(message, cfg.Message.Critical)
	samples, err := same.RenderConcurrent(ctx, sections, cfg.Output.SampleRate, *workers)
	if err != nil {
		return err
	}

	format := audio.Format{
		SampleRate: cfg.Output.SampleRate,
		Channels:   1,
		BitDepth:   cfg.Output.BitDepth,
	}
	if err := writeWAV(cfg.Output.Path, samples, format); err != nil {
		return err
	}
	logger.Info("wrote warning",
		zap.String("path", cfg.Output.Path),
		zap.Int("sections", len(sections)),
		zap.Int("samples", len(samples)),
		zap.Float64("seconds", float64(len(samples))/float64(cfg.Output.SampleRate)),
	)

	if !cfg.Output.Play {
		return nil
	}

	var prog *ui.Model
	if !*noTUI {
		model := ui.NewModel(warning.Header().String(), cfg.Output.Path, cfg.Output.SampleRate,
			ui.Timeline(sections, cfg.Output.SampleRate))
		prog = &model
	}
	return playWarning(ctx, samples, cfg.Output.SampleRate, prog, logger)
}

// loadMessage decodes, downmixes and resamples the message audio. An empty
// path means the warning carries no message.
func loadMessage(path string, rate int, logger *zap.Logger) ([]float32, error) {
	if path == "" {
		return nil, nil
	}

	buf, err := decode.File(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded message",
		zap.String("path", path),
		zap.Int("source_rate", buf.Format.SampleRate),
		zap.Int("channels", buf.Format.Channels),
		zap.Float64("seconds", buf.Duration()),
	)

	buf = resample.Buffer(buf.Mono(), rate)
	return buf.Samples, nil
}

func writeWAV(path string, samples []float32, format audio.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := encode.WriteWAV(f, samples, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

// playWarning plays samples on the default device. With a model, progress is
// shown in the TUI and quitting it stops playback.
func playWarning(ctx context.Context, samples []float32, rate int, model *ui.Model, logger *zap.Logger) error {
	out := output.NewOto()
	if err := out.Open(rate, 1); err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if model == nil {
		logger.Info("playing warning")
		return output.Play(ctx, out, samples, playChunk, nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := ui.Run(*model)
	tuiDone := make(chan error, 1)
	go func() {
		_, err := prog.Run()
		cancel()
		tuiDone <- err
	}()

	err := output.Play(ctx, out, samples, playChunk, func(written int) {
		prog.Send(ui.ProgressMsg{Played: written})
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	prog.Send(ui.DoneMsg{Err: err})

	if tuiErr := <-tuiDone; tuiErr != nil && err == nil {
		err = fmt.Errorf("tui: %w", tuiErr)
	}
	return err
}
