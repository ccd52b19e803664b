// Command noiselines animates horizontal lines perturbed by 3D noise.
//
// Without flags it opens an 800×800 window and runs until the window is
// closed. -backend=term previews the sketch in the terminal and
// -backend=record writes an animated PNG instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/noiselines"
	"github.com/gogpu/noiselines/integration/window"
	"github.com/gogpu/noiselines/noise"
	"github.com/gogpu/noiselines/recording"
	"github.com/gogpu/noiselines/term"
)

// ErrUnknownBackend is returned for a -backend value that is not supported.
var ErrUnknownBackend = errors.New("noiselines: unknown backend")

// maxFrames bounds -frames. Recordings are held in memory until encoded,
// so 600 frames at the default size already take about 1.5 GB.
const maxFrames = 600

type config struct {
	backend string
	noise   string
	seed    int64
	size    int
	out     string
	frames  int
	delay   uint
	scale   float64
	fps     int
	verbose bool
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("noiselines", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.backend, "backend", "window", "output: window, term or record")
	fs.StringVar(&cfg.noise, "noise", "perlin", "noise source: "+strings.Join(noise.Names(), ", "))
	fs.Int64Var(&cfg.seed, "seed", 0, "noise seed (0 picks one from the clock)")
	fs.IntVar(&cfg.size, "size", 800, "window or recording edge in pixels")
	fs.StringVar(&cfg.out, "out", "noiselines.png", "recording output file")
	fs.IntVar(&cfg.frames, "frames", 120, fmt.Sprintf("recording frame count, at most %d; each frame takes size*size*4 bytes of memory", maxFrames))
	fs.UintVar(&cfg.delay, "delay", 3, "recording frame delay in 1/100 s")
	fs.Float64Var(&cfg.scale, "scale", 1, "recording scale factor in (0, 1]")
	fs.IntVar(&cfg.fps, "fps", term.DefaultFPS, "terminal frame rate")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.size <= 0 {
		return config{}, fmt.Errorf("noiselines: -size must be positive, got %d", cfg.size)
	}
	if cfg.frames > maxFrames {
		return config{}, fmt.Errorf("noiselines: -frames too large: %d (max %d)", cfg.frames, maxFrames)
	}
	if cfg.delay > 0xffff {
		return config{}, fmt.Errorf("noiselines: -delay too large: %d", cfg.delay)
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, cfg config) error {
	src, err := noise.Parse(cfg.noise, cfg.seed)
	if err != nil {
		return err
	}
	if s, ok := src.(interface{ Seed() int64 }); ok {
		noiselines.Logger().Info("noise source ready", "noise", cfg.noise, "seed", s.Seed())
	}
	m := noiselines.NewModel(src)
	edge := float64(cfg.size)

	switch cfg.backend {
	case "window":
		wc := window.DefaultConfig()
		wc.Width, wc.Height = cfg.size, cfg.size
		return window.Run(m, wc)

	case "term":
		screen, err := term.Open()
		if err != nil {
			return err
		}
		defer screen.Fini()
		return term.New(screen, edge, edge, cfg.fps).Run(ctx, m)

	case "record":
		opts := recording.DefaultOptions()
		opts.Width, opts.Height = cfg.size, cfg.size
		opts.Frames = cfg.frames
		opts.Delay = uint16(cfg.delay)
		opts.Scale = cfg.scale
		return recording.RecordFile(ctx, m, cfg.out, opts)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.backend)
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	log := newLogger(os.Stderr, cfg.verbose)
	noiselines.SetLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error("noiselines failed", "err", err)
		stop()
		os.Exit(1)
	}
}
