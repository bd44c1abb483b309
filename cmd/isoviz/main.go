// Command isoviz batch-renders the registered scenes to animated GIFs.
//
// With no arguments it renders every registered scene; scene names as
// arguments restrict the set, and -manifest renders the scenes a YAML
// manifest lists. A failing scene is reported and skipped, the remaining
// scenes still render, and the exit code is 1 if anything failed.
//
// Flags have environment fallbacks (ISOVIZ_FPS, ISOVIZ_OUT, ...) so CI
// can configure renders without touching the invocation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/caarlos0/env/v11"

	"github.com/isoviz/isoviz"
	"github.com/isoviz/isoviz/check"
	"github.com/isoviz/isoviz/internal/manifest"
	_ "github.com/isoviz/isoviz/scenes" // register the shipped scenes
)

type config struct {
	FPS      int    `env:"ISOVIZ_FPS"`
	Width    int    `env:"ISOVIZ_WIDTH"`
	Height   int    `env:"ISOVIZ_HEIGHT"`
	Out      string `env:"ISOVIZ_OUT"`
	Manifest string `env:"ISOVIZ_MANIFEST"`
	Strict   bool   `env:"ISOVIZ_STRICT"`
	Verbose  bool   `env:"ISOVIZ_VERBOSE"`
	List     bool   `env:"-"`
}

func main() {
	cfg := config{
		FPS:    isoviz.DefaultFPS,
		Width:  isoviz.DefaultWidth,
		Height: isoviz.DefaultHeight,
		Out:    "media",
	}
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "isoviz: %v\n", err)
		os.Exit(2)
	}

	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "output width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "output height in pixels")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "output directory")
	flag.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "YAML manifest of scenes to render")
	flag.BoolVar(&cfg.Strict, "strict", cfg.Strict, "treat style violations as scene failures")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	flag.BoolVar(&cfg.List, "list", false, "list registered scenes and exit")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	isoviz.SetLogger(logger)

	if cfg.List {
		for _, s := range isoviz.Scenes() {
			fmt.Println(s.Name())
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg, flag.Args()); err != nil {
		logger.Error("render batch failed", "err", err)
		os.Exit(1)
	}
}

// job pairs a scene with its output path.
type job struct {
	scene isoviz.Scene
	path  string
}

func run(ctx context.Context, logger *slog.Logger, cfg config, args []string) error {
	jobs, err := selectJobs(&cfg, args)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return err
	}

	renderer := isoviz.NewRenderer(
		isoviz.WithFPS(cfg.FPS),
		isoviz.WithSize(cfg.Width, cfg.Height),
	)

	// Render everything, report per scene, and keep going on failure so
	// one broken scene does not block the rest of the batch.
	failed := 0
	for _, j := range jobs {
		if err := renderOne(ctx, logger, renderer, cfg, j); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("scene failed", "scene", j.scene.Name(), "err", err)
			failed++
			continue
		}
		logger.Info("scene ok", "scene", j.scene.Name(), "output", j.path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scene(s) failed", failed, len(jobs))
	}
	return nil
}

func renderOne(ctx context.Context, logger *slog.Logger, r *isoviz.Renderer, cfg config, j job) error {
	report := check.Run(j.scene, check.Default()...)
	if !report.OK() {
		for _, v := range report.Violations {
			logger.Warn("style violation", "scene", j.scene.Name(), "violation", v.String())
		}
		if cfg.Strict {
			return fmt.Errorf("%d style violation(s)", len(report.Violations))
		}
	}
	return r.SaveGIF(ctx, j.scene, j.path)
}

// selectJobs resolves which scenes render and where their GIFs go, from
// the manifest, the argument list, or the full registry, in that order.
// Manifest settings fill any value the flags left at its default.
func selectJobs(cfg *config, args []string) ([]job, error) {
	if cfg.Manifest != "" {
		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return nil, err
		}
		if m.Output != "" && cfg.Out == "media" {
			cfg.Out = m.Output
		}
		if m.FPS > 0 && cfg.FPS == isoviz.DefaultFPS {
			cfg.FPS = m.FPS
		}
		if m.Width > 0 && cfg.Width == isoviz.DefaultWidth {
			cfg.Width = m.Width
		}
		if m.Height > 0 && cfg.Height == isoviz.DefaultHeight {
			cfg.Height = m.Height
		}

		jobs := make([]job, 0, len(m.Scenes))
		for _, e := range m.Scenes {
			s, ok := isoviz.Lookup(e.Name)
			if !ok {
				return nil, fmt.Errorf("unknown scene %q in manifest", e.Name)
			}
			out := e.Output
			if out == "" {
				out = e.Name + ".gif"
			}
			jobs = append(jobs, job{scene: s, path: filepath.Join(cfg.Out, out)})
		}
		return jobs, nil
	}

	if len(args) > 0 {
		jobs := make([]job, 0, len(args))
		for _, name := range args {
			s, ok := isoviz.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("unknown scene %q", name)
			}
			jobs = append(jobs, job{scene: s, path: filepath.Join(cfg.Out, name+".gif")})
		}
		return jobs, nil
	}

	scenes := isoviz.Scenes()
	jobs := make([]job, 0, len(scenes))
	for _, s := range scenes {
		jobs = append(jobs, job{scene: s, path: filepath.Join(cfg.Out, s.Name()+".gif")})
	}
	return jobs, nil
}
