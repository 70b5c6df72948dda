package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridsnake/pkg/game/config"
	"gridsnake/pkg/game/gameplay"
	"gridsnake/pkg/game/renderer"
	ebitenrenderer "gridsnake/pkg/game/renderer/ebiten"
	"gridsnake/pkg/game/renderer/tui"
	"gridsnake/pkg/game/replay"
)

// applyFlags overrides cfg with every flag that was set on the command line.
func applyFlags(cfg *config.Config, fs *flag.FlagSet, rendererName, locale, recordDir string, seed int64) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			cfg.Renderer = rendererName
		case "locale":
			cfg.Locale = locale
		case "record":
			cfg.RecordDir = recordDir
		case "seed":
			cfg.Seed = seed
		}
	})
}

// resolveSeed picks the clock when no seed is configured so runs differ by default.
func resolveSeed(cfg *config.Config) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
}

// newRenderer returns the frontend named in cfg
func newRenderer(cfg config.Config) renderer.Renderer {
	if cfg.Renderer == config.RendererTUI {
		return tui.New(cfg)
	}
	return ebitenrenderer.New(cfg)
}

// startRecording attaches a tick recorder to d when cfg asks for one.
// The returned func closes the recording.
func startRecording(cfg config.Config, d *gameplay.Driver) (func(), error) {
	if cfg.RecordDir == "" {
		return func() {}, nil
	}
	w, err := replay.Create(cfg.RecordDir, replay.Header{
		StartedAt: time.Now(),
		Seed:      cfg.Seed,
		Config:    cfg,
	})
	if err != nil {
		return nil, err
	}
	d.Observe(w.WriteTick)
	return func() {
		if err := w.Close(); err != nil {
			log.Printf("closing recording %s: %v", w.Path(), err)
			return
		}
		log.Printf("recording saved to %s", w.Path())
	}, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	rendererName := flag.String("renderer", config.RendererEbiten, "frontend: ebiten or tui")
	seed := flag.Int64("seed", 0, "random seed for food placement (0 = from clock)")
	recordDir := flag.String("record", "", "directory to record ticks to (optional)")
	locale := flag.String("locale", "en_GB", "HUD language")
	localeDir := flag.String("locales", "locales", "translation directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	applyFlags(&cfg, flag.CommandLine, *rendererName, *locale, *recordDir, *seed)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	resolveSeed(&cfg)
	cfg.ApplyBindings()

	log.Printf("starting %q %s: field %vx%v cell %v, threshold %d speed %d, tick %v, seed %d, renderer %s",
		cfg.Title, renderer.Version, cfg.Field.Width, cfg.Field.Height, cfg.Field.CellSize,
		cfg.Movement.Threshold, cfg.Movement.Speed, cfg.TickPeriod, cfg.Seed, cfg.Renderer)

	renderer.InitLocale(*localeDir, cfg.Locale)

	d := gameplay.NewDriver(cfg, rand.New(rand.NewSource(cfg.Seed)))
	stopRecording, err := startRecording(cfg, d)
	if err != nil {
		log.Fatalf("start recording: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	r := newRenderer(cfg)
	r.Init()
	err = r.Run(ctx, d)
	stop()
	stopRecording()
	if err != nil {
		log.Fatalf("%s renderer: %v", r.Name(), err)
	}
}
