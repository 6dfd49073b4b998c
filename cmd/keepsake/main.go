// Keepsake plays the animated heart scene in a window, or in the terminal
// with -term. Click the heart or the envelope to open the diary.
//
//	keepsake                          # window with defaults
//	keepsake -tuning t.yaml -watch    # hot-reload tuning edits
//	keepsake -term                    # half-block terminal rendering
//	keepsake -script run.json         # scripted run with screenshots
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/keepsake"
	"github.com/phanxgames/keepsake/chime"
	"github.com/phanxgames/keepsake/diary"
	"github.com/phanxgames/keepsake/diaryui"
	"github.com/phanxgames/keepsake/ebitensurface"
	"github.com/phanxgames/keepsake/termsurface"
	"github.com/phanxgames/keepsake/tuning"
)

var (
	tuningPath  = flag.String("tuning", "", "YAML tuning file overlaying the defaults")
	watchTuning = flag.Bool("watch", false, "reload the tuning file when it changes")
	seed        = flag.Uint64("seed", 0, "glow heart placement seed (0 keeps the configured seed)")
	debug       = flag.Bool("debug", false, "log tick timing and overlay diagnostics")
	useTerm     = flag.Bool("term", false, "render in the terminal instead of a window")
	scriptPath  = flag.String("script", "", "JSON test script driving the run")
	shotDir     = flag.String("screenshots", "screenshots", "directory for scripted screenshots")
	diaryPath   = flag.String("diary", diary.DefaultPath, "file the diary entry is saved to")
	mute        = flag.Bool("mute", false, "disable sound")
	showFPS     = flag.Bool("fps", false, "show the FPS/TPS counter (window only)")
)

func main() {
	flag.Parse()
	keepsake.SetDebug(*debug)

	cfg, err := tuning.Load(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg = withSeed(cfg)

	var runner *keepsake.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		if runner, err = keepsake.LoadTestScript(data); err != nil {
			log.Fatal(err)
		}
	}

	var reloads <-chan keepsake.Config
	if *watchTuning && *tuningPath != "" {
		w, err := tuning.Watch(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		reloads = w.Configs
		go func() {
			for err := range w.Errors {
				log.Printf("tuning reload: %v", err)
			}
		}()
	}

	player := chime.NewPlayer(-1)
	if !*mute {
		if err := player.Open(); err != nil {
			log.Printf("sound disabled: %v", err)
		}
	}
	defer player.Close()

	host := diary.NewHost(diary.NewFileStore(*diaryPath))

	if *useTerm {
		err = runTerminal(cfg, host, player, runner, reloads)
	} else {
		err = runWindow(cfg, host, player, runner, reloads)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func withSeed(cfg keepsake.Config) keepsake.Config {
	if *seed != 0 {
		cfg.Seed = *seed
	}
	return cfg
}

// newLoop wires the guard and sound cues around a fresh scene.
func newLoop(scene *keepsake.Scene, overlay keepsake.Overlay, src keepsake.EventSource, player *chime.Player, runner *keepsake.TestRunner) *keepsake.Loop {
	guard := keepsake.NewOverlayGuard(overlay)
	guard.OnOpen = func(keepsake.OverlayHandle) { player.Chime() }
	loop := keepsake.NewLoop(scene, guard, src)
	loop.OnBeat = player.Beat
	if runner != nil {
		loop.SetTestRunner(runner)
	}
	return loop
}

// reloader returns a func that swaps in a rebuilt scene for every pending
// tuning reload. It runs on the loop's goroutine.
func reloader(loop *keepsake.Loop, reloads <-chan keepsake.Config, glyphs keepsake.GlyphSource, applied func(keepsake.Config)) func() {
	return func() {
		for {
			select {
			case cfg, ok := <-reloads:
				if !ok {
					return
				}
				cfg = withSeed(cfg)
				loop.SetScene(keepsake.NewScene(cfg, nil, glyphs))
				if applied != nil {
					applied(cfg)
				}
				log.Printf("tuning reloaded")
			default:
				return
			}
		}
	}
}

func runWindow(cfg keepsake.Config, host *diary.Host, player *chime.Player, runner *keepsake.TestRunner, reloads <-chan keepsake.Config) error {
	faces, err := ebitensurface.LoadFaces()
	if err != nil {
		return err
	}
	panel := diaryui.New(host, faces, cfg.Width, cfg.Height)
	loop := newLoop(keepsake.NewScene(cfg, nil, faces), panel, &ebitensurface.EventSource{}, player, runner)

	game := ebitensurface.NewGame(loop, faces, cfg.Width, cfg.Height)
	game.Overlay = panel
	game.ScreenshotDir = *shotDir
	game.ShowFPS(*showFPS)
	game.BeforeTick = reloader(loop, reloads, faces, func(c keepsake.Config) { ebiten.SetTPS(c.TPS) })

	return ebitensurface.Run(game, ebitensurface.RunConfig{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		TPS:    cfg.TPS,
	})
}

func runTerminal(cfg keepsake.Config, host *diary.Host, player *chime.Player, runner *keepsake.TestRunner, reloads <-chan keepsake.Config) error {
	term, err := termsurface.Open(nil, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer term.Close()

	prompt := termsurface.NewPrompt(host, cfg.TPS)
	term.SetPrompt(prompt)
	loop := newLoop(keepsake.NewScene(cfg, nil, term.Canvas), prompt, term.Events, player, runner)
	reload := reloader(loop, reloads, term.Canvas, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return loop.Run(ctx, term.Canvas, func() error {
		reload()
		return term.Present()
	})
}
