package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
	"github.com/coreman2200/funtimes-cracktro/internal/config"
	diag "github.com/coreman2200/funtimes-cracktro/internal/diagnostics"
	"github.com/coreman2200/funtimes-cracktro/internal/preview"
	"github.com/coreman2200/funtimes-cracktro/internal/render"
	"github.com/coreman2200/funtimes-cracktro/internal/render/scenes/logo"
	"github.com/coreman2200/funtimes-cracktro/internal/render/scenes/scroller"
	"github.com/coreman2200/funtimes-cracktro/internal/render/scenes/testcard"
	"github.com/coreman2200/funtimes-cracktro/internal/terminal"
)

const farewell = "\n\n>>> demo over. keep the old school spirit alive! <<<\n"

func main() {
	// ---- Flags (remain usable; config.yaml can override most) ----
	var (
		fps        = flag.Int("fps", 10, "target frames per second")
		driver     = flag.String("driver", "term", "driver: term | sim | auto (sim off a tty)")
		scene      = flag.String("scene", "logo", "body scene: logo | testcard")
		preset     = flag.String("preset", "classic", "scene preset (palette for logo)")
		message    = flag.String("message", "", "banner text override")
		cols       = flag.Int("fallback-cols", 80, "viewport width off a tty")
		rows       = flag.Int("fallback-rows", 24, "viewport height off a tty")
		addr       = flag.String("addr", "", "preview HTTP listen address (empty disables)")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
	)
	flag.Parse()

	// ---- Logging (stderr; stdout is the frame stream) ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Debug().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params (config overrides flags where available) ----
	eFPS := *fps
	eDriver := *driver
	eScene, ePreset := *scene, *preset
	eMessage := *message
	eFallback := render.Viewport{Cols: *cols, Rows: *rows}
	eAddr := *addr

	if cfg != nil {
		if cfg.FPS > 0 {
			eFPS = cfg.FPS
		}
		if cfg.Driver != "" {
			eDriver = cfg.Driver
		}
		if cfg.Scene != "" {
			eScene = cfg.Scene
		}
		if cfg.Preset != "" {
			ePreset = cfg.Preset
		}
		if cfg.Message != "" {
			eMessage = cfg.Message
		}
		if cfg.Fallback.Cols > 0 && cfg.Fallback.Rows > 0 {
			eFallback = render.Viewport{Cols: cfg.Fallback.Cols, Rows: cfg.Fallback.Rows}
		}
		if cfg.Addr != "" {
			eAddr = cfg.Addr
		}
	}

	// ---- Scenes ----
	reg := render.NewRegistry()
	logoScene := logo.New("logo")
	banner := scroller.New("scroller")
	if eMessage != "" {
		banner.SetMessage(eMessage)
	}
	reg.Register(logoScene)
	reg.Register(banner)
	reg.Register(testcard.New("testcard"))

	// ---- Driver selection: "auto" falls back to SIM off a tty ----
	selected := resolveDriver(eDriver, terminal.IsTTY(os.Stdout))
	if selected == "" {
		log.Warn().Str("driver", eDriver).Msg("unknown driver; using SIM")
		selected = "sim"
	}
	if eDriver == "auto" && selected == "sim" {
		log.Warn().Msg("stdout is not a terminal; using SIM driver")
	}

	var drv render.Driver
	sizeFn := func() (render.Viewport, bool) { return render.Viewport{}, false }
	if selected == "term" {
		// Lifecycle guard: cursor hidden here, restored exactly once on exit.
		t := terminal.Open(os.Stdout)
		drv = t
		sizeFn = func() (render.Viewport, bool) {
			c, r, ok := t.Size()
			return render.Viewport{Cols: c, Rows: r}, ok
		}
	} else {
		drv = terminal.NewSim()
	}
	defer drv.Close()

	// ---- Engine ----
	eng, err := render.NewEngine(drv, sizeFn)
	if err != nil {
		drv.Close()
		log.Fatal().Err(err).Msg("engine init")
	}
	eng.Fallback = eFallback
	if err := eng.SetBody(eScene, ePreset, reg); err != nil {
		log.Warn().Err(err).Str("scene", eScene).Msg("unknown scene; using logo")
		_ = eng.SetBody("logo", ePreset, reg)
		eScene = "logo"
	}
	if err := eng.SetFooter("scroller", "", reg); err != nil {
		drv.Close()
		log.Fatal().Err(err).Msg("footer init")
	}

	// Rotation moduli for the state advance.
	palLen := 1
	if rr, ok := reg.Get(eScene); ok {
		if pl, ok := rr.(interface{ PaletteLen() int }); ok {
			palLen = pl.PaletteLen()
		}
	}

	// ---- Preview server (optional) ----
	var pv *preview.State
	if eAddr != "" {
		pv = preview.NewState(eFPS, eScene)
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", pv.HandleFramesWS)
		mux.HandleFunc("/diag", pv.HandleDiagWS)
		mux.HandleFunc("/health", pv.HandleHealth)

		srv := &http.Server{
			Addr:         eAddr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			log.Info().Str("addr", eAddr).Msg("preview server starting")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("preview server crashed")
			}
		}()
		defer srv.Close()
	}

	// ---- Run loop ----
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		runLoop(ctx, eng, pv, eFPS, palLen, banner.Len())
	}()

	// ---- Graceful shutdown ----
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s := <-ch
	cancel()
	<-done

	_ = drv.Write([]byte(farewell))
	_ = drv.Close()
	log.Info().Str("signal", s.String()).Msg("shutting down")
}

// resolveDriver maps the requested driver to the effective one.
// "auto" picks the terminal on a tty and the sim capture otherwise;
// an unrecognized name resolves to "".
func resolveDriver(requested string, tty bool) string {
	switch requested {
	case "term", "sim":
		return requested
	case "auto":
		if tty {
			return "term"
		}
		return "sim"
	}
	return ""
}

// runLoop renders, mirrors, then advances state, at a fixed cadence.
// The only exit is ctx cancellation, checked at the frame boundary.
func runLoop(ctx context.Context, eng *render.Engine, pv *preview.State, fps, palLen, scrollLen int) {
	if fps < 1 {
		fps = 1
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	st := anim.State{}
	warned := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := eng.RenderOnce(st); err != nil {
				log.Debug().Err(err).Msg("write frame")
			}
			if pv != nil {
				pv.Broadcast(eng.Out, eng.VP)
				if eng.Fallbacks > 0 && !warned {
					warned = true
					pv.PushDiag(diag.Diagnostic{
						Severity: diag.Warn,
						Code:     "VIEWPORT.FALLBACK",
						Summary:  "Terminal geometry unavailable; using fallback",
						Evidence: map[string]any{"cols": eng.Fallback.Cols, "rows": eng.Fallback.Rows},
					})
				}
			}
			st = st.Advance(palLen, scrollLen)
		}
	}
}
