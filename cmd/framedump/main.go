package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/coreman2200/funtimes-cracktro/internal/anim"
	"github.com/coreman2200/funtimes-cracktro/internal/render"
	"github.com/coreman2200/funtimes-cracktro/internal/render/scenes/logo"
	"github.com/coreman2200/funtimes-cracktro/internal/render/scenes/scroller"
	"github.com/coreman2200/funtimes-cracktro/internal/render/scenes/testcard"
	"github.com/coreman2200/funtimes-cracktro/internal/terminal"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;?]*[a-zA-Z]")

func main() {
	var (
		frames = flag.Int("frames", 25, "frames to render")
		cols   = flag.Int("cols", 80, "viewport width")
		rows   = flag.Int("rows", 24, "viewport height")
		scene  = flag.String("scene", "logo", "body scene: logo | testcard")
		preset = flag.String("preset", "classic", "scene preset")
		strip  = flag.Bool("strip", false, "strip ANSI escapes from the printed frame")
	)
	flag.Parse()

	if *frames < 1 {
		log.Fatal("need at least one frame")
	}

	reg := render.NewRegistry()
	logoScene := logo.New("logo")
	banner := scroller.New("scroller")
	reg.Register(logoScene)
	reg.Register(banner)
	reg.Register(testcard.New("testcard"))

	sim := terminal.NewSim()
	vp := render.Viewport{Cols: *cols, Rows: *rows}
	eng, err := render.NewEngine(sim, func() (render.Viewport, bool) { return vp, true })
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	if err := eng.SetBody(*scene, *preset, reg); err != nil {
		log.Fatalf("scene: %v", err)
	}
	if err := eng.SetFooter("scroller", "", reg); err != nil {
		log.Fatalf("footer: %v", err)
	}

	palLen := 1
	if rr, ok := reg.Get(*scene); ok {
		if pl, ok := rr.(interface{ PaletteLen() int }); ok {
			palLen = pl.PaletteLen()
		}
	}

	st := anim.State{}
	for i := 0; i < *frames; i++ {
		if err := eng.RenderOnce(st); err != nil {
			log.Fatalf("render frame %d: %v", i, err)
		}
		st = st.Advance(palLen, banner.Len())
	}

	out := sim.Last()
	if *strip {
		out = ansiRE.ReplaceAll(out, nil)
	}
	os.Stdout.Write(out)
	fmt.Printf("\n--- %d frames at %dx%d, last compose %.3fms write %.3fms\n",
		sim.Frames(), vp.Cols, vp.Rows, eng.Last.ComposeMS, eng.Last.WriteMS)
}
