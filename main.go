package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"backrooms/pkg/engine/terminal"
	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/devtools"
	"backrooms/pkg/game/generator"
	"backrooms/pkg/game/levelgen"
	"backrooms/pkg/game/renderer"
	ebitenrenderer "backrooms/pkg/game/renderer/ebiten"
	"backrooms/pkg/game/renderer/tui"
	"backrooms/pkg/game/setup"
	"backrooms/pkg/game/state"
	"backrooms/pkg/game/theme"
)

var (
	colorStatus = color.Style{color.FgGreen, color.OpBold}
	colorDetail = color.Style{color.FgGray}
)

// status prints a styled status line to stderr so stdout stays free for the map
func status(label, format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorStatus.Sprint(label), colorDetail.Sprintf(format, a...))
}

// configFromFlags builds a generator config from the parsed flag values
func configFromFlags(width, height, spawn int, mode, pattern, exitSide string, exitOffset, decorations int) (levelgen.Config, error) {
	cfg := levelgen.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.SpawnSize = spawn
	cfg.ExitOffset = exitOffset
	cfg.Decorations = decorations

	m, ok := state.ParseMode(mode)
	if !ok {
		return cfg, fmt.Errorf("unknown mode %q (want pattern, network or hybrid)", mode)
	}
	cfg.Mode = m

	if pattern != "" && pattern != "random" {
		cfg.Pattern = pattern
	}

	if exitSide != "" && exitSide != "any" {
		side, ok := world.ParseDirection(exitSide)
		if !ok {
			return cfg, fmt.Errorf("unknown exit side %q (want north, east, south, west or any)", exitSide)
		}
		cfg.ExitSide = side
	}

	return cfg, nil
}

// selectRenderer picks the presentation backend named by the -render flag
func selectRenderer(name string, gen *levelgen.Generator) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tui.New(), nil
	case "ebiten":
		return ebitenrenderer.New(func(seed int64) (*state.Layout, error) {
			return gen.Generate(seed), nil
		}), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want tui, ebiten or none)", name)
	}
}

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
	width := flag.Int("width", levelgen.DefaultGridSize, "grid width in cells")
	height := flag.Int("height", levelgen.DefaultGridSize, "grid height in cells")
	spawn := flag.Int("spawn", levelgen.DefaultSpawnSize, "side of the open spawn square (odd)")
	mode := flag.String("mode", state.ModeHybrid.String(), "generation mode: pattern, network or hybrid")
	pattern := flag.String("pattern", "", "pattern for pattern/hybrid modes: "+strings.Join(generator.Names(), ", ")+" (empty picks one per seed)")
	exitSide := flag.String("exit-side", "any", "border side of the exit: north, east, south, west or any")
	exitOffset := flag.Int("exit-offset", generator.AnyOffset, "exit position along its side (-1 picks one per seed)")
	decorations := flag.Int("decorations", setup.DefaultDecorations, "number of decoration cells to place")
	dump := flag.String("dump", "", "write a text dump of the layout to this file")
	htmlDir := flag.String("html", "", "write an HTML snapshot of the layout into this directory")
	dev := flag.Bool("dev", false, "use the fixed developer layout instead of generating one")
	render := flag.String("render", "tui", "presentation: tui, ebiten or none")
	locale := flag.String("locale", "en_US", "locale for labels (directory under -locales)")
	localeDir := flag.String("locales", "locales", "catalog directory; a relative path is also looked up next to the executable")
	flag.Parse()

	theme.Configure(theme.ResolveDir(*localeDir), *locale)
	if !terminal.IsTerminal() {
		color.Enable = false
	}

	cfg, err := configFromFlags(*width, *height, *spawn, *mode, *pattern, *exitSide, *exitOffset, *decorations)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	gen, err := levelgen.New(cfg)
	if err != nil {
		log.Fatalf("Cannot create generator: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var layout *state.Layout
	if *dev {
		layout = devtools.DevLayout()
		status("Loaded", "developer layout %dx%d", layout.Grid.Width(), layout.Grid.Height())
	} else {
		start := time.Now()
		layout = gen.Generate(*seed)
		status(theme.StatusGenerated(), "seed %d, %dx%d, %s / %s in %v",
			layout.Seed, layout.Grid.Width(), layout.Grid.Height(),
			theme.ModeLabel(layout.Mode), theme.PatternLabel(layout.Pattern),
			time.Since(start).Round(time.Microsecond))
	}
	if layout.PathLength < 0 {
		log.Printf("Warning: exit unreachable after %d repairs", layout.Repairs)
	}

	if *dump != "" {
		path, err := devtools.DumpLayoutToFile(layout, *dump)
		if err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		status("Dumped", "%s", path)
	}
	if *htmlDir != "" {
		path, err := devtools.SaveLayoutHTML(layout, *htmlDir)
		if err != nil {
			log.Fatalf("HTML snapshot failed: %v", err)
		}
		status("Saved", "%s", path)
	}

	r, err := selectRenderer(*render, gen)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	if r == nil {
		return
	}
	renderer.SetRenderer(r)
	renderer.Init()
	if err := renderer.RenderLayout(layout); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}
