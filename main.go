package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dungeon/dungeons"
	"dungeon/pkg/engine/debug"
	"dungeon/pkg/engine/input"
	"dungeon/pkg/engine/observability"
	"dungeon/pkg/engine/terminal"
	"dungeon/pkg/engine/world"
	"dungeon/pkg/game/config"
	"dungeon/pkg/game/devtools"
	"dungeon/pkg/game/messages"
	"dungeon/pkg/game/renderer"
	"dungeon/pkg/game/renderer/tui"
	"dungeon/pkg/game/session"
	"dungeon/pkg/game/setup"
)

// recentMessages is how many transcript entries the message pane shows
const recentMessages = 4

// game bundles what the main loop needs between commands
type game struct {
	cfg     *config.Config
	session *session.Session
	ui      renderer.Renderer
	out     io.Writer
	logger  *debug.Logger
}

// loadGraph reads the dungeon named in the config, or the built-in one
func loadGraph(cfg *config.Config) (*world.Graph, error) {
	if cfg.File == "" {
		return world.Parse(dungeons.Crypt)
	}
	return world.LoadFile(cfg.File)
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stdout)
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		config.Usage(os.Stderr)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "dungeon: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := debug.NewFileLogger(cfg.Debug, cfg.LogFile)
	debug.SetDefault(logger)
	renderer.SetColor(!cfg.NoColor)

	ctx := context.Background()

	tp, err := observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("tracer shutdown: %v", err)
		}
	}()

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	setup.Analyze(g).Log(logger)

	renderer.SetRenderer(tui.New())

	reader := input.NewReader("> ")
	defer reader.Close()

	sess := session.New(g,
		session.WithTracer(tp.GetTracer("dungeon")),
		session.WithLogger(logger),
	)
	gm := &game{
		cfg:     cfg,
		session: sess,
		ui:      renderer.Current,
		out:     reader.Writer(),
		logger:  logger,
	}
	logger.Printf("session %s started in %s", gm.session.ID, gm.session.CurrentRoom())

	gm.session.Welcome(ctx)
	gm.draw()

	for {
		line, err := reader.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warnf("read input: %v", err)
			}
			fmt.Fprintln(gm.out, messages.Get("GOODBYE"))
			return nil
		}
		if gm.processInput(ctx, line) {
			return nil
		}
	}
}

// processInput handles one line and reports whether the player quit
func (gm *game) processInput(ctx context.Context, line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return false
	case "quit", "exit":
		fmt.Fprintln(gm.out, messages.Get("GOODBYE"))
		return true
	case "map":
		gm.showMap()
		return false
	case "svg":
		gm.report(devtools.SaveMapSVG(gm.session, "", gm.mapOptions()))
		return false
	case "dump":
		gm.report(devtools.DumpMapToFile(gm.session, ""))
		return false
	case "screenshot":
		gm.report(devtools.SaveMapHTML(gm.session, ""))
		return false
	}

	res := gm.session.Execute(ctx, line)
	if res.IsClear() {
		gm.ui.Clear()
	}
	if res.RoomChanged {
		gm.logger.Printf("entered %s (%s)", gm.session.CurrentRoom(), res.RoomImage)
	}
	gm.draw()
	return false
}

func (gm *game) mapOptions() session.MapOptions {
	return session.MapOptions{
		Placeholders: gm.cfg.Placeholders,
		Title:        gm.session.Graph().Scenario().Name,
	}
}

func (gm *game) showMap() {
	_, scene := gm.session.Map(gm.mapOptions())
	out := gm.ui.RenderMap(scene)
	fmt.Fprint(gm.out, out)
	if !terminal.Fits(out, terminal.Width(gm.out)) {
		fmt.Fprintln(gm.out, renderer.FormatText("%s", messages.Get("MAP_TOO_WIDE")))
	}
}

// report prints where a developer file was written
func (gm *game) report(path string, err error) {
	if err != nil {
		fmt.Fprintln(gm.out, renderer.StyleText(err.Error(), renderer.StyleDenied))
		return
	}
	fmt.Fprintln(gm.out, renderer.FormatText("Wrote ITEM{%s}", path))
}

func (gm *game) draw() {
	g := gm.session.Graph()
	transcript := gm.session.Transcript()
	if len(transcript) > recentMessages {
		transcript = transcript[len(transcript)-recentMessages:]
	}

	gm.ui.RenderFrame(gm.out, renderer.Frame{
		Title:     g.Scenario().Name,
		Room:      g.RoomName(gm.session.CurrentRoom()),
		RoomImage: g.RoomImage(gm.session.CurrentRoom()),
		Inventory: gm.session.InventoryNames(),
		Messages:  transcript,
	})
}
