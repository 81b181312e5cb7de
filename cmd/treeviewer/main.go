package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"tree-transforms/internal/animate"
	"tree-transforms/internal/commands"
	"tree-transforms/internal/debug"
	"tree-transforms/internal/engineconfig"
	"tree-transforms/internal/graph"
	"tree-transforms/internal/graphics"
	"tree-transforms/internal/logger"
	"tree-transforms/internal/mapgen"
	"tree-transforms/internal/primitives"
	"tree-transforms/internal/render"
	"tree-transforms/internal/scene"
	"tree-transforms/internal/terminal"
)

// terrainOffset keeps the optional terrain below the demo chain.
var terrainOffset = mgl64.Vec3{2, -6, 0}

func main() {
	configPath := flag.String("config", engineconfig.DefaultPath, "viewer config file (JSON)")
	terrain := flag.Bool("terrain", false, "add a procedural height map under the demo scene")
	seed := flag.Int64("seed", 0, "height map seed (0 = time based)")
	flag.Parse()

	prefs, _ := engineconfig.Load(*configPath)
	log := logger.New(prefs.LogPath)

	root := graph.New("scene")
	reg := primitives.NewRegistry()
	var defs []primitives.PrimitiveDef
	if prefs.PrefabsPath != "" {
		var err error
		if defs, err = primitives.LoadDefs(prefs.PrefabsPath); err != nil {
			fail(log, err)
		}
	}
	chain, err := buildDemo(root, reg, defs)
	if err != nil {
		fail(log, err)
	}
	if *terrain {
		opts := mapgen.DefaultHeightMapOptions()
		opts.Seed = *seed
		group, err := mapgen.GenerateHeightMap(root, reg, opts)
		if err != nil {
			fail(log, err)
		}
		group.Transform().Translate(terrainOffset)
	}
	meshes, textures := reg.Len()
	log.Logf("scene ready: %d meshes, %d textures shared", meshes, textures)

	// each demo node spins about its own Z axis
	spinner := animate.NewSpinner(prefs.DegreesPerSecond)
	spinner.SetPaused(prefs.StartPaused)
	for _, obj := range chain {
		spinner.Add(obj, mgl64.Vec3{0, 0, 1})
	}
	clock := animate.NewClock(prefs.FPS, time.Now())

	scn := scene.New(root)
	scn.SetGridVisible(prefs.GridVisible)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	dbg.SetShowBoxes(prefs.ShowBBoxes)

	cmds := commands.NewRegistry()
	commands.RegisterViewer(cmds, &commands.Viewer{
		Root:    root,
		Spinner: spinner,
		SetGrid: scn.SetGridVisible,
		Reframe: scn.Reframe,
		Print:   log.Log,
	})
	registerPrefs(cmds, *configPath, &prefs, scn, spinner, dbg, log)
	term := terminal.New(log, cmds)
	renderer := render.New()

	update := func() {
		term.Update()
		if !term.IsOpen() {
			if rl.IsKeyPressed(rl.KeySpace) {
				spinner.Toggle()
			}
			scn.Update()
		}
		for n := clock.Tick(time.Now()); n > 0; n-- {
			spinner.Step(clock.Frame())
		}
	}
	drawFailed := false
	draw := func() {
		err := scn.Draw(renderer, func() { dbg.DrawBoxes(root) })
		if err != nil && !drawFailed {
			log.Logf("draw: %v", err)
			drawFailed = true
		}
		dbg.Draw()
		term.Draw()
	}

	graphics.Run(graphics.Window{
		Width:  prefs.WindowWidth,
		Height: prefs.WindowHeight,
		Title:  "Tree Transforms",
		FPS:    prefs.FPS,
	}, nil, update, draw, renderer.Close)
}

// registerPrefs adds the commands that change or persist viewer preferences:
//
//	cmd debug -fps -mem -boxes
//	cmd save
func registerPrefs(r *commands.Registry, path string, prefs *engineconfig.ViewerPrefs, scn *scene.Scene, spinner *animate.Spinner, dbg *debug.Debug, log *logger.Logger) {
	debugFS := flag.NewFlagSet("debug", flag.ContinueOnError)
	fps := debugFS.Bool("fps", false, "show FPS")
	mem := debugFS.Bool("mem", false, "show heap allocation")
	boxes := debugFS.Bool("boxes", false, "show world bounding boxes")
	r.Register("debug", debugFS, func() error {
		dbg.SetShowFPS(*fps)
		dbg.SetShowMemAlloc(*mem)
		dbg.SetShowBoxes(*boxes)
		return nil
	})

	r.Register("save", nil, func() error {
		prefs.GridVisible = scn.GridVisible
		prefs.StartPaused = spinner.Paused()
		prefs.ShowFPS = dbg.ShowFPS
		prefs.ShowMemAlloc = dbg.ShowMemAlloc
		prefs.ShowBBoxes = dbg.ShowBoxes
		if err := engineconfig.Save(path, *prefs); err != nil {
			return err
		}
		log.Logf("saved %s", path)
		return nil
	})
}

func fail(log *logger.Logger, err error) {
	log.Log(err.Error())
	fmt.Fprintln(os.Stderr, "treeviewer:", err)
	os.Exit(1)
}
