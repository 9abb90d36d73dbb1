package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/nanoplatformer/internal/application/game"
	"github.com/younwookim/nanoplatformer/internal/application/scene"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/records"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Directory holding settings.yaml (default: built-in settings)")
	mapsDir := flag.String("maps", "", "Maps directory (overrides settings)")
	mapName := flag.String("map", "", "Start this map directly, skipping the selector")
	recordPath := flag.String("record", "", "Record input to file, or into a directory with a generated name (e.g., -record replay.json)")
	replayPath := flag.String("replay", "", "Run a recorded replay headless and print the result")
	watchFlag := flag.Bool("watch", false, "Reload the map when its images change")
	flag.Parse()

	settings, err := loadSettings(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *mapsDir != "" {
		settings.Maps.Dir = *mapsDir
	}
	if *watchFlag {
		settings.Maps.Watch = true
	}
	maps := config.NewMapSource(settings.Maps.Dir)

	if *replayPath != "" {
		result, err := runReplay(*replayPath, settings.Physics, settings.Controls.FullJumpRelease, maps)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		printReplayResult(os.Stdout, result)
		return
	}

	store, err := records.Open()
	if err != nil {
		log.Printf("Records disabled: %v", err)
	}

	r := &router{
		settings:   settings,
		maps:       maps,
		records:    store,
		recordPath: *recordPath,
	}

	var initial scene.Scene
	if *mapName != "" {
		initial = r.Playing(*mapName)
	} else {
		initial = r.MapSelector("")
	}

	w := settings.Window
	g := game.New(initial, w.Width, w.Height)

	// Set up ebiten
	ebiten.SetWindowSize(int(float64(w.Width)*w.Scale), int(float64(w.Height)*w.Scale))
	ebiten.SetWindowTitle("Nano Platformer")
	ebiten.SetFullscreen(w.Fullscreen)
	ebiten.SetVsyncEnabled(w.VSync)
	ebiten.SetTPS(w.TPS)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadSettings reads settings.yaml from dir, or the embedded copy when dir is empty
func loadSettings(dir string) (*config.Settings, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadSettings()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys).LoadSettings()
}
