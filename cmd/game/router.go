package main

import (
	"github.com/younwookim/nanoplatformer/internal/application/scene"
	"github.com/younwookim/nanoplatformer/internal/application/scene/completed"
	"github.com/younwookim/nanoplatformer/internal/application/scene/playing"
	"github.com/younwookim/nanoplatformer/internal/application/scene/selector"
	"github.com/younwookim/nanoplatformer/internal/application/system"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/records"
)

// router wires the scenes together
type router struct {
	settings   *config.Settings
	maps       *config.MapSource
	records    *records.Store
	recordPath string
}

func (r *router) MapSelector(message string) scene.Scene {
	return selector.New(r, r.maps, message)
}

func (r *router) Playing(mapName string) scene.Scene {
	return playing.New(r, playing.Options{
		Physics:    r.settings.Physics,
		Controls:   r.settings.Controls,
		Maps:       r.maps,
		MapsDir:    r.settings.Maps.Dir,
		Watch:      r.settings.Maps.Watch,
		RecordPath: r.recordPath,
		ShowHUD:    true,
	}, mapName)
}

func (r *router) MapCompleted(result system.MapFinished) scene.Scene {
	return completed.New(r, r.records, result)
}
