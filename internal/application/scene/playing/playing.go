// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/nanoplatformer/internal/application/replay"
	"github.com/younwookim/nanoplatformer/internal/application/scene"
	"github.com/younwookim/nanoplatformer/internal/application/system"
	"github.com/younwookim/nanoplatformer/internal/domain/entity"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/watch"
)

// Colors for rendering
var (
	colorBG          = color.Black
	colorWall        = color.RGBA{80, 80, 100, 255}
	colorDeadly      = colornames.Crimson
	colorPlayer      = colornames.White
	colorPad         = colornames.Lime
	colorJumpOrb     = colornames.Dodgerblue
	colorDashOrb     = colornames.Magenta
	colorOrbInactive = color.RGBA{90, 90, 90, 255}
	colorFinish      = colornames.Cyan
	colorCheckOff    = colornames.Teal
	colorCheckOn     = colornames.Gold
	colorHUD         = colornames.White
)

// Options holds what the scene needs besides the map name
type Options struct {
	Physics    config.PhysicsConfig
	Controls   config.ControlsConfig
	Maps       *config.MapSource
	MapsDir    string // watched for edits when Watch is set
	Watch      bool
	RecordPath string
	ShowHUD    bool
}

// Playing is the main gameplay scene
type Playing struct {
	router  scene.Router
	opts    Options
	mapName string

	physics     config.PhysicsConfig
	session     *system.Session
	inputSystem *system.InputSystem
	loadErr     error

	watcher    *watch.Watcher
	recorder   *replay.Recorder
	recordPath string

	backgrounds map[*entity.Room]*ebiten.Image
}

// New creates a new Playing scene. The map is loaded in OnEnter.
func New(router scene.Router, opts Options, mapName string) *Playing {
	return &Playing{
		router:      router,
		opts:        opts,
		mapName:     mapName,
		backgrounds: make(map[*entity.Room]*ebiten.Image),
	}
}

// OnEnter loads the map and starts the session
func (p *Playing) OnEnter() {
	input, err := system.NewInputSystem(p.opts.Controls)
	if err != nil {
		p.loadErr = fmt.Errorf("failed to set up controls: %w", err)
		return
	}
	p.inputSystem = input

	if err := p.load(); err != nil {
		return
	}

	if p.opts.Watch && p.opts.MapsDir != "" {
		w, err := watch.New(filepath.Join(p.opts.MapsDir, p.mapName))
		if err != nil {
			log.Printf("Map watcher disabled: %v", err)
		} else {
			p.watcher = w
		}
	}

	if p.opts.RecordPath != "" {
		p.recordPath = replay.ResolvePath(p.opts.RecordPath, p.mapName)
		p.recorder = replay.NewRecorder(p.mapName)
		log.Printf("Recording enabled: %s", p.recordPath)
	}
}

// load (re)reads the map from disk and starts a fresh session.
// A failed reload keeps the current session if there is one. Held
// movement keys carry over, and a running recording starts over.
func (p *Playing) load() error {
	m, err := system.LoadMap(p.opts.Maps, p.mapName)
	if err != nil {
		log.Printf("Failed to load map %s: %v", p.mapName, err)
		if p.session == nil {
			p.loadErr = err
		}
		return err
	}

	var held []system.KeyEvent
	if p.session != nil {
		held = p.session.HeldMovement()
	}

	// Each session gets its own copy of the tuning values
	p.physics = p.opts.Physics
	p.session = system.NewSession(m, &p.physics, p.opts.Controls.FullJumpRelease)
	p.session.Apply(held)
	if p.recorder != nil {
		p.recorder.Restart(held)
	}

	p.releaseBackgrounds()
	p.loadErr = nil
	return nil
}

// reloadKeyFree reports whether R is free to reload the map. A binding
// for R takes priority.
func (p *Playing) reloadKeyFree() bool {
	_, bound := p.inputSystem.Binding(ebiten.KeyR)
	return !bound
}

func (p *Playing) releaseBackgrounds() {
	for _, img := range p.backgrounds {
		img.Deallocate()
	}
	p.backgrounds = make(map[*entity.Room]*ebiten.Image)
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.loadErr != nil {
		return p.router.MapSelector(p.loadErr.Error()), nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return p.router.MapSelector(""), nil
	}

	reload := p.reloadKeyFree() && inpututil.IsKeyJustPressed(ebiten.KeyR)
	if p.watcher != nil && p.watcher.Changed() {
		log.Printf("Map %s changed on disk, reloading", p.mapName)
		reload = true
	}
	if reload {
		_ = p.load()
	}

	return p.step(dt, p.inputSystem.Poll()), nil
}

// step feeds one frame of input into the session
func (p *Playing) step(dt float64, events []system.KeyEvent) scene.Scene {
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, events)
	}
	p.session.Apply(events)

	finished := p.session.Update(dt)
	if finished == nil {
		return nil
	}
	p.saveRecording()
	return p.router.MapCompleted(*finished)
}

// saveRecording saves the current recording to file once
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.recordPath, p.recorder.FrameCount())
	}
}

// Session returns the running session, nil if the map failed to load
func (p *Playing) Session() *system.Session {
	return p.session
}

// LoadError returns the error that kept the map from loading
func (p *Playing) LoadError() error {
	return p.loadErr
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if p.session == nil {
		return
	}
	room := p.session.Room()
	if room == nil {
		return
	}

	p.drawBackground(screen, room)
	p.drawWalls(screen, room)
	p.drawSpecials(screen, room)

	player := p.session.Player()
	c := player.Collider
	vector.FillRect(screen, float32(int(c.X)), float32(int(c.Y)), entity.PlayerSize, entity.PlayerSize, colorPlayer, false)

	p.drawEffect(screen)

	if p.opts.ShowHUD {
		p.drawHUD(screen)
	}
}

func (p *Playing) drawBackground(screen *ebiten.Image, room *entity.Room) {
	if room.Background == nil {
		return
	}
	img, ok := p.backgrounds[room]
	if !ok {
		img = ebiten.NewImageFromImage(room.Background)
		p.backgrounds[room] = img
	}

	// Stretch to the screen like the object grid
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	screen.DrawImage(img, op)
}

// drawWalls outlines walls only when there is no background art
func (p *Playing) drawWalls(screen *ebiten.Image, room *entity.Room) {
	if room.Background != nil {
		return
	}
	for _, w := range room.Walls {
		c := colorWall
		if w.Deadly {
			c = colorDeadly
		}
		vector.FillRect(screen, float32(w.X), float32(w.Y), float32(w.Width), float32(w.Height), c, false)
	}
}

func (p *Playing) drawSpecials(screen *ebiten.Image, room *entity.Room) {
	for i := range room.Specials {
		obj := &room.Specials[i]
		x, y := float32(obj.X), float32(obj.Y)
		half := float32(entity.TileSize) / 2

		switch obj.Kind {
		case entity.JumpPad:
			b := obj.Collider
			vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), colorPad, false)
		case entity.JumpOrb, entity.DashOrb:
			c := colorJumpOrb
			if obj.Kind == entity.DashOrb {
				c = colorDashOrb
			}
			if !obj.Ready() {
				c = colorOrbInactive
			}
			vector.DrawFilledCircle(screen, x+half, y+half, 8, c, true)
		case entity.Checkpoint:
			c := colorCheckOff
			if obj.Active {
				c = colorCheckOn
			}
			b := obj.Collider
			vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), c, false)
		case entity.RoomFinish:
			vector.StrokeRect(screen, x+1, y+1, entity.TileSize-2, entity.TileSize-2, 2, colorFinish, false)
		}
	}
}

// drawEffect draws the jump/death circle: it grows as it fades
func (p *Playing) drawEffect(screen *ebiten.Image) {
	e := p.session.Effect()
	if !e.Active() {
		return
	}
	strength := e.Strength()
	radius := float32(int(system.EffectStrength-strength) / 2)
	alpha := uint8(int(strength) / 2)

	c := color.NRGBA{255, 255, 0, alpha}
	if e.Death {
		c = color.NRGBA{255, 0, 0, alpha}
	}
	vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), radius, c, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	player := p.session.Player()
	hud := fmt.Sprintf("%s  room %d/%d  deaths %d  time %s",
		p.mapName, p.session.RoomIndex()+1, len(p.session.Map().Rooms),
		player.Deaths, FormatClock(player.ElapsedTime))
	scene.DrawText(screen, hud, 8, 8, 2, colorHUD)
}

// FormatClock formats seconds as m:ss.cc for the HUD
func FormatClock(seconds float64) string {
	cs := int(seconds * 100)
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.watcher != nil {
		_ = p.watcher.Close()
		p.watcher = nil
	}
	p.releaseBackgrounds()
}
