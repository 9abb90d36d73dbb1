package playing

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nanoplatformer/internal/application/replay"
	"github.com/younwookim/nanoplatformer/internal/application/scene"
	"github.com/younwookim/nanoplatformer/internal/application/system"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

// routedScene records which transition a scene asked for
type routedScene struct {
	kind    string
	message string
	mapName string
	result  system.MapFinished
}

func (s *routedScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *routedScene) Draw(*ebiten.Image)                  {}
func (s *routedScene) OnEnter()                            {}
func (s *routedScene) OnExit()                             {}

type testRouter struct{}

func (testRouter) MapSelector(message string) scene.Scene {
	return &routedScene{kind: "selector", message: message}
}

func (testRouter) Playing(mapName string) scene.Scene {
	return &routedScene{kind: "playing", mapName: mapName}
}

func (testRouter) MapCompleted(result system.MapFinished) scene.Scene {
	return &routedScene{kind: "completed", result: result}
}

// encodeLayout renders rows of '#' (wall), 'S' (respawn) and 'F' (finish)
// into an object image
func encodeLayout(t *testing.T, rows ...string) []byte {
	t.Helper()
	palette := map[rune]color.NRGBA{
		'#': {255, 255, 255, 255},
		'S': {255, 255, 0, 255},
		'F': {0, 255, 255, 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 80, 45))
	for y, row := range rows {
		for x, ch := range row {
			if c, ok := palette[ch]; ok {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func createTestFS(t *testing.T) fstest.MapFS {
	bg := encodeLayout(t)
	return fstest.MapFS{
		"corridor/bg1.png":  {Data: bg},
		"corridor/obj1.png": {Data: encodeLayout(t, "", "", "..S....F", "..######")},
		"broken/bg1.png":    {Data: bg},
		"broken/obj1.png":   {Data: encodeLayout(t, "##")},
	}
}

func createTestOptions(t *testing.T, fsys fstest.MapFS) Options {
	return Options{
		Physics:  config.DefaultPhysics(),
		Controls: config.DefaultSettings().Controls,
		Maps:     config.NewFSMapSource(fsys),
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestPlaying_OnEnter(t *testing.T) {
	p := New(testRouter{}, createTestOptions(t, createTestFS(t)), "corridor")
	p.OnEnter()
	defer p.OnExit()

	require.NoError(t, p.LoadError())
	require.NotNil(t, p.Session())
	assert.Equal(t, "corridor", p.Session().Map().Name)
}

func TestPlaying_LoadErrorReturnsToSelector(t *testing.T) {
	tests := []struct {
		name    string
		mapName string
	}{
		{"missing map", "nope"},
		{"no respawn point", "broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(testRouter{}, createTestOptions(t, createTestFS(t)), tt.mapName)
			p.OnEnter()
			defer p.OnExit()

			require.Error(t, p.LoadError())
			assert.Nil(t, p.Session())

			next, err := p.Update(1.0 / 60)
			require.NoError(t, err)
			routed, ok := next.(*routedScene)
			require.True(t, ok)
			assert.Equal(t, "selector", routed.kind)
			assert.Equal(t, p.LoadError().Error(), routed.message)
		})
	}
}

func TestPlaying_BadControls(t *testing.T) {
	opts := createTestOptions(t, createTestFS(t))
	opts.Controls.Jump = "NoSuchKey"

	p := New(testRouter{}, opts, "corridor")
	p.OnEnter()

	assert.ErrorContains(t, p.LoadError(), "controls")
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := New(testRouter{}, createTestOptions(t, createTestFS(t)), "corridor")
	p.OnEnter()
	defer p.OnExit()

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestPlaying_StepToCompletion(t *testing.T) {
	recordPath := filepath.Join(t.TempDir(), "run.json")
	opts := createTestOptions(t, createTestFS(t))
	opts.RecordPath = recordPath

	p := New(testRouter{}, opts, "corridor")
	p.OnEnter()
	defer p.OnExit()
	require.NoError(t, p.LoadError())

	var next scene.Scene
	for i := 0; i < 300 && next == nil; i++ {
		var events []system.KeyEvent
		if i == 0 {
			events = []system.KeyEvent{{Action: system.ActionRight, Down: true}}
		}
		next = p.step(1.0/60, events)
	}

	routed, ok := next.(*routedScene)
	require.True(t, ok)
	assert.Equal(t, "completed", routed.kind)
	assert.Equal(t, "corridor", routed.result.Map)
	assert.Equal(t, 0, routed.result.Deaths)
	assert.Greater(t, routed.result.ElapsedTime, 0.0)

	_, err := os.Stat(recordPath)
	require.NoError(t, err, "recording is saved when the map is finished")

	data, err := replay.LoadReplay(recordPath)
	require.NoError(t, err)
	assert.Equal(t, "corridor", data.Map)
	assert.Equal(t, []string{"right"}, data.Frames[0].Down)
}

func TestPlaying_FailedReloadKeepsSession(t *testing.T) {
	fsys := createTestFS(t)
	p := New(testRouter{}, createTestOptions(t, fsys), "corridor")
	p.OnEnter()
	defer p.OnExit()
	session := p.Session()
	require.NotNil(t, session)

	delete(fsys, "corridor/obj1.png")
	assert.Error(t, p.load())

	assert.Same(t, session, p.Session())
	assert.NoError(t, p.LoadError())
}

func TestPlaying_ReloadRestartsSession(t *testing.T) {
	p := New(testRouter{}, createTestOptions(t, createTestFS(t)), "corridor")
	p.OnEnter()
	defer p.OnExit()
	first := p.Session()

	p.step(1.0, nil)
	require.NoError(t, p.load())

	assert.NotSame(t, first, p.Session())
	assert.Equal(t, 0.0, p.Session().Player().ElapsedTime)
}

func TestPlaying_ReloadKeepsHeldMovement(t *testing.T) {
	opts := createTestOptions(t, createTestFS(t))
	opts.RecordPath = filepath.Join(t.TempDir(), "run.json")

	p := New(testRouter{}, opts, "corridor")
	p.OnEnter()
	defer p.OnExit()
	require.NoError(t, p.LoadError())

	dt := 1.0 / 60
	p.step(dt, []system.KeyEvent{{Action: system.ActionRight, Down: true}})
	for i := 0; i < 29; i++ {
		require.Nil(t, p.step(dt, nil))
	}

	require.NoError(t, p.load())
	assert.True(t, p.Session().Player().MovingRight, "right is still held")
	assert.Equal(t, 0, p.recorder.FrameCount(), "recording starts over with the new session")

	for i := 0; i < 20; i++ {
		require.Nil(t, p.step(dt, nil))
	}
	live := p.Session().Player()
	assert.Greater(t, live.Collider.X, 48.0, "player keeps walking after the reload")

	data := p.recorder.Data()
	require.Len(t, data.Frames, 20)
	assert.Equal(t, []string{"right"}, data.Frames[0].Down)

	// The recording replays into a fresh session exactly
	m, err := system.LoadMap(opts.Maps, "corridor")
	require.NoError(t, err)
	physics := opts.Physics
	replayed := system.NewSession(m, &physics, opts.Controls.FullJumpRelease)
	assert.Nil(t, replay.NewReplayer(data).Play(replayed))
	assert.Equal(t, live.Collider, replayed.Player().Collider)
	assert.Equal(t, live.ElapsedTime, replayed.Player().ElapsedTime)
}

func TestPlaying_ReloadKeyYieldsToBinding(t *testing.T) {
	tests := []struct {
		name     string
		jump     string
		dash     string
		expected bool
	}{
		{"default controls", "Space", "ShiftLeft", true},
		{"R bound to jump", "R", "ShiftLeft", false},
		{"R bound to dash", "Space", "r", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := createTestOptions(t, createTestFS(t))
			opts.Controls.Jump = tt.jump
			opts.Controls.Dash = tt.dash

			p := New(testRouter{}, opts, "corridor")
			p.OnEnter()
			defer p.OnExit()
			require.NoError(t, p.LoadError())

			assert.Equal(t, tt.expected, p.reloadKeyFree())
		})
	}
}

func TestPlaying_ReloadReleasesBackgrounds(t *testing.T) {
	p := New(testRouter{}, createTestOptions(t, createTestFS(t)), "corridor")
	p.OnEnter()
	defer p.OnExit()

	old := p.Session().Room()
	p.backgrounds[old] = ebiten.NewImage(4, 4)

	require.NoError(t, p.load())
	assert.Empty(t, p.backgrounds)
}

func TestPlaying_RecordIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	opts := createTestOptions(t, createTestFS(t))
	opts.RecordPath = dir

	p := New(testRouter{}, opts, "corridor")
	p.OnEnter()
	p.step(1.0/60, nil)
	p.OnExit()

	matches, err := filepath.Glob(filepath.Join(dir, "replay_corridor_*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := replay.LoadReplay(matches[0])
	require.NoError(t, err)
	assert.Len(t, data.Frames, 1)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0:00.00"},
		{5.25, "0:05.25"},
		{61.5, "1:01.50"},
		{3600, "60:00.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.seconds))
		})
	}
}
