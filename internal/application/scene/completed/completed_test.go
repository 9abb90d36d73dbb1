package completed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/nanoplatformer/internal/application/scene"
	"github.com/younwookim/nanoplatformer/internal/application/system"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/records"
)

type memStorage struct {
	items   map[string][]byte
	saveErr error
}

func (m *memStorage) LoadItem(key string) ([]byte, error) { return m.items[key], nil }

func (m *memStorage) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

type testRouter struct{}

func (testRouter) MapSelector(string) scene.Scene              { return nil }
func (testRouter) Playing(string) scene.Scene                  { return nil }
func (testRouter) MapCompleted(system.MapFinished) scene.Scene { return nil }

var _ scene.Scene = (*Completed)(nil)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0h:0m:0.0s"},
		{5, "0h:0m:5.0s"},
		{5.25, "0h:0m:5.25s"},
		{65.1234, "0h:1m:5.123s"},
		{3600, "1h:0m:0.0s"},
		{3725.5, "1h:2m:5.5s"},
		{-3, "0h:0m:0.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatElapsed(tt.seconds))
		})
	}
}

func TestCompleted_Lines(t *testing.T) {
	c := New(testRouter{}, nil, system.MapFinished{Map: "alpha", ElapsedTime: 65.25, Deaths: 3})
	c.OnEnter()

	assert.Equal(t, []string{
		"alpha completed",
		"Respawns: 3",
		"Time elapsed: 0h:1m:5.25s",
	}, c.Lines())
}

func TestCompleted_SubmitsRecord(t *testing.T) {
	store := records.NewStore(&memStorage{items: make(map[string][]byte)})
	_, _, err := store.Submit("alpha", 50, 1)
	require.NoError(t, err)

	c := New(testRouter{}, store, system.MapFinished{Map: "alpha", ElapsedTime: 40, Deaths: 4})
	c.OnEnter()

	lines := c.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "New best time! Best: 0h:0m:40.0s, 1 respawns, 2 completions", lines[3])

	rec, ok, err := store.Load("alpha")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, rec.Completions)
}

func TestCompleted_RecordFailureDoesNotBlock(t *testing.T) {
	storage := &memStorage{items: make(map[string][]byte), saveErr: errors.New("read-only")}
	c := New(testRouter{}, records.NewStore(storage), system.MapFinished{Map: "alpha", ElapsedTime: 1})

	assert.NotPanics(t, c.OnEnter)
	assert.Len(t, c.Lines(), 3)
}
