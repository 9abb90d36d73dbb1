package records

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory Storage
type memStorage struct {
	items   map[string][]byte
	saveErr error
	loadErr error
}

func newMemStorage() *memStorage {
	return &memStorage{items: make(map[string][]byte)}
}

func (m *memStorage) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStorage) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(newMemStorage())

	_, ok, err := store.Load("alpha")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Submit(t *testing.T) {
	store := NewStore(newMemStorage())

	tests := []struct {
		name        string
		elapsed     float64
		deaths      int
		wantBest    bool
		wantTime    float64
		wantDeaths  int
		completions int
	}{
		{"first run", 30, 5, true, 30, 5, 1},
		{"slower with fewer deaths", 40, 2, false, 30, 2, 2},
		{"faster", 25.5, 9, true, 25.5, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, best, err := store.Submit("alpha", tt.elapsed, tt.deaths)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBest, best)
			assert.Equal(t, "alpha", rec.Map)
			assert.Equal(t, tt.wantTime, rec.BestTime)
			assert.Equal(t, tt.wantDeaths, rec.FewestDeaths)
			assert.Equal(t, tt.completions, rec.Completions)

			loaded, ok, err := store.Load("alpha")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, rec, loaded)
		})
	}
}

func TestStore_MapsAreIndependent(t *testing.T) {
	storage := newMemStorage()
	store := NewStore(storage)

	_, _, err := store.Submit("alpha", 10, 0)
	require.NoError(t, err)
	_, _, err = store.Submit("my map/2", 20, 1)
	require.NoError(t, err)

	assert.Contains(t, storage.items, "record_alpha")
	assert.Contains(t, storage.items, "record_my_map_2")

	rec, ok, err := store.Load("alpha")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, rec.Completions)
}

func TestStore_CorruptRecordIsReplaced(t *testing.T) {
	storage := newMemStorage()
	storage.items["record_alpha"] = []byte("{not json")
	store := NewStore(storage)

	_, _, err := store.Load("alpha")
	assert.Error(t, err)

	rec, best, err := store.Submit("alpha", 12, 3)
	require.NoError(t, err)
	assert.True(t, best)
	assert.Equal(t, 1, rec.Completions)
}

func TestStore_Errors(t *testing.T) {
	storage := newMemStorage()
	storage.saveErr = errors.New("disk full")
	store := NewStore(storage)

	rec, _, err := store.Submit("alpha", 12, 3)
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 1, rec.Completions)

	storage.loadErr = errors.New("permission denied")
	_, _, err = store.Load("alpha")
	assert.ErrorContains(t, err, "permission denied")
}
