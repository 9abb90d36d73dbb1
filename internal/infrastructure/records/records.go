// Package records keeps per-map personal bests on disk.
package records

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/quasilyte/gdata"
)

// AppName is the gdata application directory
const AppName = "nanoplatformer"

// Storage is the subset of *gdata.Manager the store needs
type Storage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Record is the best result on one map
type Record struct {
	Map          string  `json:"map"`
	BestTime     float64 `json:"bestTime"`
	FewestDeaths int     `json:"fewestDeaths"`
	Completions  int     `json:"completions"`
}

// Store reads and merges records
type Store struct {
	storage Storage
}

// Open opens the store in the user's data directory
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open record storage: %w", err)
	}
	return NewStore(m), nil
}

// NewStore creates a store over any storage backend
func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

func itemKey(mapName string) string {
	return "record_" + unsafeKeyChars.ReplaceAllString(mapName, "_")
}

// Load returns the record for a map. ok is false if the map was never finished.
func (s *Store) Load(mapName string) (Record, bool, error) {
	data, err := s.storage.LoadItem(itemKey(mapName))
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to load record for %s: %w", mapName, err)
	}
	if data == nil {
		return Record{}, false, nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false, fmt.Errorf("failed to parse record for %s: %w", mapName, err)
	}
	return rec, true, nil
}

// Submit merges a finished run into the map's record and saves it.
// It returns the merged record and whether the run set a new best time.
func (s *Store) Submit(mapName string, elapsed float64, deaths int) (Record, bool, error) {
	rec, ok, err := s.Load(mapName)
	if err != nil {
		// Unreadable record is replaced
		ok = false
	}

	newBest := !ok || elapsed < rec.BestTime
	if !ok {
		rec = Record{Map: mapName, BestTime: elapsed, FewestDeaths: deaths}
	}
	if elapsed < rec.BestTime {
		rec.BestTime = elapsed
	}
	if deaths < rec.FewestDeaths {
		rec.FewestDeaths = deaths
	}
	rec.Completions++

	data, err := json.Marshal(rec)
	if err != nil {
		return rec, newBest, fmt.Errorf("failed to encode record: %w", err)
	}
	if err := s.storage.SaveItem(itemKey(mapName), data); err != nil {
		return rec, newBest, fmt.Errorf("failed to save record for %s: %w", mapName, err)
	}
	return rec, newBest, nil
}
