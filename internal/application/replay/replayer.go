package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/nanoplatformer/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads and validates replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay %s: %w", filename, err)
	}

	return &data, nil
}

// Next returns the delta time and key events of the current frame and advances
func (r *Replayer) Next() (float64, []system.KeyEvent, bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, nil, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.DT, decodeFrame(fi), true
}

// Play feeds the remaining frames into a session. It stops early and
// returns the completion event if the map is finished.
func (r *Replayer) Play(s *system.Session) *system.MapFinished {
	for {
		dt, events, ok := r.Next()
		if !ok {
			return nil
		}
		s.Apply(events)
		if finished := s.Update(dt); finished != nil {
			return finished
		}
	}
}

// Map returns the name of the recorded map
func (r *Replayer) Map() string {
	return r.data.Map
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}
