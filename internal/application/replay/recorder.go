package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/nanoplatformer/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int

	// prepended to the next recorded frame
	pending []system.KeyEvent
}

// NewRecorder creates a new recorder for a map run
func NewRecorder(mapName string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Map:       mapName,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records the events applied before a frame and the frame's dt
func (r *Recorder) RecordFrame(dt float64, events []system.KeyEvent) {
	if !r.recording {
		return
	}

	if len(r.pending) > 0 {
		events = append(r.pending, events...)
		r.pending = nil
	}
	r.data.Frames = append(r.data.Frames, encodeFrame(r.frame, dt, events))
	r.frame++
}

// Restart drops the recorded frames and starts over, as when the map is
// reloaded. held lists the key presses still in effect; they open the
// next recorded frame so a fresh session replays into the same state.
func (r *Recorder) Restart(held []system.KeyEvent) {
	r.data.StartTime = time.Now().Format(time.RFC3339)
	r.data.Frames = make([]FrameInput, 0, cap(r.data.Frames))
	r.frame = 0
	r.pending = append([]system.KeyEvent(nil), held...)
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename(mapName string) string {
	return fmt.Sprintf("replay_%s_%s.json", mapName, time.Now().Format("20060102_150405"))
}

// ResolvePath returns where a recording of mapName is saved. A path naming
// an existing directory gets a generated file name inside it.
func ResolvePath(path, mapName string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, GenerateFilename(mapName))
	}
	return path
}
