package replay

import (
	"fmt"

	"github.com/younwookim/nanoplatformer/internal/application/system"
)

// Version is written into every replay file
const Version = "1.0"

// FrameInput records one simulated frame: its delta time and the actions
// pressed and released before it ran.
type FrameInput struct {
	F    int      `json:"f"`              // Frame number
	DT   float64  `json:"dt"`             // Delta time in seconds
	Down []string `json:"down,omitempty"` // Actions pressed
	Up   []string `json:"up,omitempty"`   // Actions released
}

// ReplayData contains all data needed to replay a map run
type ReplayData struct {
	Version   string       `json:"version"`
	Map       string       `json:"map"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Validate checks every frame for unknown action names and negative dt
func (d *ReplayData) Validate() error {
	if d.Map == "" {
		return fmt.Errorf("replay has no map name")
	}
	for _, fi := range d.Frames {
		if fi.DT < 0 {
			return fmt.Errorf("frame %d: negative dt %v", fi.F, fi.DT)
		}
		for _, names := range [][]string{fi.Down, fi.Up} {
			for _, name := range names {
				if _, ok := system.ParseAction(name); !ok {
					return fmt.Errorf("frame %d: unknown action %q", fi.F, name)
				}
			}
		}
	}
	return nil
}

// encodeFrame converts a frame's key events to their recorded form
func encodeFrame(f int, dt float64, events []system.KeyEvent) FrameInput {
	fi := FrameInput{F: f, DT: dt}
	for _, e := range events {
		if e.Down {
			fi.Down = append(fi.Down, e.Action.String())
		} else {
			fi.Up = append(fi.Up, e.Action.String())
		}
	}
	return fi
}

// decodeFrame is the inverse of encodeFrame. Presses come before releases,
// the same order InputSystem.Translate produces. Unknown names are skipped.
func decodeFrame(fi FrameInput) []system.KeyEvent {
	events := make([]system.KeyEvent, 0, len(fi.Down)+len(fi.Up))
	for _, name := range fi.Down {
		if a, ok := system.ParseAction(name); ok {
			events = append(events, system.KeyEvent{Action: a, Down: true})
		}
	}
	for _, name := range fi.Up {
		if a, ok := system.ParseAction(name); ok {
			events = append(events, system.KeyEvent{Action: a, Down: false})
		}
	}
	return events
}
