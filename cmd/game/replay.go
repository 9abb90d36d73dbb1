package main

import (
	"fmt"
	"io"

	"github.com/younwookim/nanoplatformer/internal/application/replay"
	"github.com/younwookim/nanoplatformer/internal/application/scene/completed"
	"github.com/younwookim/nanoplatformer/internal/application/system"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/config"
)

// ReplayResult is the outcome of a headless replay
type ReplayResult struct {
	Map      string
	Frames   int
	Deaths   int
	Elapsed  float64
	Finished bool
}

// runReplay plays a recorded run against the map on disk without opening a window
func runReplay(path string, physics config.PhysicsConfig, fullJumpRelease bool, maps *config.MapSource) (ReplayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return ReplayResult{}, err
	}

	m, err := system.LoadMap(maps, data.Map)
	if err != nil {
		return ReplayResult{}, err
	}

	session := system.NewSession(m, &physics, fullJumpRelease)
	replayer := replay.NewReplayer(*data)
	finished := replayer.Play(session)

	return ReplayResult{
		Map:      data.Map,
		Frames:   replayer.CurrentFrame(),
		Deaths:   session.Player().Deaths,
		Elapsed:  session.Player().ElapsedTime,
		Finished: finished != nil,
	}, nil
}

// printReplayResult writes a one-line summary
func printReplayResult(w io.Writer, r ReplayResult) {
	status := "not finished"
	if r.Finished {
		status = "finished"
	}
	fmt.Fprintf(w, "%s: %s after %d frames, %d deaths, time %s\n",
		r.Map, status, r.Frames, r.Deaths, completed.FormatElapsed(r.Elapsed))
}
