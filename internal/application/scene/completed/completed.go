// Package completed provides the map completion summary scene.
package completed

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/nanoplatformer/internal/application/scene"
	"github.com/younwookim/nanoplatformer/internal/application/system"
	"github.com/younwookim/nanoplatformer/internal/infrastructure/records"
)

var (
	colorTitle  = colornames.Gold
	colorText   = colornames.White
	colorRecord = colornames.Lightgreen
	colorHint   = color.RGBA{150, 150, 150, 255}
)

// Completed shows the result of a finished run
type Completed struct {
	router scene.Router
	store  *records.Store
	result system.MapFinished

	record    records.Record
	hasRecord bool
	newBest   bool
}

// New creates the summary scene. store may be nil when records are disabled.
func New(router scene.Router, store *records.Store, result system.MapFinished) *Completed {
	return &Completed{
		router: router,
		store:  store,
		result: result,
	}
}

// OnEnter stores the run in the records
func (c *Completed) OnEnter() {
	if c.store == nil {
		return
	}
	rec, best, err := c.store.Submit(c.result.Map, c.result.ElapsedTime, c.result.Deaths)
	if err != nil {
		log.Printf("Failed to save record: %v", err)
		return
	}
	c.record = rec
	c.hasRecord = true
	c.newBest = best
	log.Printf("Record saved for %s (best %s, %d completions)", rec.Map, FormatElapsed(rec.BestTime), rec.Completions)
}

// OnExit is called when leaving this scene
func (c *Completed) OnExit() {}

// Update returns to the map selector on Enter or Escape
func (c *Completed) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return c.router.MapSelector(""), nil
	}
	return nil, nil
}

// Lines returns the summary text, one entry per line
func (c *Completed) Lines() []string {
	lines := []string{
		fmt.Sprintf("%s completed", c.result.Map),
		fmt.Sprintf("Respawns: %d", c.result.Deaths),
		fmt.Sprintf("Time elapsed: %s", FormatElapsed(c.result.ElapsedTime)),
	}
	if c.hasRecord {
		best := fmt.Sprintf("Best: %s, %d respawns, %d completions",
			FormatElapsed(c.record.BestTime), c.record.FewestDeaths, c.record.Completions)
		if c.newBest {
			best = "New best time! " + best
		}
		lines = append(lines, best)
	}
	return lines
}

// Draw renders the summary
func (c *Completed) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cx := float64(screen.Bounds().Dx()) / 2

	scene.DrawTextCentered(screen, "COMPLETED", cx, 100, 8, colorTitle)
	for i, line := range c.Lines() {
		clr := colorText
		if i == 3 {
			clr = colorRecord
		}
		scene.DrawText(screen, line, 500, 450+float64(i)*50, 3, clr)
	}
	scene.DrawTextCentered(screen, "Enter: back to maps", cx, 900, 2, colorHint)
}

// FormatElapsed formats seconds as "Hh:Mm:Ss" with the seconds rounded
// to milliseconds and trailing zeros dropped, e.g. "0h:1m:5.25s".
func FormatElapsed(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(seconds / 60)
	seconds -= float64(minutes * 60)
	hours := minutes / 60
	minutes %= 60

	seconds = math.Round(seconds*1000) / 1000
	s := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return fmt.Sprintf("%dh:%dm:%ss", hours, minutes, s)
}
