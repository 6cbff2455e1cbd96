package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Overlay text refreshes every N frames to limit allocations.
	updateInterval = 30
)

// Overlay draws runtime counters in the top-right corner: FPS, heap use,
// and a status line (structure id, atom count, style) fed by the viewer.
// Everything is off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool

	status     string
	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns an Overlay with all counters hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetStatus sets the status line (drawn whenever non-empty).
func (o *Overlay) SetStatus(s string) {
	o.status = s
}

// Draw renders the enabled counters. Call after the 3D scene in the draw
// loop.
func (o *Overlay) Draw() {
	o.frameCount++
	refresh := o.frameCount%updateInterval == 0 || o.fpsText == ""

	y := int32(padding)
	if o.ShowFPS {
		if refresh {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(o.fpsText, y, rl.Green)
		y += lineHeight
	}
	if o.ShowMemAlloc {
		if refresh {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		drawRight(o.memText, y, rl.Green)
		y += lineHeight
	}
	if o.status != "" {
		drawRight(o.status, y, rl.SkyBlue)
	}
}

func drawRight(text string, y int32, c rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	x := int32(rl.GetScreenWidth()) - w - padding
	rl.DrawText(text, x, y, fontSize, c)
}
