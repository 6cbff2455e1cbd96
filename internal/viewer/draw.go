package viewer

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mol-viewer/internal/menu"
)

var (
	panelBg     = rl.NewColor(24, 24, 32, 235)
	panelBorder = rl.NewColor(90, 90, 110, 255)
	labelColor  = rl.RayWhite
)

const (
	panelWidth     = 380
	panelLineStep  = 26
	panelFontSize  = 18
	panelPad       = 14
	wedgeLabelSize = 16
)

// Draw renders the frame: 3D scene and molecule, then the menu/panel
// overlay, console, and debug counters.
func (v *Viewer) Draw() {
	v.scn.Begin()
	if v.mol != nil {
		us := v.mol.UnitScale
		if v.trans != nil && v.trans.Outgoing != nil {
			v.reg.DrawGroup(v.trans.Outgoing, us)
		}
		v.reg.DrawGroup(v.mol.Group, us)
	}
	v.scn.End()

	if v.wrist.Visible && v.ctxMenu == nil {
		v.drawRadial(v.wrist)
	}
	if v.ctxMenu != nil {
		v.drawRadial(v.ctxMenu.Radial)
	}
	v.drawVisiblePanel()

	v.term.Draw()
	v.overlay.Draw()
}

// drawRadial projects a world-placed radial menu to the screen and draws its
// wedges as ring sectors, hovered wedge highlighted.
func (v *Viewer) drawRadial(m *menu.Radial) {
	center := rl.GetWorldToScreen(rl.NewVector3(m.Center[0], m.Center[1], m.Center[2]), v.scn.Camera)
	edge := rl.GetWorldToScreen(rl.NewVector3(
		m.Center[0]+m.Up[0]*m.OuterRadius,
		m.Center[1]+m.Up[1]*m.OuterRadius,
		m.Center[2]+m.Up[2]*m.OuterRadius), v.scn.Camera)
	outer := rl.Vector2Distance(center, edge)
	if outer < 8 {
		return
	}
	inner := outer * m.InnerRadius / m.OuterRadius

	n := m.Len()
	arc := 360 / float32(n)
	for i := 0; i < n; i++ {
		// Wedge angles run from "up" clockwise; screen angle 0 is +X.
		start := float32(i)*arc - 90
		c := m.WedgeColor(i)
		rl.DrawRing(center, inner, outer, start, start+arc, 24, rl.NewColor(c[0], c[1], c[2], c[3]))

		mid := (start + arc/2) * math32.Pi / 180
		lx := center.X + math32.Cos(mid)*(outer+18)
		ly := center.Y + math32.Sin(mid)*(outer+18)
		label := m.Label(i)
		w := rl.MeasureText(label, wedgeLabelSize)
		rl.DrawText(label, int32(lx)-w/2, int32(ly)-wedgeLabelSize/2, wedgeLabelSize, labelColor)
	}
}

// drawVisiblePanel draws the single visible panel as a billboard overlay at
// its projected world position.
func (v *Viewer) drawVisiblePanel() {
	id := v.panelMgr.Visible()
	if id < 0 {
		return
	}
	p := v.panelMgr.Panel(id)
	center := rl.GetWorldToScreen(rl.NewVector3(p.Position[0], p.Position[1], p.Position[2]), v.scn.Camera)

	rows := 1 + len(p.Lines) + len(p.Entries)
	h := int32(rows*panelLineStep + 2*panelPad)
	w := int32(panelWidth)
	x := int32(center.X) - w/2
	y := int32(center.Y) - h/2

	rl.DrawRectangle(x, y, w, h, panelBg)
	rl.DrawRectangleLines(x, y, w, h, panelBorder)

	ty := y + panelPad
	rl.DrawText(p.Title, x+panelPad, ty, panelFontSize, rl.SkyBlue)
	ty += panelLineStep
	for _, line := range p.Lines {
		rl.DrawText(line, x+panelPad, ty, panelFontSize, labelColor)
		ty += panelLineStep
	}
	for i, e := range p.Entries {
		rl.DrawText(fmt.Sprintf("%d. %s", i+1, e.Label), x+panelPad, ty, panelFontSize, labelColor)
		ty += panelLineStep
	}
}
