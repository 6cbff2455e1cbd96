package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mol-viewer/internal/menu"
	"mol-viewer/internal/panels"
)

// routeInput converts this frame's device state into component calls:
// pointer ray and thumbstick to menu hover, trigger timing to the long-press
// state machine, clicks and buttons to select.
func (v *Viewer) routeInput(dt float32) {
	v.keyboardShortcuts()

	origin, dir := v.pointerRay()

	// Hover. The stick path runs every frame and wins over the mouse when a
	// gamepad is present and deflected; otherwise the pointer ray drives it.
	stickX, stickY, stickActive := rightStick()
	if v.ctxMenu != nil {
		if stickActive {
			v.ctxMenu.HoverStick(stickX, stickY)
		} else {
			v.ctxMenu.HoverRay(origin, dir)
		}
	} else if v.wrist.Visible {
		if stickActive {
			v.wrist.HoverStick(stickX, stickY)
		} else {
			v.wrist.HoverRay(origin, dir)
		}
	}

	// Long-press context menu: gamepad right trigger, or right mouse button
	// on the desktop.
	triggerDown := rl.IsMouseButtonDown(rl.MouseButtonRight) ||
		(rl.IsGamepadAvailable(0) && rl.IsGamepadButtonDown(0, rl.GamepadButtonRightTrigger2))
	switch v.press.Update(triggerDown, dt) {
	case menu.PressOpen:
		v.openContextMenu(origin, dir)
	case menu.PressRelease:
		if v.ctxMenu != nil {
			v.ctxMenu.Release()
			v.ctxMenu = nil
		}
	case menu.PressTap:
		// An ordinary tap selects on the wrist menu, never opens the
		// context menu.
		if v.wrist.Visible {
			v.wrist.Select()
		}
	}

	// Primary select: left click or gamepad A.
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) ||
		(rl.IsGamepadAvailable(0) && rl.IsGamepadButtonPressed(0, rl.GamepadButtonRightFaceDown)) {
		if v.ctxMenu == nil && v.wrist.Visible {
			v.wrist.Select()
		}
	}

	// Digit keys select entries on the visible panel only.
	for i := 0; i < 9; i++ {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			v.panelMgr.Select(i)
		}
	}
}

func (v *Viewer) keyboardShortcuts() {
	switch {
	case rl.IsKeyPressed(rl.KeyTab):
		v.CycleStyle()
	case rl.IsKeyPressed(rl.KeyF1):
		v.TogglePanel(panels.Help)
	case rl.IsKeyPressed(rl.KeyF2):
		v.TogglePanel(panels.Settings)
	case rl.IsKeyPressed(rl.KeyF3):
		v.TogglePanel(panels.Visuals)
	case rl.IsKeyPressed(rl.KeyF4):
		v.TogglePanel(panels.QuickLoad)
	case rl.IsKeyPressed(rl.KeyF5):
		v.TogglePanel(panels.StructureInput)
	case rl.IsKeyPressed(rl.KeyG):
		v.scn.GridVisible = !v.scn.GridVisible
	}
}

// pointerRay returns the mouse pick ray in world space.
func (v *Viewer) pointerRay() (origin, dir [3]float32) {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), v.scn.Camera)
	return [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z},
		[3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
}

// rightStick returns the right thumbstick axes and whether a gamepad is
// deflecting it past the dead zone.
func rightStick() (x, y float32, active bool) {
	if !rl.IsGamepadAvailable(0) {
		return 0, 0, false
	}
	x = rl.GetGamepadAxisMovement(0, rl.GamepadAxisRightX)
	// Raylib reports stick-up as negative Y; the menu math wants up
	// positive.
	y = -rl.GetGamepadAxisMovement(0, rl.GamepadAxisRightY)
	return x, y, x*x+y*y >= menu.DeadZone*menu.DeadZone
}
