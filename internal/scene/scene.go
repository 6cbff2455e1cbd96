package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 100
)

// Scene holds the 3D camera and draws the world backdrop (grid). The
// molecule and menus are drawn by the viewer between Begin and End. Camera
// is an orbital camera around the origin, where loaded structures are
// centered.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
}

// New returns a scene with a perspective camera orbiting the origin.
func New() *Scene {
	s := &Scene{GridVisible: true}
	s.Camera.Position = rl.NewVector3(0, 2, 6)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 50
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// ViewerPos returns the camera position as a plain vector for the
// renderer-free packages (menus, panels).
func (s *Scene) ViewerPos() [3]float32 {
	p := s.Camera.Position
	return [3]float32{p.X, p.Y, p.Z}
}

// Forward returns the normalized camera view direction.
func (s *Scene) Forward() [3]float32 {
	d := rl.Vector3Normalize(rl.Vector3Subtract(s.Camera.Target, s.Camera.Position))
	return [3]float32{d.X, d.Y, d.Z}
}

// Update runs once per frame: orbital camera motion (drag to rotate, wheel
// to zoom). Suspended while the console owns input.
func (s *Scene) Update() {
	rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
}

// Begin enters 3D mode; pair with End.
func (s *Scene) Begin() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
}

// End leaves 3D mode.
func (s *Scene) End() {
	rl.EndMode3D()
}

// drawGrid draws minor/major reference lines on the XZ plane under the
// molecule.
func drawGrid() {
	minor := rl.NewColor(110, 110, 110, gridMinorAlpha)
	major := rl.NewColor(150, 150, 150, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
