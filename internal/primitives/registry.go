package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mol-viewer/internal/element"
	"mol-viewer/internal/rep"
)

const (
	sphereRings  = 16
	sphereSlices = 16
	// Wireframe spheres draw at deliberately low tessellation; they are the
	// cheap style.
	wireRings  = 6
	wireSlices = 8
	bondSides  = 12
	tubeSides  = 10
)

// matKey identifies one cached material: tint color plus translucency.
// Materials are cached per distinct key so the material count is bounded by
// the element table, not the atom count.
type matKey struct {
	color   element.Color
	opacity uint8
}

// Registry owns the GPU resources used to draw representation groups: one
// shared unit-sphere mesh and one material per distinct color. Meshes are
// created on first draw so allocation happens after the GL context exists.
type Registry struct {
	sphereMesh rl.Mesh
	meshReady  bool
	materials  map[matKey]rl.Material
}

// NewRegistry returns an empty registry. GPU resources appear lazily.
func NewRegistry() *Registry {
	return &Registry{materials: make(map[matKey]rl.Material)}
}

func (r *Registry) ensureSphere() {
	if r.meshReady {
		return
	}
	// Radius 0.5 so instance scale = diameter.
	r.sphereMesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	r.meshReady = true
}

func (r *Registry) material(c element.Color, opacity float32) rl.Material {
	key := matKey{color: c, opacity: uint8(opacity * 255)}
	if mtl, ok := r.materials[key]; ok {
		return mtl
	}
	mtl := rl.LoadMaterialDefault()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(c[0], c[1], c[2], uint8(float32(c[3])*opacity))
	}
	r.materials[key] = mtl
	return mtl
}

// DrawGroup draws one representation group. unitScale is the molecule's
// Å-to-scene factor; the group's own Scale carries the transition animation
// on top. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawGroup(g *rep.Group, unitScale float32) {
	if g == nil || g.Empty() {
		return
	}
	s := unitScale * g.Scale

	for _, b := range g.Bonds {
		from := rl.NewVector3(b.From[0]*s, b.From[1]*s, b.From[2]*s)
		to := rl.NewVector3(b.To[0]*s, b.To[1]*s, b.To[2]*s)
		c := b.Color
		rl.DrawCylinderEx(from, to, b.Radius*s, b.Radius*s, bondSides, rl.NewColor(c[0], c[1], c[2], c[3]))
	}

	if g.Wire {
		for _, sp := range g.Spheres {
			center := rl.NewVector3(sp.Center[0]*s, sp.Center[1]*s, sp.Center[2]*s)
			c := sp.Color
			rl.DrawSphereWires(center, sp.Radius*s, wireRings, wireSlices, rl.NewColor(c[0], c[1], c[2], c[3]))
		}
	} else {
		r.ensureSphere()
		for _, sp := range g.Spheres {
			mtl := r.material(sp.Color, g.Opacity)
			d := sp.Radius * 2 * s
			scaleM := rl.MatrixScale(d, d, d)
			transM := rl.MatrixTranslate(sp.Center[0]*s, sp.Center[1]*s, sp.Center[2]*s)
			rl.DrawMesh(r.sphereMesh, mtl, rl.MatrixMultiply(scaleM, transM))
		}
	}

	for i := 0; i+1 < len(g.Tube); i++ {
		a := g.Tube[i]
		b := g.Tube[i+1]
		rl.DrawCylinderEx(
			rl.NewVector3(a[0]*s, a[1]*s, a[2]*s),
			rl.NewVector3(b[0]*s, b[1]*s, b[2]*s),
			g.TubeRadius*s, g.TubeRadius*s, tubeSides, rl.SkyBlue)
	}

	for _, p := range g.Points {
		c := p.Color
		rl.DrawPoint3D(rl.NewVector3(p.Position[0]*s, p.Position[1]*s, p.Position[2]*s), rl.NewColor(c[0], c[1], c[2], c[3]))
	}
}

// ReleaseGroup retires a group that left the scene. Instance data is
// dropped; meshes and materials are shared and stay cached.
func (r *Registry) ReleaseGroup(g *rep.Group) {
	if g != nil {
		g.Release()
	}
}

// Unload frees all GPU resources. Call once on shutdown.
func (r *Registry) Unload() {
	if r.meshReady {
		rl.UnloadMesh(&r.sphereMesh)
		r.meshReady = false
	}
	r.materials = make(map[matKey]rl.Material)
}
