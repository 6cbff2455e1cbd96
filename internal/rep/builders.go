package rep

import (
	"github.com/chewxy/math32"

	"mol-viewer/internal/element"
	"mol-viewer/internal/pdb"
)

const (
	// bondCutoff is the max atom separation (Å) treated as a bond. This is
	// a distance heuristic, not chemistry: covalent bonds land under it and
	// non-bonded pairs above it for typical structures.
	bondCutoff float32 = 1.8
	// bondAtomLimit: the all-pairs test is O(n²), so bonds are skipped
	// entirely at and above this atom count.
	bondAtomLimit = 2000
	// surfaceAtomLimit: past this the surface style re-delegates to
	// wireframe instead of translucent space-fill.
	surfaceAtomLimit = 2000

	ballRadius     float32 = 0.4
	bondRadius     float32 = 0.15
	wireRadius     float32 = 0.4
	tubeRadius     float32 = 0.3
	surfaceOpacity float32 = 0.25

	// ribbonMaxSamples caps how many backbone points the ribbon spline is
	// fitted through; larger structures are strided down to this.
	ribbonMaxSamples = 300
	// ribbonSubdiv is the number of curve samples per spline segment.
	ribbonSubdiv = 8
)

// Build dispatches to the builder for kind. Builders are pure: atoms in,
// instance group out, no GPU work.
func Build(kind Kind, atoms []pdb.Atom) *Group {
	switch kind {
	case BallAndStick:
		return BuildBallAndStick(atoms)
	case SpaceFill:
		return BuildSpaceFill(atoms)
	case Wireframe:
		return BuildWireframe(atoms)
	case Surface:
		return BuildSurface(atoms)
	case Ribbon:
		return BuildRibbon(atoms)
	case PointCloud:
		return BuildPointCloud(atoms)
	}
	return newGroup(kind)
}

// BuildBallAndStick emits one sphere per atom and, for structures under
// bondAtomLimit atoms, a cylinder for every pair closer than bondCutoff.
func BuildBallAndStick(atoms []pdb.Atom) *Group {
	g := newGroup(BallAndStick)
	g.Spheres = make([]Sphere, 0, len(atoms))
	for _, a := range atoms {
		g.Spheres = append(g.Spheres, Sphere{
			Center: a.Position,
			Radius: ballRadius,
			Color:  element.ColorOf(a.Element),
		})
	}
	if len(atoms) >= bondAtomLimit {
		return g
	}
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			if distance(atoms[i].Position, atoms[j].Position) < bondCutoff {
				g.Bonds = append(g.Bonds, Bond{
					From:   atoms[i].Position,
					To:     atoms[j].Position,
					Radius: bondRadius,
					Color:  element.UnknownColor,
				})
			}
		}
	}
	return g
}

// BuildSpaceFill emits one sphere per atom at its Van der Waals radius.
func BuildSpaceFill(atoms []pdb.Atom) *Group {
	g := newGroup(SpaceFill)
	g.Spheres = make([]Sphere, 0, len(atoms))
	for _, a := range atoms {
		g.Spheres = append(g.Spheres, Sphere{
			Center: a.Position,
			Radius: element.RadiusOf(a.Element),
			Color:  element.ColorOf(a.Element),
		})
	}
	return g
}

// BuildWireframe emits low-tessellation wireframe spheres. Doubles as the
// automatic style for large structures.
func BuildWireframe(atoms []pdb.Atom) *Group {
	g := newGroup(Wireframe)
	g.Wire = true
	g.Spheres = make([]Sphere, 0, len(atoms))
	for _, a := range atoms {
		g.Spheres = append(g.Spheres, Sphere{
			Center: a.Position,
			Radius: wireRadius,
			Color:  element.ColorOf(a.Element),
		})
	}
	return g
}

// BuildSurface approximates a molecular surface as translucent space-fill.
// Past surfaceAtomLimit atoms the translucency cost is not worth it and it
// delegates to wireframe.
func BuildSurface(atoms []pdb.Atom) *Group {
	if len(atoms) > surfaceAtomLimit {
		g := BuildWireframe(atoms)
		g.Kind = Surface
		return g
	}
	g := BuildSpaceFill(atoms)
	g.Kind = Surface
	g.Opacity = surfaceOpacity
	return g
}

// BuildRibbon approximates the backbone as a fixed-radius tube through a
// Catmull-Rom spline. The atom sequence is strided down to at most
// ribbonMaxSamples control points, always keeping the final atom so the tube
// reaches the end of the chain. Fewer than 2 atoms yields an empty group.
func BuildRibbon(atoms []pdb.Atom) *Group {
	g := newGroup(Ribbon)
	if len(atoms) < 2 {
		return g
	}
	stride := len(atoms)/ribbonMaxSamples + 1
	var ctrl [][3]float32
	for i := 0; i < len(atoms); i += stride {
		ctrl = append(ctrl, atoms[i].Position)
	}
	if last := atoms[len(atoms)-1].Position; ctrl[len(ctrl)-1] != last {
		ctrl = append(ctrl, last)
	}
	g.Tube = catmullRom(ctrl, ribbonSubdiv)
	g.TubeRadius = tubeRadius
	return g
}

// BuildPointCloud emits one vertex-colored point per atom, no meshes.
func BuildPointCloud(atoms []pdb.Atom) *Group {
	g := newGroup(PointCloud)
	g.Points = make([]Point, 0, len(atoms))
	for _, a := range atoms {
		g.Points = append(g.Points, Point{
			Position: a.Position,
			Color:    element.ColorOf(a.Element),
		})
	}
	return g
}

func distance(a, b [3]float32) float32 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// catmullRom samples an interpolating spline through the control points,
// subdiv samples per segment, endpoints clamped by duplicating the first and
// last points. With fewer than 2 control points the polyline is returned
// as-is.
func catmullRom(ctrl [][3]float32, subdiv int) [][3]float32 {
	if len(ctrl) < 3 || subdiv < 2 {
		return ctrl
	}
	out := make([][3]float32, 0, (len(ctrl)-1)*subdiv+1)
	at := func(i int) [3]float32 {
		if i < 0 {
			return ctrl[0]
		}
		if i >= len(ctrl) {
			return ctrl[len(ctrl)-1]
		}
		return ctrl[i]
	}
	for seg := 0; seg < len(ctrl)-1; seg++ {
		p0, p1, p2, p3 := at(seg-1), at(seg), at(seg+1), at(seg+2)
		for s := 0; s < subdiv; s++ {
			t := float32(s) / float32(subdiv)
			out = append(out, catmullRomPoint(p0, p1, p2, p3, t))
		}
	}
	out = append(out, ctrl[len(ctrl)-1])
	return out
}

func catmullRomPoint(p0, p1, p2, p3 [3]float32, t float32) [3]float32 {
	t2 := t * t
	t3 := t2 * t
	var out [3]float32
	for i := 0; i < 3; i++ {
		out[i] = 0.5 * ((2 * p1[i]) +
			(-p0[i]+p2[i])*t +
			(2*p0[i]-5*p1[i]+4*p2[i]-p3[i])*t2 +
			(-p0[i]+3*p1[i]-3*p2[i]+p3[i])*t3)
	}
	return out
}
