package rep

import (
	"mol-viewer/internal/element"
)

// Sphere is one atom instance: center and radius in Å plus its material
// color.
type Sphere struct {
	Center [3]float32
	Radius float32
	Color  element.Color
}

// Bond is one inferred bond instance, drawn as a cylinder from From to To.
type Bond struct {
	From   [3]float32
	To     [3]float32
	Radius float32
	Color  element.Color
}

// Point is one GPU point for the point-cloud style.
type Point struct {
	Position [3]float32
	Color    element.Color
}

// Group is the renderable output of a builder. It is plain data: the GPU
// layer walks the instance lists each frame and owns the mesh/material
// caches. Scale is the uniform transition scale (1 = full size) animated by
// Transition.
type Group struct {
	Kind    Kind
	Scale   float32
	Spheres []Sphere
	Bonds   []Bond
	// Tube is the ribbon center line; consecutive samples are joined by
	// fixed-radius tube segments.
	Tube       [][3]float32
	TubeRadius float32
	Points     []Point
	// Wire draws sphere instances as wireframes at low tessellation.
	Wire bool
	// Opacity below 1 forces every material translucent (surface style).
	Opacity float32
}

func newGroup(kind Kind) *Group {
	return &Group{Kind: kind, Scale: 1, Opacity: 1}
}

// Empty reports whether the group has nothing to draw.
func (g *Group) Empty() bool {
	return len(g.Spheres) == 0 && len(g.Bonds) == 0 && len(g.Tube) < 2 && len(g.Points) == 0
}

// DistinctColors returns the set of colors used by the group's instances.
// The draw layer allocates one material per entry, so the material count is
// bounded by the element table, not the atom count.
func (g *Group) DistinctColors() []element.Color {
	seen := make(map[element.Color]struct{})
	var out []element.Color
	add := func(c element.Color) {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	for _, s := range g.Spheres {
		add(s.Color)
	}
	for _, b := range g.Bonds {
		add(b.Color)
	}
	for _, p := range g.Points {
		add(p.Color)
	}
	return out
}

// Release drops the group's instance data so the GPU layer stops drawing it.
// Mesh and material caches are shared and stay owned by the registry.
func (g *Group) Release() {
	g.Spheres = nil
	g.Bonds = nil
	g.Tube = nil
	g.Points = nil
}
