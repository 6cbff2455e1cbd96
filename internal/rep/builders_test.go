package rep

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mol-viewer/internal/element"
	"mol-viewer/internal/pdb"
)

// chain returns n carbon atoms spaced `gap` apart along X.
func chain(n int, gap float32) []pdb.Atom {
	atoms := make([]pdb.Atom, n)
	for i := range atoms {
		atoms[i] = pdb.Atom{Position: [3]float32{float32(i) * gap, 0, 0}, Element: "C"}
	}
	return atoms
}

func TestBallAndStick_BondWithinCutoff(t *testing.T) {
	atoms := []pdb.Atom{
		{Position: [3]float32{0, 0, 0}, Element: "C"},
		{Position: [3]float32{1.79, 0, 0}, Element: "C"},
	}

	g := BuildBallAndStick(atoms)

	assert.Len(t, g.Spheres, 2)
	require.Len(t, g.Bonds, 1)
	assert.Equal(t, [3]float32{0, 0, 0}, g.Bonds[0].From)
	assert.Equal(t, [3]float32{1.79, 0, 0}, g.Bonds[0].To)
}

func TestBallAndStick_NoBondPastCutoff(t *testing.T) {
	atoms := []pdb.Atom{
		{Position: [3]float32{0, 0, 0}, Element: "C"},
		{Position: [3]float32{1.81, 0, 0}, Element: "C"},
	}

	g := BuildBallAndStick(atoms)

	assert.Len(t, g.Spheres, 2)
	assert.Empty(t, g.Bonds)
}

func TestBallAndStick_BondsSkippedAtScale(t *testing.T) {
	// 2000 atoms packed within the cutoff would mean ~2M bond checks; the
	// builder must not attempt bonds at all at that size.
	atoms := chain(bondAtomLimit, 1.0)

	g := BuildBallAndStick(atoms)

	assert.Len(t, g.Spheres, bondAtomLimit)
	assert.Empty(t, g.Bonds)
}

func TestBallAndStick_UnknownElementGetsFallbackColor(t *testing.T) {
	atoms := []pdb.Atom{{Position: [3]float32{0, 0, 0}, Element: "XQ"}}

	g := BuildBallAndStick(atoms)

	require.Len(t, g.Spheres, 1)
	assert.Equal(t, element.UnknownColor, g.Spheres[0].Color)
}

func TestSpaceFill_UsesRadiusTable(t *testing.T) {
	atoms := []pdb.Atom{
		{Position: [3]float32{0, 0, 0}, Element: "H"},
		{Position: [3]float32{5, 0, 0}, Element: "XQ"},
	}

	g := BuildSpaceFill(atoms)

	require.Len(t, g.Spheres, 2)
	assert.Equal(t, element.RadiusOf("H"), g.Spheres[0].Radius)
	assert.Equal(t, element.DefaultRadius, g.Spheres[1].Radius)
	assert.Empty(t, g.Bonds)
}

func TestWireframe_Flags(t *testing.T) {
	g := BuildWireframe(chain(3, 5))

	assert.True(t, g.Wire)
	assert.Len(t, g.Spheres, 3)
}

func TestSurface_TranslucentSpaceFill(t *testing.T) {
	g := BuildSurface(chain(10, 5))

	assert.Equal(t, Surface, g.Kind)
	assert.False(t, g.Wire)
	assert.Less(t, g.Opacity, float32(1))
	assert.Len(t, g.Spheres, 10)
}

func TestSurface_DelegatesToWireframeWhenLarge(t *testing.T) {
	g := BuildSurface(chain(surfaceAtomLimit+1, 5))

	assert.Equal(t, Surface, g.Kind)
	assert.True(t, g.Wire)
	assert.Equal(t, float32(1), g.Opacity)
}

func TestRibbon_DegeneratesBelowTwoAtoms(t *testing.T) {
	assert.True(t, BuildRibbon(nil).Empty())
	assert.True(t, BuildRibbon(chain(1, 1)).Empty())
}

func TestRibbon_TubeThroughEndpoints(t *testing.T) {
	atoms := chain(20, 2)

	g := BuildRibbon(atoms)

	require.GreaterOrEqual(t, len(g.Tube), 2)
	assert.Equal(t, atoms[0].Position, g.Tube[0])
	assert.Equal(t, atoms[len(atoms)-1].Position, g.Tube[len(g.Tube)-1])
	assert.Greater(t, g.TubeRadius, float32(0))
}

func TestRibbon_ControlPointsAreCapped(t *testing.T) {
	// 10k atoms must be strided down to at most ribbonMaxSamples control
	// points (plus the final atom), bounding the curve length.
	g := BuildRibbon(chain(10000, 1))

	maxCurve := (ribbonMaxSamples+1)*ribbonSubdiv + 1
	assert.LessOrEqual(t, len(g.Tube), maxCurve)
}

func TestPointCloud_OnePointPerAtom(t *testing.T) {
	g := BuildPointCloud(chain(50, 1))

	assert.Len(t, g.Points, 50)
	assert.Empty(t, g.Spheres)
	assert.Empty(t, g.Bonds)
}

func TestDistinctColors_BoundedByElementSet(t *testing.T) {
	var atoms []pdb.Atom
	elements := []string{"C", "N", "O", "C", "N", "O", "C"}
	for i, e := range elements {
		atoms = append(atoms, pdb.Atom{Position: [3]float32{float32(i) * 5, 0, 0}, Element: e})
	}

	g := BuildSpaceFill(atoms)

	assert.Len(t, g.DistinctColors(), 3, "one material per distinct color, not per atom")
}

func TestBuild_DispatchesEveryKind(t *testing.T) {
	atoms := chain(4, 1.5)
	for k := Kind(0); k <= PointCloud; k++ {
		t.Run(fmt.Sprint(k), func(t *testing.T) {
			g := Build(k, atoms)
			require.NotNil(t, g)
			assert.Equal(t, k, g.Kind)
			assert.Equal(t, float32(1), g.Scale)
		})
	}
}
