package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_SizeClasses(t *testing.T) {
	cases := []struct {
		name  string
		atoms int
		want  Kind
	}{
		{"small structure", 100, BallAndStick},
		{"ball-and-stick upper bound", 5000, BallAndStick},
		{"just past wireframe threshold", 5001, Wireframe},
		{"wireframe upper bound", 20000, Wireframe},
		{"just past point-cloud threshold", 20001, PointCloud},
		{"hard ceiling inclusive", 50000, PointCloud},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := Select(tc.atoms)
			require.NoError(t, err)
			assert.Equal(t, tc.want, kind)
		})
	}
}

func TestSelect_TooLarge(t *testing.T) {
	_, err := Select(50001)

	require.ErrorIs(t, err, ErrStructureTooLarge)
}

func TestNext_CycleIsClosedOverFiveStyles(t *testing.T) {
	order := []Kind{BallAndStick, SpaceFill, Wireframe, Surface, Ribbon}

	k := BallAndStick
	for i := 1; i <= UserKindCount; i++ {
		k = Next(k)
		assert.Equal(t, order[i%UserKindCount], k)
	}
	// Five advances return to the starting style.
	assert.Equal(t, BallAndStick, k)
}

func TestNext_PointCloudReentersCycle(t *testing.T) {
	assert.Equal(t, BallAndStick, Next(PointCloud))
}

func TestKindNamed(t *testing.T) {
	k, ok := KindNamed("ribbon")
	require.True(t, ok)
	assert.Equal(t, Ribbon, k)

	_, ok = KindNamed("point-cloud")
	assert.False(t, ok, "point-cloud is not a user-cycle style")
}
