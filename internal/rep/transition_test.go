package rep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_StartsIncomingAtOnePercent(t *testing.T) {
	out := newGroup(BallAndStick)
	in := newGroup(SpaceFill)

	tr := NewTransition(out, in, nil)

	assert.InDelta(t, 0.01, float64(in.Scale), 1e-6)
	assert.InDelta(t, 1.0, float64(out.Scale), 1e-6)
	assert.Same(t, out, tr.Outgoing)
	assert.Same(t, in, tr.Incoming)
}

func TestTransition_Midpoint(t *testing.T) {
	out := newGroup(BallAndStick)
	in := newGroup(SpaceFill)
	tr := NewTransition(out, in, nil)

	done := tr.Update(0.25)

	assert.False(t, done)
	assert.InDelta(t, 0.505, float64(in.Scale), 1e-4)
	assert.InDelta(t, 0.505, float64(out.Scale), 1e-4)
}

func TestTransition_CompletesAtDuration(t *testing.T) {
	out := newGroup(BallAndStick)
	out.Spheres = []Sphere{{Radius: 1}}
	in := newGroup(SpaceFill)
	var released *Group
	tr := NewTransition(out, in, func(g *Group) { released = g; g.Release() })

	done := tr.Update(0.5)

	assert.True(t, done)
	assert.Equal(t, float32(1), in.Scale, "incoming snaps to exactly full scale")
	assert.Nil(t, tr.Outgoing, "outgoing removed on completion")
	require.Same(t, out, released)
	assert.True(t, out.Empty(), "released group holds no instances")
}

func TestTransition_CompletesPastDuration(t *testing.T) {
	in := newGroup(SpaceFill)
	tr := NewTransition(newGroup(BallAndStick), in, nil)

	tr.Update(0.3)
	done := tr.Update(0.3)

	assert.True(t, done)
	assert.Equal(t, float32(1), in.Scale)
}

func TestTransition_FirstLoadHasNoOutgoing(t *testing.T) {
	in := newGroup(BallAndStick)
	tr := NewTransition(nil, in, nil)

	assert.False(t, tr.Update(0.25))
	assert.True(t, tr.Update(0.25))
	assert.Equal(t, float32(1), in.Scale)
}

func TestTransition_RetargetReplacesInFlight(t *testing.T) {
	first := newGroup(BallAndStick)
	second := newGroup(SpaceFill)
	var released []*Group
	tr := NewTransition(first, second, func(g *Group) { released = append(released, g) })
	tr.Update(0.2)

	third := newGroup(Wireframe)
	tr.Retarget(third)

	// The old outgoing is gone immediately; old incoming hands off to
	// outgoing at whatever scale it had reached. No queueing.
	require.Len(t, released, 1)
	assert.Same(t, first, released[0])
	assert.Same(t, second, tr.Outgoing)
	assert.Same(t, third, tr.Incoming)
	assert.InDelta(t, 0.01, float64(third.Scale), 1e-6)
	assert.Equal(t, float32(0), tr.Elapsed)
}
