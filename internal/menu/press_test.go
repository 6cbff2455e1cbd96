package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongPress_TapBelowThreshold(t *testing.T) {
	var p LongPress

	assert.Equal(t, PressNone, p.Update(true, 0.016))
	assert.Equal(t, PhaseHeld, p.Phase())
	p.Update(true, 0.2)

	ev := p.Update(false, 0.016)

	assert.Equal(t, PressTap, ev, "release before threshold is an ordinary tap")
	assert.Equal(t, PhaseIdle, p.Phase())
}

func TestLongPress_OpensAtThreshold(t *testing.T) {
	var p LongPress
	p.Update(true, 0.016)

	assert.Equal(t, PressNone, p.Update(true, 0.2))
	ev := p.Update(true, 0.25)

	assert.Equal(t, PressOpen, ev)
	assert.Equal(t, PhaseOpen, p.Phase())
}

func TestLongPress_OpensOnlyOncePerHold(t *testing.T) {
	var p LongPress
	p.Update(true, 0.016)
	p.Update(true, 1.0)

	assert.Equal(t, PressNone, p.Update(true, 1.0), "menu stays open, no second open event")
	assert.Equal(t, PhaseOpen, p.Phase())
}

func TestLongPress_ReleaseWhileOpen(t *testing.T) {
	var p LongPress
	p.Update(true, 0.016)
	p.Update(true, 0.5)

	ev := p.Update(false, 0.016)

	assert.Equal(t, PressRelease, ev)
	assert.Equal(t, PhaseIdle, p.Phase())
}

func TestLongPress_IdleStaysIdleWhileUp(t *testing.T) {
	var p LongPress

	assert.Equal(t, PressNone, p.Update(false, 0.5))
	assert.Equal(t, PhaseIdle, p.Phase())
}

func TestLongPress_HoldTimeRestartsEachPress(t *testing.T) {
	var p LongPress
	p.Update(true, 0.016)
	p.Update(true, 0.3)
	p.Update(false, 0.016) // tap; 0.3s must not carry over

	p.Update(true, 0.016)
	ev := p.Update(true, 0.2)

	assert.Equal(t, PressNone, ev)
	assert.Equal(t, PhaseHeld, p.Phase())
}
