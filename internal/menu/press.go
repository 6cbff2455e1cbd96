package menu

// HoldThreshold is how long the trigger must stay down before a press counts
// as a long press and opens the context menu.
const HoldThreshold float32 = 0.4

// PressPhase is the long-press state: Idle (trigger up), Held (down, under
// threshold), Open (context menu showing).
type PressPhase int

const (
	PhaseIdle PressPhase = iota
	PhaseHeld
	PhaseOpen
)

// PressEvent is the edge produced by a LongPress update.
type PressEvent int

const (
	// PressNone: no transition this step.
	PressNone PressEvent = iota
	// PressTap: trigger released before the hold threshold.
	PressTap
	// PressOpen: hold exceeded the threshold; open the context menu now.
	PressOpen
	// PressRelease: trigger released while open; fire and discard the menu.
	PressRelease
)

// LongPress tracks trigger timing for the contextual menu. One instance per
// controller; advance it once per frame with the current trigger state.
type LongPress struct {
	phase PressPhase
	held  float32
}

// Phase returns the current state.
func (p *LongPress) Phase() PressPhase { return p.phase }

// Update advances the state machine by dt with the trigger's current state
// and returns the transition edge, if any. The menu opens at most once per
// hold; it stays open until release.
func (p *LongPress) Update(triggerDown bool, dt float32) PressEvent {
	switch p.phase {
	case PhaseIdle:
		if triggerDown {
			p.phase = PhaseHeld
			p.held = 0
		}
	case PhaseHeld:
		if !triggerDown {
			p.phase = PhaseIdle
			return PressTap
		}
		p.held += dt
		if p.held >= HoldThreshold {
			p.phase = PhaseOpen
			return PressOpen
		}
	case PhaseOpen:
		if !triggerDown {
			p.phase = PhaseIdle
			return PressRelease
		}
	}
	return PressNone
}
