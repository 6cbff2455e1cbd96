package rep

// TransitionDuration is the wall-clock length of a style cross-fade.
const TransitionDuration float32 = 0.5

// transitionMinScale is the scale groups grow from / shrink to (1%).
const transitionMinScale float32 = 0.01

// Transition cross-fades two groups by animating their uniform scale: the
// incoming group grows 1%→100% while the outgoing shrinks 100%→1% over
// TransitionDuration. At most one transition is in flight; a new request
// while one runs replaces it via Retarget with no queuing and no reverse
// animation.
type Transition struct {
	Outgoing *Group
	Incoming *Group
	Elapsed  float32
	// release is called with the outgoing group when it leaves the scene.
	release func(*Group)
}

// NewTransition starts animating incoming in and outgoing out. outgoing may
// be nil on the first load. release is invoked for every group that is
// retired (on completion or on retarget).
func NewTransition(outgoing, incoming *Group, release func(*Group)) *Transition {
	incoming.Scale = transitionMinScale
	if outgoing != nil {
		outgoing.Scale = 1
	}
	return &Transition{Outgoing: outgoing, Incoming: incoming, release: release}
}

// Retarget makes the current incoming group the new outgoing and starts
// growing next in its place. The previous outgoing is released immediately.
// The hand-off is abrupt: the new outgoing keeps whatever scale it had
// reached.
func (t *Transition) Retarget(next *Group) {
	if t.Outgoing != nil {
		t.releaseGroup(t.Outgoing)
	}
	t.Outgoing = t.Incoming
	t.Incoming = next
	t.Incoming.Scale = transitionMinScale
	t.Elapsed = 0
}

// Update advances the cross-fade by dt seconds and returns true when the
// transition completed this step. On completion the outgoing group has been
// released and the incoming group snapped to exactly full scale.
func (t *Transition) Update(dt float32) bool {
	t.Elapsed += dt
	if t.Elapsed >= TransitionDuration {
		if t.Outgoing != nil {
			t.releaseGroup(t.Outgoing)
			t.Outgoing = nil
		}
		t.Incoming.Scale = 1
		return true
	}
	f := t.Elapsed / TransitionDuration
	t.Incoming.Scale = transitionMinScale + (1-transitionMinScale)*f
	if t.Outgoing != nil {
		t.Outgoing.Scale = 1 + (transitionMinScale-1)*f
	}
	return false
}

func (t *Transition) releaseGroup(g *Group) {
	if t.release != nil {
		t.release(g)
		return
	}
	g.Release()
}
