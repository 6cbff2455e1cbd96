package rep

import "errors"

// Kind identifies a visual representation style. The first five kinds form
// the user-facing cycle; PointCloud is only reachable through size-based
// selection on load.
type Kind int

const (
	BallAndStick Kind = iota
	SpaceFill
	Wireframe
	Surface
	Ribbon
	PointCloud
)

// UserKindCount is the length of the user-facing style cycle.
const UserKindCount = 5

// Atom-count thresholds for the initial level-of-detail selection. Picked so
// frame rate stays workable on constrained hardware; cycling past them later
// is the user's own choice.
const (
	maxAtoms        = 50000
	pointCloudAbove = 20000
	wireframeAbove  = 5000
)

// ErrStructureTooLarge is returned by Select for structures past the hard
// atom-count ceiling.
var ErrStructureTooLarge = errors.New("rep: structure too large")

func (k Kind) String() string {
	switch k {
	case BallAndStick:
		return "ball-and-stick"
	case SpaceFill:
		return "space-fill"
	case Wireframe:
		return "wireframe"
	case Surface:
		return "surface"
	case Ribbon:
		return "ribbon"
	case PointCloud:
		return "point-cloud"
	}
	return "unknown"
}

// KindNamed returns the user-cycle kind with the given String name.
func KindNamed(name string) (Kind, bool) {
	for k := Kind(0); k < UserKindCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Next advances through the user-facing cycle, wrapping after Ribbon.
// PointCloud inputs re-enter the cycle at BallAndStick.
func Next(k Kind) Kind {
	if k >= UserKindCount {
		return BallAndStick
	}
	return (k + 1) % UserKindCount
}

// Select picks the initial representation for a freshly loaded structure
// from its atom count. Only the load path uses this; user cycling is
// unconditional.
func Select(atomCount int) (Kind, error) {
	switch {
	case atomCount > maxAtoms:
		return 0, ErrStructureTooLarge
	case atomCount > pointCloudAbove:
		return PointCloud, nil
	case atomCount > wireframeAbove:
		return Wireframe, nil
	default:
		return BallAndStick, nil
	}
}
