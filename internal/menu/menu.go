package menu

import (
	"github.com/chewxy/math32"
)

// Color is an RGBA byte quadruple for wedge tinting.
type Color [4]uint8

var (
	// BaseColor and HighlightColor are the two states of a wedge. Hovering
	// toggles between them; there is no gradient in between.
	BaseColor      = Color{40, 40, 48, 230}
	HighlightColor = Color{90, 140, 220, 240}
)

// DeadZone is the stick magnitude below which hover is cleared.
const DeadZone float32 = 0.25

// NoHover is the hover index meaning no wedge is hovered.
const NoHover = -1

// Action is a zero-argument command bound to a wedge.
type Action func()

// Item is one labeled wedge entry.
type Item struct {
	Label  string
	Action Action
}

// Radial is a fixed set of labeled wedges spanning 360° in equal arcs,
// starting at angle 0 ("up") and increasing clockwise. Hover state is a
// single index; each wedge is either base- or highlight-colored.
type Radial struct {
	items  []Item
	colors []Color
	hover  int

	// Placement, used by ray hover and by the draw layer. InnerRadius
	// leaves a hole in the middle so a centered stick hovers nothing.
	Center      [3]float32
	InnerRadius float32
	OuterRadius float32
	// Basis of the menu plane: Up is the angle-0 direction, Right the
	// clockwise 90° direction, Normal faces the viewer.
	Up, Right, Normal [3]float32
	Visible           bool
}

// NewRadial builds a menu over the given items. Hover starts cleared and all
// wedges base-colored. The menu lies in the XY plane facing +Z until placed.
func NewRadial(items []Item) *Radial {
	colors := make([]Color, len(items))
	for i := range colors {
		colors[i] = BaseColor
	}
	return &Radial{
		items:       items,
		colors:      colors,
		hover:       NoHover,
		InnerRadius: 0.03,
		OuterRadius: 0.10,
		Up:          [3]float32{0, 1, 0},
		Right:       [3]float32{1, 0, 0},
		Normal:      [3]float32{0, 0, 1},
		Visible:     true,
	}
}

// Len returns the wedge count.
func (m *Radial) Len() int { return len(m.items) }

// Hovered returns the current hover index, NoHover when none.
func (m *Radial) Hovered() int { return m.hover }

// Label returns the label of wedge i.
func (m *Radial) Label(i int) string { return m.items[i].Label }

// WedgeColor returns the current color of wedge i (base or highlight).
func (m *Radial) WedgeColor(i int) Color { return m.colors[i] }

// ReplaceAction swaps the action of the wedge with the given label and
// reports whether a wedge matched. Labels are fixed; only the command
// behind one may be rebound.
func (m *Radial) ReplaceAction(label string, action Action) bool {
	for i := range m.items {
		if m.items[i].Label == label {
			m.items[i].Action = action
			return true
		}
	}
	return false
}

// StickIndex maps thumbstick axes to a wedge index for an n-wedge menu:
// angle = atan2(x, y) so stick-up is angle 0, increasing clockwise,
// normalized to [0, 2π), then floor(angle / (2π/n)). Magnitude below
// DeadZone yields NoHover.
func StickIndex(x, y float32, n int) int {
	if n <= 0 {
		return NoHover
	}
	if math32.Sqrt(x*x+y*y) < DeadZone {
		return NoHover
	}
	angle := math32.Atan2(x, y)
	if angle < 0 {
		angle += 2 * math32.Pi
	}
	idx := int(math32.Floor(angle / (2 * math32.Pi / float32(n))))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// HoverStick updates hover from thumbstick axes. This is the high-frequency
// controller path; it recomputes hover fresh from the current input.
func (m *Radial) HoverStick(x, y float32) {
	m.SetHover(StickIndex(x, y, len(m.items)))
}

// HoverRay updates hover from a pointer ray: intersect the menu plane,
// reject hits outside the wedge annulus, then map the in-plane angle to a
// wedge index the same way the stick path does.
func (m *Radial) HoverRay(origin, dir [3]float32) {
	m.SetHover(m.rayIndex(origin, dir))
}

func (m *Radial) rayIndex(origin, dir [3]float32) int {
	denom := dot(dir, m.Normal)
	if math32.Abs(denom) < 1e-6 {
		return NoHover
	}
	t := dot(sub(m.Center, origin), m.Normal) / denom
	if t <= 0 {
		return NoHover
	}
	hit := [3]float32{origin[0] + dir[0]*t, origin[1] + dir[1]*t, origin[2] + dir[2]*t}
	d := sub(hit, m.Center)
	u := dot(d, m.Up)
	r := dot(d, m.Right)
	dist := math32.Sqrt(u*u + r*r)
	if dist < m.InnerRadius || dist > m.OuterRadius {
		return NoHover
	}
	angle := math32.Atan2(r, u)
	if angle < 0 {
		angle += 2 * math32.Pi
	}
	idx := int(math32.Floor(angle / (2 * math32.Pi / float32(len(m.items)))))
	if idx >= len(m.items) {
		idx = len(m.items) - 1
	}
	return idx
}

// SetHover moves the highlight to index. Setting the current index is a
// no-op; otherwise the previous wedge returns to its base color and the new
// one is highlighted. NoHover clears the highlight.
func (m *Radial) SetHover(index int) {
	if index == m.hover {
		return
	}
	if m.hover != NoHover {
		m.colors[m.hover] = BaseColor
	}
	if index < 0 || index >= len(m.items) {
		m.hover = NoHover
		return
	}
	m.colors[index] = HighlightColor
	m.hover = index
}

// ClearHover resets hover to none.
func (m *Radial) ClearHover() { m.SetHover(NoHover) }

// Select invokes the hovered wedge's action, or does nothing when no wedge
// is hovered.
func (m *Radial) Select() {
	if m.hover == NoHover {
		return
	}
	if a := m.items[m.hover].Action; a != nil {
		a()
	}
}

// Face places the menu at point, with its plane facing the viewer at
// viewerPos. World up seeds the wedge angle-0 direction.
func (m *Radial) Face(point, viewerPos [3]float32) {
	m.Center = point
	n := normalize(sub(viewerPos, point))
	up := [3]float32{0, 1, 0}
	right := normalize(cross(up, n))
	if right == ([3]float32{}) {
		right = [3]float32{1, 0, 0}
	}
	m.Normal = n
	m.Right = right
	m.Up = normalize(cross(n, right))
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
