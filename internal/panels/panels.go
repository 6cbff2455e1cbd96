package panels

// ID names one of the fixed overlay panels.
type ID int

const (
	Help ID = iota
	Settings
	Visuals
	QuickLoad
	StructureInput
	panelCount
)

// None is returned by Visible when every panel is hidden.
const None ID = -1

func (id ID) String() string {
	switch id {
	case Help:
		return "help"
	case Settings:
		return "settings"
	case Visuals:
		return "visuals"
	case QuickLoad:
		return "quick-load"
	case StructureInput:
		return "structure-input"
	}
	return "unknown"
}

// Named returns the panel id with the given String name.
func Named(name string) (ID, bool) {
	for id := ID(0); id < panelCount; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return None, false
}

// Entry is one selectable row of a panel.
type Entry struct {
	Label  string
	Action func()
}

// Panel is a named overlay: a title, free-form lines, and selectable
// entries. Position is maintained by the manager while visible.
type Panel struct {
	ID       ID
	Title    string
	Lines    []string
	Entries  []Entry
	Position [3]float32
	visible  bool
}

// IsVisible reports whether the panel is the one currently shown.
func (p *Panel) IsVisible() bool { return p.visible }

// panelDistance is how far ahead of the viewer the visible panel floats.
const panelDistance float32 = 1.2

// Manager owns the fixed panel set and enforces that at most one panel is
// visible at a time. Toggle is a switch, not a stack: toggling the visible
// panel hides everything, toggling another closes the old one first.
type Manager struct {
	panels map[ID]*Panel
	order  []ID
}

// NewManager builds the manager with all five panels hidden.
func NewManager() *Manager {
	m := &Manager{panels: make(map[ID]*Panel)}
	for id := ID(0); id < panelCount; id++ {
		m.panels[id] = &Panel{ID: id, Title: id.String()}
		m.order = append(m.order, id)
	}
	return m
}

// Panel returns the panel with the given id for content setup.
func (m *Manager) Panel(id ID) *Panel { return m.panels[id] }

// IDs returns the panel ids in fixed order.
func (m *Manager) IDs() []ID { return m.order }

// Visible returns the id of the visible panel, or None.
func (m *Manager) Visible() ID {
	for _, id := range m.order {
		if m.panels[id].visible {
			return id
		}
	}
	return None
}

// Toggle hides every panel, then shows id only if it was not the visible
// one. Two toggles of the same id in a row therefore end with everything
// hidden.
func (m *Manager) Toggle(id ID) {
	wasVisible := m.panels[id].visible
	for _, p := range m.panels {
		p.visible = false
	}
	if !wasVisible {
		m.panels[id].visible = true
	}
}

// HideAll closes whatever panel is open.
func (m *Manager) HideAll() {
	for _, p := range m.panels {
		p.visible = false
	}
}

// Update repositions the visible panel a fixed distance in front of the
// viewer. forward must be normalized. Call once per frame.
func (m *Manager) Update(viewerPos, forward [3]float32) {
	id := m.Visible()
	if id == None {
		return
	}
	p := m.panels[id]
	p.Position = [3]float32{
		viewerPos[0] + forward[0]*panelDistance,
		viewerPos[1] + forward[1]*panelDistance,
		viewerPos[2] + forward[2]*panelDistance,
	}
}

// Select forwards an entry selection to the visible panel only. Out-of-range
// indices and hidden panels are no-ops.
func (m *Manager) Select(entry int) {
	id := m.Visible()
	if id == None {
		return
	}
	p := m.panels[id]
	if entry < 0 || entry >= len(p.Entries) {
		return
	}
	if a := p.Entries[entry].Action; a != nil {
		a()
	}
}
