package viewer

import (
	"errors"
	"fmt"

	"mol-viewer/internal/config"
	"mol-viewer/internal/debug"
	"mol-viewer/internal/fetch"
	"mol-viewer/internal/logger"
	"mol-viewer/internal/menu"
	"mol-viewer/internal/panels"
	"mol-viewer/internal/pdb"
	"mol-viewer/internal/pick"
	"mol-viewer/internal/primitives"
	"mol-viewer/internal/relay"
	"mol-viewer/internal/rep"
	"mol-viewer/internal/scene"
	"mol-viewer/internal/terminal"
)

// unitScale converts parsed Å coordinates to scene units (the divide-by-10
// step applied by the load path, never by the parser).
const unitScale float32 = 0.1

// Molecule is the currently displayed structure: parsed atoms, the active
// style, and the owned render group. At most one Molecule is current; a new
// load releases the previous one's groups as it installs.
type Molecule struct {
	ID    string
	Atoms []pdb.Atom
	Kind  rep.Kind
	Group *rep.Group
	// UnitScale is the uniform Å-to-scene conversion for this molecule.
	UnitScale float32
}

// loadResult carries a finished fetch+parse back to the frame thread.
type loadResult struct {
	gen    uint64
	id     string
	atoms  []pdb.Atom
	err    error
	remote bool
}

// Viewer is the orchestrating controller. It owns the single
// current-molecule slot and the single transition slot; every mutation
// happens on the frame thread inside Update.
type Viewer struct {
	log     *logger.Logger
	prefs   config.Prefs
	scn     *scene.Scene
	reg     *primitives.Registry
	overlay *debug.Overlay
	term    *terminal.Terminal

	panelMgr *panels.Manager
	wrist    *menu.Radial
	ctxMenu  *menu.Context
	press    menu.LongPress

	mol   *Molecule
	trans *rep.Transition

	// loadGen makes concurrent loads deterministic: each request bumps it
	// and a completed fetch installs only if its generation is still the
	// newest. Last request wins.
	loadGen uint64
	results chan loadResult

	relayClient *relay.Client

	// OnRepresentationChange fires after the active style changes, for
	// collaborators outside the core (sync, overlays).
	OnRepresentationChange func(rep.Kind)
	// OnLoad fires after a structure installs, with its id.
	OnLoad func(id string)
}

// New wires up the viewer from preferences. The relay connection (if
// configured) is attempted once; failure is logged and the viewer runs
// standalone.
func New(log *logger.Logger, prefs config.Prefs) *Viewer {
	v := &Viewer{
		log:      log,
		prefs:    prefs,
		scn:      scene.New(),
		reg:      primitives.NewRegistry(),
		overlay:  debug.New(),
		panelMgr: panels.NewManager(),
		results:  make(chan loadResult, 8),
	}
	v.scn.GridVisible = prefs.GridVisible
	v.overlay.ShowFPS = prefs.ShowFPS
	v.overlay.ShowMemAlloc = prefs.ShowMemAlloc

	v.wrist = menu.NewRadial([]menu.Item{
		{Label: "next style", Action: func() { v.CycleStyle() }},
		{Label: "visuals", Action: func() { v.TogglePanel(panels.Visuals) }},
		{Label: "quick load", Action: func() { v.TogglePanel(panels.QuickLoad) }},
		{Label: "load text", Action: func() { v.TogglePanel(panels.StructureInput) }},
		{Label: "settings", Action: func() { v.TogglePanel(panels.Settings) }},
		{Label: "help", Action: func() { v.TogglePanel(panels.Help) }},
	})

	v.setupPanels()
	v.term = terminal.New(log, v.buildCommands())

	if prefs.RelayURL != "" {
		client, err := relay.DialClient(prefs.RelayURL)
		if err != nil {
			log.Errorf("relay: %v", err)
		} else {
			v.relayClient = client
			log.Logf("relay connected: %s", prefs.RelayURL)
		}
	}
	return v
}

// LoadID fetches and installs the structure with the given 4-character id.
// The fetch runs off-thread; the result is installed by a later Update.
func (v *Viewer) LoadID(id string) {
	v.startLoad(id, false)
}

func (v *Viewer) startLoad(id string, remote bool) {
	v.loadGen++
	gen := v.loadGen
	v.log.Logf("loading %s ...", id)
	go func() {
		text, err := fetch.Structure(id)
		if err != nil {
			v.results <- loadResult{gen: gen, id: id, err: err, remote: remote}
			return
		}
		atoms, err := pdb.Parse(text)
		v.results <- loadResult{gen: gen, id: id, atoms: atoms, err: err, remote: remote}
	}()
}

// LoadText parses raw structure text and installs it synchronously.
func (v *Viewer) LoadText(text string) {
	v.loadGen++
	atoms, err := pdb.Parse(text)
	v.install(loadResult{gen: v.loadGen, id: "(text)", atoms: atoms, err: err})
}

// install puts a finished load on screen. Failures and stale generations
// leave the previous molecule untouched.
func (v *Viewer) install(res loadResult) {
	if res.gen != v.loadGen {
		v.log.Logf("discarding stale load %s", res.id)
		return
	}
	if res.err != nil {
		var malformed *pdb.MalformedRecordError
		switch {
		case errors.As(res.err, &malformed):
			v.log.Errorf("load %s: %v", res.id, malformed)
		case errors.Is(res.err, fetch.ErrFetchFailed):
			v.log.Errorf("load %s: %v", res.id, res.err)
		default:
			v.log.Errorf("load %s: %v", res.id, res.err)
		}
		return
	}
	if len(res.atoms) == 0 {
		v.log.Errorf("load %s: no atom records", res.id)
		return
	}
	kind, err := rep.Select(len(res.atoms))
	if err != nil {
		v.log.Errorf("load %s: %d atoms: %v", res.id, len(res.atoms), err)
		return
	}

	// Release the outgoing molecule's groups before the new one installs.
	v.dropCurrent()

	group := rep.Build(kind, res.atoms)
	v.mol = &Molecule{
		ID:        res.id,
		Atoms:     res.atoms,
		Kind:      kind,
		Group:     group,
		UnitScale: unitScale,
	}
	v.log.Logf("loaded %s: %d atoms, %s", res.id, len(res.atoms), kind)

	if v.OnLoad != nil {
		v.OnLoad(res.id)
	}
	// Loads triggered by a peer are not re-broadcast.
	if !res.remote && v.relayClient != nil && res.id != "(text)" {
		if err := v.relayClient.PublishLoad(res.id); err != nil {
			v.log.Errorf("relay publish: %v", err)
		}
	}
}

func (v *Viewer) dropCurrent() {
	if v.trans != nil {
		if v.trans.Outgoing != nil {
			v.reg.ReleaseGroup(v.trans.Outgoing)
		}
		v.trans = nil
	}
	if v.mol != nil {
		v.reg.ReleaseGroup(v.mol.Group)
		v.mol = nil
	}
}

// CycleStyle advances to the next user style. With no molecule loaded it is
// a logged no-op.
func (v *Viewer) CycleStyle() {
	if v.mol == nil {
		v.log.Log("no structure loaded; nothing to cycle")
		return
	}
	v.SetStyle(rep.Next(v.mol.Kind))
}

// SetStyle rebuilds the molecule in the given style and cross-fades to it.
// A transition already in flight is replaced immediately, old incoming
// becoming the new outgoing.
func (v *Viewer) SetStyle(kind rep.Kind) {
	if v.mol == nil {
		v.log.Log("no structure loaded; cannot set style")
		return
	}
	group := rep.Build(kind, v.mol.Atoms)
	if v.trans != nil {
		v.trans.Retarget(group)
	} else {
		v.trans = rep.NewTransition(v.mol.Group, group, v.reg.ReleaseGroup)
	}
	v.mol.Group = group
	v.mol.Kind = kind
	v.log.Logf("style: %s", kind)
	if v.OnRepresentationChange != nil {
		v.OnRepresentationChange(kind)
	}
}

// TogglePanel switches the named panel per the exclusive-visibility rule and
// keeps the wrist menu hidden while any panel is up.
func (v *Viewer) TogglePanel(id panels.ID) {
	v.panelMgr.Toggle(id)
	v.wrist.Visible = v.panelMgr.Visible() == panels.None
}

// Update advances everything by one frame. dt is the frame's elapsed
// seconds.
func (v *Viewer) Update(dt float32) {
	// Finished loads, newest generation wins.
	for {
		select {
		case res := <-v.results:
			v.install(res)
			continue
		default:
		}
		break
	}
	// Remote load requests.
	for v.relayClient != nil {
		select {
		case id, ok := <-v.relayClient.Loads():
			if !ok {
				v.log.Log("relay connection lost")
				v.relayClient = nil
				continue
			}
			v.log.Logf("peer requested %s", id)
			v.startLoad(id, true)
			continue
		default:
		}
		break
	}

	v.term.Update()
	if !v.term.IsOpen() {
		v.scn.Update()
		v.routeInput(dt)
	}

	if v.trans != nil && v.trans.Update(dt) {
		v.trans = nil
	}

	viewerPos := v.scn.ViewerPos()
	forward := v.scn.Forward()
	v.panelMgr.Update(viewerPos, forward)
	v.placeWrist(viewerPos, forward)
	v.overlay.SetStatus(v.status())
}

func (v *Viewer) status() string {
	if v.mol == nil {
		return "no structure"
	}
	return fmt.Sprintf("%s  %d atoms  %s", v.mol.ID, len(v.mol.Atoms), v.mol.Kind)
}

// placeWrist anchors the radial menu ahead and below the viewer, standing in
// for the wrist anchor of a tracked controller.
func (v *Viewer) placeWrist(viewerPos, forward [3]float32) {
	point := [3]float32{
		viewerPos[0] + forward[0]*0.8,
		viewerPos[1] + forward[1]*0.8 - 0.3,
		viewerPos[2] + forward[2]*0.8,
	}
	v.wrist.Face(point, viewerPos)
}

// openContextMenu spawns the throwaway context menu at the nearest molecule
// hit along the pointer ray, or a fixed distance ahead on a miss.
func (v *Viewer) openContextMenu(origin, dir [3]float32) {
	var group *rep.Group
	us := unitScale
	if v.mol != nil {
		group = v.mol.Group
		us = v.mol.UnitScale
	}
	point := pick.SpawnPoint(origin, dir, group, us)
	v.ctxMenu = menu.NewContext([]menu.Item{
		{Label: "next style", Action: func() { v.CycleStyle() }},
		{Label: "space-fill", Action: func() { v.SetStyle(rep.SpaceFill) }},
		{Label: "ball-and-stick", Action: func() { v.SetStyle(rep.BallAndStick) }},
		{Label: "close panels", Action: func() { v.closePanels() }},
	}, point, origin)
}

func (v *Viewer) closePanels() {
	v.panelMgr.HideAll()
	v.wrist.Visible = true
}

// Unload frees GPU resources on shutdown.
func (v *Viewer) Unload() {
	if v.relayClient != nil {
		v.relayClient.Close()
	}
	v.reg.Unload()
}
