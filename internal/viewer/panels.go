package viewer

import (
	"mol-viewer/internal/config"
	"mol-viewer/internal/panels"
	"mol-viewer/internal/rep"
)

// quickLoadIDs are the structures offered on the quick-load panel.
var quickLoadIDs = []string{"1CRN", "4HHB", "1BNA", "2POR", "1AON"}

// setupPanels fills the fixed panel set with content and entry actions.
func (v *Viewer) setupPanels() {
	help := v.panelMgr.Panel(panels.Help)
	help.Title = "help"
	help.Lines = []string{
		"tab          next style",
		"g            toggle grid",
		"f1-f5        panels",
		"right hold   context menu",
		"`            console (load <id>, style <name>, ...)",
		"drag/wheel   orbit and zoom",
	}

	visuals := v.panelMgr.Panel(panels.Visuals)
	visuals.Title = "visuals"
	for k := rep.Kind(0); k < rep.UserKindCount; k++ {
		kind := k
		visuals.Entries = append(visuals.Entries, panels.Entry{
			Label:  kind.String(),
			Action: func() { v.SetStyle(kind) },
		})
	}

	quick := v.panelMgr.Panel(panels.QuickLoad)
	quick.Title = "quick load"
	for _, id := range quickLoadIDs {
		id := id
		quick.Entries = append(quick.Entries, panels.Entry{
			Label:  id,
			Action: func() { v.LoadID(id) },
		})
	}

	settings := v.panelMgr.Panel(panels.Settings)
	settings.Title = "settings"
	settings.Entries = []panels.Entry{
		{Label: "toggle grid", Action: func() { v.scn.GridVisible = !v.scn.GridVisible }},
		{Label: "toggle fps", Action: func() { v.overlay.ShowFPS = !v.overlay.ShowFPS }},
		{Label: "toggle mem", Action: func() { v.overlay.ShowMemAlloc = !v.overlay.ShowMemAlloc }},
		{Label: "save prefs", Action: func() { v.savePrefs() }},
	}

	input := v.panelMgr.Panel(panels.StructureInput)
	input.Title = "structure input"
	input.Lines = []string{
		"paste structure text through the console:",
		"  loadfile <path>   read a local .pdb file",
		"  load <id>         fetch by 4-character id",
	}
}

func (v *Viewer) savePrefs() {
	p := config.Prefs{
		GridVisible:  v.scn.GridVisible,
		ShowFPS:      v.overlay.ShowFPS,
		ShowMemAlloc: v.overlay.ShowMemAlloc,
		RelayURL:     v.prefs.RelayURL,
		StartupID:    v.prefs.StartupID,
	}
	if err := config.Save(p); err != nil {
		v.log.Errorf("save prefs: %v", err)
		return
	}
	v.prefs = p
	v.log.Log("preferences saved")
}
