package viewer

import (
	"fmt"
	"os"

	"mol-viewer/internal/commands"
	"mol-viewer/internal/panels"
	"mol-viewer/internal/rep"
)

// buildCommands registers the console command set.
func (v *Viewer) buildCommands() *commands.Registry {
	reg := commands.NewRegistry()

	reg.Register("load", "load <id>: fetch a structure by 4-character id", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: load <id>")
		}
		v.LoadID(args[0])
		return nil
	})

	reg.Register("loadfile", "loadfile <path>: load structure text from disk", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: loadfile <path>")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		v.LoadText(string(data))
		return nil
	})

	reg.Register("style", "style next|<name>: change representation", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: style next|<name>")
		}
		if args[0] == "next" {
			v.CycleStyle()
			return nil
		}
		kind, ok := rep.KindNamed(args[0])
		if !ok {
			return fmt.Errorf("unknown style: %s", args[0])
		}
		v.SetStyle(kind)
		return nil
	})

	reg.Register("panel", "panel <name>: toggle a panel (help, settings, ...)", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: panel <name>")
		}
		id, ok := panels.Named(args[0])
		if !ok {
			return fmt.Errorf("unknown panel: %s", args[0])
		}
		v.TogglePanel(id)
		return nil
	})

	reg.Register("grid", "grid on|off: toggle the reference grid", nil, func(args []string) error {
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return fmt.Errorf("usage: grid on|off")
		}
		v.scn.GridVisible = args[0] == "on"
		return nil
	})

	reg.Register("clear", "clear: empty the console history", nil, func([]string) error {
		v.log.Clear()
		return nil
	})

	reg.Register("help", "help: list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			v.log.Log(line)
		}
		return nil
	})

	return reg
}
