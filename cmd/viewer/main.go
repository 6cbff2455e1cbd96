package main

import (
	"mol-viewer/internal/config"
	"mol-viewer/internal/env"
	"mol-viewer/internal/graphics"
	"mol-viewer/internal/logger"
	"mol-viewer/internal/viewer"
)

func main() {
	_ = env.Load(".env")
	log := logger.New()
	prefs, err := config.Load()
	if err != nil {
		log.Errorf("%v (using defaults)", err)
	}
	if url := env.GetOr("RELAY_URL", ""); url != "" {
		prefs.RelayURL = url
	}

	v := viewer.New(log, prefs)
	defer v.Unload()

	if prefs.StartupID != "" {
		v.LoadID(prefs.StartupID)
	}
	graphics.Run("molecular viewer", v.Update, v.Draw)
}
