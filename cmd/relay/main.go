package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"mol-viewer/internal/env"
	"mol-viewer/internal/relay"
)

const defaultPort = 8080

func main() {
	_ = env.Load(".env")
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	hub := relay.NewHub(log)
	addr := fmt.Sprintf(":%d", env.Port(defaultPort))
	log.Info("relay listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, relay.Router(hub, log)); err != nil {
		log.Fatal("relay stopped", zap.Error(err))
	}
}
