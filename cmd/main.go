package main

import (
	"os"

	"k8s-profile-api/internal/api"
	"k8s-profile-api/internal/commands"
	"k8s-profile-api/internal/logger"
	"k8s-profile-api/internal/store"
)

func main() {
	addr := os.Getenv(commands.EnvPrefix + "_LISTEN")
	if addr == "" {
		addr = commands.DefaultListen
	}
	dir := os.Getenv(commands.EnvPrefix + "_STORE")
	if dir == "" {
		dir = commands.DefaultStoreDir
	}

	s, err := store.New(dir)
	if err != nil {
		logger.Fatal("Failed to open request store: %v", err)
	}
	if err := api.Serve(addr, s); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
