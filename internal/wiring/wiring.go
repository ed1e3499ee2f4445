// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stravex/internal/adapters/config"
	_ "go.trai.ch/stravex/internal/adapters/keyboard"
	_ "go.trai.ch/stravex/internal/adapters/logger"
	_ "go.trai.ch/stravex/internal/adapters/uia"
	_ "go.trai.ch/stravex/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/stravex/internal/app"
	_ "go.trai.ch/stravex/internal/engine/automation"
)
