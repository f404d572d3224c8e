// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/conform/internal/adapters/config"
	_ "go.trai.ch/conform/internal/adapters/logger"
	_ "go.trai.ch/conform/internal/adapters/manifest"
	_ "go.trai.ch/conform/internal/adapters/render"
	// Register app, engine, and rule nodes.
	_ "go.trai.ch/conform/internal/app"
	_ "go.trai.ch/conform/internal/engine/runner"
	_ "go.trai.ch/conform/internal/rules"
)
