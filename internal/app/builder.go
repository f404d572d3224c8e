package app

import "go.trai.ch/conform/internal/core/ports"

// Components bundles the wired application entry points.
type Components struct {
	App    *App
	Logger ports.Logger
}
