package app

import "go.trai.ch/tldr/internal/core/ports"

// Components holds what the command line front end needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}
