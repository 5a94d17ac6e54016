// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tldr/internal/adapters/config"
	_ "go.trai.ch/tldr/internal/adapters/logger"
	_ "go.trai.ch/tldr/internal/adapters/pages"
	_ "go.trai.ch/tldr/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/tldr/internal/app"
)
