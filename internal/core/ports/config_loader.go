package ports

import "go.trai.ch/tldr/internal/core/domain"

// ConfigLoader defines the interface for loading the client configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path selects the default location.
	// A missing file yields the defaults; environment overrides are applied in both cases.
	Load(path string) (*domain.Config, error)
}
