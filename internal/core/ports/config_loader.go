package ports

import "go.trai.ch/stravex/internal/core/domain"

// ConfigLoader defines the interface for loading the stravex configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path and overlays it on the defaults.
	// An empty path looks up stravex.yaml in the working directory and then in
	// the user config directory. A missing file yields the defaults.
	Load(path string) (*domain.Config, error)
}
