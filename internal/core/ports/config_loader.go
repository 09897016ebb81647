package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, relative to the working directory.
	// A missing file yields domain.DefaultProject().
	Load(path string) (domain.Project, error)
}
