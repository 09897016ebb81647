package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Toolchain locates tools the way the runner will when it issues them.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// LookPath returns the absolute path of the named tool, searched in the PATH
	// of the scope's environment relative to its directory.
	LookPath(name string, scope domain.ToolScope) (string, error)
	// Probe checks each named tool within scope and reports its location and version.
	// The result has one entry per name, in the order given.
	Probe(ctx context.Context, names []string, scope domain.ToolScope) ([]domain.ToolStatus, error)
}
