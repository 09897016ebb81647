// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Runner executes external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd and blocks until it exits.
	//
	// Standard error is merged into standard output and streamed to the console while
	// the command runs. When the command exits with a non-zero status the returned error
	// wraps a *domain.ProcessFailure holding the full captured output.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}
