package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/console"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			console.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, reporter, telemetry, log), nil
		},
	})
}
