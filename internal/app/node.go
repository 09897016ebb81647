package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/adapters/toolchain"          //nolint:depguard // Wired in app layer
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
	// CatalogNodeID is the unique identifier for the generator catalog Graft node.
	CatalogNodeID graft.ID = "app.catalog"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// Catalog Node
	graft.Register(graft.Node[*domain.Catalog]{
		ID:        CatalogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*domain.Catalog, error) {
			return domain.NewCatalog(domain.DefaultGenerators()...)
		},
	})

	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			CatalogNodeID,
			orchestrator.NodeID,
			console.NodeID,
			toolchain.NodeID,
			fs.NodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := graft.Dep[*domain.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	tc, err := graft.Dep[ports.Toolchain](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
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

	return New(loader, catalog, orch, reporter, tc, workspace, store, telemetry, log), nil
}
