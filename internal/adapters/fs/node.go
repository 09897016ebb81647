package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the workspace Graft node.
const NodeID graft.ID = "adapter.fs.workspace"

func init() {
	graft.Register(graft.Node[ports.Workspace]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Workspace, error) {
			return NewWorkspace(), nil
		},
	})
}
