package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the build state store Graft node.
const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildInfoStore, error) {
			return NewStore(DefaultPath), nil
		},
	})
}
