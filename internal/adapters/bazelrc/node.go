package bazelrc

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spokebuild/spoke/internal/adapters/logger"
	"github.com/spokebuild/spoke/internal/core/ports"
)

// NodeID is the unique identifier for the config emitter Graft node.
const NodeID graft.ID = "adapter.bazelrc.emitter"

func init() {
	graft.Register(graft.Node[ports.ConfigEmitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigEmitter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEmitter(log), nil
		},
	})
}
