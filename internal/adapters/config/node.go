package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spokebuild/spoke/internal/adapters/logger"
	"github.com/spokebuild/spoke/internal/core/ports"
)

// NodeID is the unique identifier for the defaults loader Graft node.
const NodeID graft.ID = "adapter.config.defaults"

func init() {
	graft.Register(graft.Node[ports.DefaultsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DefaultsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
