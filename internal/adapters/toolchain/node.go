package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spokebuild/spoke/internal/adapters/logger"
	"github.com/spokebuild/spoke/internal/adapters/shell"
	"github.com/spokebuild/spoke/internal/core/ports"
)

// NodeID is the unique identifier for the environment prober Graft node.
const NodeID graft.ID = "adapter.toolchain.prober"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProber]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentProber, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(log, runner), nil
		},
	})
}
