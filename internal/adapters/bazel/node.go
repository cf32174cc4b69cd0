package bazel

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spokebuild/spoke/internal/adapters/logger"
	"github.com/spokebuild/spoke/internal/adapters/shell"
	"github.com/spokebuild/spoke/internal/core/ports"
)

// NodeID is the unique identifier for the tool resolver Graft node.
const NodeID graft.ID = "adapter.bazel.resolver"

func init() {
	graft.Register(graft.Node[ports.ToolResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.ToolResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log, runner), nil
		},
	})
}
