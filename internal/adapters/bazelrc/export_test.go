package bazelrc

import "github.com/spokebuild/spoke/internal/core/ports"

// NewEmitterWithPath exposes the test constructor to external tests.
func NewEmitterWithPath(logger ports.Logger, path string) *Emitter {
	return newEmitterWithPath(logger, path)
}
