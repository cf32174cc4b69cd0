package ports

import (
	"context"

	"github.com/spokebuild/spoke/internal/core/domain"
)

// ToolResolver produces a validated, executable path to the build tool,
// downloading and checksum-verifying a pinned binary if necessary.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ToolResolver interface {
	// Resolve tries, in order: the explicitly supplied path, a binary on
	// the system PATH, and a freshly downloaded binary for the current
	// platform. It returns domain.ErrToolNotFound when none passes the
	// minimum-version gate.
	Resolve(ctx context.Context, explicitPath string) (domain.ResolvedTool, error)
}
