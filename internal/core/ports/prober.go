package ports

import (
	"context"

	"github.com/spokebuild/spoke/internal/core/domain"
)

// EnvironmentProber inspects the local toolchain. Every check is
// independently fatal: a misconfigured toolchain cannot produce a valid
// build regardless of what the rest of the program does.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type EnvironmentProber interface {
	Probe(ctx context.Context, opts domain.BuildOptions) (*domain.EnvironmentReport, error)
}
