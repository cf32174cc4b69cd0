package ports

import "github.com/spokebuild/spoke/internal/core/domain"

// ConfigEmitter renders the resolved options into the bazelrc fragment.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type ConfigEmitter interface {
	// Emit fully overwrites the fragment and returns a fingerprint of the
	// written bytes. Emission is deterministic: identical inputs yield
	// byte-identical files.
	Emit(opts domain.BuildOptions, report *domain.EnvironmentReport, host domain.Host) (string, error)
}
