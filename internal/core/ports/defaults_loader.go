package ports

import "github.com/spokebuild/spoke/internal/core/domain"

// DefaultsLoader reads the optional defaults file.
//
//go:generate mockgen -source=defaults_loader.go -destination=mocks/mock_defaults_loader.go -package=mocks
type DefaultsLoader interface {
	// Load reads the defaults file from cwd. A missing file is not an
	// error and yields empty defaults.
	Load(cwd string) (domain.Defaults, error)
}
