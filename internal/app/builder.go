package app

import "github.com/spokebuild/spoke/internal/core/ports"

// Components bundles the resolved application graph handed to the CLI
// layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
