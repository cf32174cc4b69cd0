// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/spokebuild/spoke/internal/adapters/bazel"
	_ "github.com/spokebuild/spoke/internal/adapters/bazelrc"
	_ "github.com/spokebuild/spoke/internal/adapters/config"
	_ "github.com/spokebuild/spoke/internal/adapters/logger"
	_ "github.com/spokebuild/spoke/internal/adapters/shell"
	_ "github.com/spokebuild/spoke/internal/adapters/toolchain"
	// Register app nodes.
	_ "github.com/spokebuild/spoke/internal/app"
)
