package ports

import (
	"context"

	"github.com/spokebuild/spoke/internal/core/domain"
)

// Runner is the single execution boundary for external processes. All
// command descriptors are built by pure functions; only implementations of
// this interface actually spawn anything.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Capture runs the command to completion and returns its combined,
	// whitespace-trimmed output. A non-zero exit surfaces as an error
	// carrying the captured output.
	Capture(ctx context.Context, cmd domain.Command) (string, error)

	// Stream runs the command with its output streamed to the user's
	// terminal. A non-zero exit surfaces as an error carrying the exit
	// code.
	Stream(ctx context.Context, cmd domain.Command) error
}
