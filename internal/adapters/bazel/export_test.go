package bazel

import (
	"net/http"

	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports"
)

// NewResolverWithClient exposes the test constructor to external tests.
func NewResolverWithClient(logger ports.Logger, runner ports.Runner, dir string, client *http.Client) *Resolver {
	return newResolverWithClient(logger, runner, dir, client)
}

// Candidate exposes a candidate-table entry to external tests.
func Candidate(goos, goarch string) (domain.ToolCandidate, bool) {
	c, ok := candidates[candidateKey{goos, goarch}]
	return c, ok
}

// Download exposes the download path for a specific candidate to external
// tests, bypassing the host-platform lookup.
var Download = (*Resolver).download
