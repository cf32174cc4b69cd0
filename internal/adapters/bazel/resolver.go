// Package bazel implements the ToolResolver port for locating, downloading
// and version-gating the bazel binary.
package bazel

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"time"

	"github.com/spokebuild/spoke/internal/adapters/detector"
	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// toolName is the binary looked up on the system PATH.
	toolName = "bazel"

	httpClientTimeout = 10 * time.Minute
)

// versionPattern tolerantly extracts the dotted version from
// "bazel 6.1.2" style output.
var versionPattern = regexp.MustCompile(`bazel *([0-9.]+)`)

// Resolver implements ports.ToolResolver.
type Resolver struct {
	logger      ports.Logger
	runner      ports.Runner
	httpClient  *http.Client
	workDir     string
	minVersion  domain.Version
	interactive bool
}

// NewResolver creates a ToolResolver downloading into the current directory.
func NewResolver(logger ports.Logger, runner ports.Runner) *Resolver {
	return &Resolver{
		logger:      logger,
		runner:      runner,
		httpClient:  &http.Client{Timeout: httpClientTimeout},
		workDir:     ".",
		minVersion:  domain.MinBazelVersion,
		interactive: detector.IsInteractive(),
	}
}

// newResolverWithClient creates a Resolver with a custom http client and
// download directory (used for testing).
func newResolverWithClient(logger ports.Logger, runner ports.Runner, dir string, client *http.Client) *Resolver {
	return &Resolver{
		logger:     logger,
		runner:     runner,
		httpClient: client,
		workDir:    dir,
		minVersion: domain.MinBazelVersion,
	}
}

// Resolve tries each candidate path in order and returns the first one that
// passes the minimum-version gate. The candidate sequence is lazy: the
// download is only attempted when the explicit path and the PATH search both
// fail to produce an acceptable binary.
func (r *Resolver) Resolve(ctx context.Context, explicitPath string) (domain.ResolvedTool, error) {
	candidatePaths := []func(context.Context) (string, error){
		func(context.Context) (string, error) { return explicitPath, nil },
		func(context.Context) (string, error) {
			path, err := exec.LookPath(toolName)
			if err != nil {
				return "", nil
			}
			return path, nil
		},
		r.downloadAndVerify,
	}

	for _, next := range candidatePaths {
		path, err := next(ctx)
		if err != nil {
			return domain.ResolvedTool{}, err
		}
		if path == "" {
			continue
		}

		version, ok := r.probeVersion(ctx, path)
		if !ok {
			// Unparsable or failing probe output means "incompatible",
			// not a crash.
			r.logger.Debug("ignoring unusable bazel candidate: " + path)
			continue
		}
		if !version.AtLeast(r.minVersion) {
			r.logger.Debug(fmt.Sprintf("ignoring bazel %s at %s: older than %s", version, path, r.minVersion))
			continue
		}

		return domain.ResolvedTool{Path: path, Version: version}, nil
	}

	return domain.ResolvedTool{}, domain.ErrToolNotFound
}

// probeVersion invokes the candidate to print its own version string and
// parses a dotted numeric triple out of it.
func (r *Resolver) probeVersion(ctx context.Context, path string) (domain.Version, bool) {
	out, err := r.runner.Capture(ctx, domain.Command{Args: []string{path, "--version"}})
	if err != nil {
		return domain.Version{}, false
	}

	match := versionPattern.FindStringSubmatch(out)
	if match == nil {
		return domain.Version{}, false
	}
	return domain.ParseVersion(match[1])
}

// downloadAndVerify fetches the pinned binary for the current platform,
// verifies its digest and persists it with execute permissions. It returns
// "" when the platform has no candidate or when a verified binary is
// already present and executable.
func (r *Resolver) downloadAndVerify(ctx context.Context) (string, error) {
	cand, ok := candidates[candidateKey{runtime.GOOS, runtime.GOARCH}]
	if !ok {
		// Unsupported platform: nothing to download, not an error.
		return "", nil
	}
	return r.download(ctx, cand)
}

func (r *Resolver) download(ctx context.Context, cand domain.ToolCandidate) (string, error) {
	target := filepath.Join(r.workDir, cand.File)
	if isExecutable(target) {
		return target, nil
	}

	r.logger.Info("downloading bazel from " + cand.URI())

	contents, err := r.fetch(ctx, cand)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(contents)
	expected, err := hex.DecodeString(cand.SHA256)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrChecksumMismatch.Error())
	}
	if subtle.ConstantTimeCompare(digest[:], expected) != 1 {
		// Supply-chain integrity gate: fail hard, never persist the
		// corrupt bytes, never retry.
		mismatchErr := zerr.With(domain.ErrChecksumMismatch, "expected", cand.SHA256)
		return "", zerr.With(mismatchErr, "got", hex.EncodeToString(digest[:]))
	}

	if err := os.WriteFile(target, contents, domain.ExecPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrToolDownloadFailed.Error())
	}
	// WriteFile honors the umask; make sure the execute bits survive.
	if err := os.Chmod(target, domain.ExecPerm); err != nil {
		return "", zerr.Wrap(err, domain.ErrToolDownloadFailed.Error())
	}

	return target, nil
}

func (r *Resolver) fetch(ctx context.Context, cand domain.ToolCandidate) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cand.URI(), http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrToolDownloadFailed.Error())
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrToolDownloadFailed.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		dlErr := zerr.With(domain.ErrToolDownloadFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(dlErr, "uri", cand.URI())
	}

	body := io.Reader(resp.Body)
	if r.interactive {
		body = newProgressReader(resp.Body, os.Stdout, cand.File, resp.ContentLength)
	}

	contents, err := io.ReadAll(body)
	if r.interactive {
		fmt.Fprintln(os.Stdout)
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrToolDownloadFailed.Error())
	}
	return contents, nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	mode := info.Mode()
	return !mode.IsDir() && mode&0o111 != 0
}

var _ ports.ToolResolver = (*Resolver)(nil)
