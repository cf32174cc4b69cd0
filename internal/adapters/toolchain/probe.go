// Package toolchain implements the EnvironmentProber port: it inspects the
// Python interpreter, required packages and the optional host compiler.
package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports"
	"go.trai.ch/zerr"
)

// requiredPackages must be importable by the selected interpreter. numpy is
// additionally version-gated.
var requiredPackages = []string{"numpy", "wheel", "build", "setuptools"}

// pythonVersionProbe prints the interpreter's own major.minor version.
const pythonVersionProbe = `import sys; print("{}.{}".format(sys.version_info[0], sys.version_info[1]))`

// numpyVersionProbe prints numpy's self-reported version string.
const numpyVersionProbe = `import numpy as np; print(np.__version__)`

// isolatedImportMinVersion is the interpreter version from which -P is
// passed so the current directory is not importable during probes.
var isolatedImportMinVersion = domain.Version{Major: 3, Minor: 11}

// Prober implements ports.EnvironmentProber.
type Prober struct {
	logger ports.Logger
	runner ports.Runner

	// lookPath is swappable for tests; defaults to exec.LookPath.
	lookPath func(file string) (string, error)
	// resolvePath is swappable for tests; defaults to symlink resolution.
	resolvePath func(path string) (string, error)
}

// NewProber creates a new environment prober.
func NewProber(logger ports.Logger, runner ports.Runner) *Prober {
	return &Prober{
		logger:      logger,
		runner:      runner,
		lookPath:    exec.LookPath,
		resolvePath: resolveAbsolute,
	}
}

// Probe runs every toolchain check. Each check is independently fatal; the
// first failure is returned with enough context for an actionable message.
func (p *Prober) Probe(ctx context.Context, opts domain.BuildOptions) (*domain.EnvironmentReport, error) {
	report := &domain.EnvironmentReport{
		// bazelrc consumers want forward slashes even on Windows.
		PythonBinPath: filepath.ToSlash(opts.PythonBinPath),
	}

	pythonVersion, err := p.probePythonVersion(ctx, opts.PythonBinPath)
	if err != nil {
		return nil, err
	}
	if !pythonVersion.AtLeast(domain.MinPythonVersion) {
		return nil, zerr.With(domain.ErrInterpreterTooOld, "found", pythonVersion.MajorMinor())
	}
	report.PythonVersion = pythonVersion

	for _, pkg := range requiredPackages {
		if err := p.checkPackageInstalled(ctx, opts.PythonBinPath, pythonVersion, pkg); err != nil {
			return nil, err
		}
	}

	numpyVersion, err := p.probeNumpyVersion(ctx, opts.PythonBinPath)
	if err != nil {
		return nil, err
	}
	report.NumpyVersion = numpyVersion

	if opts.UseClang {
		clangPath, major, err := p.probeClang(ctx, opts.ClangPath)
		if err != nil {
			return nil, err
		}
		report.ClangPath = clangPath
		report.ClangMajorVersion = major
	}

	return report, nil
}

func (p *Prober) probePythonVersion(ctx context.Context, pythonBin string) (domain.Version, error) {
	out, err := p.runner.Capture(ctx, domain.Command{
		Args: []string{pythonBin, "-c", pythonVersionProbe},
	})
	if err != nil {
		return domain.Version{}, zerr.Wrap(err, domain.ErrInterpreterProbeFailed.Error())
	}

	version, ok := domain.ParseVersion(out)
	if !ok {
		probeErr := zerr.With(domain.ErrInterpreterProbeFailed, "output", out)
		return domain.Version{}, probeErr
	}
	return version, nil
}

func (p *Prober) checkPackageInstalled(ctx context.Context, pythonBin string, pythonVersion domain.Version, pkg string) error {
	args := []string{pythonBin}
	if pythonVersion.AtLeast(isolatedImportMinVersion) {
		// Don't let the current directory shadow the real package.
		args = append(args, "-P")
	}
	args = append(args, "-c", "import "+pkg)

	if _, err := p.runner.Capture(ctx, domain.Command{Args: args}); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageMissing.Error()), "package", pkg)
	}
	return nil
}

func (p *Prober) probeNumpyVersion(ctx context.Context, pythonBin string) (string, error) {
	out, err := p.runner.Capture(ctx, domain.Command{
		Args: []string{pythonBin, "-c", numpyVersionProbe},
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageMissing.Error()), "package", "numpy")
	}

	version, ok := domain.ParseVersion(out)
	if !ok || !version.AtLeast(domain.MinNumpyVersion) {
		return "", zerr.With(domain.ErrNumpyTooOld, "found", out)
	}
	return out, nil
}

// probeClang locates the compiler and asks its preprocessor for the major
// version by expanding the __clang_major__ macro.
func (p *Prober) probeClang(ctx context.Context, explicitPath string) (string, int, error) {
	path := explicitPath
	if path == "" {
		found, err := p.lookPath("clang")
		if err != nil {
			return "", 0, domain.ErrCompilerNotFound
		}
		path = found
	}

	// Fully resolve symlinks so the compiler's own system headers are
	// found correctly.
	resolved, err := p.resolvePath(path)
	if err != nil {
		return "", 0, zerr.With(zerr.Wrap(err, domain.ErrCompilerNotFound.Error()), "path", path)
	}

	out, err := p.runner.Capture(ctx, domain.Command{
		Args:  []string{resolved, "-E", "-P", "-"},
		Stdin: "__clang_major__",
	})
	if err != nil {
		return "", 0, zerr.Wrap(err, domain.ErrCompilerProbeFailed.Error())
	}

	major, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return "", 0, zerr.With(domain.ErrCompilerProbeFailed, "output", out)
	}

	p.logger.Debug(fmt.Sprintf("clang %d at %s", major, resolved))
	return resolved, major, nil
}

func resolveAbsolute(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

var _ ports.EnvironmentProber = (*Prober)(nil)
