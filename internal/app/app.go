// Package app implements the application layer for spoke.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic: the strictly linear
// probe → resolve → emit → invoke flow.
type App struct {
	defaults ports.DefaultsLoader
	prober   ports.EnvironmentProber
	resolver ports.ToolResolver
	emitter  ports.ConfigEmitter
	runner   ports.Runner
	logger   ports.Logger

	stdout io.Writer
	host   domain.Host
}

// New creates a new App instance.
func New(
	defaults ports.DefaultsLoader,
	prober ports.EnvironmentProber,
	resolver ports.ToolResolver,
	emitter ports.ConfigEmitter,
	runner ports.Runner,
	logger ports.Logger,
) *App {
	return &App{
		defaults: defaults,
		prober:   prober,
		resolver: resolver,
		emitter:  emitter,
		runner:   runner,
		logger:   logger,
		stdout:   os.Stdout,
		host: domain.Host{
			OS:  runtime.GOOS,
			CPU: domain.HostCPU(runtime.GOOS, runtime.GOARCH),
		},
	}
}

// WithOutput redirects the summary output. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithHost overrides the detected host facts. Used for testing.
func (a *App) WithHost(host domain.Host) *App {
	a.host = host
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigureOnly stops after the bazelrc fragment is written.
	ConfigureOnly bool
}

// Defaults loads the optional defaults file from cwd.
func (a *App) Defaults(cwd string) (domain.Defaults, error) {
	return a.defaults.Load(cwd)
}

// Run executes the full flow for the given, fully merged options.
func (a *App) Run(ctx context.Context, opts domain.BuildOptions, runOpts RunOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(opts.Verbose)
	}

	a.printBanner()

	report, err := a.prober.Probe(ctx, opts)
	if err != nil {
		return zerr.Wrap(err, "toolchain probe failed")
	}

	tool, err := a.resolver.Resolve(ctx, opts.BazelPath)
	if err != nil {
		return err
	}

	wheelCPU := domain.WheelCPU(opts.TargetCPU, a.host.CPU)
	a.printSummary(opts, report, tool, wheelCPU)

	if _, err := a.emitter.Emit(opts, report, a.host); err != nil {
		return err
	}

	if runOpts.ConfigureOnly {
		return nil
	}

	revision := a.revision(ctx)
	for _, cmd := range Invocations(tool, opts, wheelCPU, revision) {
		a.logger.Info(cmd.String())
		if err := a.runner.Stream(ctx, cmd); err != nil {
			// No partial continuation: a failed invocation aborts the
			// remaining ones.
			return errors.Join(domain.ErrBuildInvocationFailed, err)
		}
	}

	return nil
}

// revision returns the current source revision, best-effort: an empty
// string when git is unavailable, never an error.
func (a *App) revision(ctx context.Context) string {
	out, err := a.runner.Capture(ctx, domain.Command{Args: []string{"git", "rev-parse", "HEAD"}})
	if err != nil {
		return ""
	}
	return out
}
