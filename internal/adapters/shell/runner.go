// Package shell provides the execution boundary for external processes.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec, with a PTY for streamed
// invocations so the build tool keeps its colored, interactive output.
type Runner struct {
	logger ports.Logger
	stdout io.Writer
}

// NewRunner creates a new Runner streaming to stdout.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger, stdout: os.Stdout}
}

// NewRunnerWithOutput creates a Runner streaming to w (used for testing).
func NewRunnerWithOutput(logger ports.Logger, w io.Writer) *Runner {
	return &Runner{logger: logger, stdout: w}
}

// Capture runs the command to completion and returns its combined,
// whitespace-trimmed output.
func (r *Runner) Capture(ctx context.Context, cmd domain.Command) (string, error) {
	r.logger.Debug("exec: " + cmd.String())

	c := r.build(ctx, cmd)
	out, err := c.CombinedOutput()
	if err != nil {
		return "", wrapExit(zerr.With(zerr.Wrap(err, "command failed"), "output", strings.TrimSpace(string(out))), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Stream runs the command in a PTY with output copied to the user's
// terminal. A non-zero exit surfaces as an error carrying the exit code.
func (r *Runner) Stream(ctx context.Context, cmd domain.Command) error {
	r.logger.Debug("exec: " + cmd.String())

	c := r.build(ctx, cmd)
	ptmx, err := pty.Start(c)
	if err != nil {
		// PTY allocation can fail on exotic hosts; fall back to plain pipes.
		return r.streamPlain(ctx, cmd)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// The PTY merges stdout and stderr into one stream.
		_, _ = io.Copy(r.stdout, ptmx)
	}()

	err = c.Wait()
	<-ioDone
	if err != nil {
		return wrapExit(zerr.Wrap(err, "command failed"), err)
	}
	return nil
}

func (r *Runner) streamPlain(ctx context.Context, cmd domain.Command) error {
	c := r.build(ctx, cmd)
	c.Stdout = r.stdout
	c.Stderr = r.stdout
	if err := c.Run(); err != nil {
		return wrapExit(zerr.Wrap(err, "command failed"), err)
	}
	return nil
}

func (r *Runner) build(ctx context.Context, cmd domain.Command) *exec.Cmd {
	//nolint:gosec // argument vectors are assembled from validated options
	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}
	return c
}

func wrapExit(wrapped error, cause error) error {
	exitCode := -1
	if exitErr, ok := cause.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}
	return zerr.With(wrapped, "exit_code", exitCode)
}

var _ ports.Runner = (*Runner)(nil)
