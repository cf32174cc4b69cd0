package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spokebuild/spoke/internal/app"
	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	defaults *mocks.MockDefaultsLoader
	prober   *mocks.MockEnvironmentProber
	resolver *mocks.MockToolResolver
	emitter  *mocks.MockConfigEmitter
	runner   *mocks.MockRunner
	logger   *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, *appMocks, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &appMocks{
		defaults: mocks.NewMockDefaultsLoader(ctrl),
		prober:   mocks.NewMockEnvironmentProber(ctrl),
		resolver: mocks.NewMockToolResolver(ctrl),
		emitter:  mocks.NewMockConfigEmitter(ctrl),
		runner:   mocks.NewMockRunner(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	buf := &bytes.Buffer{}
	a := app.New(m.defaults, m.prober, m.resolver, m.emitter, m.runner, m.logger).
		WithOutput(buf).
		WithHost(domain.Host{OS: "linux", CPU: "x86_64"})

	return a, m, buf
}

func testReport() *domain.EnvironmentReport {
	return &domain.EnvironmentReport{
		PythonBinPath: "python3",
		PythonVersion: domain.Version{Major: 3, Minor: 12},
		NumpyVersion:  "1.26.4",
	}
}

func TestApp_Run(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a, m, buf := newTestApp(t)
	opts := domain.DefaultBuildOptions("/work")
	host := domain.Host{OS: "linux", CPU: "x86_64"}

	m.prober.EXPECT().Probe(gomock.Any(), opts).Return(testReport(), nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return(testTool, nil)
	m.emitter.EXPECT().Emit(opts, testReport(), host).Return("0011223344556677", nil)
	m.runner.EXPECT().
		Capture(gomock.Any(), domain.Command{Args: []string{"git", "rev-parse", "HEAD"}}).
		Return("abc123", nil)

	var streamed []domain.Command
	m.runner.EXPECT().
		Stream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) error {
			streamed = append(streamed, cmd)
			return nil
		}).
		Times(2)

	err := a.Run(context.Background(), opts, app.RunOptions{})
	require.NoError(t, err)

	require.Len(t, streamed, 2)
	assert.Contains(t, streamed[0].Args, "--revision=abc123")
	assert.Equal(t, "shutdown", streamed[1].Args[len(streamed[1].Args)-1])

	// The summary echoes the resolved toolchain before anything runs.
	assert.Contains(t, buf.String(), "/usr/local/bin/bazel")
	assert.Contains(t, buf.String(), "python3")
}

func TestApp_Run_ConfigureOnly(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a, m, _ := newTestApp(t)
	opts := domain.DefaultBuildOptions("/work")
	host := domain.Host{OS: "linux", CPU: "x86_64"}

	m.prober.EXPECT().Probe(gomock.Any(), opts).Return(testReport(), nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return(testTool, nil)
	m.emitter.EXPECT().Emit(opts, testReport(), host).Return("0011223344556677", nil)
	// No git probe and no build invocations.

	err := a.Run(context.Background(), opts, app.RunOptions{ConfigureOnly: true})
	require.NoError(t, err)
}

func TestApp_Run_ValidationFailsFirst(t *testing.T) {
	a, _, _ := newTestApp(t)

	opts := domain.DefaultBuildOptions("/work")
	opts.EnableCUDA = true
	opts.EnableROCm = true

	err := a.Run(context.Background(), opts, app.RunOptions{})
	// String check for robustness: zerr attaches the sentinel by message.
	require.ErrorContains(t, err, domain.ErrConflictingBackends.Error())
}

func TestApp_Run_ProbeFailureAborts(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a, m, _ := newTestApp(t)
	opts := domain.DefaultBuildOptions("/work")

	m.prober.EXPECT().Probe(gomock.Any(), opts).Return(nil, domain.ErrInterpreterTooOld)

	err := a.Run(context.Background(), opts, app.RunOptions{})
	require.ErrorContains(t, err, domain.ErrInterpreterTooOld.Error())
}

func TestApp_Run_InvocationFailureStopsChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a, m, _ := newTestApp(t)
	opts := domain.DefaultBuildOptions("/work")
	host := domain.Host{OS: "linux", CPU: "x86_64"}

	m.prober.EXPECT().Probe(gomock.Any(), opts).Return(testReport(), nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return(testTool, nil)
	m.emitter.EXPECT().Emit(opts, testReport(), host).Return("0011223344556677", nil)
	m.runner.EXPECT().
		Capture(gomock.Any(), gomock.Any()).
		Return("abc123", nil)

	// The first invocation fails; the shutdown must not run.
	m.runner.EXPECT().
		Stream(gomock.Any(), gomock.Any()).
		Return(errors.New("exit status 1")).
		Times(1)

	err := a.Run(context.Background(), opts, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrBuildInvocationFailed)
}

func TestApp_Run_MissingGitRevisionIsEmpty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	a, m, _ := newTestApp(t)
	opts := domain.DefaultBuildOptions("/work")
	host := domain.Host{OS: "linux", CPU: "x86_64"}

	m.prober.EXPECT().Probe(gomock.Any(), opts).Return(testReport(), nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "").Return(testTool, nil)
	m.emitter.EXPECT().Emit(opts, testReport(), host).Return("0011223344556677", nil)
	m.runner.EXPECT().
		Capture(gomock.Any(), gomock.Any()).
		Return("", errors.New("not a git repository"))

	var streamed []domain.Command
	m.runner.EXPECT().
		Stream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) error {
			streamed = append(streamed, cmd)
			return nil
		}).
		Times(2)

	err := a.Run(context.Background(), opts, app.RunOptions{})
	require.NoError(t, err)
	assert.Contains(t, streamed[0].Args, "--revision=")
}

func TestApp_Defaults(t *testing.T) {
	a, m, _ := newTestApp(t)

	want := domain.Defaults{BazelOptions: []string{"--jobs=8"}}
	m.defaults.EXPECT().Load("/work").Return(want, nil)

	got, err := a.Defaults("/work")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
