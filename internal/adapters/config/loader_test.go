package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spokebuild/spoke/internal/adapters/config"
	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	lg := mocks.NewMockLogger(ctrl)
	lg.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(lg)
}

func TestLoader_Load_MissingFileIsEmpty(t *testing.T) {
	l := newLoader(t)

	defaults, err := l.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.Defaults{}, defaults)
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	contents := `
python-bin-path: /opt/python3.12/bin/python3
use-clang: true
enable-cuda: true
enable-nccl: false
cuda-version: "12.3"
target-cpu-features: native
bazel-options:
  - --jobs=16
bazel-startup-options:
  - --nobatch
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.DefaultsFileName), []byte(contents), 0o644))

	l := newLoader(t)
	defaults, err := l.Load(dir)
	require.NoError(t, err)

	require.NotNil(t, defaults.PythonBinPath)
	assert.Equal(t, "/opt/python3.12/bin/python3", *defaults.PythonBinPath)
	require.NotNil(t, defaults.UseClang)
	assert.True(t, *defaults.UseClang)
	require.NotNil(t, defaults.EnableCUDA)
	assert.True(t, *defaults.EnableCUDA)
	require.NotNil(t, defaults.EnableNCCL)
	assert.False(t, *defaults.EnableNCCL)
	require.NotNil(t, defaults.CUDAVersion)
	assert.Equal(t, "12.3", *defaults.CUDAVersion)
	require.NotNil(t, defaults.TargetCPUFeatures)
	assert.Equal(t, "native", *defaults.TargetCPUFeatures)
	assert.Equal(t, []string{"--jobs=16"}, defaults.BazelOptions)
	assert.Equal(t, []string{"--nobatch"}, defaults.BazelStartupOptions)

	// Absent keys stay nil so built-ins survive the overlay.
	assert.Nil(t, defaults.BazelPath)
	assert.Nil(t, defaults.EnableMKLDNN)
}

func TestLoader_Load_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.DefaultsFileName), []byte("{not yaml"), 0o644))

	l := newLoader(t)
	_, err := l.Load(dir)
	// String check for robustness: zerr attaches the sentinel by message.
	require.ErrorContains(t, err, domain.ErrDefaultsParseFailed.Error())
}

func TestLoader_Load_ReadError(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be forces a read failure that is
	// not fs.ErrNotExist.
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.DefaultsFileName), 0o755))

	l := newLoader(t)
	_, err := l.Load(dir)
	require.ErrorContains(t, err, domain.ErrDefaultsReadFailed.Error())
}
