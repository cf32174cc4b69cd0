package shell_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spokebuild/spoke/internal/adapters/logger"
	"github.com/spokebuild/spoke/internal/adapters/shell"
	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, w io.Writer) *shell.Runner {
	t.Helper()

	lg := logger.New()
	lg.SetOutput(io.Discard)
	if w == nil {
		w = io.Discard
	}
	return shell.NewRunnerWithOutput(lg, w)
}

func TestRunner_Capture(t *testing.T) {
	r := newTestRunner(t, nil)

	out, err := r.Capture(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo '  hello  '"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRunner_Capture_Stdin(t *testing.T) {
	r := newTestRunner(t, nil)

	out, err := r.Capture(context.Background(), domain.Command{
		Args:  []string{"cat"},
		Stdin: "__clang_major__",
	})
	require.NoError(t, err)
	assert.Equal(t, "__clang_major__", out)
}

func TestRunner_Capture_WorkingDir(t *testing.T) {
	tmpDir := t.TempDir()
	r := newTestRunner(t, nil)

	out, err := r.Capture(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "pwd"},
		Dir:  tmpDir,
	})
	require.NoError(t, err)
	// Symlinked temp dirs make an exact match flaky; the base name is stable.
	assert.True(t, strings.HasSuffix(out, "/"+filepath.Base(tmpDir)), "got %q", out)
}

func TestRunner_Capture_NonZeroExit(t *testing.T) {
	r := newTestRunner(t, nil)

	_, err := r.Capture(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo doomed >&2; exit 3"},
	})
	require.Error(t, err)
}

func TestRunner_Stream(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRunner(t, &buf)

	err := r.Stream(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "echo streamed"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "streamed")
}

func TestRunner_Stream_NonZeroExit(t *testing.T) {
	r := newTestRunner(t, io.Discard)

	err := r.Stream(context.Background(), domain.Command{
		Args: []string{"sh", "-c", "exit 7"},
	})
	require.Error(t, err)
}

func TestRunner_Capture_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(t, nil)
	_, err := r.Capture(ctx, domain.Command{Args: []string{"sleep", "10"}})
	require.Error(t, err)
}
