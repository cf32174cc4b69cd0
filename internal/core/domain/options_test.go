package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBuildOptions(t *testing.T) {
	opts := domain.DefaultBuildOptions("/work")

	assert.Equal(t, "python3", opts.PythonBinPath)
	assert.True(t, opts.EnableMKLDNN)
	assert.True(t, opts.EnableNCCL)
	assert.False(t, opts.EnableCUDA)
	assert.False(t, opts.EnableROCm)
	assert.Equal(t, domain.CPUFeaturesRelease, opts.TargetCPUFeatures)
	assert.Equal(t, filepath.Join("/work", "dist"), opts.OutputPath)
	assert.Equal(t, domain.DefaultCUDAVersion, opts.GPUPluginCUDAVersion)
}

func TestBuildOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BuildOptions)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*domain.BuildOptions) {},
		},
		{
			name:   "cuda alone",
			mutate: func(o *domain.BuildOptions) { o.EnableCUDA = true },
		},
		{
			name:   "rocm alone",
			mutate: func(o *domain.BuildOptions) { o.EnableROCm = true },
		},
		{
			name: "cuda and rocm conflict",
			mutate: func(o *domain.BuildOptions) {
				o.EnableCUDA = true
				o.EnableROCm = true
			},
			wantErr: domain.ErrConflictingBackends,
		},
		{
			name:    "unknown cpu features",
			mutate:  func(o *domain.BuildOptions) { o.TargetCPUFeatures = "turbo" },
			wantErr: domain.ErrInvalidCPUFeatures,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := domain.DefaultBuildOptions(t.TempDir())
			tt.mutate(&opts)

			err := opts.Validate()
			if tt.wantErr != nil {
				// String check for robustness: zerr attaches the
				// sentinel by message.
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDefaults_Apply(t *testing.T) {
	str := func(s string) *string { return &s }
	boolean := func(b bool) *bool { return &b }

	opts := domain.DefaultBuildOptions("/work")
	opts.BazelOptions = []string{"--jobs=4"}

	d := domain.Defaults{
		PythonBinPath:     str("/opt/python3.12/bin/python3"),
		EnableMKLDNN:      boolean(false),
		EnableCUDA:        boolean(true),
		CUDAVersion:       str("12.3"),
		TargetCPUFeatures: str("native"),
		BazelOptions:      []string{"--color=yes"},
	}
	d.Apply(&opts)

	assert.Equal(t, "/opt/python3.12/bin/python3", opts.PythonBinPath)
	assert.False(t, opts.EnableMKLDNN)
	assert.True(t, opts.EnableCUDA)
	assert.Equal(t, "12.3", opts.CUDAVersion)
	assert.Equal(t, domain.CPUFeaturesNative, opts.TargetCPUFeatures)
	// File-provided options append after whatever is already present.
	assert.Equal(t, []string{"--jobs=4", "--color=yes"}, opts.BazelOptions)
	// Untouched fields keep their built-in values.
	assert.True(t, opts.EnableNCCL)
	assert.Equal(t, filepath.Join("/work", "dist"), opts.OutputPath)
}

func TestDefaults_ApplyEmptyIsNoop(t *testing.T) {
	opts := domain.DefaultBuildOptions("/work")
	want := opts

	domain.Defaults{}.Apply(&opts)

	assert.Equal(t, want, opts)
}
