// Package config provides the loader for the optional spoke.yaml defaults
// file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.DefaultsLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads spoke.yaml from cwd. A missing file is not an error and yields
// empty defaults.
func (l *Loader) Load(cwd string) (domain.Defaults, error) {
	path := filepath.Join(cwd, domain.DefaultsFileName)

	//nolint:gosec // path is rooted in the caller's working directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Defaults{}, nil
		}
		return domain.Defaults{}, zerr.With(zerr.Wrap(err, domain.ErrDefaultsReadFailed.Error()), "path", path)
	}

	var file defaultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Defaults{}, zerr.With(zerr.Wrap(err, domain.ErrDefaultsParseFailed.Error()), "path", path)
	}

	l.logger.Debug("loaded defaults from " + path)
	return file.toDomain(), nil
}

func (f defaultsFile) toDomain() domain.Defaults {
	return domain.Defaults{
		BazelPath:               f.BazelPath,
		PythonBinPath:           f.PythonBinPath,
		UseClang:                f.UseClang,
		ClangPath:               f.ClangPath,
		EnableMKLDNN:            f.EnableMKLDNN,
		EnableCUDA:              f.EnableCUDA,
		EnableROCm:              f.EnableROCm,
		EnableNCCL:              f.EnableNCCL,
		CUDAVersion:             f.CUDAVersion,
		CUDAComputeCapabilities: f.CUDAComputeCapabilities,
		ROCmPath:                f.ROCmPath,
		ROCmAMDGPUTargets:       f.ROCmAMDGPUTargets,
		TargetCPUFeatures:       f.TargetCPUFeatures,
		OutputPath:              f.OutputPath,
		BazelOptions:            f.BazelOptions,
		BazelStartupOptions:     f.BazelStartupOptions,
	}
}

var _ ports.DefaultsLoader = (*Loader)(nil)
