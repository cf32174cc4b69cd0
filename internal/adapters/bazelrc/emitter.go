// Package bazelrc implements the ConfigEmitter port: it renders resolved
// build options into the generated bazelrc fragment.
package bazelrc

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/core/ports"
	"go.trai.ch/zerr"
)

// Emitter implements ports.ConfigEmitter.
type Emitter struct {
	logger ports.Logger
	path   string
}

// NewEmitter creates an Emitter writing to the canonical fragment path.
func NewEmitter(logger ports.Logger) *Emitter {
	return &Emitter{logger: logger, path: domain.DefaultConfigPath()}
}

// newEmitterWithPath creates an Emitter writing to a custom path (used for
// testing).
func newEmitterWithPath(logger ports.Logger, path string) *Emitter {
	return &Emitter{logger: logger, path: path}
}

// Emit renders the directive list, fully overwrites the fragment and
// returns an xxhash fingerprint of the written bytes.
func (e *Emitter) Emit(opts domain.BuildOptions, report *domain.EnvironmentReport, host domain.Host) (string, error) {
	file, warnings := Render(opts, report, host)
	for _, w := range warnings {
		e.logger.Warn(w)
	}

	data := file.Render()
	if err := os.WriteFile(e.path, data, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", e.path)
	}

	fingerprint := fmt.Sprintf("%016x", xxhash.Sum64(data))
	e.logger.Info(fmt.Sprintf("wrote %s (%d directives, fingerprint %s)", e.path, file.Len(), fingerprint))
	return fingerprint, nil
}

// Render builds the ordered directive list. It is a pure function of its
// inputs; rendering twice with identical inputs yields identical directives.
//
// Emission order follows a fixed precedence because later directives
// override earlier ones in bazel: interpreter wiring, compiler selection,
// accelerator toggles, feature toggles, CPU/arch flags, and free-form user
// options last.
func Render(opts domain.BuildOptions, report *domain.EnvironmentReport, host domain.Host) (*domain.DirectiveFile, []string) {
	f := &domain.DirectiveFile{}
	var warnings []string

	renderInterpreter(f, opts, report)
	renderCompiler(f, opts, report)
	renderAccelerators(f, opts, report)
	renderFeatures(f, opts)
	warnings = renderCPU(f, opts, host, warnings)

	for _, o := range opts.BazelOptions {
		f.Add(o)
	}

	return f, warnings
}

func renderInterpreter(f *domain.DirectiveFile, opts domain.BuildOptions, report *domain.EnvironmentReport) {
	if opts.RemoteBuild || report.PythonBinPath == "" {
		return
	}
	f.Add("--strategy=Genrule=standalone")
	f.Add(fmt.Sprintf("--repo_env PYTHON_BIN_PATH=%q", report.PythonBinPath))
	f.Add("--action_env=PYENV_ROOT")
	f.Add(fmt.Sprintf("--python_path=%q", report.PythonBinPath))
}

func renderCompiler(f *domain.DirectiveFile, opts domain.BuildOptions, report *domain.EnvironmentReport) {
	if !opts.UseClang {
		return
	}
	f.Add(fmt.Sprintf("--action_env CLANG_COMPILER_PATH=%q", report.ClangPath))
	f.Add(fmt.Sprintf("--repo_env CC=%q", report.ClangPath))
	f.Add(fmt.Sprintf("--repo_env BAZEL_COMPILER=%q", report.ClangPath))
	f.Add("--copt=-Wno-error=unused-command-line-argument")
	if report.ClangMajorVersion == 16 || report.ClangMajorVersion == 17 {
		// These clang releases trip over the old upb vendored by XLA.
		f.Add("--copt=-Wno-gnu-offsetof-extensions")
	}
}

func renderAccelerators(f *domain.DirectiveFile, opts domain.BuildOptions, report *domain.EnvironmentReport) {
	if opts.EnableCUDA {
		cudaVersion := opts.CUDAVersion
		if cudaVersion == "" {
			cudaVersion = domain.DefaultCUDAVersion
		}
		f.Add(fmt.Sprintf("--action_env TF_CUDA_VERSION=%q", cudaVersion))

		if opts.CUDAComputeCapabilities != "" {
			f.AddConfig("cuda", fmt.Sprintf("--action_env TF_CUDA_COMPUTE_CAPABILITIES=%q", opts.CUDAComputeCapabilities))
		}

		f.Add("--config=cuda")
		if !opts.EnableNCCL {
			f.Add("--config=nonccl")
		}
		if opts.UseClang {
			f.Add("--config=nvcc_clang")
			f.Add("--action_env=CLANG_CUDA_COMPILER_PATH=" + report.ClangPath)
		}
		if opts.EnableMosaicGPU {
			f.Add("--config=mosaic_gpu")
		}
	}

	if opts.EnableROCm {
		if opts.ROCmPath != "" {
			f.Add(fmt.Sprintf("--action_env ROCM_PATH=%q", opts.ROCmPath))
		}
		if opts.ROCmAMDGPUTargets != "" {
			f.AddConfig("rocm", fmt.Sprintf("--action_env TF_ROCM_AMDGPU_TARGETS=%q", opts.ROCmAMDGPUTargets))
		}
		f.Add("--config=rocm")
		if !opts.EnableNCCL {
			f.Add("--config=nonccl")
		}
	}

	if opts.BuildGPUPlugin {
		f.Add("--config=cuda_plugin")
	}
}

func renderFeatures(f *domain.DirectiveFile, opts domain.BuildOptions) {
	if opts.EnableMKLDNN {
		f.Add("--config=mkl_open_source_only")
	}
}

func renderCPU(f *domain.DirectiveFile, opts domain.BuildOptions, host domain.Host, warnings []string) []string {
	if opts.TargetCPU != "" {
		f.Add("--cpu=" + opts.TargetCPU)
	}

	wheelCPU := domain.WheelCPU(opts.TargetCPU, host.CPU)

	switch opts.TargetCPUFeatures {
	case domain.CPUFeaturesRelease:
		if wheelCPU == "x86_64" {
			if host.OS == "windows" {
				f.Add("--config=avx_windows")
			} else {
				f.Add("--config=avx_posix")
			}
		}
	case domain.CPUFeaturesNative:
		if host.OS == "windows" {
			warnings = append(warnings, "--target-cpu-features=native is not supported on this platform; ignoring")
		} else {
			f.Add("--config=native_arch_posix")
		}
	case domain.CPUFeaturesDefault:
		// Use whatever the compiler generates by default.
	}

	return warnings
}

var _ ports.ConfigEmitter = (*Emitter)(nil)
