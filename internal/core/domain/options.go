package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// CPUFeatures selects which CPU feature set the produced wheel targets.
type CPUFeatures string

const (
	// CPUFeaturesRelease enables the feature set for release builds,
	// which on x86-64 enables AVX.
	CPUFeaturesRelease CPUFeatures = "release"
	// CPUFeaturesNative enables -march=native code generation.
	CPUFeaturesNative CPUFeatures = "native"
	// CPUFeaturesDefault opts out of any architectural features.
	CPUFeaturesDefault CPUFeatures = "default"
)

// DefaultCUDAVersion is pinned when CUDA is enabled without an explicit
// --cuda-version.
const DefaultCUDAVersion = "12"

// DefaultROCmAMDGPUTargets is the default comma-separated amdgpu target list.
const DefaultROCmAMDGPUTargets = "gfx900,gfx906,gfx908,gfx90a,gfx1030"

// BuildOptions is the flat record of every user-supplied and
// environment-derived setting. It is constructed once per invocation and
// validated before any config emission.
type BuildOptions struct {
	BazelPath     string
	PythonBinPath string

	UseClang  bool
	ClangPath string

	EnableMKLDNN    bool
	EnableCUDA      bool
	EnableROCm      bool
	EnableNCCL      bool
	EnableMosaicGPU bool

	BuildGPUPlugin        bool
	BuildCUDAKernelPlugin bool
	BuildCUDAPJRTPlugin   bool

	CUDAVersion             string
	GPUPluginCUDAVersion    string
	CUDAComputeCapabilities string
	ROCmPath                string
	ROCmAMDGPUTargets       string

	TargetCPU         string
	TargetCPUFeatures CPUFeatures

	BazelOptions        []string
	BazelStartupOptions []string

	OutputPath  string
	RemoteBuild bool
	Editable    bool
	Verbose     bool
}

// DefaultBuildOptions returns the built-in option values, before the
// defaults file and command-line flags are applied.
func DefaultBuildOptions(cwd string) BuildOptions {
	return BuildOptions{
		PythonBinPath:        "python3",
		EnableMKLDNN:         true,
		EnableNCCL:           true,
		GPUPluginCUDAVersion: DefaultCUDAVersion,
		ROCmAMDGPUTargets:    DefaultROCmAMDGPUTargets,
		TargetCPUFeatures:    CPUFeaturesRelease,
		OutputPath:           filepath.Join(cwd, "dist"),
	}
}

// Validate checks the cross-field invariants once, at construction time.
func (o *BuildOptions) Validate() error {
	if o.EnableCUDA && o.EnableROCm {
		return ErrConflictingBackends
	}

	switch o.TargetCPUFeatures {
	case CPUFeaturesRelease, CPUFeaturesNative, CPUFeaturesDefault:
	default:
		return zerr.With(ErrInvalidCPUFeatures, "got", string(o.TargetCPUFeatures))
	}

	return nil
}

// Defaults carries optional values read from the defaults file. Nil fields
// leave the built-in value untouched; explicit command-line flags win over
// both.
type Defaults struct {
	BazelPath               *string
	PythonBinPath           *string
	UseClang                *bool
	ClangPath               *string
	EnableMKLDNN            *bool
	EnableCUDA              *bool
	EnableROCm              *bool
	EnableNCCL              *bool
	CUDAVersion             *string
	CUDAComputeCapabilities *string
	ROCmPath                *string
	ROCmAMDGPUTargets       *string
	TargetCPUFeatures       *string
	OutputPath              *string
	BazelOptions            []string
	BazelStartupOptions     []string
}

// Apply overlays the defaults onto opts.
func (d Defaults) Apply(opts *BuildOptions) {
	applyString(d.BazelPath, &opts.BazelPath)
	applyString(d.PythonBinPath, &opts.PythonBinPath)
	applyBool(d.UseClang, &opts.UseClang)
	applyString(d.ClangPath, &opts.ClangPath)
	applyBool(d.EnableMKLDNN, &opts.EnableMKLDNN)
	applyBool(d.EnableCUDA, &opts.EnableCUDA)
	applyBool(d.EnableROCm, &opts.EnableROCm)
	applyBool(d.EnableNCCL, &opts.EnableNCCL)
	applyString(d.CUDAVersion, &opts.CUDAVersion)
	applyString(d.CUDAComputeCapabilities, &opts.CUDAComputeCapabilities)
	applyString(d.ROCmPath, &opts.ROCmPath)
	applyString(d.ROCmAMDGPUTargets, &opts.ROCmAMDGPUTargets)
	applyString(d.OutputPath, &opts.OutputPath)
	if d.TargetCPUFeatures != nil {
		opts.TargetCPUFeatures = CPUFeatures(*d.TargetCPUFeatures)
	}
	opts.BazelOptions = append(opts.BazelOptions, d.BazelOptions...)
	opts.BazelStartupOptions = append(opts.BazelStartupOptions, d.BazelStartupOptions...)
}

func applyString(src *string, dst *string) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(src *bool, dst *bool) {
	if src != nil {
		*dst = *src
	}
}
