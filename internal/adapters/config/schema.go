package config

// defaultsFile represents the structure of the spoke.yaml defaults file.
// Every field is optional; absent fields leave the built-in defaults
// untouched, and command-line flags win over both.
type defaultsFile struct {
	BazelPath               *string  `yaml:"bazel-path"`
	PythonBinPath           *string  `yaml:"python-bin-path"`
	UseClang                *bool    `yaml:"use-clang"`
	ClangPath               *string  `yaml:"clang-path"`
	EnableMKLDNN            *bool    `yaml:"enable-mkl-dnn"`
	EnableCUDA              *bool    `yaml:"enable-cuda"`
	EnableROCm              *bool    `yaml:"enable-rocm"`
	EnableNCCL              *bool    `yaml:"enable-nccl"`
	CUDAVersion             *string  `yaml:"cuda-version"`
	CUDAComputeCapabilities *string  `yaml:"cuda-compute-capabilities"`
	ROCmPath                *string  `yaml:"rocm-path"`
	ROCmAMDGPUTargets       *string  `yaml:"rocm-amdgpu-targets"`
	TargetCPUFeatures       *string  `yaml:"target-cpu-features"`
	OutputPath              *string  `yaml:"output-path"`
	BazelOptions            []string `yaml:"bazel-options"`
	BazelStartupOptions     []string `yaml:"bazel-startup-options"`
}
