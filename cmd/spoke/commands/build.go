package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spokebuild/spoke/internal/app"
	"github.com/spokebuild/spoke/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build wheel artifacts via Bazel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.assembleOptions(cmd.Flags())
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), opts, app.RunOptions{})
		},
	}
	addBuildFlags(cmd.Flags())
	return cmd
}

// addBuildFlags registers the shared flag set of the build and configure
// commands. Every boolean flag has a hidden "no"-prefixed inverse so that
// defaults-file values can be overridden in either direction.
func addBuildFlags(flags *pflag.FlagSet) {
	flags.String("bazel-path", "", "Path to the bazel binary (bypasses PATH lookup and download)")
	flags.String("python-bin-path", "", "Path to the python interpreter to build against")

	boolPair(flags, "use-clang", false, "Compile with clang instead of the default toolchain")
	flags.String("clang-path", "", "Path to the clang binary (implies --use-clang)")

	boolPair(flags, "enable-mkl-dnn", true, "Enable oneDNN (MKL-DNN) kernels")
	boolPair(flags, "enable-cuda", false, "Target NVIDIA GPUs via CUDA")
	boolPair(flags, "enable-rocm", false, "Target AMD GPUs via ROCm")
	boolPair(flags, "enable-nccl", true, "Enable NCCL collectives for CUDA builds")
	boolPair(flags, "enable-mosaic-gpu", false, "Enable the Mosaic GPU dialect for CUDA builds")

	boolPair(flags, "build-gpu-plugin", false, "Build both CUDA plugin wheels alongside the main wheel")
	boolPair(flags, "build-cuda-kernel-plugin", false, "Build only the CUDA kernels plugin wheel")
	boolPair(flags, "build-cuda-pjrt-plugin", false, "Build only the CUDA PJRT plugin wheel")

	flags.String("cuda-version", "", "CUDA toolkit version to build against")
	flags.String("gpu-plugin-cuda-version", domain.DefaultCUDAVersion, "CUDA major version the plugin wheels target")
	flags.String("cuda-compute-capabilities", "", "Comma-separated CUDA compute capabilities")
	flags.String("rocm-path", "", "ROCm installation root")
	flags.String("rocm-amdgpu-targets", domain.DefaultROCmAMDGPUTargets, "Comma-separated amdgpu targets")

	flags.String("target-cpu", "", "Explicit bazel --cpu value")
	flags.String("target-cpu-features", string(domain.CPUFeaturesRelease),
		"CPU feature set for the produced wheel: release, native, or default")

	flags.StringArray("bazel-options", nil, "Extra bazel build option (repeatable)")
	flags.StringArray("bazel-startup-options", nil, "Extra bazel startup option (repeatable)")

	flags.String("output-path", "", "Directory the wheel artifacts are delivered to")
	boolPair(flags, "remote-build", false, "Configure for remote execution (omits interpreter pinning)")
	boolPair(flags, "editable", false, "Produce editable wheel installs")
	boolPair(flags, "verbose", false, "Enable debug logging")
}

func boolPair(flags *pflag.FlagSet, name string, value bool, usage string) {
	flags.Bool(name, value, usage)
	flags.Bool("no"+name, !value, "")
	_ = flags.MarkHidden("no" + name)
}

// assembleOptions layers built-in defaults, the defaults file, and finally
// any flag the user actually set.
func (c *CLI) assembleOptions(flags *pflag.FlagSet) (domain.BuildOptions, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.BuildOptions{}, err
	}

	opts := domain.DefaultBuildOptions(cwd)

	defaults, err := c.app.Defaults(cwd)
	if err != nil {
		return domain.BuildOptions{}, err
	}
	defaults.Apply(&opts)

	applyFlags(flags, &opts)

	if opts.ClangPath != "" {
		opts.UseClang = true
	}

	return opts, nil
}

//nolint:cyclop // flat flag-to-field mapping
func applyFlags(flags *pflag.FlagSet, opts *domain.BuildOptions) {
	str := func(f *pflag.Flag) string { v, _ := flags.GetString(f.Name); return v }
	boolean := func(f *pflag.Flag) bool { v, _ := flags.GetBool(f.Name); return v }
	list := func(f *pflag.Flag) []string { v, _ := flags.GetStringArray(f.Name); return v }

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "bazel-path":
			opts.BazelPath = str(f)
		case "python-bin-path":
			opts.PythonBinPath = str(f)
		case "use-clang":
			opts.UseClang = boolean(f)
		case "nouse-clang":
			opts.UseClang = !boolean(f)
		case "clang-path":
			opts.ClangPath = str(f)
		case "enable-mkl-dnn":
			opts.EnableMKLDNN = boolean(f)
		case "noenable-mkl-dnn":
			opts.EnableMKLDNN = !boolean(f)
		case "enable-cuda":
			opts.EnableCUDA = boolean(f)
		case "noenable-cuda":
			opts.EnableCUDA = !boolean(f)
		case "enable-rocm":
			opts.EnableROCm = boolean(f)
		case "noenable-rocm":
			opts.EnableROCm = !boolean(f)
		case "enable-nccl":
			opts.EnableNCCL = boolean(f)
		case "noenable-nccl":
			opts.EnableNCCL = !boolean(f)
		case "enable-mosaic-gpu":
			opts.EnableMosaicGPU = boolean(f)
		case "noenable-mosaic-gpu":
			opts.EnableMosaicGPU = !boolean(f)
		case "build-gpu-plugin":
			opts.BuildGPUPlugin = boolean(f)
		case "nobuild-gpu-plugin":
			opts.BuildGPUPlugin = !boolean(f)
		case "build-cuda-kernel-plugin":
			opts.BuildCUDAKernelPlugin = boolean(f)
		case "nobuild-cuda-kernel-plugin":
			opts.BuildCUDAKernelPlugin = !boolean(f)
		case "build-cuda-pjrt-plugin":
			opts.BuildCUDAPJRTPlugin = boolean(f)
		case "nobuild-cuda-pjrt-plugin":
			opts.BuildCUDAPJRTPlugin = !boolean(f)
		case "cuda-version":
			opts.CUDAVersion = str(f)
		case "gpu-plugin-cuda-version":
			opts.GPUPluginCUDAVersion = str(f)
		case "cuda-compute-capabilities":
			opts.CUDAComputeCapabilities = str(f)
		case "rocm-path":
			opts.ROCmPath = str(f)
		case "rocm-amdgpu-targets":
			opts.ROCmAMDGPUTargets = str(f)
		case "target-cpu":
			opts.TargetCPU = str(f)
		case "target-cpu-features":
			opts.TargetCPUFeatures = domain.CPUFeatures(str(f))
		case "bazel-options":
			opts.BazelOptions = append(opts.BazelOptions, list(f)...)
		case "bazel-startup-options":
			opts.BazelStartupOptions = append(opts.BazelStartupOptions, list(f)...)
		case "output-path":
			opts.OutputPath = str(f)
		case "remote-build":
			opts.RemoteBuild = boolean(f)
		case "noremote-build":
			opts.RemoteBuild = !boolean(f)
		case "editable":
			opts.Editable = boolean(f)
		case "noeditable":
			opts.Editable = !boolean(f)
		case "verbose":
			opts.Verbose = boolean(f)
		case "noverbose":
			opts.Verbose = !boolean(f)
		}
	})
}
