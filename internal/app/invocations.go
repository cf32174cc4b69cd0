package app

import "github.com/spokebuild/spoke/internal/core/domain"

// Bazel run targets for the produced artifacts.
const (
	wheelTarget       = "//tools:build_wheel"
	cudaKernelsTarget = "//tools:build_cuda_kernels_wheel"
	pjrtPluginTarget  = "//tools:build_gpu_plugin_wheel"
)

// Invocations assembles the 0-3 build commands plus the final shutdown as
// explicit command descriptors. Pure function: no I/O, no host inspection.
func Invocations(tool domain.ResolvedTool, opts domain.BuildOptions, wheelCPU, revision string) []domain.Command {
	var cmds []domain.Command

	// The main wheel is skipped when only a plugin artifact was requested.
	if !opts.BuildCUDAKernelPlugin && !opts.BuildCUDAPJRTPlugin {
		args := runArgs(tool, opts, wheelTarget,
			"--output_path="+opts.OutputPath,
			"--revision="+revision,
			"--cpu="+wheelCPU,
		)
		if opts.BuildGPUPlugin {
			args = append(args, "--include_gpu_plugin_extension")
		}
		if opts.Editable {
			args = append(args, "--editable")
		}
		cmds = append(cmds, domain.Command{Args: args})
	}

	if opts.BuildGPUPlugin || opts.BuildCUDAKernelPlugin {
		cmds = append(cmds, pluginCommand(tool, opts, cudaKernelsTarget, wheelCPU, revision))
	}

	if opts.BuildGPUPlugin || opts.BuildCUDAPJRTPlugin {
		cmds = append(cmds, pluginCommand(tool, opts, pjrtPluginTarget, wheelCPU, revision))
	}

	cmds = append(cmds, domain.Command{
		Args: append(startupArgs(tool, opts), "shutdown"),
	})

	return cmds
}

func pluginCommand(tool domain.ResolvedTool, opts domain.BuildOptions, target, wheelCPU, revision string) domain.Command {
	args := runArgs(tool, opts, target,
		"--output_path="+opts.OutputPath,
		"--revision="+revision,
		"--cpu="+wheelCPU,
		"--cuda_version="+opts.GPUPluginCUDAVersion,
	)
	if opts.Editable {
		args = append(args, "--editable")
	}
	return domain.Command{Args: args}
}

func runArgs(tool domain.ResolvedTool, opts domain.BuildOptions, target string, targetArgs ...string) []string {
	args := append(startupArgs(tool, opts), "run", "--verbose_failures=true", target, "--")
	return append(args, targetArgs...)
}

func startupArgs(tool domain.ResolvedTool, opts domain.BuildOptions) []string {
	args := []string{tool.Path}
	return append(args, opts.BazelStartupOptions...)
}
