package app

import (
	"fmt"

	"github.com/spokebuild/spoke/internal/build"
	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/spokebuild/spoke/internal/ui/style"
)

func (a *App) printBanner() {
	fmt.Fprintln(a.stdout, style.Header.Render("spoke "+build.Version))
	fmt.Fprintln(a.stdout)
}

// printSummary echoes the effective configuration before anything is
// written or executed.
func (a *App) printSummary(opts domain.BuildOptions, report *domain.EnvironmentReport, tool domain.ResolvedTool, wheelCPU string) {
	line := func(label, value string) {
		fmt.Fprintf(a.stdout, "  %s %s\n", style.Label.Render(fmt.Sprintf("%-22s", label)), value)
	}

	line("bazel", fmt.Sprintf("%s (%s)", tool.Path, tool.Version))
	line("python", fmt.Sprintf("%s (%s)", report.PythonBinPath, report.PythonVersion.MajorMinor()))
	line("numpy", report.NumpyVersion)
	if opts.UseClang {
		line("clang", fmt.Sprintf("%s (major %d)", report.ClangPath, report.ClangMajorVersion))
	}
	line("mkl-dnn", onOff(opts.EnableMKLDNN))
	line("target cpu", fallback(wheelCPU, "host"))
	line("cpu features", string(opts.TargetCPUFeatures))

	if opts.EnableCUDA {
		line("cuda", fallback(opts.CUDAVersion, domain.DefaultCUDAVersion))
		if opts.CUDAComputeCapabilities != "" {
			line("compute capabilities", opts.CUDAComputeCapabilities)
		}
		line("nccl", onOff(opts.EnableNCCL))
	}
	if opts.EnableROCm {
		line("rocm", fallback(opts.ROCmPath, "system"))
		line("amdgpu targets", opts.ROCmAMDGPUTargets)
	}

	fmt.Fprintln(a.stdout)
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func fallback(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
