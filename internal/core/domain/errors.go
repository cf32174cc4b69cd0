package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when no usable build-tool binary could be located or downloaded.
	ErrToolNotFound = zerr.New("cannot find or download a suitable version of bazel, please install bazel >= " + MinBazelVersionString)

	// ErrChecksumMismatch is returned when a downloaded binary does not match its pinned digest.
	ErrChecksumMismatch = zerr.New("checksum mismatch for downloaded bazel binary")

	// ErrToolDownloadFailed is returned when the build-tool download cannot be completed.
	ErrToolDownloadFailed = zerr.New("failed to download bazel binary")

	// ErrInterpreterProbeFailed is returned when the Python interpreter cannot be invoked.
	ErrInterpreterProbeFailed = zerr.New("failed to probe python interpreter")

	// ErrInterpreterTooOld is returned when the Python interpreter is older than the supported floor.
	ErrInterpreterTooOld = zerr.New("python 3.9 or newer is required")

	// ErrPackageMissing is returned when a required Python package cannot be imported.
	ErrPackageMissing = zerr.New("required python package is not installed")

	// ErrNumpyTooOld is returned when the installed numpy is older than the supported floor.
	ErrNumpyTooOld = zerr.New("numpy 1.22 or newer is required")

	// ErrCompilerNotFound is returned when clang was requested but cannot be located.
	ErrCompilerNotFound = zerr.New("clang requested but not found, pass --clang-path directly")

	// ErrCompilerProbeFailed is returned when the clang major version cannot be determined.
	ErrCompilerProbeFailed = zerr.New("failed to determine clang major version")

	// ErrConflictingBackends is returned when mutually exclusive GPU backends are both enabled.
	ErrConflictingBackends = zerr.New("--enable-cuda and --enable-rocm cannot be enabled at the same time")

	// ErrInvalidCPUFeatures is returned when the target CPU features selector is not a known mode.
	ErrInvalidCPUFeatures = zerr.New("invalid target cpu features, expected 'release', 'native' or 'default'")

	// ErrConfigWriteFailed is returned when the bazelrc fragment cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write bazelrc fragment")

	// ErrDefaultsReadFailed is returned when the defaults file cannot be read.
	ErrDefaultsReadFailed = zerr.New("failed to read defaults file")

	// ErrDefaultsParseFailed is returned when the defaults file cannot be parsed.
	ErrDefaultsParseFailed = zerr.New("failed to parse defaults file")

	// ErrBuildInvocationFailed is returned when an invoked bazel command exits non-zero.
	ErrBuildInvocationFailed = zerr.New("build invocation failed")
)
