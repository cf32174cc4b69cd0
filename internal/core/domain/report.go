package domain

// EnvironmentReport is the result of probing the local toolchain.
type EnvironmentReport struct {
	// PythonBinPath is the interpreter the probe ran against, with
	// forward-slash separators for bazelrc consumption.
	PythonBinPath string
	// PythonVersion is the interpreter's major.minor version.
	PythonVersion Version
	// NumpyVersion is numpy's self-reported version string.
	NumpyVersion string
	// ClangPath is the fully resolved compiler path. Empty unless clang
	// was requested.
	ClangPath string
	// ClangMajorVersion is the compiler's major version. Zero unless
	// clang was requested.
	ClangMajorVersion int
}
