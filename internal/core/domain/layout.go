package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the generated bazelrc fragment.
	ConfigFileName = ".spoke.bazelrc"

	// DefaultsFileName is the name of the optional defaults file.
	DefaultsFileName = "spoke.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for downloaded tool binaries (rwxr-xr-x).
	ExecPerm = 0o755
)

// DefaultConfigPath returns the path of the generated bazelrc fragment.
// The file lives in the parent of the invocation directory so that a
// bazelrc in the source root can import it.
func DefaultConfigPath() string {
	return filepath.Join("..", ConfigFileName)
}
