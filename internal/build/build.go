// Package build holds build-time metadata injected via -ldflags.
package build

// Version is the semantic version of the binary.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"
