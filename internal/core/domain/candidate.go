package domain

// ToolCandidate describes a downloadable build-tool binary pinned to a
// specific (OS, architecture) pair.
type ToolCandidate struct {
	// OS is the target operating system in GOOS form.
	OS string
	// Arch is the target architecture in GOARCH form.
	Arch string
	// BaseURI is the release directory the binary is fetched from.
	BaseURI string
	// File is the binary file name within BaseURI, also used as the
	// canonical on-disk name after a verified download.
	File string
	// SHA256 is the hex-encoded expected digest of the binary contents.
	SHA256 string
}

// URI returns the full download location of the candidate.
func (c ToolCandidate) URI() string {
	return c.BaseURI + c.File
}

// ResolvedTool is a validated, executable build-tool binary. It is only
// constructed after the minimum-version gate has passed.
type ResolvedTool struct {
	Path    string
	Version Version
}
