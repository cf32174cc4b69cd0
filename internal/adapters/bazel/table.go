package bazel

import "github.com/spokebuild/spoke/internal/core/domain"

// baseURI is the release directory the pinned bazel binaries are fetched
// from. Individual candidates may override it.
const baseURI = "https://github.com/bazelbuild/bazel/releases/download/6.1.2/"

type candidateKey struct {
	os   string
	arch string
}

// candidates is the static table of known-good binaries keyed by
// (GOOS, GOARCH). A miss means "unsupported platform": the resolver falls
// through to the PATH search instead of failing.
var candidates = map[candidateKey]domain.ToolCandidate{
	{"linux", "amd64"}: {
		OS:      "linux",
		Arch:    "amd64",
		BaseURI: baseURI,
		File:    "bazel-6.1.2-linux-x86_64",
		SHA256:  "e89747d63443e225b140d7d37ded952dacea73aaed896bca01ccd745827c6289",
	},
	{"linux", "arm64"}: {
		OS:      "linux",
		Arch:    "arm64",
		BaseURI: baseURI,
		File:    "bazel-6.1.2-linux-arm64",
		SHA256:  "1c9b249e315601c3703c41668a1204a8fdf0eba7f0f2b7fc38253bad1d1969c7",
	},
	{"darwin", "amd64"}: {
		OS:      "darwin",
		Arch:    "amd64",
		BaseURI: baseURI,
		File:    "bazel-6.1.2-darwin-x86_64",
		SHA256:  "22d4b605ce6a7aad92d4f387458cc68de9907a2efa08f9b8bda244c2b6010561",
	},
	{"darwin", "arm64"}: {
		OS:      "darwin",
		Arch:    "arm64",
		BaseURI: baseURI,
		File:    "bazel-6.1.2-darwin-arm64",
		SHA256:  "30cdf85af055ca8fdab7de592b1bd64f940955e3f63ed5c503c4e93d0112bd9d",
	},
	{"windows", "amd64"}: {
		OS:      "windows",
		Arch:    "amd64",
		BaseURI: baseURI,
		File:    "bazel-6.1.2-windows-x86_64.exe",
		SHA256:  "47e7f65a3bfa882910f76e2107b4298b28ace33681bd0279e25a8f91551913c0",
	},
}
