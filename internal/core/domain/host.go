package domain

// Host captures the facts about the build host that influence emission.
type Host struct {
	// OS is the host operating system in GOOS form.
	OS string
	// CPU is the host machine string (x86_64, aarch64, arm64, ppc64le).
	CPU string
}

// wheelCPUs maps the --target-cpu override to the machine string baked into
// the wheel name.
var wheelCPUs = map[string]string{
	"darwin_arm64":  "arm64",
	"darwin_x86_64": "x86_64",
	"ppc":           "ppc64le",
	"aarch64":       "aarch64",
}

// HostCPU translates GOOS/GOARCH into the platform machine string the
// candidate table and wheel naming use.
func HostCPU(goos, goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		if goos == "darwin" {
			return "arm64"
		}
		return "aarch64"
	case "ppc64le":
		return "ppc64le"
	default:
		return goarch
	}
}

// WheelCPU returns the machine string for the produced wheel: the mapped
// --target-cpu override when one is given, the host machine otherwise.
func WheelCPU(targetCPU, hostCPU string) string {
	if targetCPU == "" {
		return hostCPU
	}
	if mapped, ok := wheelCPUs[targetCPU]; ok {
		return mapped
	}
	return targetCPU
}
