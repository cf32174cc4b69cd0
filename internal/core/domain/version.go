package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinBazelVersionString is the minimum supported bazel version.
//
// A manual check is needed only for really old releases; newer bazel
// versions perform their own check against .bazelversion.
const MinBazelVersionString = "5.1.1"

// MinBazelVersion is the parsed form of MinBazelVersionString.
var MinBazelVersion = Version{Major: 5, Minor: 1, Patch: 1}

// MinPythonVersion is the oldest supported Python interpreter.
var MinPythonVersion = Version{Major: 3, Minor: 9}

// MinNumpyVersion is the oldest supported numpy release.
var MinNumpyVersion = Version{Major: 1, Minor: 22}

// Version is a semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

var dottedNumbers = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)*)`)

// ParseVersion extracts the first dotted numeric run from s and parses up to
// three components. It is deliberately tolerant: probe output like
// "bazel 6.1.2" or "1.26.4.dev0" parses fine. The second return value is
// false when no numeric run is present.
func ParseVersion(s string) (Version, bool) {
	match := dottedNumbers.FindString(s)
	if match == "" {
		return Version{}, false
	}

	var v Version
	parts := strings.Split(match, ".")
	targets := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		if i >= len(targets) {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, false
		}
		*targets[i] = n
	}
	return v, true
}

// AtLeast reports whether v is lexicographically >= min.
func (v Version) AtLeast(min Version) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	if v.Minor != min.Minor {
		return v.Minor > min.Minor
	}
	return v.Patch >= min.Patch
}

// String renders the triple as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MajorMinor renders the triple as "major.minor".
func (v Version) MajorMinor() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
