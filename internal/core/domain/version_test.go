package domain_test

import (
	"testing"

	"github.com/spokebuild/spoke/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Version
		ok    bool
	}{
		{name: "plain triple", input: "6.1.2", want: domain.Version{Major: 6, Minor: 1, Patch: 2}, ok: true},
		{name: "tool prefix", input: "bazel 6.1.2", want: domain.Version{Major: 6, Minor: 1, Patch: 2}, ok: true},
		{name: "dev suffix", input: "1.26.4.dev0", want: domain.Version{Major: 1, Minor: 26, Patch: 4}, ok: true},
		{name: "two components", input: "3.11", want: domain.Version{Major: 3, Minor: 11}, ok: true},
		{name: "single component", input: "7", want: domain.Version{Major: 7}, ok: true},
		{name: "trailing newline", input: "3.12\n", want: domain.Version{Major: 3, Minor: 12}, ok: true},
		{name: "no digits", input: "no release here", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseVersion(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestVersion_AtLeast(t *testing.T) {
	min := domain.MinBazelVersion // 5.1.1

	tests := []struct {
		name string
		v    domain.Version
		want bool
	}{
		{name: "equal", v: domain.Version{Major: 5, Minor: 1, Patch: 1}, want: true},
		{name: "newer patch", v: domain.Version{Major: 5, Minor: 1, Patch: 2}, want: true},
		{name: "newer major", v: domain.Version{Major: 6, Minor: 0, Patch: 0}, want: true},
		{name: "older patch", v: domain.Version{Major: 5, Minor: 1, Patch: 0}, want: false},
		{name: "older minor high patch", v: domain.Version{Major: 5, Minor: 0, Patch: 99}, want: false},
		{name: "older major high minor", v: domain.Version{Major: 4, Minor: 9, Patch: 9}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.AtLeast(min))
		})
	}
}

func TestVersion_Render(t *testing.T) {
	v := domain.Version{Major: 3, Minor: 11, Patch: 4}
	assert.Equal(t, "3.11.4", v.String())
	assert.Equal(t, "3.11", v.MajorMinor())
}
