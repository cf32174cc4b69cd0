package domain

import "strings"

// Command is an explicit descriptor for one external process invocation.
// Descriptors are produced by pure functions; spawning is isolated in the
// shell adapter so resolution and validation logic stays testable without
// real processes.
type Command struct {
	// Args is the full argument vector, Args[0] being the executable.
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Stdin is fed to the process on standard input when non-empty.
	Stdin string
}

// String renders the command the way it would be typed in a shell.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}
