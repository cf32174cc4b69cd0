package domain

import "strings"

// Directive is one line of the generated bazelrc fragment.
type Directive struct {
	// Config is the named configuration group, e.g. "cuda" for a
	// "build:cuda" line. Empty means a plain "build" line.
	Config string
	// Option is the rest of the line, e.g. `--config=cuda` or
	// `--repo_env CC="/usr/bin/clang"`.
	Option string
}

// String renders the directive in the build tool's grammar.
func (d Directive) String() string {
	if d.Config != "" {
		return "build:" + d.Config + " " + d.Option
	}
	return "build " + d.Option
}

// DirectiveFile is an append-only ordered list of directives. Order matters:
// later directives override earlier ones in the consuming build tool, so
// callers must append in the fixed precedence order.
type DirectiveFile struct {
	directives []Directive
}

// Add appends a plain "build" directive.
func (f *DirectiveFile) Add(option string) {
	f.directives = append(f.directives, Directive{Option: option})
}

// AddConfig appends a "build:<config>" directive.
func (f *DirectiveFile) AddConfig(config, option string) {
	f.directives = append(f.directives, Directive{Config: config, Option: option})
}

// Len returns the number of directives appended so far.
func (f *DirectiveFile) Len() int {
	return len(f.directives)
}

// Directives returns the appended directives in order.
func (f *DirectiveFile) Directives() []Directive {
	return f.directives
}

// Render produces the file contents. Every directive is terminated with a
// newline; rendering the same list twice yields identical bytes.
func (f *DirectiveFile) Render() []byte {
	var b strings.Builder
	for _, d := range f.directives {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
