package toolchain

// SetLookPath swaps the PATH lookup for tests.
func (p *Prober) SetLookPath(fn func(string) (string, error)) {
	p.lookPath = fn
}

// SetResolvePath swaps symlink resolution for tests.
func (p *Prober) SetResolvePath(fn func(string) (string, error)) {
	p.resolvePath = fn
}
