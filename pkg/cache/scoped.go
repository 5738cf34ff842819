package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments (or
// versions) can share one backend without colliding.
//
// Example usage:
//
//	// Artifacts rendered by this build only
//	k := NewScopedKeyer(NewDefaultKeyer(), "cubetex:v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SpecKey generates a prefixed spec key.
func (k *ScopedKeyer) SpecKey(specHash string) string {
	return k.prefix + k.inner.SpecKey(specHash)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specHash, opts)
}
