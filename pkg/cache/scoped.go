package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis database without seeing each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "arena:staging:")
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

// CourtKey generates a prefixed court key.
func (k *ScopedKeyer) CourtKey(opts CourtKeyOpts) string {
	return k.prefix + k.inner.CourtKey(opts)
}

// BOMKey generates a prefixed BOM key.
func (k *ScopedKeyer) BOMKey(courtHash string) string {
	return k.prefix + k.inner.BOMKey(courtHash)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(courtHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(courtHash, opts)
}
