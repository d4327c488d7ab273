package cache

import "strings"

// keyVersion is bumped when the layout rules or a stored format change.
const keyVersion = "v1"

// CourtKeyOpts are the inputs that determine a court.
type CourtKeyOpts struct {
	Width      int    `json:"width"`
	Length     int    `json:"length"`
	EndHeight  int    `json:"end_height"`
	SideHeight int    `json:"side_height"`
	Standalone bool   `json:"standalone"`
	OpsHash    string `json:"ops_hash,omitempty"`
}

// ArtifactKeyOpts are the drawing options that affect a rendered artifact.
type ArtifactKeyOpts struct {
	View     string  `json:"view"`
	Format   string  `json:"format"`
	Scale    float64 `json:"scale"`
	Detailed bool    `json:"detailed"`
}

// Keyer derives cache keys. Keys are namespaced by artifact type.
type Keyer interface {
	// CourtKey keys a court built from generator inputs and optional edits.
	CourtKey(opts CourtKeyOpts) string
	// BOMKey keys the bill of materials of a court, identified by the hash
	// of its encoded form.
	BOMKey(courtHash string) string
	// ArtifactKey keys a rendered drawing of a court.
	ArtifactKey(courtHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// CourtKey implements Keyer.
func (DefaultKeyer) CourtKey(opts CourtKeyOpts) string {
	return hashKey("court", keyVersion, opts)
}

// BOMKey implements Keyer.
func (DefaultKeyer) BOMKey(courtHash string) string {
	return hashKey("bom", keyVersion, courtHash)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(courtHash string, opts ArtifactKeyOpts) string {
	opts.Format = strings.ToLower(opts.Format)
	return hashKey("artifact:"+opts.Format, keyVersion, courtHash, opts)
}

var _ Keyer = DefaultKeyer{}
