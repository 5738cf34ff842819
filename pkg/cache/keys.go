package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Hash returns the hex SHA-256 digest of a canonical spec document.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Keyer builds cache keys.
type Keyer interface {
	// SpecKey returns the key of a stored spec document.
	SpecKey(specHash string) string

	// ArtifactKey returns the key of one rendered output of a spec.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format       string   `json:"format"`
	Labels       []string `json:"labels,omitempty"`
	GridColor    string   `json:"grid_color,omitempty"`
	ShadeA       string   `json:"shade_a,omitempty"`
	ShadeB       string   `json:"shade_b,omitempty"`
	Fill         string   `json:"fill,omitempty"`
	Declarations string   `json:"declarations,omitempty"`

	// Fallbacks for style fields the spec leaves empty.
	DefaultGridColor string `json:"default_grid_color,omitempty"`
	DefaultShadeA    string `json:"default_shade_a,omitempty"`
	DefaultShadeB    string `json:"default_shade_b,omitempty"`
	DefaultFill      string `json:"default_fill,omitempty"`
}

// DefaultKeyer lays out keys as <kind>:<hash>.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key layout.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SpecKey returns "spec:<specHash>".
func (DefaultKeyer) SpecKey(specHash string) string {
	return "spec:" + strings.ToLower(specHash)
}

// ArtifactKey returns "artifact:<format>:<hash of spec and options>".
func (DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(specHash)))
	h.Write([]byte{0})
	// Encoding a struct of strings cannot fail.
	_ = json.NewEncoder(h).Encode(opts)
	return "artifact:" + opts.Format + ":" + hex.EncodeToString(h.Sum(nil))
}

var _ Keyer = DefaultKeyer{}
