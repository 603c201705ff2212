// Package binning: the pre-specified strategy — no learning, just a spec
// loaded at construction (typically deserialized from a persisted fit).

package binning

import (
	"github.com/credscope/woebin/core"
	"github.com/credscope/woebin/frame"
)

// PreSpecified serves a binning spec supplied at construction. Fit is a
// no-op; the spec never changes.
type PreSpecified struct {
	spec map[string]core.BinningSpec
}

// NewPreSpecified copies the supplied per-feature spec into a binner.
//
// Errors:
//   - ErrNoSpec if the spec is empty.
func NewPreSpecified(spec map[string]core.BinningSpec) (*PreSpecified, error) {
	if len(spec) == 0 {
		return nil, ErrNoSpec
	}
	copied := make(map[string]core.BinningSpec, len(spec))
	for name, s := range spec {
		copied[name] = s
	}

	return &PreSpecified{spec: copied}, nil
}

// Fit does nothing: the spec was fixed at construction.
func (b *PreSpecified) Fit(_ *frame.Frame, _ frame.Target) error { return nil }

// Spec returns a copy of the per-feature binning specs.
func (b *PreSpecified) Spec() (map[string]core.BinningSpec, error) {
	out := make(map[string]core.BinningSpec, len(b.spec))
	for name, s := range b.spec {
		out[name] = s
	}

	return out, nil
}
