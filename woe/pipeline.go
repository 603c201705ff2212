// Package woe: validator → transformer pipeline glue for the common
// infer-everything path.

package woe

import (
	"github.com/credscope/woebin/binning"
	"github.com/credscope/woebin/frame"
	"github.com/credscope/woebin/validate"
)

// Pipeline chains a feature validator and a WoE transformer: Fit learns
// feature domains, tree-derived bins and WoE values in one pass; Transform
// validates inference-bound data and maps it to WoE floats.
type Pipeline struct {
	validator   *validate.Validator
	transformer *Transformer
	opts        []binning.Option
}

// NewPipeline builds the default raw-data-to-WoE pipeline: a fresh
// validator that infers every column's domain, a TreeBinner over those
// domains, and a transformer on top. Options are forwarded to the binner.
func NewPipeline(opts ...binning.Option) *Pipeline {
	return &Pipeline{validator: validate.New(), opts: opts}
}

// Validator exposes the pipeline's validator, e.g. to persist the learned
// feature domains after fitting.
func (p *Pipeline) Validator() *validate.Validator { return p.validator }

// Transformer exposes the fitted transformer, e.g. to persist its WoE
// specs; nil before Fit.
func (p *Pipeline) Transformer() *Transformer { return p.transformer }

// Fit learns domains from X, then bins and WoE values from the validated
// copy of X and the target. Repeated fits reuse the frozen domains.
func (p *Pipeline) Fit(X *frame.Frame, y frame.Target) error {
	if err := p.validator.Fit(X); err != nil {
		return err
	}
	validated, err := p.validator.Transform(X)
	if err != nil {
		return err
	}

	binner, err := binning.NewTreeBinner(p.validator.Features(), p.opts...)
	if err != nil {
		return err
	}
	transformer, err := NewTransformer(WithBinner(binner))
	if err != nil {
		return err
	}
	if err := transformer.Fit(validated, y); err != nil {
		return err
	}
	p.transformer = transformer

	return nil
}

// Transform validates X and maps it to WoE floats.
//
// Errors:
//   - ErrNotFitted before Fit;
//   - validator and transformer errors as documented on each.
func (p *Pipeline) Transform(X *frame.Frame) (*frame.Frame, error) {
	if p.transformer == nil {
		return nil, ErrNotFitted
	}

	validated, err := p.validator.Transform(X)
	if err != nil {
		return nil, err
	}

	return p.transformer.Transform(validated)
}
