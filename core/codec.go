// Package core: JSON and YAML codecs for the value types. Decoding re-runs
// the validating constructors, so no persisted document can materialize an
// invalid value. Encoded token lists are sorted and bins are emitted in
// deterministic order, which keeps serialized specs diff-friendly.

package core

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// rangeDoc is the wire form of a Range. Absent numeric bounds encode as
// null/omitted; a document carrying exactly one bound is rejected.
type rangeDoc struct {
	Start  *float64 `json:"numeric_range_start,omitempty" yaml:"numeric_range_start,omitempty"`
	End    *float64 `json:"numeric_range_end,omitempty" yaml:"numeric_range_end,omitempty"`
	Tokens []string `json:"categorical_indicators" yaml:"categorical_indicators"`
}

type featureDoc struct {
	Name  string   `json:"name" yaml:"name"`
	Range rangeDoc `json:"range" yaml:"range"`
}

type binningSpecDoc struct {
	Feature featureDoc `json:"feature" yaml:"feature"`
	Bins    []rangeDoc `json:"bins" yaml:"bins"`
}

type woeBinDoc struct {
	Bin           rangeDoc `json:"bin" yaml:"bin"`
	WoE           float64  `json:"woe" yaml:"woe"`
	IV            float64  `json:"iv" yaml:"iv"`
	EventCount    int      `json:"bin_event_count" yaml:"bin_event_count"`
	NonEventCount int      `json:"bin_non_event_count" yaml:"bin_non_event_count"`
}

type woeSpecDoc struct {
	Feature featureDoc  `json:"feature" yaml:"feature"`
	Bins    []woeBinDoc `json:"bins" yaml:"bins"`
}

// ---------- doc construction (encode direction) ----------

func (r Range) doc() rangeDoc {
	doc := rangeDoc{Tokens: r.Tokens()}
	if r.numeric {
		start, end := r.start, r.end
		doc.Start, doc.End = &start, &end
	}

	return doc
}

func (f Feature) doc() featureDoc {
	return featureDoc{Name: f.name, Range: f.rng.doc()}
}

func (s BinningSpec) doc() binningSpecDoc {
	doc := binningSpecDoc{Feature: s.feature.doc(), Bins: make([]rangeDoc, len(s.bins))}
	for i, bin := range s.bins {
		doc.Bins[i] = bin.doc()
	}

	return doc
}

func (b WoEBin) doc() woeBinDoc {
	return woeBinDoc{
		Bin:           b.bin.doc(),
		WoE:           b.woe,
		IV:            b.iv,
		EventCount:    b.eventCount,
		NonEventCount: b.nonEventCount,
	}
}

func (s WoESpec) doc() woeSpecDoc {
	doc := woeSpecDoc{Feature: s.feature.doc(), Bins: make([]woeBinDoc, len(s.bins))}
	for i, bin := range s.bins {
		doc.Bins[i] = bin.doc()
	}

	return doc
}

// ---------- doc validation (decode direction) ----------

func (d rangeDoc) value() (Range, error) {
	switch {
	case d.Start != nil && d.End != nil:
		return NewRange(*d.Start, *d.End, d.Tokens...)
	case d.Start == nil && d.End == nil:
		return NewCategoricalRange(d.Tokens...)
	default:
		return Range{}, ErrHalfOpenBounds
	}
}

func (d featureDoc) value() (Feature, error) {
	rng, err := d.Range.value()
	if err != nil {
		return Feature{}, err
	}

	return NewFeature(d.Name, rng)
}

func (d binningSpecDoc) value() (BinningSpec, error) {
	feature, err := d.Feature.value()
	if err != nil {
		return BinningSpec{}, err
	}
	bins := make([]Range, len(d.Bins))
	for i, binDoc := range d.Bins {
		if bins[i], err = binDoc.value(); err != nil {
			return BinningSpec{}, err
		}
	}

	return NewBinningSpec(feature, bins, NumericAccuracy)
}

func (d woeBinDoc) value() (WoEBin, error) {
	bin, err := d.Bin.value()
	if err != nil {
		return WoEBin{}, err
	}

	return NewWoEBin(bin, d.EventCount, d.NonEventCount, d.WoE, d.IV)
}

func (d woeSpecDoc) value() (WoESpec, error) {
	feature, err := d.Feature.value()
	if err != nil {
		return WoESpec{}, err
	}
	bins := make([]WoEBin, len(d.Bins))
	for i, binDoc := range d.Bins {
		if bins[i], err = binDoc.value(); err != nil {
			return WoESpec{}, err
		}
	}

	return NewWoESpec(feature, bins, NumericAccuracy)
}

// ---------- JSON ----------

// MarshalJSON implements json.Marshaler.
func (r Range) MarshalJSON() ([]byte, error) { return json.Marshal(r.doc()) }

// UnmarshalJSON implements json.Unmarshaler, re-running range validation.
func (r *Range) UnmarshalJSON(data []byte) error {
	var doc rangeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*r = val

	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Feature) MarshalJSON() ([]byte, error) { return json.Marshal(f.doc()) }

// UnmarshalJSON implements json.Unmarshaler, re-running feature validation.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var doc featureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*f = val

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s BinningSpec) MarshalJSON() ([]byte, error) { return json.Marshal(s.doc()) }

// UnmarshalJSON implements json.Unmarshaler, re-running the partition check.
func (s *BinningSpec) UnmarshalJSON(data []byte) error {
	var doc binningSpecDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*s = val

	return nil
}

// MarshalJSON implements json.Marshaler.
func (b WoEBin) MarshalJSON() ([]byte, error) { return json.Marshal(b.doc()) }

// UnmarshalJSON implements json.Unmarshaler, re-running bin validation.
func (b *WoEBin) UnmarshalJSON(data []byte) error {
	var doc woeBinDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*b = val

	return nil
}

// MarshalJSON implements json.Marshaler.
func (s WoESpec) MarshalJSON() ([]byte, error) { return json.Marshal(s.doc()) }

// UnmarshalJSON implements json.Unmarshaler, re-running the partition check.
func (s *WoESpec) UnmarshalJSON(data []byte) error {
	var doc woeSpecDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*s = val

	return nil
}

// ---------- YAML ----------

// MarshalYAML implements yaml.Marshaler.
func (r Range) MarshalYAML() (interface{}, error) { return r.doc(), nil }

// UnmarshalYAML implements yaml.Unmarshaler, re-running range validation.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var doc rangeDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*r = val

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Feature) MarshalYAML() (interface{}, error) { return f.doc(), nil }

// UnmarshalYAML implements yaml.Unmarshaler, re-running feature validation.
func (f *Feature) UnmarshalYAML(node *yaml.Node) error {
	var doc featureDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*f = val

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s BinningSpec) MarshalYAML() (interface{}, error) { return s.doc(), nil }

// UnmarshalYAML implements yaml.Unmarshaler, re-running the partition check.
func (s *BinningSpec) UnmarshalYAML(node *yaml.Node) error {
	var doc binningSpecDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*s = val

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b WoEBin) MarshalYAML() (interface{}, error) { return b.doc(), nil }

// UnmarshalYAML implements yaml.Unmarshaler, re-running bin validation.
func (b *WoEBin) UnmarshalYAML(node *yaml.Node) error {
	var doc woeBinDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*b = val

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s WoESpec) MarshalYAML() (interface{}, error) { return s.doc(), nil }

// UnmarshalYAML implements yaml.Unmarshaler, re-running the partition check.
func (s *WoESpec) UnmarshalYAML(node *yaml.Node) error {
	var doc woeSpecDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	val, err := doc.value()
	if err != nil {
		return err
	}
	*s = val

	return nil
}
