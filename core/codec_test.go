// Package core_test: JSON and YAML round-trips for every value type, plus
// the decode-time re-validation that keeps corrupted documents out.
package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/credscope/woebin/core"
)

// buildWoESpec assembles a fully populated WoESpec for round-trip tests.
func buildWoESpec(t *testing.T) core.WoESpec {
	t.Helper()
	feature := mustFeature(t)
	binA, err := core.NewWoEBin(mustRange(t, 0.5, 1.5, "_"), 12, 88, -0.3711, 0.0421)
	require.NoError(t, err)
	binB, err := core.NewWoEBin(mustRange(t, 1.5, 2.5, "M", "C"), 55, 45, 0.6931, 0.1733)
	require.NoError(t, err)

	spec, err := core.NewWoESpec(feature, []core.WoEBin{binA, binB}, core.NumericAccuracy)
	require.NoError(t, err)

	return spec
}

// ------------------------------------------------------------------------
// 1. JSON round-trips.
// ------------------------------------------------------------------------

func TestJSON_RangeRoundTrip(t *testing.T) {
	for name, rng := range map[string]core.Range{
		"numeric+tokens": mustRange(t, -3.25, 17.5, "M", "C"),
		"numeric only":   mustRange(t, 0, 1),
	} {
		data, err := json.Marshal(rng)
		require.NoError(t, err, name)

		var back core.Range
		require.NoError(t, json.Unmarshal(data, &back), name)
		assert.True(t, rng.Equal(back), "%s: %s", name, data)
	}
}

func TestJSON_CategoricalRangeRoundTrip(t *testing.T) {
	rng, err := core.NewCategoricalRange("M", "C", "_")
	require.NoError(t, err)

	data, err := json.Marshal(rng)
	require.NoError(t, err)

	var back core.Range
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, rng.Equal(back))
	assert.False(t, back.HasNumeric())
}

func TestJSON_FeatureAndBinningSpecRoundTrip(t *testing.T) {
	feature := mustFeature(t)
	spec, err := core.NewBinningSpec(feature, []core.Range{
		mustRange(t, 0.5, 1.5, "_"),
		mustRange(t, 1.5, 2.5, "M", "C"),
	}, core.NumericAccuracy)
	require.NoError(t, err)

	featData, err := json.Marshal(feature)
	require.NoError(t, err)
	var featBack core.Feature
	require.NoError(t, json.Unmarshal(featData, &featBack))
	assert.True(t, feature.Equal(featBack))

	specData, err := json.Marshal(spec)
	require.NoError(t, err)
	var specBack core.BinningSpec
	require.NoError(t, json.Unmarshal(specData, &specBack))
	assert.True(t, spec.Equal(specBack))
}

func TestJSON_WoESpecRoundTrip(t *testing.T) {
	spec := buildWoESpec(t)

	data, err := json.Marshal(spec)
	require.NoError(t, err)

	var back core.WoESpec
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, spec.Equal(back))
	assert.InDelta(t, spec.IV(), back.IV(), 0)
}

// ------------------------------------------------------------------------
// 2. YAML round-trips.
// ------------------------------------------------------------------------

func TestYAML_RangeRoundTrip(t *testing.T) {
	rng := mustRange(t, 0.5, 2.5, "M", "C", "_")

	data, err := yaml.Marshal(rng)
	require.NoError(t, err)

	var back core.Range
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.True(t, rng.Equal(back), "%s", data)
}

func TestYAML_WoESpecRoundTrip(t *testing.T) {
	spec := buildWoESpec(t)

	data, err := yaml.Marshal(spec)
	require.NoError(t, err)

	var back core.WoESpec
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.True(t, spec.Equal(back))
}

// ------------------------------------------------------------------------
// 3. Decode-time validation.
// ------------------------------------------------------------------------

func TestJSON_OneSidedBoundsRejected(t *testing.T) {
	// A document carrying exactly one numeric bound cannot become a Range.
	var rng core.Range
	err := json.Unmarshal([]byte(`{"numeric_range_start": 1.0, "categorical_indicators": []}`), &rng)
	assert.ErrorIs(t, err, core.ErrHalfOpenBounds)
}

func TestJSON_InvertedBoundsRejected(t *testing.T) {
	var rng core.Range
	err := json.Unmarshal([]byte(`{"numeric_range_start": 5, "numeric_range_end": 1, "categorical_indicators": []}`), &rng)
	assert.ErrorIs(t, err, core.ErrInvertedRange)
}

func TestJSON_CorruptedSpecRejected(t *testing.T) {
	// Serialize a valid spec, drop one bin, and watch the partition check
	// refuse the decode.
	feature := mustFeature(t)
	spec, err := core.NewBinningSpec(feature, []core.Range{
		mustRange(t, 0.5, 1.5, "_"),
		mustRange(t, 1.5, 2.5, "M", "C"),
	}, core.NumericAccuracy)
	require.NoError(t, err)

	data, err := json.Marshal(spec)
	require.NoError(t, err)

	var doc struct {
		Feature json.RawMessage   `json:"feature"`
		Bins    []json.RawMessage `json:"bins"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	doc.Bins = doc.Bins[:1] // corrupt: the partition loses its upper half

	corrupted, err := json.Marshal(doc)
	require.NoError(t, err)

	var back core.BinningSpec
	err = json.Unmarshal(corrupted, &back)
	assert.Error(t, err)
}
