// Package validate_test: domain inference, the freeze-once fit, and
// revalidation of new data against learned domains.
package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credscope/woebin/core"
	"github.com/credscope/woebin/frame"
	"github.com/credscope/woebin/validate"
)

// mixedSeries holds numerics 10..45 plus the special token "_".
func mixedSeries() frame.Series {
	return frame.NewSeries("limit", []string{"10", "45", "20", "_", "30"})
}

// ------------------------------------------------------------------------
// 1. InferFeature.
// ------------------------------------------------------------------------

func TestInferFeature_NumericDomainIsPadded(t *testing.T) {
	feature, err := validate.InferFeature(mixedSeries(), 0.5)
	require.NoError(t, err)

	assert.Equal(t, "limit", feature.Name())
	assert.InDelta(t, 9.5, feature.Range().Start(), 1e-12)
	assert.InDelta(t, 45.5, feature.Range().End(), 1e-12)
	assert.Equal(t, []string{"_"}, feature.Range().Tokens())
}

func TestInferFeature_DefaultTolerance(t *testing.T) {
	feature, err := validate.InferFeature(frame.NewNumericSeries("x", []float64{1, 2}), 0)
	require.NoError(t, err)

	assert.InDelta(t, 1-core.NumericAccuracy, feature.Range().Start(), 1e-12)
	assert.InDelta(t, 2+core.NumericAccuracy, feature.Range().End(), 1e-12)
}

func TestInferFeature_CategoricalOnly(t *testing.T) {
	feature, err := validate.InferFeature(frame.NewSeries("status", []string{"C", "M", "C"}), 0.1)
	require.NoError(t, err)

	assert.False(t, feature.Range().HasNumeric())
	assert.Equal(t, []string{"C", "M"}, feature.Range().Tokens(), "distinct tokens, sorted")
}

func TestInferFeature_EmptyColumn(t *testing.T) {
	_, err := validate.InferFeature(frame.NewSeries("empty", nil), 0.1)
	assert.ErrorIs(t, err, validate.ErrEmptyColumn)
}

// ------------------------------------------------------------------------
// 2. Fit freezes once.
// ------------------------------------------------------------------------

func TestValidator_FitLearnsEveryColumn(t *testing.T) {
	X, err := frame.New(
		mixedSeries(),
		frame.NewSeries("status", []string{"M", "C", "M", "C", "M"}),
	)
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(X))

	features := v.Features()
	require.Len(t, features, 2)
	assert.InDelta(t, 9.5, features["limit"].Range().Start(), 1e-12)
	assert.False(t, features["status"].Range().HasNumeric())
}

func TestValidator_RefitIsANoOp(t *testing.T) {
	first, err := frame.New(frame.NewNumericSeries("x", []float64{0, 10}))
	require.NoError(t, err)
	second, err := frame.New(frame.NewNumericSeries("x", []float64{0, 1000}))
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(first))
	require.NoError(t, v.Fit(second))

	// The domain stays frozen on the first snapshot.
	assert.InDelta(t, 10.5, v.Features()["x"].Range().End(), 1e-12)
}

func TestValidator_WithFeaturesSkipsLearning(t *testing.T) {
	rng, err := core.NewRange(0, 1)
	require.NoError(t, err)
	feature, err := core.NewFeature("x", rng)
	require.NoError(t, err)

	v := validate.New(validate.WithFeatures(map[string]core.Feature{"x": feature}))

	wild, err := frame.New(frame.NewNumericSeries("x", []float64{-100, 100}))
	require.NoError(t, err)
	require.NoError(t, v.Fit(wild))

	assert.Equal(t, 1.0, v.Features()["x"].Range().End())
}

// ------------------------------------------------------------------------
// 3. Transform.
// ------------------------------------------------------------------------

func TestValidator_TransformBeforeFit(t *testing.T) {
	X, err := frame.New(frame.NewNumericSeries("x", []float64{1}))
	require.NoError(t, err)

	_, err = validate.New().Transform(X)
	assert.ErrorIs(t, err, validate.ErrNotFitted)
}

func TestValidator_TransformAcceptsInDomainData(t *testing.T) {
	train, err := frame.New(mixedSeries())
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(train))

	fresh, err := frame.New(frame.NewSeries("limit", []string{"15", "_", "44"}))
	require.NoError(t, err)

	got, err := v.Transform(fresh)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rows())
	assert.Equal(t, []string{"limit"}, got.Columns())
}

func TestValidator_TransformRejectsAboveDomain(t *testing.T) {
	// Domain learned as roughly [10, 45]; 50 breaches the upper bound.
	train, err := frame.New(mixedSeries())
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(train))

	fresh, err := frame.New(frame.NewSeries("limit", []string{"50"}))
	require.NoError(t, err)

	_, err = v.Transform(fresh)
	assert.ErrorIs(t, err, validate.ErrAboveDomain)
}

func TestValidator_TransformRejectsBelowDomain(t *testing.T) {
	train, err := frame.New(mixedSeries())
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(train))

	fresh, err := frame.New(frame.NewSeries("limit", []string{"2"}))
	require.NoError(t, err)

	_, err = v.Transform(fresh)
	assert.ErrorIs(t, err, validate.ErrBelowDomain)
}

func TestValidator_TransformToleratesSmallOvershoot(t *testing.T) {
	train, err := frame.New(mixedSeries())
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(train))

	// Domain end is 45.5; 45.9 sits within the 0.5 tolerance.
	fresh, err := frame.New(frame.NewSeries("limit", []string{"45.9"}))
	require.NoError(t, err)

	_, err = v.Transform(fresh)
	assert.NoError(t, err)
}

func TestValidator_TransformRejectsUnknownToken(t *testing.T) {
	train, err := frame.New(mixedSeries())
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(train))

	fresh, err := frame.New(frame.NewSeries("limit", []string{"20", "Z"}))
	require.NoError(t, err)

	_, err = v.Transform(fresh)
	require.ErrorIs(t, err, validate.ErrUnknownToken)
	assert.Contains(t, err.Error(), "Z")
}

func TestValidator_TransformRejectsNumericInCategoricalDomain(t *testing.T) {
	train, err := frame.New(frame.NewSeries("status", []string{"M", "C"}))
	require.NoError(t, err)

	v := validate.New()
	require.NoError(t, v.Fit(train))

	fresh, err := frame.New(frame.NewSeries("status", []string{"3.5"}))
	require.NoError(t, err)

	_, err = v.Transform(fresh)
	assert.ErrorIs(t, err, validate.ErrBelowDomain)
}

func TestValidator_TransformDropsUnknownColumns(t *testing.T) {
	train, err := frame.New(mixedSeries())
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(train))

	fresh, err := frame.New(
		frame.NewSeries("limit", []string{"20"}),
		frame.NewSeries("noise", []string{"whatever"}),
	)
	require.NoError(t, err)

	got, err := v.Transform(fresh)
	require.NoError(t, err)
	assert.Equal(t, []string{"limit"}, got.Columns())
}

func TestValidator_TransformRequiresEveryLearnedColumn(t *testing.T) {
	train, err := frame.New(
		mixedSeries(),
		frame.NewSeries("status", []string{"M", "C", "M", "C", "M"}),
	)
	require.NoError(t, err)

	v := validate.New(validate.WithTolerance(0.5))
	require.NoError(t, v.Fit(train))

	fresh, err := frame.New(frame.NewSeries("limit", []string{"20"}))
	require.NoError(t, err)

	_, err = v.Transform(fresh)
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)
}
