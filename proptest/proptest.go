// Package proptest provides the two-proportion hypothesis test injected
// into statistical bin merging.
//
// What
//
//	Given event/total counts for two bins, the test asks whether the two
//	underlying event rates are distinguishable. TwoProportionZ is the
//	standard pooled z-test: under the equal-rate null hypothesis the
//	standardized rate difference is approximately standard normal, and the
//	returned value is the two-sided p-value from the normal CDF.
//
// Degenerate inputs never fail: a bin with zero total rows carries no
// evidence against the null, so its p-value is 1 and the bin merges freely.
//
// The Func signature is the injection point — bin merging accepts any
// implementation, which lets tests pin p-values without statistics.
package proptest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Func computes a two-sided p-value in [0, 1] for the hypothesis that two
// bins share one event rate, from each bin's event count and total count.
type Func func(eventsA, totalA, eventsB, totalB int) float64

// TwoProportionZ is the pooled two-proportion z-test.
//
// With pa = eventsA/totalA, pb = eventsB/totalB and the pooled rate
// p = (eventsA+eventsB)/(totalA+totalB), the statistic is
//
//	z = |pa - pb| / sqrt(p·(1-p)·(1/totalA + 1/totalB))
//
// and the p-value is 2·(1 - Φ(z)). A zero standard error means both rates
// are pinned at 0 or 1: identical rates yield p = 1, different ones p = 0.
func TwoProportionZ(eventsA, totalA, eventsB, totalB int) float64 {
	if totalA <= 0 || totalB <= 0 {
		return 1
	}

	pa := float64(eventsA) / float64(totalA)
	pb := float64(eventsB) / float64(totalB)
	pooled := float64(eventsA+eventsB) / float64(totalA+totalB)

	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(totalA) + 1/float64(totalB)))
	if se == 0 {
		if pa == pb {
			return 1
		}

		return 0
	}

	z := math.Abs(pa-pb) / se
	stdNormal := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * (1 - stdNormal.CDF(z))

	// Guard against floating-point overshoot on extreme statistics.
	return math.Max(0, math.Min(1, p))
}
