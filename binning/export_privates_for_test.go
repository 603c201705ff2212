// Package binning: aliases exposing private helpers to white-box tests.
// Nothing here is part of the public API.

package binning

// MergeBinsForTest exposes the merge loop to direct unit tests.
var MergeBinsForTest = mergeBins

// HarvestThresholdsForTest exposes threshold harvesting to direct unit tests.
var HarvestThresholdsForTest = harvestThresholds

// BinsFromThresholdsForTest exposes bin construction to direct unit tests.
var BinsFromThresholdsForTest = binsFromThresholds
