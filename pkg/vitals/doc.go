// Package vitals models Web Vitals performance measurements and rates
// them against the published good/poor thresholds.
//
// The package is intentionally thin: the page collects the numbers, the
// tracker forwards them, the ingestion side aggregates. There is no
// collection engine and no aggregation here.
package vitals
