package aggregators

import (
	"api-usage-analytics/internal/shared/metrics"
)

const (
	resultQualifying = "qualifying"
	resultFiltered   = "filtered"
	resultExcluded   = "excluded"
)

// metricLinesAggregatedTotal counts access log lines by how the aggregator treated them.
//
// The result label is one of:
//   - "qualifying": parsed with status 200, counted in every usage mapping
//   - "filtered": parsed with any other status, no usage counter changed
//   - "excluded": did not match the access log grammar
var (
	metricLinesAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "lines_aggregated_total",
		},
		[]string{metrics.FieldResult},
	)
)
