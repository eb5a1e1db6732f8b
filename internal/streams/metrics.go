package streams

import (
	"api-usage-analytics/internal/shared/metrics"
)

var (
	streamAccessLine               = "access_line"
	metricAccessLinePublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "access_line_published_total",
		},
		[]string{"stream_id"},
	)

	metricAccessLineConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "access_line_consumed_total",
		},
		[]string{"partition_id", metrics.FieldErrorCode},
	)
)
