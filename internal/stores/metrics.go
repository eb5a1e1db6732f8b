package stores

import (
	"api-usage-analytics/internal/shared/metrics"
)

// metricReportWrittenBytes records the size of each report written.
var metricReportWrittenBytes = metrics.NewHistogramVec(
	metrics.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubReport,
		Name:      "written_bytes",
		Buckets:   []float64{64, 256, 1024, 4096},
	},
	[]string{},
)
