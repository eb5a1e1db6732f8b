package aggregators

import (
	"maps"
	"sync"

	"api-usage-analytics/internal/models"
)

// UsageAggregator accumulates usage counters for one analysis run.
// Implementations are safe for concurrent use.
//
//go:generate mockgen -source=usage_aggregator.go -destination=./mocks/usage_aggregator_mock.go -package=mocks
type UsageAggregator interface {
	// Update counts one parsed line. Only records with status 200 change the usage counters;
	// it reports whether the record was counted.
	Update(record *models.AccessRecord) bool
	// RecordExcluded counts one line that did not match the access log grammar.
	RecordExcluded()
	// Snapshot returns a copy of the counters that later updates do not affect.
	Snapshot() *models.UsageSnapshot
}

type usageAggregator struct {
	mu    sync.Mutex
	state *models.UsageSnapshot
}

func NewUsageAggregator() UsageAggregator {
	return &usageAggregator{
		state: models.NewEmptyUsageSnapshot(),
	}
}

func (a *usageAggregator) Update(record *models.AccessRecord) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.TotalLinesProcessed++
	if !record.IsQualifying() {
		a.state.FilteredLines++
		metricLinesAggregatedTotal.WithLabelValues(resultFiltered).Inc()
		return false
	}

	// all four increments happen under the same lock
	a.state.APIKeyCounts[record.APIKey]++
	a.state.APIServiceCounts[record.ServiceID]++
	a.state.BrowserCounts[record.Browser]++
	a.state.TotalQualifyingRequests++
	metricLinesAggregatedTotal.WithLabelValues(resultQualifying).Inc()

	return true
}

func (a *usageAggregator) RecordExcluded() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.TotalLinesProcessed++
	a.state.ExcludedLines++
	metricLinesAggregatedTotal.WithLabelValues(resultExcluded).Inc()
}

func (a *usageAggregator) Snapshot() *models.UsageSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := *a.state
	snapshot.APIKeyCounts = maps.Clone(a.state.APIKeyCounts)
	snapshot.APIServiceCounts = maps.Clone(a.state.APIServiceCounts)
	snapshot.BrowserCounts = maps.Clone(a.state.BrowserCounts)
	return &snapshot
}
