package reports

import (
	"cmp"
	"slices"

	"api-usage-analytics/internal/models"
)

// TopServicesLimit is the number of API services listed in the report.
const TopServicesLimit = 3

// ReportBuilder ranks a UsageSnapshot into a UsageReport.
//
// Ordering rules, all deterministic:
//   - top API key: highest count, ties go to the lexicographically smallest key
//   - top services: count descending, ties by service id ascending, at most TopServicesLimit
//   - browser usage: browser name ascending
//
// A snapshot without qualifying requests yields a nil TopAPIKey, no services and no
// browser shares; percentages are never computed against a zero total.
//
//go:generate mockgen -source=report_builder.go -destination=./mocks/report_builder_mock.go -package=mocks
type ReportBuilder interface {
	Build(snapshot *models.UsageSnapshot) *models.UsageReport
}

type reportBuilder struct{}

func NewReportBuilder() ReportBuilder {
	return &reportBuilder{}
}

func (b *reportBuilder) Build(snapshot *models.UsageSnapshot) *models.UsageReport {
	report := &models.UsageReport{
		TopAPIServices: []models.KeyCount{},
		BrowserUsage:   []models.BrowserShare{},
	}

	apiKeys := rankKeyCounts(snapshot.APIKeyCounts)
	if len(apiKeys) > 0 {
		report.TopAPIKey = &apiKeys[0]
	}

	services := rankKeyCounts(snapshot.APIServiceCounts)
	report.TopAPIServices = services[:min(TopServicesLimit, len(services))]

	browsers := make([]models.Browser, 0, len(snapshot.BrowserCounts))
	for browser := range snapshot.BrowserCounts {
		browsers = append(browsers, browser)
	}
	slices.Sort(browsers)

	for _, browser := range browsers {
		count := snapshot.BrowserCounts[browser]
		report.BrowserUsage = append(report.BrowserUsage, models.BrowserShare{
			Browser:    browser,
			Count:      count,
			Percentage: percentage(count, snapshot.TotalQualifyingRequests),
		})
	}

	return report
}

// rankKeyCounts orders counts descending, then keys ascending.
func rankKeyCounts(counts map[string]int64) []models.KeyCount {
	ranked := make([]models.KeyCount, 0, len(counts))
	for key, count := range counts {
		ranked = append(ranked, models.KeyCount{Key: key, Count: count})
	}

	slices.SortFunc(ranked, func(a, b models.KeyCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return ranked
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
