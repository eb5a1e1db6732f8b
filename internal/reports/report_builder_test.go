package reports

import (
	"testing"

	"api-usage-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotOf(apiKeys, services map[string]int64, browsers map[models.Browser]int64, total int64) *models.UsageSnapshot {
	return &models.UsageSnapshot{
		APIKeyCounts:            apiKeys,
		APIServiceCounts:        services,
		BrowserCounts:           browsers,
		TotalQualifyingRequests: total,
	}
}

func TestReportBuilder_Build_TopAPIKey(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()
	snapshot := snapshotOf(
		map[string]int64{"abc123": 2, "xyz789": 5, "def456": 1},
		map[string]int64{},
		map[models.Browser]int64{},
		8,
	)

	report := builder.Build(snapshot)
	require.NotNil(t, report.TopAPIKey)
	assert.Equal(t, models.KeyCount{Key: "xyz789", Count: 5}, *report.TopAPIKey)
}

func TestReportBuilder_Build_TopAPIKeyTieBreakIsDeterministic(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()
	snapshot := snapshotOf(
		map[string]int64{"mmm": 3, "zzz": 3, "aaa": 3, "bbb": 1},
		map[string]int64{},
		map[models.Browser]int64{},
		10,
	)

	for i := 0; i < 50; i++ {
		report := builder.Build(snapshot)
		require.NotNil(t, report.TopAPIKey)
		assert.Equal(t, "aaa", report.TopAPIKey.Key, "smallest key wins a tie")
		assert.Equal(t, int64(3), report.TopAPIKey.Count)
	}
}

func TestReportBuilder_Build_TopServicesRanking(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()
	snapshot := snapshotOf(
		map[string]int64{},
		map[string]int64{"D": 1, "C": 3, "B": 5, "A": 5},
		map[models.Browser]int64{},
		14,
	)

	report := builder.Build(snapshot)

	expected := []models.KeyCount{
		{Key: "A", Count: 5},
		{Key: "B", Count: 5},
		{Key: "C", Count: 3},
	}
	assert.Equal(t, expected, report.TopAPIServices)
}

func TestReportBuilder_Build_FewerThanThreeServices(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()
	snapshot := snapshotOf(
		map[string]int64{"abc123": 2},
		map[string]int64{"book": 2},
		map[models.Browser]int64{models.BrowserChrome: 2},
		2,
	)

	report := builder.Build(snapshot)
	assert.Equal(t, []models.KeyCount{{Key: "book", Count: 2}}, report.TopAPIServices)
}

func TestReportBuilder_Build_BrowserPercentages(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()
	snapshot := snapshotOf(
		map[string]int64{"k": 4},
		map[string]int64{"book": 4},
		map[models.Browser]int64{models.BrowserFirefox: 1, models.BrowserChrome: 3},
		4,
	)

	report := builder.Build(snapshot)

	expected := []models.BrowserShare{
		{Browser: models.BrowserChrome, Count: 3, Percentage: 75},
		{Browser: models.BrowserFirefox, Count: 1, Percentage: 25},
	}
	assert.Equal(t, expected, report.BrowserUsage)
}

func TestReportBuilder_Build_BrowserOrderIsAlphabetical(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()
	snapshot := snapshotOf(
		map[string]int64{"k": 5},
		map[string]int64{"book": 5},
		map[models.Browser]int64{
			models.BrowserSafari:  1,
			models.BrowserOpera:   1,
			models.BrowserIE:      1,
			models.BrowserFirefox: 1,
			models.BrowserChrome:  1,
		},
		5,
	)

	report := builder.Build(snapshot)

	var order []models.Browser
	for _, share := range report.BrowserUsage {
		order = append(order, share.Browser)
		assert.InDelta(t, 20.0, share.Percentage, 1e-9)
	}
	assert.Equal(t, []models.Browser{
		models.BrowserChrome,
		models.BrowserFirefox,
		models.BrowserIE,
		models.BrowserOpera,
		models.BrowserSafari,
	}, order)
}

func TestReportBuilder_Build_EmptySnapshot(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()

	report := builder.Build(models.NewEmptyUsageSnapshot())
	assert.Nil(t, report.TopAPIKey)
	assert.Empty(t, report.TopAPIServices)
	assert.Empty(t, report.BrowserUsage)
}

func TestReportBuilder_Build_ZeroTotalDoesNotDivide(t *testing.T) {
	t.Parallel()

	builder := NewReportBuilder()
	// inconsistent on purpose: browser entries without a total
	snapshot := snapshotOf(
		map[string]int64{},
		map[string]int64{},
		map[models.Browser]int64{models.BrowserIE: 2},
		0,
	)

	report := builder.Build(snapshot)
	require.Len(t, report.BrowserUsage, 1)
	assert.Equal(t, 0.0, report.BrowserUsage[0].Percentage)
}
