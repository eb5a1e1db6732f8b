package reports

import (
	"fmt"
	"strings"

	"api-usage-analytics/internal/models"
)

const entryIndent = "   "

// ReportRenderer turns a UsageReport into the numbered three-section text report.
//
//go:generate mockgen -source=report_renderer.go -destination=./mocks/report_renderer_mock.go -package=mocks
type ReportRenderer interface {
	Render(report *models.UsageReport) string
}

type reportRenderer struct {
	labels Labels
}

func NewReportRenderer(labels Labels) ReportRenderer {
	return &reportRenderer{labels: labels}
}

func (r *reportRenderer) Render(report *models.UsageReport) string {
	var sb strings.Builder

	if report.TopAPIKey != nil {
		fmt.Fprintf(&sb, "1. %s: %s (%s: %d)\n",
			r.labels.TopAPIKey, report.TopAPIKey.Key, r.labels.RequestCount, report.TopAPIKey.Count)
	} else {
		fmt.Fprintf(&sb, "1. %s: %s\n", r.labels.TopAPIKey, r.labels.NoData)
	}

	fmt.Fprintf(&sb, "2. %s:\n", r.labels.TopAPIServices)
	for _, service := range report.TopAPIServices {
		fmt.Fprintf(&sb, "%s%s: %d\n", entryIndent, service.Key, service.Count)
	}

	fmt.Fprintf(&sb, "3. %s:\n", r.labels.BrowserUsage)
	for _, share := range report.BrowserUsage {
		fmt.Fprintf(&sb, "%s%s: %.2f%%\n", entryIndent, share.Browser, share.Percentage)
	}

	return sb.String()
}
