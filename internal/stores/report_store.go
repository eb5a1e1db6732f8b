package stores

import (
	"context"
	"fmt"
	"strings"

	"api-usage-analytics/internal/models"
	"api-usage-analytics/internal/reports"
	"api-usage-analytics/internal/shared/filestorages"
)

//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Save renders report and replaces the file at path with it.
	// On failure the previous file content, if any, is left untouched.
	Save(ctx context.Context, path string, report *models.UsageReport) (*filestorages.PutResult, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	renderer    reports.ReportRenderer
}

func NewReportStore(fileStorage filestorages.FileStorage, renderer reports.ReportRenderer) ReportStore {
	return &reportStore{
		fileStorage: fileStorage,
		renderer:    renderer,
	}
}

func (s *reportStore) Save(ctx context.Context, path string, report *models.UsageReport) (*filestorages.PutResult, error) {
	text := s.renderer.Render(report)

	result, err := s.fileStorage.Put(ctx, path, strings.NewReader(text), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return nil, fmt.Errorf("failed to put report: %w", err)
	}

	metricReportWrittenBytes.WithLabelValues().Observe(float64(result.BytesWritten))
	return result, nil
}
