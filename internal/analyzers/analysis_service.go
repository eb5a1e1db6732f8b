package analyzers

import (
	"context"
	"time"

	"api-usage-analytics/internal/aggregators"
	"api-usage-analytics/internal/models"
	"api-usage-analytics/internal/parsers"
	"api-usage-analytics/internal/reports"
	"api-usage-analytics/internal/shared/loggers"
	"api-usage-analytics/internal/shared/metrics"
	"api-usage-analytics/internal/shared/svcerrors"
	"api-usage-analytics/internal/stores"
	"api-usage-analytics/internal/streams"
)

// Options tunes how an analysis run reads and processes lines.
type Options struct {
	Workers int
}

// AnalysisResult describes a completed run.
type AnalysisResult struct {
	Snapshot     *models.UsageSnapshot
	Report       *models.UsageReport
	OutputPath   string
	BytesWritten int64
}

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze reads the access log at inputPath, aggregates it and writes the report to outputPath.
	// A read failure aborts the run before anything is written.
	Analyze(ctx context.Context, inputPath string, outputPath string) (*AnalysisResult, error)
}

type analysisService struct {
	accessLogSource stores.AccessLogSource
	reportStore     stores.ReportStore
	parser          parsers.AccessLogParser
	reportBuilder   reports.ReportBuilder
	options         Options
}

func NewAnalysisService(accessLogSource stores.AccessLogSource, reportStore stores.ReportStore, parser parsers.AccessLogParser, reportBuilder reports.ReportBuilder, options Options) AnalysisService {
	return &analysisService{
		accessLogSource: accessLogSource,
		reportStore:     reportStore,
		parser:          parser,
		reportBuilder:   reportBuilder,
		options:         options,
	}
}

func (s *analysisService) Analyze(ctx context.Context, inputPath string, outputPath string) (*AnalysisResult, error) {
	start := time.Now()
	result, svcErr := s.analyze(ctx, inputPath, outputPath)

	errorCode := metrics.ValueNoError
	if svcErr != nil {
		errorCode = svcErr.Code
	}
	metricAnalysisRunTotal.WithLabelValues(errorCode).Inc()
	metricAnalysisRunDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())

	if svcErr != nil {
		return nil, svcErr
	}
	return result, nil
}

func (s *analysisService) analyze(ctx context.Context, inputPath string, outputPath string) (*AnalysisResult, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldInputPath, inputPath).
		Str(loggers.FieldOutputPath, outputPath).
		Int("workers", s.options.Workers).
		Msg("started analyzing access log")

	start := time.Now()
	snapshot, svcErr := s.aggregate(ctx, inputPath)
	if svcErr != nil {
		return nil, svcErr
	}

	report := s.reportBuilder.Build(snapshot)

	putResult, err := s.reportStore.Save(ctx, outputPath, report)
	if err != nil {
		return nil, errInternalOutputWriteFailed(err)
	}

	if snapshot.IsEmpty() {
		logger.Warn().
			Str(loggers.FieldInputPath, inputPath).
			Int64("lines_processed", snapshot.TotalLinesProcessed).
			Msg("no qualifying requests found, report has no data")
	}

	logger.Info().
		Str(loggers.FieldOutputPath, outputPath).
		Dur(loggers.FieldDuration, time.Since(start)).
		Int64("lines_processed", snapshot.TotalLinesProcessed).
		Int64("qualifying_requests", snapshot.TotalQualifyingRequests).
		Int64("filtered_lines", snapshot.FilteredLines).
		Int64("excluded_lines", snapshot.ExcludedLines).
		Msgf("log analysis completed, report saved to %s", outputPath)

	return &AnalysisResult{
		Snapshot:     snapshot,
		Report:       report,
		OutputPath:   putResult.Path,
		BytesWritten: putResult.BytesWritten,
	}, nil
}

// aggregate streams every line of the access log through the worker pool and returns the
// final counters once all workers have finished.
func (s *analysisService) aggregate(ctx context.Context, inputPath string) (*models.UsageSnapshot, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)

	accessLog, err := s.accessLogSource.Open(ctx, inputPath)
	if err != nil {
		return nil, errInternalInputReadFailed(err)
	}
	defer func() { _ = accessLog.Close() }()

	aggregator := aggregators.NewUsageAggregator()
	queue := streams.NewPartitionedQueue[models.AccessLine](s.options.Workers)
	consumer := streams.NewAccessLineConsumer(queue, &lineProcessor{parser: s.parser, aggregator: aggregator}, *logger)
	producer := streams.NewAccessLineProducer(queue)

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()
	consumer.Start(workerCtx)

	_, err = producer.Produce(ctx, accessLog)
	queue.Close()
	if err != nil {
		// partial counts are discarded, nothing is reported for a broken input
		cancelWorkers()
		_ = consumer.Wait()
		return nil, errInternalInputReadFailed(err)
	}

	if err := consumer.Wait(); err != nil {
		return nil, errInternalLineProcessingFailed(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errInternalInputReadFailed(err)
	}

	return aggregator.Snapshot(), nil
}
