package app

import (
	"context"
	"fmt"

	"api-usage-analytics/internal/analyzers"
	"api-usage-analytics/internal/parsers"
	"api-usage-analytics/internal/reports"
	"api-usage-analytics/internal/shared/configs"
	"api-usage-analytics/internal/shared/filestorages"
	"api-usage-analytics/internal/shared/loggers"
	"api-usage-analytics/internal/shared/metrics"
	"api-usage-analytics/internal/shared/svcerrors"
	"api-usage-analytics/internal/shared/ulid"
	"api-usage-analytics/internal/stores"
)

const appName = "api-usage-analytics"

// App holds all application dependencies of one analyzer process.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	analysisService analyzers.AnalysisService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	return newWithLogger(config, appLogger)
}

func newWithLogger(config *configs.Config, appLogger loggers.Logger) (*App, error) {
	labels, err := reports.LabelsFor(config.Report.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report labels: %w", err)
	}

	fileStorage := filestorages.NewFileStorage()

	// Initialize stores
	accessLogSource := stores.NewAccessLogSource(fileStorage)
	reportStore := stores.NewReportStore(fileStorage, reports.NewReportRenderer(labels))

	// Initialize analysis service
	analysisService := analyzers.NewAnalysisService(
		accessLogSource,
		reportStore,
		parsers.NewAccessLogParser(),
		reports.NewReportBuilder(),
		analyzers.Options{
			Workers: config.Analysis.Workers,
		},
	)

	return &App{
		config:          config,
		appLogger:       appLogger,
		analysisService: analysisService,
	}, nil
}

// Run analyzes the configured access log once and writes the report.
// The returned error is always a *svcerrors.ServiceError carrying the process exit code.
func (app *App) Run(ctx context.Context) error {
	runLogger := app.appLogger.With().
		Str(loggers.FieldComponent, "analyzer").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().
		Msgf("Starting %s (log_level=%s, input=%s, output=%s, workers=%d, locale=%s)",
			appName,
			app.config.Log.Level,
			app.config.Input.Path,
			app.config.Output.Path,
			app.config.Analysis.Workers,
			app.config.Report.Locale)

	_, err := app.analysisService.Analyze(ctx, app.config.Input.Path, app.config.Output.Path)
	app.exportMetrics(runLogger)
	if err == nil {
		return nil
	}

	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	runLogger.Error().
		Err(svcErr.Cause).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str(loggers.FieldInputPath, app.config.Input.Path).
		Str(loggers.FieldOutputPath, app.config.Output.Path).
		Msg(svcErr.Message)
	return svcErr
}

// exportMetrics writes the run's metrics for the node_exporter textfile collector when configured.
// A failed export does not fail the run.
func (app *App) exportMetrics(logger loggers.Logger) {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Warn().Err(err).Str("metrics_path", path).Msg("failed to write metrics textfile")
	}
}
