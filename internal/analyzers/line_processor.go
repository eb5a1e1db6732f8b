package analyzers

import (
	"context"

	"api-usage-analytics/internal/aggregators"
	"api-usage-analytics/internal/models"
	"api-usage-analytics/internal/parsers"
	"api-usage-analytics/internal/shared/loggers"
)

// lineProcessor parses one access line and merges it into the run's aggregator.
type lineProcessor struct {
	parser     parsers.AccessLogParser
	aggregator aggregators.UsageAggregator
}

func (p *lineProcessor) HandleLine(ctx context.Context, line models.AccessLine) {
	record, ok := p.parser.Parse(line.Text)
	if !ok {
		loggers.Ctx(ctx).Warn().
			Int64(loggers.FieldLineNumber, line.Number).
			Str(loggers.FieldLine, line.Text).
			Msg("line excluded from analysis: does not match access log format")
		p.aggregator.RecordExcluded()
		return
	}

	if !p.aggregator.Update(record) {
		loggers.Ctx(ctx).Debug().
			Int64(loggers.FieldLineNumber, line.Number).
			Str(loggers.FieldStatusCode, record.StatusCode).
			Msg("line filtered: status is not 200")
	}
}
