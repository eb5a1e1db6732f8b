package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"api-usage-analytics/internal/models"
	"api-usage-analytics/internal/shared/loggers"
	"api-usage-analytics/internal/shared/metrics"
	"api-usage-analytics/internal/shared/svcerrors"
)

// AccessLineHandler processes one access log line. It is called concurrently from
// every partition worker.
//
//go:generate mockgen -source=access_line_consumer.go -destination=./mocks/access_line_consumer_mock.go -package=mocks
type AccessLineHandler interface {
	HandleLine(ctx context.Context, line models.AccessLine)
}

// AccessLineConsumer drains a PartitionedQueue of access lines with one worker per partition.
type AccessLineConsumer interface {
	Start(ctx context.Context)
	// Wait blocks until every worker has drained its closed partition or stopped on ctx.
	// It returns the first recovered handler panic, if any.
	Wait() error
}

type accessLineConsumer struct {
	queue   *PartitionedQueue[models.AccessLine]
	handler AccessLineHandler

	wg sync.WaitGroup

	errOnce  sync.Once
	panicErr error

	logger loggers.Logger
}

func NewAccessLineConsumer(queue *PartitionedQueue[models.AccessLine], handler AccessLineHandler, logger loggers.Logger) AccessLineConsumer {
	return &accessLineConsumer{
		queue:   queue,
		handler: handler,
		logger:  logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *accessLineConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

func (consumer *accessLineConsumer) Wait() error {
	consumer.wg.Wait()
	return consumer.panicErr
}

func (consumer *accessLineConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan models.AccessLine) {
	workerCtx := consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Logger().WithContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(workerCtx, partitionIndex, line)
		}
	}
}

func (consumer *accessLineConsumer) handle(ctx context.Context, partitionIndex int, line models.AccessLine) {
	partitionID := strconv.Itoa(partitionIndex)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Int64(loggers.FieldLineNumber, line.Number).
				Msg("line handler panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(fmt.Errorf("line %d: %w", line.Number, panicErr))
			metricAccessLineConsumedTotal.WithLabelValues(partitionID, svcErr.Code).Inc()
			consumer.errOnce.Do(func() { consumer.panicErr = svcErr })
		}
	}()

	consumer.handler.HandleLine(ctx, line)
	metricAccessLineConsumedTotal.WithLabelValues(partitionID, metrics.ValueNoError).Inc()
}
