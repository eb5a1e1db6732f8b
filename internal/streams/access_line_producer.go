package streams

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"api-usage-analytics/internal/models"
)

const readBufferSize = 64 * 1024

// AccessLineProducer splits an access log into numbered lines and publishes them
// to a partitioned queue. Lines are spread across partitions by line number.
//
//go:generate mockgen -source=access_line_producer.go -destination=./mocks/access_line_producer_mock.go -package=mocks
type AccessLineProducer interface {
	// Produce publishes every line of r and returns how many were published.
	// Lines have no length limit. A read error stops production.
	Produce(ctx context.Context, r io.Reader) (int64, error)
}

type accessLineProducer struct {
	queue *PartitionedQueue[models.AccessLine]
}

func NewAccessLineProducer(queue *PartitionedQueue[models.AccessLine]) AccessLineProducer {
	return &accessLineProducer{
		queue: queue,
	}
}

func (producer *accessLineProducer) Produce(ctx context.Context, r io.Reader) (int64, error) {
	reader := bufio.NewReaderSize(r, readBufferSize)

	var published int64
	for {
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return published, fmt.Errorf("read failed after line %d: %w", published, err)
		}
		// no trailing newline and nothing left: end of input
		if text == "" && err != nil {
			return published, nil
		}

		line := models.AccessLine{
			Number: published + 1,
			Text:   trimLineEnding(text),
		}

		partitionKey := strconv.FormatInt(line.Number, 10)
		if pubErr := producer.queue.Publish(ctx, partitionKey, line); pubErr != nil {
			return published, pubErr
		}
		published++
		metricAccessLinePublishedTotal.WithLabelValues(streamAccessLine).Inc()

		if err != nil {
			return published, nil
		}
	}
}

func trimLineEnding(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}
