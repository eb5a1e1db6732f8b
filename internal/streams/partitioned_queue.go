package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"sync"
)

// PartitionedQueue fans messages out to a fixed set of buffered channels.
// Messages with the same partition key always land on the same partition.
type PartitionedQueue[T any] struct {
	partitions []chan T
	closeOnce  sync.Once
}

const (
	defaultBuffer = 1024
)

func NewPartitionedQueue[T any](numPartitions int) *PartitionedQueue[T] {
	return newPartitionedQueue[T](numPartitions, defaultBuffer)
}

func newPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions < 1 {
		numPartitions = 1
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish blocks until the partition accepts msg or ctx is done.
// Publishing after Close panics.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close signals consumers that no more messages will be published. Safe to call twice.
func (queue *PartitionedQueue[T]) Close() {
	queue.closeOnce.Do(func() {
		for _, ch := range queue.partitions {
			close(ch)
		}
	})
}

func (queue *PartitionedQueue[T]) partition(idx int) <-chan T {
	return queue.partitions[idx]
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
