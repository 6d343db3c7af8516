package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"turismo/pkg/kafka"
)

// Metrics counts producer activity.
type Metrics struct {
	MessagesPublished       int64
	MessagesPublishedFailed int64
	PublishDurationTotal    int64 // Nanoseconds
}

// Snapshot is a point-in-time copy of Metrics suitable for JSON output.
type Snapshot struct {
	Published          int64  `json:"published"`
	Failed             int64  `json:"failed"`
	AvgPublishDuration string `json:"avg_publish_duration"`
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.MessagesPublished, 0)
	atomic.StoreInt64(&m.MessagesPublishedFailed, 0)
	atomic.StoreInt64(&m.PublishDurationTotal, 0)
}

func (m *Metrics) GetAvgPublishDuration() time.Duration {
	published := atomic.LoadInt64(&m.MessagesPublished)
	if published == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&m.PublishDurationTotal) / published)
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Published:          atomic.LoadInt64(&m.MessagesPublished),
		Failed:             atomic.LoadInt64(&m.MessagesPublishedFailed),
		AvgPublishDuration: m.GetAvgPublishDuration().String(),
	}
}

// MetricsProducerMiddleware records publish counts and latency into m.
func MetricsProducerMiddleware(m *Metrics) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()
		err := next(ctx, msg)

		if err != nil {
			atomic.AddInt64(&m.MessagesPublishedFailed, 1)
			return err
		}
		atomic.AddInt64(&m.MessagesPublished, 1)
		atomic.AddInt64(&m.PublishDurationTotal, int64(time.Since(start)))
		return nil
	}
}
