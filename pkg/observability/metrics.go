// Package observability provides metrics and tracing helpers.
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics publishes application metrics to CloudWatch. Data points are
// buffered and flushed in batches to keep PutMetricData calls off the hot
// path.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client

	mu     sync.Mutex
	buffer []types.MetricDatum
}

// maxBatchSize is the CloudWatch PutMetricData limit per call
const maxBatchSize = 20

// NewMetrics creates a CloudWatch metrics publisher
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// Increment adds one to a counter metric
func (m *Metrics) Increment(name string, dimensions ...string) {
	m.record(types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(1),
		Unit:       types.StandardUnitCount,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: toDimensions(dimensions),
	})
}

// RecordDuration records an elapsed time metric
func (m *Metrics) RecordDuration(name string, d time.Duration, dimensions ...string) {
	m.record(types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(float64(d.Milliseconds())),
		Unit:       types.StandardUnitMilliseconds,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: toDimensions(dimensions),
	})
}

// Timer measures one operation
type Timer struct {
	metrics    *Metrics
	name       string
	dimensions []string
	start      time.Time
}

// StartTimer begins measuring; Stop records the duration
func (m *Metrics) StartTimer(name string, dimensions ...string) *Timer {
	return &Timer{
		metrics:    m,
		name:       name,
		dimensions: dimensions,
		start:      time.Now(),
	}
}

// Stop records the elapsed duration
func (t *Timer) Stop() {
	t.metrics.RecordDuration(t.name, time.Since(t.start), t.dimensions...)
}

// Flush sends all buffered data points
func (m *Metrics) Flush(ctx context.Context) error {
	m.mu.Lock()
	batch := m.buffer
	m.buffer = nil
	m.mu.Unlock()

	for i := 0; i < len(batch); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(batch) {
			end = len(batch)
		}
		_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
			Namespace:  aws.String(m.namespace),
			MetricData: batch[i:end],
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) record(datum types.MetricDatum) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buffer = append(m.buffer, datum)
}

// toDimensions converts key/value pairs to CloudWatch dimensions
func toDimensions(pairs []string) []types.Dimension {
	dims := make([]types.Dimension, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		dims = append(dims, types.Dimension{
			Name:  aws.String(pairs[i]),
			Value: aws.String(pairs[i+1]),
		})
	}
	return dims
}
