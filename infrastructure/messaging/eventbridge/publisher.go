// Package eventbridge publishes domain events to an AWS EventBridge bus so
// downstream consumers (audit, analytics, paging) can react without coupling
// to this service.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"

	"mentcare/application/ports"
	"mentcare/domain/events"
	pkgerrors "mentcare/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

const eventSource = "mentcare"

// Publisher sends domain events to EventBridge
type Publisher struct {
	client  *awseventbridge.Client
	busName string
	logger  *zap.Logger
}

// NewPublisher creates an EventBridge publisher for the given bus
func NewPublisher(client *awseventbridge.Client, busName string, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  logger,
	}
}

var _ ports.EventPublisher = (*Publisher)(nil)

// Publish sends a batch of events. EventBridge accepts at most 10 entries
// per call, so larger batches are split.
func (p *Publisher) Publish(ctx context.Context, payloads ...interface{}) error {
	if len(payloads) == 0 {
		return nil
	}

	entries := make([]types.PutEventsRequestEntry, 0, len(payloads))
	for _, payload := range payloads {
		detail, err := json.Marshal(payload)
		if err != nil {
			return pkgerrors.NewDeliveryError("eventbridge", err)
		}

		detailType := "DomainEvent"
		if event, ok := payload.(events.DomainEvent); ok {
			detailType = event.GetEventType()
		}

		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.busName),
			Source:       aws.String(eventSource),
			DetailType:   aws.String(detailType),
			Detail:       aws.String(string(detail)),
		})
	}

	for i := 0; i < len(entries); i += 10 {
		end := i + 10
		if end > len(entries) {
			end = len(entries)
		}

		result, err := p.client.PutEvents(ctx, &awseventbridge.PutEventsInput{
			Entries: entries[i:end],
		})
		if err != nil {
			return pkgerrors.NewDeliveryError("eventbridge", err)
		}
		if result.FailedEntryCount > 0 {
			return pkgerrors.NewDeliveryError("eventbridge",
				fmt.Errorf("%d entries failed to publish", result.FailedEntryCount))
		}
	}

	p.logger.Debug("Published domain events", zap.Int("count", len(entries)))
	return nil
}

// NoopPublisher drops events. Wired when no bus is configured, so handlers
// never need a nil check.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops all events
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

var _ ports.EventPublisher = NoopPublisher{}

// Publish drops the events
func (NoopPublisher) Publish(ctx context.Context, payloads ...interface{}) error {
	return nil
}
