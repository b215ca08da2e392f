package gateway

import (
	"context"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/constants"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/pkg/nsq"
	"github.com/tyrehub/tyrehub/internal/pkg/retry"
)

// EventGW publishes appointment state changes to NSQ
type EventGW struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewEventGW creates a new appointment event gateway instance
func NewEventGW(producer *nsq.Producer, retrier *retry.Retrier) *EventGW {
	return &EventGW{producer: producer, retrier: retrier}
}

// PublishEvent publishes one event on the appointment topic
func (g *EventGW) PublishEvent(ctx context.Context, event models.AppointmentEvent) error {
	err := g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(constants.TopicAppointmentEvents, event)
	})
	if err != nil {
		return fmt.Errorf("failed to publish appointment event: %w", err)
	}
	return nil
}
