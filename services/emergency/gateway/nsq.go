package gateway

import (
	"context"
	"fmt"

	"github.com/tyrehub/tyrehub/internal/pkg/constants"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/pkg/nsq"
	"github.com/tyrehub/tyrehub/internal/pkg/retry"
)

// NotifierGW publishes emergency notifications to NSQ
type NotifierGW struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewNotifierGW creates a new notification gateway instance
func NewNotifierGW(producer *nsq.Producer, retrier *retry.Retrier) *NotifierGW {
	return &NotifierGW{producer: producer, retrier: retrier}
}

// NotifyShop publishes one notification on the dispatch topic
func (g *NotifierGW) NotifyShop(ctx context.Context, notification models.EmergencyNotification) error {
	err := g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(constants.TopicEmergencyDispatch, notification)
	})
	if err != nil {
		return fmt.Errorf("failed to publish emergency notification: %w", err)
	}
	return nil
}
