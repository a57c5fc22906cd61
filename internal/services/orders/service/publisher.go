package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/EleazarRosete/lolos-place-backend/internal/connections/rabbitmq"
	"github.com/EleazarRosete/lolos-place-backend/internal/events"
)

// RabbitPublisher publishes order events to the orders topic exchange.
type RabbitPublisher struct {
	client *rabbitmq.Client
}

func NewRabbitPublisher(client *rabbitmq.Client) *RabbitPublisher {
	return &RabbitPublisher{client: client}
}

func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, evt events.OrderPlaced) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal order placed event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := fmt.Sprintf("%s.%s", rabbitmq.OrderPlacedKeyPrefix, strings.ToLower(evt.OrderType))
	return p.client.PublishPersistent(ctx, rabbitmq.OrdersExchange, key, body)
}
