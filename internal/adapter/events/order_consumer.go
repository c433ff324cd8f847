package events

import (
	"context"
	"encoding/json"
	"fmt"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const (
	mintOrderSubject = "token.mint.order"
	mintRetrySubject = "token.mint.retry"
	consumerQueue    = "mint-engine"
)

// OrderConsumer drives the coordinator from inbound NATS messages. Order and
// retry subjects use a queue group so multiple engine instances share the
// stream; the single-flight guard and the store-level idempotency make
// duplicate deliveries harmless.
type OrderConsumer struct {
	conn  *nats.Conn
	coord ports.MintCoordinator
	subs  []*nats.Subscription
	log   zerolog.Logger
}

// NewOrderConsumer creates a new OrderConsumer on an existing connection.
func NewOrderConsumer(conn *nats.Conn, coord ports.MintCoordinator, log zerolog.Logger) *OrderConsumer {
	return &OrderConsumer{conn: conn, coord: coord, log: log}
}

// Start subscribes to the order and retry subjects.
func (c *OrderConsumer) Start(ctx context.Context) error {
	orderSub, err := c.conn.QueueSubscribe(mintOrderSubject, consumerQueue, func(msg *nats.Msg) {
		go c.handleOrder(ctx, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", mintOrderSubject, err)
	}
	c.subs = append(c.subs, orderSub)

	retrySub, err := c.conn.QueueSubscribe(mintRetrySubject, consumerQueue, func(msg *nats.Msg) {
		go c.handleRetry(ctx, string(msg.Data))
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", mintRetrySubject, err)
	}
	c.subs = append(c.subs, retrySub)

	c.log.Info().
		Str("order_subject", mintOrderSubject).
		Str("retry_subject", mintRetrySubject).
		Msg("mint order consumer started")
	return nil
}

// Stop unsubscribes from all subjects.
func (c *OrderConsumer) Stop() {
	for _, sub := range c.subs {
		if err := sub.Unsubscribe(); err != nil {
			c.log.Warn().Err(err).Str("subject", sub.Subject).Msg("unsubscribe failed")
		}
	}
	c.subs = nil
}

func (c *OrderConsumer) handleOrder(ctx context.Context, data []byte) {
	var order domain.MintOrder
	if err := json.Unmarshal(data, &order); err != nil {
		c.log.Error().Err(err).Msg("malformed mint order discarded")
		return
	}

	if _, err := c.coord.Register(ctx, order); err != nil {
		c.log.Error().Err(err).Str("vp_message_id", order.VPMessageID).Msg("mint order rejected")
		return
	}
	if _, err := c.coord.Process(ctx, order.VPMessageID); err != nil {
		c.log.Error().Err(err).Str("vp_message_id", order.VPMessageID).Msg("mint processing failed")
	}
}

func (c *OrderConsumer) handleRetry(ctx context.Context, requestKey string) {
	if _, err := c.coord.Retry(ctx, requestKey); err != nil {
		c.log.Error().Err(err).Str("vp_message_id", requestKey).Msg("mint retry failed")
	}
}
