package events

import (
	"context"
	"encoding/json"
	"fmt"

	"token-mint-engine/config"
	"token-mint-engine/internal/core/domain"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const tokenMintedSubjectPrefix = "token.minted."

// NATSPublisher implements ports.EventPublisher over a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
	log  zerolog.Logger
}

// NewNATSPublisher connects to the broker and returns a publisher.
func NewNATSPublisher(cfg config.NATSConfig, log zerolog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Timeout(cfg.Timeout),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	log.Info().Str("url", cfg.URL).Msg("NATS connection established")
	return &NATSPublisher{conn: conn, log: log}, nil
}

// PublishTokenMinted emits a TOKEN_MINTED event on token.minted.<tokenId>.
func (p *NATSPublisher) PublishTokenMinted(_ context.Context, event domain.TokenMintedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal token minted event: %w", err)
	}
	if err := p.conn.Publish(tokenMintedSubjectPrefix+event.TokenID, payload); err != nil {
		return fmt.Errorf("publish token minted event: %w", err)
	}
	p.log.Debug().
		Str("token_id", event.TokenID).
		Int64("amount", event.Amount).
		Msg("token minted event published")
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() {
	p.conn.Close()
}

// Conn exposes the underlying connection so consumers can share it.
func (p *NATSPublisher) Conn() *nats.Conn {
	return p.conn
}

// Ping implements ports.HealthChecker.
func (p *NATSPublisher) Ping(_ context.Context) error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats connection down: %s", p.conn.Status())
	}
	return nil
}

// Name returns the dependency name.
func (p *NATSPublisher) Name() string {
	return "nats"
}

// NopPublisher discards events. Used in dry-run mode and tests.
type NopPublisher struct{}

// PublishTokenMinted discards the event.
func (NopPublisher) PublishTokenMinted(context.Context, domain.TokenMintedEvent) error {
	return nil
}
