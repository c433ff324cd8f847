package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// TokenConfigResolverImpl implements ports.TokenConfigResolver.
type TokenConfigResolverImpl struct {
	custody ports.KeyCustody
	log     zerolog.Logger
}

// NewTokenConfigResolver creates a new TokenConfigResolverImpl.
func NewTokenConfigResolver(custody ports.KeyCustody, log zerolog.Logger) *TokenConfigResolverImpl {
	return &TokenConfigResolverImpl{custody: custody, log: log}
}

// Resolve produces the signing material for one mint attempt. Dry-run
// synthesizes one ephemeral key used as both treasury and supply key,
// consistent within the attempt and never persisted. Live mode fetches the
// keys from custody, all lookups issued concurrently.
func (r *TokenConfigResolverImpl) Resolve(ctx context.Context, token *domain.Token, dryRun bool) (*domain.TokenConfig, error) {
	cfg := &domain.TokenConfig{
		TokenID:   token.TokenID,
		TokenName: token.TokenName,
		TokenType: token.TokenType,
		Treasury:  token.Treasury,
	}

	if dryRun {
		key, err := ephemeralKey()
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("generate ephemeral key: %w", err))
		}
		cfg.TreasuryKey = key
		cfg.SupplyKey = key
		if token.WipeEnabled {
			cfg.WipeKey = key
		}
		return cfg, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		key, err := r.custody.GetKey(gctx, token.Owner, ports.KeyTypeTreasury, token.TokenID)
		if err != nil {
			return fmt.Errorf("treasury key: %w", err)
		}
		cfg.TreasuryKey = key
		return nil
	})
	g.Go(func() error {
		key, err := r.custody.GetKey(gctx, token.Owner, ports.KeyTypeSupply, token.TokenID)
		if err != nil {
			return fmt.Errorf("supply key: %w", err)
		}
		cfg.SupplyKey = key
		return nil
	})
	if token.WipeEnabled {
		g.Go(func() error {
			key, err := r.custody.GetKey(gctx, token.Owner, ports.KeyTypeWipe, token.TokenID)
			if err != nil {
				return fmt.Errorf("wipe key: %w", err)
			}
			cfg.WipeKey = key
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.log.Error().Err(err).Str("token_id", token.TokenID).Msg("key custody lookup failed")
		return nil, apperror.ErrKeyResolution(err)
	}

	return cfg, nil
}

func ephemeralKey() (string, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(priv.Seed()), nil
}
