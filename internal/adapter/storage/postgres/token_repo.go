package postgres

import (
	"context"
	"errors"
	"fmt"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.TokenRegistry over the tokens table.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// GetToken fetches a token's metadata by its ledger identifier.
func (r *TokenRepo) GetToken(ctx context.Context, tokenID string) (*domain.Token, error) {
	query := `SELECT token_id, token_name, token_type, owner, treasury, wipe_enabled
		FROM tokens WHERE token_id = $1`

	var token domain.Token
	err := r.pool.QueryRow(ctx, query, tokenID).Scan(
		&token.TokenID, &token.TokenName, &token.TokenType,
		&token.Owner, &token.Treasury, &token.WipeEnabled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.New("TKN_001", fmt.Sprintf("Token %q not registered", tokenID), apperror.KindInternal)
		}
		return nil, fmt.Errorf("select token: %w", err)
	}
	return &token, nil
}

// Upsert registers or refreshes a token's metadata.
func (r *TokenRepo) Upsert(ctx context.Context, token *domain.Token) error {
	query := `INSERT INTO tokens (token_id, token_name, token_type, owner, treasury, wipe_enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (token_id) DO UPDATE SET
			token_name = EXCLUDED.token_name,
			owner = EXCLUDED.owner,
			treasury = EXCLUDED.treasury,
			wipe_enabled = EXCLUDED.wipe_enabled`

	_, err := r.pool.Exec(ctx, query,
		token.TokenID, token.TokenName, token.TokenType,
		token.Owner, token.Treasury, token.WipeEnabled,
	)
	if err != nil {
		return fmt.Errorf("upsert token: %w", err)
	}
	return nil
}
