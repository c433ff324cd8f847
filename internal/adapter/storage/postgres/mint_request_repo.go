package postgres

import (
	"context"
	"errors"
	"fmt"

	"token-mint-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// dbExecutor is satisfied by both Pool and pgx.Tx, so repository writes can
// run standalone or inside a transaction block.
type dbExecutor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// MintRequestRepo implements ports.MintRequestRepository.
type MintRequestRepo struct {
	pool Pool
}

// NewMintRequestRepo creates a new MintRequestRepo.
func NewMintRequestRepo(pool Pool) *MintRequestRepo {
	return &MintRequestRepo{pool: pool}
}

const mintRequestColumns = `id, vp_message_id, token_id, token_type, owner, policy_id, amount, target,
	memo, relayer_account, is_mint_needed, is_transfer_needed, was_transfer_needed,
	start_transaction, start_serial, error, process_date, created_at`

// Create inserts a new mint request.
func (r *MintRequestRepo) Create(ctx context.Context, req *domain.MintRequest) error {
	query := `INSERT INTO mint_requests (` + mintRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.VPMessageID, req.TokenID, req.TokenType, req.Owner, req.PolicyID,
		req.Amount, req.Target, req.Memo, req.RelayerAccount,
		req.IsMintNeeded, req.IsTransferNeeded, req.WasTransferNeeded,
		req.StartTransaction, req.StartSerial, req.Error, req.ProcessDate, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert mint request: %w", err)
	}
	return nil
}

// GetByMessageID fetches a mint request by its correlation key.
// Returns nil, nil when no request exists for the key.
func (r *MintRequestRepo) GetByMessageID(ctx context.Context, vpMessageID string) (*domain.MintRequest, error) {
	query := `SELECT ` + mintRequestColumns + ` FROM mint_requests WHERE vp_message_id = $1`

	return r.scanMintRequest(r.pool.QueryRow(ctx, query, vpMessageID))
}

// Update persists the mutable state of a mint request.
func (r *MintRequestRepo) Update(ctx context.Context, req *domain.MintRequest) error {
	return r.update(ctx, r.pool, req)
}

// UpdateTx persists the mutable state of a mint request within a database
// transaction.
func (r *MintRequestRepo) UpdateTx(ctx context.Context, tx pgx.Tx, req *domain.MintRequest) error {
	return r.update(ctx, tx, req)
}

func (r *MintRequestRepo) update(ctx context.Context, ex dbExecutor, req *domain.MintRequest) error {
	query := `UPDATE mint_requests SET
		is_mint_needed = $1, is_transfer_needed = $2, was_transfer_needed = $3,
		start_transaction = $4, start_serial = $5, error = $6, process_date = $7
		WHERE id = $8`

	tag, err := ex.Exec(ctx, query,
		req.IsMintNeeded, req.IsTransferNeeded, req.WasTransferNeeded,
		req.StartTransaction, req.StartSerial, req.Error, req.ProcessDate, req.ID,
	)
	if err != nil {
		return fmt.Errorf("update mint request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mint request not found: %s", req.ID)
	}
	return nil
}

// scanMintRequest scans a single row into a MintRequest.
func (r *MintRequestRepo) scanMintRequest(row pgx.Row) (*domain.MintRequest, error) {
	req := &domain.MintRequest{}
	err := row.Scan(
		&req.ID, &req.VPMessageID, &req.TokenID, &req.TokenType, &req.Owner, &req.PolicyID,
		&req.Amount, &req.Target, &req.Memo, &req.RelayerAccount,
		&req.IsMintNeeded, &req.IsTransferNeeded, &req.WasTransferNeeded,
		&req.StartTransaction, &req.StartSerial, &req.Error, &req.ProcessDate, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan mint request: %w", err)
	}
	return req, nil
}
