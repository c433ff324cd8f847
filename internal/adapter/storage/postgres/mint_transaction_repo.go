package postgres

import (
	"context"
	"fmt"

	"token-mint-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MintTransactionRepo implements ports.MintTransactionRepository.
type MintTransactionRepo struct {
	pool Pool
}

// NewMintTransactionRepo creates a new MintTransactionRepo.
func NewMintTransactionRepo(pool Pool) *MintTransactionRepo {
	return &MintTransactionRepo{pool: pool}
}

const mintTxColumns = `id, mint_request_id, policy_id, amount, mint_status, transfer_status, serials, error, created_at`

// CreateBatch inserts planned batch rows within a database transaction, so a
// partially persisted plan can never be observed.
func (r *MintTransactionRepo) CreateBatch(ctx context.Context, tx pgx.Tx, rows []*domain.MintTransaction) error {
	query := `INSERT INTO mint_transactions (` + mintTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, row := range rows {
		_, err := tx.Exec(ctx, query,
			row.ID, row.MintRequestID, row.PolicyID, row.Amount,
			row.MintStatus, row.TransferStatus, row.Serials, row.Error, row.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert mint transaction: %w", err)
		}
	}
	return nil
}

// Update persists the mutable state of one batch row. Rows are row-scoped:
// no two executors touch the same row concurrently, so a plain update is safe.
func (r *MintTransactionRepo) Update(ctx context.Context, row *domain.MintTransaction) error {
	return r.update(ctx, r.pool, row)
}

// UpdateTx persists one batch row within a database transaction.
func (r *MintTransactionRepo) UpdateTx(ctx context.Context, tx pgx.Tx, row *domain.MintTransaction) error {
	return r.update(ctx, tx, row)
}

func (r *MintTransactionRepo) update(ctx context.Context, ex dbExecutor, row *domain.MintTransaction) error {
	query := `UPDATE mint_transactions SET
		mint_status = $1, transfer_status = $2, serials = $3, error = $4
		WHERE id = $5`

	tag, err := ex.Exec(ctx, query,
		row.MintStatus, row.TransferStatus, row.Serials, row.Error, row.ID,
	)
	if err != nil {
		return fmt.Errorf("update mint transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mint transaction not found: %s", row.ID)
	}
	return nil
}

// ListByRequest fetches all batch rows of a request.
func (r *MintTransactionRepo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.MintTransaction, error) {
	query := `SELECT ` + mintTxColumns + ` FROM mint_transactions
		WHERE mint_request_id = $1 ORDER BY created_at`

	return r.list(ctx, query, requestID)
}

// ListMintable fetches rows whose mint phase is eligible for submission,
// skipping the excluded ids so a paging caller can advance past rows it
// already attempted.
func (r *MintTransactionRepo) ListMintable(ctx context.Context, requestID uuid.UUID, limit int, exclude []uuid.UUID) ([]domain.MintTransaction, error) {
	query := `SELECT ` + mintTxColumns + ` FROM mint_transactions
		WHERE mint_request_id = $1 AND mint_status IN ('NEW', 'ERROR') AND id <> ALL($2)
		ORDER BY created_at LIMIT $3`

	return r.list(ctx, query, requestID, excludeSet(exclude), limit)
}

// ListTransferable fetches mint-complete rows whose transfer phase is
// eligible for submission, skipping the excluded ids.
func (r *MintTransactionRepo) ListTransferable(ctx context.Context, requestID uuid.UUID, limit int, exclude []uuid.UUID) ([]domain.MintTransaction, error) {
	query := `SELECT ` + mintTxColumns + ` FROM mint_transactions
		WHERE mint_request_id = $1 AND mint_status = 'SUCCESS' AND transfer_status IN ('NEW', 'ERROR') AND id <> ALL($2)
		ORDER BY created_at LIMIT $3`

	return r.list(ctx, query, requestID, excludeSet(exclude), limit)
}

// excludeSet normalizes a nil exclusion to an empty array. A nil slice would
// reach postgres as NULL, and `id <> ALL(NULL)` filters out every row.
func excludeSet(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

// CountByRequest counts all batch rows of a request.
func (r *MintTransactionRepo) CountByRequest(ctx context.Context, requestID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM mint_transactions WHERE mint_request_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, requestID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count mint transactions: %w", err)
	}
	return count, nil
}

// MintedSerialCount sums the ledger-assigned serials across all rows.
func (r *MintTransactionRepo) MintedSerialCount(ctx context.Context, requestID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(cardinality(serials)), 0) FROM mint_transactions WHERE mint_request_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, requestID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count minted serials: %w", err)
	}
	return count, nil
}

// HasPending reports whether any row of the request has an unresolved
// in-flight phase.
func (r *MintTransactionRepo) HasPending(ctx context.Context, requestID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM mint_transactions
		WHERE mint_request_id = $1 AND (mint_status = 'PENDING' OR transfer_status = 'PENDING'))`

	var pending bool
	if err := r.pool.QueryRow(ctx, query, requestID).Scan(&pending); err != nil {
		return false, fmt.Errorf("check pending mint transactions: %w", err)
	}
	return pending, nil
}

func (r *MintTransactionRepo) list(ctx context.Context, query string, args ...any) ([]domain.MintTransaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mint transactions: %w", err)
	}
	defer rows.Close()

	var result []domain.MintTransaction
	for rows.Next() {
		t := domain.MintTransaction{}
		err := rows.Scan(
			&t.ID, &t.MintRequestID, &t.PolicyID, &t.Amount,
			&t.MintStatus, &t.TransferStatus, &t.Serials, &t.Error, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan mint transaction row: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mint transaction rows: %w", err)
	}
	return result, nil
}
