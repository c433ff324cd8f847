package ports

import (
	"context"
	"time"

	"token-mint-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MintRequestRepository defines persistence operations for mint requests.
// Methods accepting pgx.Tx run inside transaction blocks so that request
// flags and their child rows move atomically.
type MintRequestRepository interface {
	Create(ctx context.Context, req *domain.MintRequest) error
	GetByMessageID(ctx context.Context, vpMessageID string) (*domain.MintRequest, error)
	Update(ctx context.Context, req *domain.MintRequest) error
	UpdateTx(ctx context.Context, tx pgx.Tx, req *domain.MintRequest) error
}

// MintTransactionRepository defines persistence operations for batch units.
// Rows are created once by the planner and mutated in place; they are never
// deleted.
type MintTransactionRepository interface {
	CreateBatch(ctx context.Context, tx pgx.Tx, rows []*domain.MintTransaction) error
	Update(ctx context.Context, row *domain.MintTransaction) error
	UpdateTx(ctx context.Context, tx pgx.Tx, row *domain.MintTransaction) error
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.MintTransaction, error)
	// ListMintable returns rows whose mint phase is NEW or ERROR, up to
	// limit, skipping the excluded ids. Exclusion lets a paging caller
	// advance past rows it already attempted: a row marked ERROR mid-pass
	// stays eligible and would otherwise pin the front of every page.
	ListMintable(ctx context.Context, requestID uuid.UUID, limit int, exclude []uuid.UUID) ([]domain.MintTransaction, error)
	// ListTransferable returns mint-complete rows whose transfer phase is NEW
	// or ERROR, up to limit, skipping the excluded ids.
	ListTransferable(ctx context.Context, requestID uuid.UUID, limit int, exclude []uuid.UUID) ([]domain.MintTransaction, error)
	CountByRequest(ctx context.Context, requestID uuid.UUID) (int64, error)
	// MintedSerialCount returns the total number of ledger-assigned serials
	// across all rows of a request.
	MintedSerialCount(ctx context.Context, requestID uuid.UUID) (int64, error)
	// HasPending reports whether any row of the request has a PENDING phase.
	HasPending(ctx context.Context, requestID uuid.UUID) (bool, error)
}

// ResultCache is the fast-path idempotency layer for completed requests.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
