package service

import (
	"context"
	"fmt"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// BatchPlanner decomposes a mint request into batch units. Fungible requests
// get one unit covering the full amount; non-fungible requests are split into
// fixed-size batches.
type BatchPlanner struct {
	reqRepo    ports.MintRequestRepository
	txRepo     ports.MintTransactionRepository
	transactor ports.DBTransactor
	batchSize  int64
	log        zerolog.Logger
}

// NewBatchPlanner creates a new BatchPlanner.
func NewBatchPlanner(
	reqRepo ports.MintRequestRepository,
	txRepo ports.MintTransactionRepository,
	transactor ports.DBTransactor,
	batchSize int64,
	log zerolog.Logger,
) *BatchPlanner {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &BatchPlanner{
		reqRepo:    reqRepo,
		txRepo:     txRepo,
		transactor: transactor,
		batchSize:  batchSize,
		log:        log,
	}
}

// Plan creates the batch rows for a request the first time it is processed.
// Re-entrant calls after partial progress are no-ops: planning only happens
// while zero rows exist, so retries reuse the existing rows.
func (p *BatchPlanner) Plan(ctx context.Context, req *domain.MintRequest) error {
	count, err := p.txRepo.CountByRequest(ctx, req.ID)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("count batch rows: %w", err))
	}
	if count > 0 {
		return nil
	}

	minted, err := p.txRepo.MintedSerialCount(ctx, req.ID)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("count minted serials: %w", err))
	}
	outstanding := req.Amount - minted
	if outstanding <= 0 {
		return nil
	}

	var amounts []int64
	if req.TokenType == domain.TokenTypeNonFungible {
		amounts = splitBatches(outstanding, p.batchSize)
	} else {
		amounts = []int64{outstanding}
	}

	rows := make([]*domain.MintTransaction, 0, len(amounts))
	for _, amount := range amounts {
		rows = append(rows, domain.NewMintTransaction(req.ID, req.PolicyID, amount, req.WasTransferNeeded))
	}

	tx, err := p.transactor.Begin(ctx)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := p.txRepo.CreateBatch(ctx, tx, rows); err != nil {
		return apperror.StoreError(fmt.Errorf("persist batch plan: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.StoreError(fmt.Errorf("commit batch plan: %w", err))
	}

	p.log.Info().
		Str("request_id", req.ID.String()).
		Int64("outstanding", outstanding).
		Int("batches", len(rows)).
		Msg("batch plan created")
	return nil
}

// splitBatches splits n into full batches of size plus a remainder batch.
// The batch amounts always sum to n and never exceed size.
func splitBatches(n, size int64) []int64 {
	full := n / size
	rem := n % size
	batches := make([]int64, 0, full+1)
	for i := int64(0); i < full; i++ {
		batches = append(batches, size)
	}
	if rem > 0 {
		batches = append(batches, rem)
	}
	return batches
}
