package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/internal/metrics"
	"token-mint-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// NonFungibleExecutor implements ports.MintExecutor for NFTs. Work is split
// into batch rows minted and transferred with unordered parallelism within a
// page; a failure in one batch never blocks its siblings.
type NonFungibleExecutor struct {
	executorBase
}

// NewNonFungibleExecutor creates a new NonFungibleExecutor.
func NewNonFungibleExecutor(
	gateway ports.LedgerGateway,
	reqRepo ports.MintRequestRepository,
	txRepo ports.MintTransactionRepository,
	notifier ports.NotificationSink,
	publisher ports.EventPublisher,
	dryRun bool,
	pageSize int,
	log zerolog.Logger,
) *NonFungibleExecutor {
	return &NonFungibleExecutor{executorBase{
		gateway:   gateway,
		reqRepo:   reqRepo,
		txRepo:    txRepo,
		notifier:  notifier,
		publisher: publisher,
		dryRun:    dryRun,
		pageSize:  pageSize,
		log:       log,
	}}
}

// MintPhase mints every outstanding batch row. Rows that time out are left
// PENDING for the reconciler; rows that are definitively rejected are marked
// ERROR so the next pass retries them fresh. The phase itself fails when any
// row did not reach SUCCESS.
func (e *NonFungibleExecutor) MintPhase(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	if !req.IsMintNeeded {
		return nil
	}

	rows, err := e.txRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return e.failPhase(ctx, req, apperror.StoreError(fmt.Errorf("list batch rows: %w", err)))
	}
	req.StartSerial = maxKnownSerial(rows)

	if err := e.beginPhase(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}

	if err := e.mintBatches(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}

	if err := e.checkMintOutcome(ctx, req); err != nil {
		return e.failPhase(ctx, req, err)
	}

	req.IsMintNeeded = false
	return e.completePhase(ctx, req)
}

func (e *NonFungibleExecutor) mintBatches(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	minted, err := e.txRepo.MintedSerialCount(ctx, req.ID)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("count minted serials: %w", err))
	}
	var progress atomic.Int64
	progress.Store(minted)
	title := "Minting token " + req.TokenID
	e.notifier.Step(title, percent(minted, req.Amount))

	// A row marked ERROR during this pass stays eligible in the store and
	// would pin the front of every page. Excluding ids already attempted
	// advances each fetch to the rows beyond it, so one bad batch cannot
	// starve the rest of the pass.
	var attempted []uuid.UUID
	for {
		page, err := e.txRepo.ListMintable(ctx, req.ID, e.pageSize, attempted)
		if err != nil {
			return apperror.StoreError(fmt.Errorf("list mintable rows: %w", err))
		}
		if len(page) == 0 {
			return nil
		}
		for i := range page {
			attempted = append(attempted, page[i].ID)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := range page {
			row := &page[i]
			g.Go(func() error {
				n, err := e.mintBatch(gctx, req, cfg, row)
				if err != nil {
					return err
				}
				e.notifier.Step(title, percent(progress.Add(n), req.Amount))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
}

// mintBatch submits one batch and returns how many serials it gained. Ledger
// errors are absorbed into the row's status so sibling batches continue;
// only persistence failures propagate.
func (e *NonFungibleExecutor) mintBatch(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig, row *domain.MintTransaction) (int64, error) {
	row.MintStatus = domain.MintTxStatusPending
	if err := e.txRepo.Update(ctx, row); err != nil {
		return 0, apperror.StoreError(fmt.Errorf("mark row pending: %w", err))
	}

	metrics.MintSubmitted.WithLabelValues(string(domain.TokenTypeNonFungible)).Inc()
	receipt, err := e.gateway.MintNonFungible(ctx, cfg, row.Remaining(), req.Memo)
	if err != nil {
		metrics.LedgerErrors.WithLabelValues(string(apperror.KindOf(err))).Inc()
		if apperror.IsTimeout(err) {
			// Outcome unknown. Leave the row PENDING; only the
			// reconciler may decide what actually happened.
			e.log.Warn().Str("row_id", row.ID.String()).Msg("mint batch unconfirmed, left pending")
			return 0, nil
		}
		row.MarkMintError(err.Error())
		if uerr := e.txRepo.Update(ctx, row); uerr != nil {
			return 0, apperror.StoreError(fmt.Errorf("record mint error: %w", uerr))
		}
		e.log.Warn().Err(err).Str("row_id", row.ID.String()).Msg("mint batch rejected")
		return 0, nil
	}

	gained := int64(len(receipt.Serials))
	if overflow := row.AppendSerials(receipt.Serials); len(overflow) > 0 {
		gained -= int64(len(overflow))
		e.log.Warn().Str("row_id", row.ID.String()).Ints64("serials", overflow).
			Msg("ledger returned more serials than the batch requested")
	}
	if row.MintComplete() {
		row.MintStatus = domain.MintTxStatusSuccess
		row.Error = nil
	} else {
		// A confirmed call that delivered fewer serials than asked. Mark
		// ERROR so the shortfall is retried on the next pass instead of
		// looping within this one.
		row.MarkMintError(fmt.Sprintf("short mint: got %d of %d serials", len(row.Serials), row.Amount))
	}
	if err := e.txRepo.Update(ctx, row); err != nil {
		return 0, apperror.StoreError(fmt.Errorf("record mint result: %w", err))
	}
	if gained > 0 {
		e.publishMinted(ctx, req, gained)
	}
	return gained, nil
}

func (e *NonFungibleExecutor) checkMintOutcome(ctx context.Context, req *domain.MintRequest) error {
	rows, err := e.txRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("list batch rows: %w", err))
	}
	var pending, failed int
	for i := range rows {
		switch rows[i].MintStatus {
		case domain.MintTxStatusPending:
			pending++
		case domain.MintTxStatusError, domain.MintTxStatusNew:
			failed++
		}
	}
	if pending > 0 {
		return apperror.ErrLedgerTimeout(fmt.Errorf("%d mint batches unconfirmed", pending))
	}
	if failed > 0 {
		return apperror.ErrLedgerRejected(fmt.Errorf("%d mint batches failed", failed))
	}
	return nil
}

// TransferPhase moves the recorded serials of every mint-complete batch from
// the treasury to the target, with the same timeout carve-out as the mint
// phase.
func (e *NonFungibleExecutor) TransferPhase(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	if !req.IsTransferNeeded {
		return nil
	}
	if err := e.beginPhase(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}

	if err := e.transferBatches(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}

	if err := e.checkTransferOutcome(ctx, req); err != nil {
		return e.failPhase(ctx, req, err)
	}

	req.IsTransferNeeded = false
	return e.completePhase(ctx, req)
}

func (e *NonFungibleExecutor) transferBatches(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	var progress atomic.Int64
	title := "Transferring token " + req.TokenID
	e.notifier.Step(title, 0)

	var attempted []uuid.UUID
	for {
		page, err := e.txRepo.ListTransferable(ctx, req.ID, e.pageSize, attempted)
		if err != nil {
			return apperror.StoreError(fmt.Errorf("list transferable rows: %w", err))
		}
		if len(page) == 0 {
			return nil
		}
		for i := range page {
			attempted = append(attempted, page[i].ID)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := range page {
			row := &page[i]
			g.Go(func() error {
				n, err := e.transferBatch(gctx, req, cfg, row)
				if err != nil {
					return err
				}
				e.notifier.Step(title, percent(progress.Add(n), req.Amount))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}
}

// transferBatch submits one batch and returns how many units it moved, so
// progress reporting only counts rows that actually reached SUCCESS. Ledger
// errors are absorbed into the row's status like in mintBatch.
func (e *NonFungibleExecutor) transferBatch(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig, row *domain.MintTransaction) (int64, error) {
	row.TransferStatus = domain.MintTxStatusPending
	if err := e.txRepo.Update(ctx, row); err != nil {
		return 0, apperror.StoreError(fmt.Errorf("mark row pending: %w", err))
	}

	metrics.TransferSubmitted.WithLabelValues(string(domain.TokenTypeNonFungible)).Inc()
	if err := e.gateway.TransferNonFungible(ctx, cfg, req.Target, row.Serials, req.Memo); err != nil {
		metrics.LedgerErrors.WithLabelValues(string(apperror.KindOf(err))).Inc()
		if apperror.IsTimeout(err) {
			e.log.Warn().Str("row_id", row.ID.String()).Msg("transfer batch unconfirmed, left pending")
			return 0, nil
		}
		row.MarkTransferError(err.Error())
		if uerr := e.txRepo.Update(ctx, row); uerr != nil {
			return 0, apperror.StoreError(fmt.Errorf("record transfer error: %w", uerr))
		}
		e.log.Warn().Err(err).Str("row_id", row.ID.String()).Msg("transfer batch rejected")
		return 0, nil
	}

	row.TransferStatus = domain.MintTxStatusSuccess
	row.Error = nil
	if err := e.txRepo.Update(ctx, row); err != nil {
		return 0, apperror.StoreError(fmt.Errorf("record transfer result: %w", err))
	}
	return row.Amount, nil
}

func (e *NonFungibleExecutor) checkTransferOutcome(ctx context.Context, req *domain.MintRequest) error {
	rows, err := e.txRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("list batch rows: %w", err))
	}
	var pending, failed int
	for i := range rows {
		switch rows[i].TransferStatus {
		case domain.MintTxStatusPending:
			pending++
		case domain.MintTxStatusError, domain.MintTxStatusNew:
			failed++
		}
	}
	if pending > 0 {
		return apperror.ErrLedgerTimeout(fmt.Errorf("%d transfer batches unconfirmed", pending))
	}
	if failed > 0 {
		return apperror.ErrLedgerRejected(fmt.Errorf("%d transfer batches failed", failed))
	}
	return nil
}

func maxKnownSerial(rows []domain.MintTransaction) int64 {
	var max int64
	for i := range rows {
		for _, s := range rows[i].Serials {
			if s > max {
				max = s
			}
		}
	}
	return max
}

func percent(done, total int64) int {
	if total <= 0 {
		return 100
	}
	p := int(done * 100 / total)
	if p > 100 {
		p = 100
	}
	return p
}
