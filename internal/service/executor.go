package service

import (
	"context"
	"fmt"
	"time"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// executorBase carries the collaborators and phase bookkeeping shared by the
// fungible and non-fungible executors. The two variants differ only in
// per-phase mechanics; the surrounding persist-run-flip-or-fail sequence is
// identical.
type executorBase struct {
	gateway   ports.LedgerGateway
	reqRepo   ports.MintRequestRepository
	txRepo    ports.MintTransactionRepository
	notifier  ports.NotificationSink
	publisher ports.EventPublisher
	dryRun    bool
	pageSize  int
	log       zerolog.Logger
}

// beginPhase stamps the attempt and captures the ledger cursor for the
// reconciler's next look-back, then persists. The cursor must be recorded
// before anything is submitted; capturing it after would let the reconciler
// miss the very operations this attempt issues.
func (e *executorBase) beginPhase(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	now := time.Now().UTC()
	req.ProcessDate = &now

	if !e.dryRun {
		marker, err := e.gateway.LatestTransactionID(ctx, cfg.Treasury)
		if err != nil {
			return apperror.ErrLedgerQuery(fmt.Errorf("latest transaction marker: %w", err))
		}
		req.StartTransaction = marker
	}

	if err := e.reqRepo.Update(ctx, req); err != nil {
		return apperror.StoreError(fmt.Errorf("persist phase start: %w", err))
	}
	return nil
}

// completePhase persists the flipped progress flag after the phase-specific
// work succeeded. The caller flips the flag before calling.
func (e *executorBase) completePhase(ctx context.Context, req *domain.MintRequest) error {
	if err := e.reqRepo.Update(ctx, req); err != nil {
		return apperror.StoreError(fmt.Errorf("persist phase completion: %w", err))
	}
	return nil
}

// failPhase records the failure on the request and re-raises it. The
// progress flags stay untouched so the request remains retryable.
func (e *executorBase) failPhase(ctx context.Context, req *domain.MintRequest, phaseErr error) error {
	req.MarkFailed(phaseErr.Error())
	if err := e.reqRepo.Update(ctx, req); err != nil {
		e.log.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to persist phase error")
	}
	return phaseErr
}

// publishMinted emits the post-mint event. Publication failures are logged
// and dropped; the mint already happened and must not be rolled back or
// retried because a downstream consumer was unreachable.
func (e *executorBase) publishMinted(ctx context.Context, req *domain.MintRequest, amount int64) {
	event := domain.TokenMintedEvent{
		TokenID: req.TokenID,
		Amount:  amount,
		Memo:    req.Memo,
	}
	if err := e.publisher.PublishTokenMinted(ctx, event); err != nil {
		e.log.Error().Err(err).Str("token_id", req.TokenID).Msg("failed to publish mint event")
	}
}
