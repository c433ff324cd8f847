package service

import (
	"context"
	"fmt"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/internal/metrics"
	"token-mint-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// FungibleExecutor implements ports.MintExecutor for fungible tokens. The
// whole amount moves in one ledger call per phase, tracked by a single
// batch row.
type FungibleExecutor struct {
	executorBase
}

// NewFungibleExecutor creates a new FungibleExecutor.
func NewFungibleExecutor(
	gateway ports.LedgerGateway,
	reqRepo ports.MintRequestRepository,
	txRepo ports.MintTransactionRepository,
	notifier ports.NotificationSink,
	publisher ports.EventPublisher,
	dryRun bool,
	pageSize int,
	log zerolog.Logger,
) *FungibleExecutor {
	return &FungibleExecutor{executorBase{
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

// MintPhase submits the single fungible mint call and drives the row to
// SUCCESS or ERROR.
func (e *FungibleExecutor) MintPhase(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	if !req.IsMintNeeded {
		return nil
	}
	if err := e.beginPhase(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}
	e.notifier.Step("Minting token "+req.TokenID, 0)

	if err := e.mint(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}

	e.notifier.Step("Minting token "+req.TokenID, 100)
	req.IsMintNeeded = false
	return e.completePhase(ctx, req)
}

func (e *FungibleExecutor) mint(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	rows, err := e.txRepo.ListMintable(ctx, req.ID, e.pageSize, nil)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("list mintable rows: %w", err))
	}

	for i := range rows {
		row := &rows[i]
		row.MintStatus = domain.MintTxStatusPending
		if err := e.txRepo.Update(ctx, row); err != nil {
			return apperror.StoreError(fmt.Errorf("mark row pending: %w", err))
		}

		metrics.MintSubmitted.WithLabelValues(string(domain.TokenTypeFungible)).Inc()
		if _, err := e.gateway.MintFungible(ctx, cfg, row.Amount, req.Memo); err != nil {
			metrics.LedgerErrors.WithLabelValues(string(apperror.KindOf(err))).Inc()
			if apperror.IsTimeout(err) {
				// Outcome unknown. The row stays PENDING for the
				// reconciler; retrying now could double-mint.
				return err
			}
			row.MarkMintError(err.Error())
			if uerr := e.txRepo.Update(ctx, row); uerr != nil {
				return apperror.StoreError(fmt.Errorf("record mint error: %w", uerr))
			}
			return err
		}

		row.MintStatus = domain.MintTxStatusSuccess
		row.Error = nil
		if err := e.txRepo.Update(ctx, row); err != nil {
			return apperror.StoreError(fmt.Errorf("record mint success: %w", err))
		}
		e.publishMinted(ctx, req, row.Amount)
	}
	return nil
}

// TransferPhase moves the minted amount from the treasury to the target.
func (e *FungibleExecutor) TransferPhase(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	if !req.IsTransferNeeded {
		return nil
	}
	if err := e.beginPhase(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}
	e.notifier.Step("Transferring token "+req.TokenID, 0)

	if err := e.transfer(ctx, req, cfg); err != nil {
		return e.failPhase(ctx, req, err)
	}

	e.notifier.Step("Transferring token "+req.TokenID, 100)
	req.IsTransferNeeded = false
	return e.completePhase(ctx, req)
}

func (e *FungibleExecutor) transfer(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	rows, err := e.txRepo.ListTransferable(ctx, req.ID, e.pageSize, nil)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("list transferable rows: %w", err))
	}

	for i := range rows {
		row := &rows[i]
		row.TransferStatus = domain.MintTxStatusPending
		if err := e.txRepo.Update(ctx, row); err != nil {
			return apperror.StoreError(fmt.Errorf("mark row pending: %w", err))
		}

		metrics.TransferSubmitted.WithLabelValues(string(domain.TokenTypeFungible)).Inc()
		if err := e.gateway.TransferFungible(ctx, cfg, req.Target, row.Amount, req.Memo); err != nil {
			metrics.LedgerErrors.WithLabelValues(string(apperror.KindOf(err))).Inc()
			if apperror.IsTimeout(err) {
				return err
			}
			row.MarkTransferError(err.Error())
			if uerr := e.txRepo.Update(ctx, row); uerr != nil {
				return apperror.StoreError(fmt.Errorf("record transfer error: %w", uerr))
			}
			return err
		}

		row.TransferStatus = domain.MintTxStatusSuccess
		row.Error = nil
		if err := e.txRepo.Update(ctx, row); err != nil {
			return apperror.StoreError(fmt.Errorf("record transfer success: %w", err))
		}
	}
	return nil
}
