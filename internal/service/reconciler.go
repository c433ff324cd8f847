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

// Reconciler resolves the ambiguity a crash leaves behind. A process dying
// between "submit to ledger" and "record the result" leaves rows PENDING with
// unknown outcome; the ledger's history is the authoritative answer.
type Reconciler struct {
	gateway    ports.LedgerGateway
	reqRepo    ports.MintRequestRepository
	txRepo     ports.MintTransactionRepository
	transactor ports.DBTransactor
	notifier   ports.NotificationSink
	log        zerolog.Logger
}

// NewReconciler creates a new Reconciler.
func NewReconciler(
	gateway ports.LedgerGateway,
	reqRepo ports.MintRequestRepository,
	txRepo ports.MintTransactionRepository,
	transactor ports.DBTransactor,
	notifier ports.NotificationSink,
	log zerolog.Logger,
) *Reconciler {
	return &Reconciler{
		gateway:    gateway,
		reqRepo:    reqRepo,
		txRepo:     txRepo,
		transactor: transactor,
		notifier:   notifier,
		log:        log,
	}
}

// ResolvePending drives every PENDING row of the request to NEW or SUCCESS,
// then recomputes the request's progress flags from the aggregate. It always
// runs before new work is planned or submitted for a resumed request.
func (r *Reconciler) ResolvePending(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error {
	rows, err := r.txRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("list batch rows: %w", err))
	}

	if err := r.resolveMintPending(ctx, req, cfg, rows); err != nil {
		return err
	}
	if err := r.resolveTransferPending(ctx, req, cfg, rows); err != nil {
		return err
	}

	req.RecomputeFlags(rows)

	// Rows and recomputed flags move together or not at all.
	tx, err := r.transactor.Begin(ctx)
	if err != nil {
		return apperror.StoreError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for i := range rows {
		if err := r.txRepo.UpdateTx(ctx, tx, &rows[i]); err != nil {
			return apperror.StoreError(fmt.Errorf("persist reconciled row: %w", err))
		}
	}
	if err := r.reqRepo.UpdateTx(ctx, tx, req); err != nil {
		return apperror.StoreError(fmt.Errorf("persist recomputed flags: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.StoreError(fmt.Errorf("commit reconciliation: %w", err))
	}

	r.log.Info().
		Str("request_id", req.ID.String()).
		Bool("mint_needed", req.IsMintNeeded).
		Bool("transfer_needed", req.IsTransferNeeded).
		Msg("pending rows reconciled")
	return nil
}

func (r *Reconciler) resolveMintPending(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig, rows []domain.MintTransaction) error {
	var pending []*domain.MintTransaction
	for i := range rows {
		if rows[i].MintStatus == domain.MintTxStatusPending {
			pending = append(pending, &rows[i])
		}
	}
	if len(pending) == 0 {
		return nil
	}

	events, err := r.gateway.MintHistory(ctx, cfg, req.StartTransaction, req.Memo)
	if err != nil {
		return apperror.ErrLedgerQuery(fmt.Errorf("mint history: %w", err))
	}

	if req.TokenType == domain.TokenTypeNonFungible {
		r.redistributeSerials(req, pending, rows, events)
	} else {
		// One fungible row; a matching history event means the mint landed.
		for _, row := range pending {
			if len(events) > 0 {
				row.MintStatus = domain.MintTxStatusSuccess
				row.Error = nil
				metrics.ReconciledRows.WithLabelValues("mint_success").Inc()
			} else {
				row.MintStatus = domain.MintTxStatusNew
				metrics.ReconciledRows.WithLabelValues("mint_retry").Inc()
			}
		}
	}
	return nil
}

// redistributeSerials diffs the ledger-reported serials against the serials
// the store already knows and assigns the missed ones to pending rows before
// marking the remainder NEW for a fresh attempt.
func (r *Reconciler) redistributeSerials(req *domain.MintRequest, pending []*domain.MintTransaction, all []domain.MintTransaction, events []ports.MintEvent) {
	known := make(map[int64]bool)
	for i := range all {
		for _, s := range all[i].Serials {
			known[s] = true
		}
	}

	var missed []int64
	for _, ev := range events {
		for _, s := range ev.Serials {
			if !known[s] {
				missed = append(missed, s)
			}
		}
	}

	for _, row := range pending {
		missed = row.AppendSerials(missed)
		if row.MintComplete() {
			row.MintStatus = domain.MintTxStatusSuccess
			row.Error = nil
			metrics.ReconciledRows.WithLabelValues("mint_success").Inc()
		} else {
			row.MintStatus = domain.MintTxStatusNew
			metrics.ReconciledRows.WithLabelValues("mint_retry").Inc()
		}
	}

	// More ledger-reported serials than the pending rows can absorb points
	// at drift between the store and the ledger. Surface it instead of
	// silently dropping the serials.
	if len(missed) > 0 {
		msg := fmt.Sprintf("token %s: %d ledger serials have no local batch row", req.TokenID, len(missed))
		r.log.Warn().Str("request_id", req.ID.String()).Ints64("serials", missed).Msg("unassigned ledger serials")
		r.notifier.Warn("Mint reconciliation inconsistency", msg)
	}
}

func (r *Reconciler) resolveTransferPending(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig, rows []domain.MintTransaction) error {
	for i := range rows {
		row := &rows[i]
		if row.TransferStatus != domain.MintTxStatusPending {
			continue
		}

		if req.TokenType == domain.TokenTypeNonFungible {
			held, err := r.gateway.TreasuryHeldSerials(ctx, cfg, row.Serials)
			if err != nil {
				return apperror.ErrLedgerQuery(fmt.Errorf("treasury holdings: %w", err))
			}
			if len(held) == 0 {
				row.TransferStatus = domain.MintTxStatusSuccess
				row.Error = nil
				metrics.ReconciledRows.WithLabelValues("transfer_success").Inc()
			} else {
				row.TransferStatus = domain.MintTxStatusNew
				metrics.ReconciledRows.WithLabelValues("transfer_retry").Inc()
			}
			continue
		}

		events, err := r.gateway.TransferHistory(ctx, cfg, req.StartTransaction, req.Memo)
		if err != nil {
			return apperror.ErrLedgerQuery(fmt.Errorf("transfer history: %w", err))
		}
		if len(events) > 0 {
			row.TransferStatus = domain.MintTxStatusSuccess
			row.Error = nil
			metrics.ReconciledRows.WithLabelValues("transfer_success").Inc()
		} else {
			row.TransferStatus = domain.MintTxStatusNew
			metrics.ReconciledRows.WithLabelValues("transfer_retry").Inc()
		}
	}
	return nil
}
