package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/internal/metrics"
	"token-mint-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// Coordinator implements ports.MintCoordinator. It owns the single-flight
// guard, the completed-result cache, and the dispatch to the executor
// variant matching the token type.
type Coordinator struct {
	guard      *flightGuard
	cache      ports.ResultCache
	reqRepo    ports.MintRequestRepository
	txRepo     ports.MintTransactionRepository
	registry   ports.TokenRegistry
	resolver   ports.TokenConfigResolver
	planner    *BatchPlanner
	reconciler *Reconciler
	ftExec     ports.MintExecutor
	nftExec    ports.MintExecutor
	notifier   ports.NotificationSink
	dryRun     bool
	resultTTL  time.Duration
	log        zerolog.Logger
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(
	cache ports.ResultCache,
	reqRepo ports.MintRequestRepository,
	txRepo ports.MintTransactionRepository,
	registry ports.TokenRegistry,
	resolver ports.TokenConfigResolver,
	planner *BatchPlanner,
	reconciler *Reconciler,
	ftExec ports.MintExecutor,
	nftExec ports.MintExecutor,
	notifier ports.NotificationSink,
	dryRun bool,
	resultTTL time.Duration,
	log zerolog.Logger,
) *Coordinator {
	return &Coordinator{
		guard:      newFlightGuard(),
		cache:      cache,
		reqRepo:    reqRepo,
		txRepo:     txRepo,
		registry:   registry,
		resolver:   resolver,
		planner:    planner,
		reconciler: reconciler,
		ftExec:     ftExec,
		nftExec:    nftExec,
		notifier:   notifier,
		dryRun:     dryRun,
		resultTTL:  resultTTL,
		log:        log,
	}
}

// Register records a new mint order. Re-registering an existing correlation
// key returns the stored request unchanged so the caller can safely resend.
func (c *Coordinator) Register(ctx context.Context, order domain.MintOrder) (*domain.MintRequest, error) {
	if order.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	existing, err := c.reqRepo.GetByMessageID(ctx, order.VPMessageID)
	if err != nil {
		return nil, apperror.StoreError(fmt.Errorf("look up request: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	token, err := c.registry.GetToken(ctx, order.TokenID)
	if err != nil {
		return nil, err
	}

	req := domain.NewMintRequest(
		order.VPMessageID, order.TokenID, token.TokenType,
		token.Owner, order.PolicyID, order.Amount,
		order.Target, token.Treasury, order.Memo,
	)
	req.RelayerAccount = order.RelayerAccount
	if err := c.reqRepo.Create(ctx, req); err != nil {
		return nil, apperror.StoreError(fmt.Errorf("persist request: %w", err))
	}

	c.log.Info().
		Str("vp_message_id", req.VPMessageID).
		Str("token_id", req.TokenID).
		Int64("amount", req.Amount).
		Bool("transfer_needed", req.IsTransferNeeded).
		Msg("mint request registered")
	return req, nil
}

// Process runs one full pass for the request: reconcile leftover ambiguity,
// plan outstanding work, then drive the mint and transfer phases in order.
// The returned bool reports whether this call performed the work; false
// means the key was already in flight or nothing remained to do.
func (c *Coordinator) Process(ctx context.Context, requestKey string) (bool, error) {
	if cached, err := c.cache.Get(ctx, requestKey); err != nil {
		c.log.Warn().Err(err).Str("key", requestKey).Msg("result cache unavailable")
	} else if cached != nil {
		return false, nil
	}

	req, err := c.reqRepo.GetByMessageID(ctx, requestKey)
	if err != nil {
		return false, apperror.StoreError(fmt.Errorf("look up request: %w", err))
	}
	if req == nil {
		return false, apperror.ErrRequestNotFound(requestKey)
	}
	if req.IsComplete() {
		c.cacheResult(ctx, req)
		return false, nil
	}

	if !c.guard.tryAcquire(requestKey) {
		c.log.Debug().Str("key", requestKey).Msg("request already in flight")
		return false, nil
	}
	defer c.guard.release(requestKey)

	if err := c.run(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}

// Retry clears the persisted error of a failed request and re-runs Process.
func (c *Coordinator) Retry(ctx context.Context, requestKey string) (bool, error) {
	req, err := c.reqRepo.GetByMessageID(ctx, requestKey)
	if err != nil {
		return false, apperror.StoreError(fmt.Errorf("look up request: %w", err))
	}
	if req == nil {
		return false, apperror.ErrRequestNotFound(requestKey)
	}
	if req.Error != nil {
		req.Error = nil
		if err := c.reqRepo.Update(ctx, req); err != nil {
			return false, apperror.StoreError(fmt.Errorf("clear request error: %w", err))
		}
	}
	return c.Process(ctx, requestKey)
}

func (c *Coordinator) run(ctx context.Context, req *domain.MintRequest) error {
	token, err := c.registry.GetToken(ctx, req.TokenID)
	if err != nil {
		return c.fail(ctx, req, err)
	}

	cfg, err := c.resolver.Resolve(ctx, token, c.dryRun)
	if err != nil {
		return c.fail(ctx, req, err)
	}

	if err := c.planner.Plan(ctx, req); err != nil {
		return c.fail(ctx, req, err)
	}

	// Reconciliation happens-before any new submission: PENDING rows left
	// by a crash must be resolved against the ledger first.
	pending, err := c.txRepo.HasPending(ctx, req.ID)
	if err != nil {
		return c.fail(ctx, req, apperror.StoreError(fmt.Errorf("check pending rows: %w", err)))
	}
	if pending {
		if err := c.reconciler.ResolvePending(ctx, req, cfg); err != nil {
			return c.fail(ctx, req, err)
		}
	}

	exec := c.ftExec
	if req.TokenType == domain.TokenTypeNonFungible {
		exec = c.nftExec
	}

	if req.IsMintNeeded {
		if err := exec.MintPhase(ctx, req, cfg); err != nil {
			return c.fail(ctx, req, err)
		}
	}
	if req.IsTransferNeeded {
		if err := exec.TransferPhase(ctx, req, cfg); err != nil {
			return c.fail(ctx, req, err)
		}
	}

	req.MarkComplete()
	if err := c.reqRepo.Update(ctx, req); err != nil {
		return c.fail(ctx, req, apperror.StoreError(fmt.Errorf("persist completion: %w", err)))
	}
	c.cacheResult(ctx, req)
	metrics.RequestsCompleted.Inc()
	c.notifier.Success(
		"Mint completed",
		fmt.Sprintf("Minted %d of token %s to %s", req.Amount, req.TokenID, req.Target),
	)
	c.log.Info().Str("vp_message_id", req.VPMessageID).Msg("mint request completed")
	return nil
}

// fail records the failure, reports it, and surfaces the original error.
// The progress flags are never touched here, so the request stays
// retryable.
func (c *Coordinator) fail(ctx context.Context, req *domain.MintRequest, cause error) error {
	req.MarkFailed(cause.Error())
	if err := c.reqRepo.Update(ctx, req); err != nil {
		c.log.Error().Err(err).Str("vp_message_id", req.VPMessageID).Msg("failed to persist request error")
	}
	metrics.RequestsFailed.Inc()
	c.notifier.Error(
		"Mint failed",
		fmt.Sprintf("Token %s: %v", req.TokenID, cause),
	)
	c.log.Error().Err(cause).Str("vp_message_id", req.VPMessageID).Msg("mint request failed")
	return cause
}

func (c *Coordinator) cacheResult(ctx context.Context, req *domain.MintRequest) {
	payload, err := json.Marshal(map[string]string{
		"request_id": req.ID.String(),
		"status":     "complete",
	})
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, req.VPMessageID, payload, c.resultTTL); err != nil {
		c.log.Warn().Err(err).Str("key", req.VPMessageID).Msg("failed to cache result")
	}
}
