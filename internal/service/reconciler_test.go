package service

import (
	"context"
	"testing"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerTestDeps struct {
	reconciler *Reconciler
	gateway    *mocks.MockLedgerGateway
	reqRepo    *mocks.MockMintRequestRepository
	txRepo     *mocks.MockMintTransactionRepository
	transactor *mocks.MockDBTransactor
	notifier   *mocks.MockNotificationSink
	ctrl       *gomock.Controller
}

func setupReconciler(t *testing.T) *reconcilerTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconcilerTestDeps{
		gateway:    mocks.NewMockLedgerGateway(ctrl),
		reqRepo:    mocks.NewMockMintRequestRepository(ctrl),
		txRepo:     mocks.NewMockMintTransactionRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		notifier:   mocks.NewMockNotificationSink(ctrl),
		ctrl:       ctrl,
	}
	d.reconciler = NewReconciler(d.gateway, d.reqRepo, d.txRepo, d.transactor, d.notifier, zerolog.Nop())
	return d
}

func (d *reconcilerTestDeps) expectAtomicPersist(ctx context.Context, rowCount int) {
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().UpdateTx(ctx, tx, gomock.Any()).Return(nil).Times(rowCount)
	d.reqRepo.EXPECT().UpdateTx(ctx, tx, gomock.Any()).Return(nil)
}

func testConfig() *domain.TokenConfig {
	return &domain.TokenConfig{
		TokenID:  "0.0.100",
		Treasury: "0.0.300",
	}
}

func TestReconciler_PendingMintConfirmedByHistory(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := domain.NewMintRequest("vp-1", "0.0.100", domain.TokenTypeNonFungible, "owner", "policy", 5, "0.0.200", "0.0.300", "memo")
	req.StartTransaction = "tx-40"
	cfg := testConfig()

	row := *domain.NewMintTransaction(req.ID, "policy", 5, true)
	row.MintStatus = domain.MintTxStatusPending

	d.txRepo.EXPECT().ListByRequest(ctx, req.ID).Return([]domain.MintTransaction{row}, nil)
	d.gateway.EXPECT().MintHistory(ctx, cfg, "tx-40", "memo").Return([]ports.MintEvent{
		{TransactionID: "tx-41", Memo: "memo", Serials: []int64{1, 2, 3, 4, 5}},
	}, nil)
	d.expectAtomicPersist(ctx, 1)

	require.NoError(t, d.reconciler.ResolvePending(ctx, req, cfg))
	assert.False(t, req.IsMintNeeded)
	assert.True(t, req.IsTransferNeeded)
}

func TestReconciler_PendingMintNoHistoryRetries(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := domain.NewMintRequest("vp-1", "0.0.100", domain.TokenTypeFungible, "owner", "policy", 100, "0.0.200", "0.0.300", "memo")
	req.StartTransaction = "tx-40"
	cfg := testConfig()

	row := *domain.NewMintTransaction(req.ID, "policy", 100, true)
	row.MintStatus = domain.MintTxStatusPending

	d.txRepo.EXPECT().ListByRequest(ctx, req.ID).Return([]domain.MintTransaction{row}, nil)
	d.gateway.EXPECT().MintHistory(ctx, cfg, "tx-40", "memo").Return(nil, nil)
	d.expectAtomicPersist(ctx, 1)

	require.NoError(t, d.reconciler.ResolvePending(ctx, req, cfg))
	// No matching event: the attempt never landed, so the row is NEW and
	// the mint phase must run again.
	assert.True(t, req.IsMintNeeded)
}

func TestReconciler_FungiblePendingMintConfirmed(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := domain.NewMintRequest("vp-1", "0.0.100", domain.TokenTypeFungible, "owner", "policy", 100, "0.0.200", "0.0.300", "memo")
	cfg := testConfig()

	row := *domain.NewMintTransaction(req.ID, "policy", 100, true)
	row.MintStatus = domain.MintTxStatusPending

	d.txRepo.EXPECT().ListByRequest(ctx, req.ID).Return([]domain.MintTransaction{row}, nil)
	d.gateway.EXPECT().MintHistory(ctx, cfg, "", "memo").Return([]ports.MintEvent{
		{TransactionID: "tx-9", Memo: "memo", Amount: 100},
	}, nil)
	d.expectAtomicPersist(ctx, 1)

	require.NoError(t, d.reconciler.ResolvePending(ctx, req, cfg))
	assert.False(t, req.IsMintNeeded)
}

func TestReconciler_RedistributesMissedSerials(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := domain.NewMintRequest("vp-1", "0.0.100", domain.TokenTypeNonFungible, "owner", "policy", 6, "0.0.200", "0.0.300", "memo")
	cfg := testConfig()

	// First row completed before the crash, second was mid-flight.
	done := *domain.NewMintTransaction(req.ID, "policy", 3, true)
	done.Serials = []int64{1, 2, 3}
	done.MintStatus = domain.MintTxStatusSuccess

	pending := *domain.NewMintTransaction(req.ID, "policy", 3, true)
	pending.MintStatus = domain.MintTxStatusPending

	d.txRepo.EXPECT().ListByRequest(ctx, req.ID).Return([]domain.MintTransaction{done, pending}, nil)
	// The ledger reports serials 4 and 5 that the store never recorded.
	d.gateway.EXPECT().MintHistory(ctx, cfg, "", "memo").Return([]ports.MintEvent{
		{TransactionID: "tx-1", Memo: "memo", Serials: []int64{1, 2, 3}},
		{TransactionID: "tx-2", Memo: "memo", Serials: []int64{4, 5}},
	}, nil)
	d.expectAtomicPersist(ctx, 2)

	require.NoError(t, d.reconciler.ResolvePending(ctx, req, cfg))
	// 4 and 5 were absorbed but one unit is still missing, so the row goes
	// back to NEW for a partial-batch retry.
	assert.True(t, req.IsMintNeeded)
}

func TestReconciler_OverflowSerialsRaiseWarning(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := domain.NewMintRequest("vp-1", "0.0.100", domain.TokenTypeNonFungible, "owner", "policy", 2, "0.0.200", "0.0.300", "memo")
	cfg := testConfig()

	pending := *domain.NewMintTransaction(req.ID, "policy", 2, true)
	pending.MintStatus = domain.MintTxStatusPending

	d.txRepo.EXPECT().ListByRequest(ctx, req.ID).Return([]domain.MintTransaction{pending}, nil)
	// Three serials but only two slots: the leftover must be surfaced.
	d.gateway.EXPECT().MintHistory(ctx, cfg, "", "memo").Return([]ports.MintEvent{
		{TransactionID: "tx-1", Memo: "memo", Serials: []int64{7, 8, 9}},
	}, nil)
	d.notifier.EXPECT().Warn("Mint reconciliation inconsistency", gomock.Any())
	d.expectAtomicPersist(ctx, 1)

	require.NoError(t, d.reconciler.ResolvePending(ctx, req, cfg))
	assert.False(t, req.IsMintNeeded)
}

func TestReconciler_PendingTransferResolvedByHoldings(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := domain.NewMintRequest("vp-1", "0.0.100", domain.TokenTypeNonFungible, "owner", "policy", 4, "0.0.200", "0.0.300", "memo")
	cfg := testConfig()

	transferred := *domain.NewMintTransaction(req.ID, "policy", 2, true)
	transferred.Serials = []int64{1, 2}
	transferred.MintStatus = domain.MintTxStatusSuccess
	transferred.TransferStatus = domain.MintTxStatusPending

	stuck := *domain.NewMintTransaction(req.ID, "policy", 2, true)
	stuck.Serials = []int64{3, 4}
	stuck.MintStatus = domain.MintTxStatusSuccess
	stuck.TransferStatus = domain.MintTxStatusPending

	d.txRepo.EXPECT().ListByRequest(ctx, req.ID).Return([]domain.MintTransaction{transferred, stuck}, nil)
	// Serials 1 and 2 left the treasury; 3 and 4 did not.
	d.gateway.EXPECT().TreasuryHeldSerials(ctx, cfg, []int64{1, 2}).Return(nil, nil)
	d.gateway.EXPECT().TreasuryHeldSerials(ctx, cfg, []int64{3, 4}).Return([]int64{3, 4}, nil)
	d.expectAtomicPersist(ctx, 2)

	require.NoError(t, d.reconciler.ResolvePending(ctx, req, cfg))
	assert.False(t, req.IsMintNeeded)
	assert.True(t, req.IsTransferNeeded)
}

func TestReconciler_FungiblePendingTransferConfirmed(t *testing.T) {
	d := setupReconciler(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := domain.NewMintRequest("vp-1", "0.0.100", domain.TokenTypeFungible, "owner", "policy", 100, "0.0.200", "0.0.300", "memo")
	req.StartTransaction = "tx-7"
	cfg := testConfig()

	row := *domain.NewMintTransaction(req.ID, "policy", 100, true)
	row.MintStatus = domain.MintTxStatusSuccess
	row.TransferStatus = domain.MintTxStatusPending

	d.txRepo.EXPECT().ListByRequest(ctx, req.ID).Return([]domain.MintTransaction{row}, nil)
	d.gateway.EXPECT().TransferHistory(ctx, cfg, "tx-7", "memo").Return([]ports.MintEvent{
		{TransactionID: "tx-8", Memo: "memo", Amount: 100},
	}, nil)
	d.expectAtomicPersist(ctx, 1)

	require.NoError(t, d.reconciler.ResolvePending(ctx, req, cfg))
	assert.True(t, req.IsComplete())
}
