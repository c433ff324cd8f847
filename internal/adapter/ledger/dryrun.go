package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// DryRunGateway is the simulated ledger used for policy testing. It fabricates
// receipts and serials without external side effects. Because it reports no
// history and treats every serial as still treasury-held, resumed PENDING
// rows reconcile to NEW, which is exactly the optimistic dry-run resume
// behavior the engine wants without mode branches in the business logic.
type DryRunGateway struct {
	mu         sync.Mutex
	nextSerial int64
	nextTxSeq  int64
	log        zerolog.Logger
}

// NewDryRunGateway creates a simulated gateway.
func NewDryRunGateway(log zerolog.Logger) *DryRunGateway {
	return &DryRunGateway{nextSerial: 1, log: log}
}

// MintFungible fabricates a successful fungible mint receipt.
func (g *DryRunGateway) MintFungible(_ context.Context, cfg *domain.TokenConfig, amount int64, memo string) (*ports.MintReceipt, error) {
	g.log.Debug().Str("token_id", cfg.TokenID).Int64("amount", amount).Str("memo", memo).Msg("dry-run fungible mint")
	return &ports.MintReceipt{TransactionID: g.nextTransactionID()}, nil
}

// MintNonFungible fabricates count sequential serials.
func (g *DryRunGateway) MintNonFungible(_ context.Context, cfg *domain.TokenConfig, count int64, memo string) (*ports.MintReceipt, error) {
	g.mu.Lock()
	serials := make([]int64, 0, count)
	for i := int64(0); i < count; i++ {
		serials = append(serials, g.nextSerial)
		g.nextSerial++
	}
	g.mu.Unlock()

	g.log.Debug().Str("token_id", cfg.TokenID).Int64("count", count).Str("memo", memo).Msg("dry-run non-fungible mint")
	return &ports.MintReceipt{TransactionID: g.nextTransactionID(), Serials: serials}, nil
}

// TransferFungible simulates a successful transfer.
func (g *DryRunGateway) TransferFungible(_ context.Context, cfg *domain.TokenConfig, target string, amount int64, memo string) error {
	g.log.Debug().Str("token_id", cfg.TokenID).Str("target", target).Int64("amount", amount).Msg("dry-run fungible transfer")
	return nil
}

// TransferNonFungible simulates a successful transfer.
func (g *DryRunGateway) TransferNonFungible(_ context.Context, cfg *domain.TokenConfig, target string, serials []int64, memo string) error {
	g.log.Debug().Str("token_id", cfg.TokenID).Str("target", target).Ints64("serials", serials).Msg("dry-run non-fungible transfer")
	return nil
}

// LatestTransactionID returns a synthetic monotonic marker.
func (g *DryRunGateway) LatestTransactionID(_ context.Context, accountID string) (string, error) {
	return g.nextTransactionID(), nil
}

// MintHistory reports no history: a simulated ledger has nothing to look back
// at, so the reconciler retries pending work fresh.
func (g *DryRunGateway) MintHistory(_ context.Context, _ *domain.TokenConfig, _, _ string) ([]ports.MintEvent, error) {
	return nil, nil
}

// TransferHistory reports no history for the same reason as MintHistory.
func (g *DryRunGateway) TransferHistory(_ context.Context, _ *domain.TokenConfig, _, _ string) ([]ports.MintEvent, error) {
	return nil, nil
}

// TreasuryHeldSerials reports every serial as still held, so pending
// transfers reconcile to NEW and are retried fresh.
func (g *DryRunGateway) TreasuryHeldSerials(_ context.Context, _ *domain.TokenConfig, serials []int64) ([]int64, error) {
	return serials, nil
}

func (g *DryRunGateway) nextTransactionID() string {
	g.mu.Lock()
	seq := g.nextTxSeq
	g.nextTxSeq++
	g.mu.Unlock()
	return fmt.Sprintf("dry-%d-%d", time.Now().Unix(), seq)
}

// DryRunCustody rejects every lookup. Dry-run mode synthesizes its own keys
// in the resolver, so reaching custody at all is a wiring bug.
type DryRunCustody struct{}

func (DryRunCustody) GetKey(_ context.Context, _ string, _ ports.KeyType, _ string) (string, error) {
	return "", fmt.Errorf("key custody is not available in dry-run mode")
}
