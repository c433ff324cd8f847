package ledger

import (
	"context"
	"sync"
	"testing"

	"token-mint-engine/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dryRunCfg() *domain.TokenConfig {
	return &domain.TokenConfig{
		TokenID:   "0.0.5005",
		TokenType: domain.TokenTypeNonFungible,
		Treasury:  "0.0.1001",
	}
}

func TestDryRunGateway_MintNonFungible_SequentialSerials(t *testing.T) {
	g := NewDryRunGateway(zerolog.Nop())
	ctx := context.Background()

	first, err := g.MintNonFungible(ctx, dryRunCfg(), 10, "vp-001")
	require.NoError(t, err)
	require.Len(t, first.Serials, 10)

	second, err := g.MintNonFungible(ctx, dryRunCfg(), 5, "vp-001")
	require.NoError(t, err)
	require.Len(t, second.Serials, 5)

	// No serial reuse across calls.
	seen := map[int64]bool{}
	for _, s := range append(first.Serials, second.Serials...) {
		assert.False(t, seen[s], "serial %d minted twice", s)
		seen[s] = true
	}
}

func TestDryRunGateway_MintNonFungible_Concurrent(t *testing.T) {
	g := NewDryRunGateway(zerolog.Nop())
	ctx := context.Background()

	var mu sync.Mutex
	seen := map[int64]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			receipt, err := g.MintNonFungible(ctx, dryRunCfg(), 10, "vp-001")
			assert.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			for _, s := range receipt.Serials {
				assert.False(t, seen[s])
				seen[s] = true
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 80)
}

func TestDryRunGateway_NoHistory(t *testing.T) {
	g := NewDryRunGateway(zerolog.Nop())
	ctx := context.Background()

	events, err := g.MintHistory(ctx, dryRunCfg(), "", "vp-001")
	require.NoError(t, err)
	assert.Empty(t, events)

	held, err := g.TreasuryHeldSerials(ctx, dryRunCfg(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, held, "dry-run treasury reports all serials as held")
}

func TestDryRunGateway_FungiblePath(t *testing.T) {
	g := NewDryRunGateway(zerolog.Nop())
	ctx := context.Background()
	cfg := dryRunCfg()
	cfg.TokenType = domain.TokenTypeFungible

	receipt, err := g.MintFungible(ctx, cfg, 1000, "vp-002")
	require.NoError(t, err)
	assert.Empty(t, receipt.Serials)
	assert.NotEmpty(t, receipt.TransactionID)

	assert.NoError(t, g.TransferFungible(ctx, cfg, "0.0.9001", 1000, "vp-002"))
}
