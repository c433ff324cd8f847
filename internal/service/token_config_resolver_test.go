package service

import (
	"context"
	"errors"
	"testing"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports"
	"token-mint-engine/internal/core/ports/mocks"
	"token-mint-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resolverToken() *domain.Token {
	return &domain.Token{
		TokenID:   "0.0.100",
		TokenName: "Carbon Credit",
		TokenType: domain.TokenTypeNonFungible,
		Owner:     "owner",
		Treasury:  "0.0.300",
	}
}

func TestTokenConfigResolver_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	custody := mocks.NewMockKeyCustody(ctrl) // never called
	resolver := NewTokenConfigResolver(custody, zerolog.Nop())

	cfg, err := resolver.Resolve(context.Background(), resolverToken(), true)
	require.NoError(t, err)

	// One synthesized key, consistent within the attempt.
	assert.NotEmpty(t, cfg.TreasuryKey)
	assert.Equal(t, cfg.TreasuryKey, cfg.SupplyKey)
	assert.Empty(t, cfg.WipeKey)

	// A fresh attempt gets a fresh key.
	cfg2, err := resolver.Resolve(context.Background(), resolverToken(), true)
	require.NoError(t, err)
	assert.NotEqual(t, cfg.TreasuryKey, cfg2.TreasuryKey)
}

func TestTokenConfigResolver_DryRunWipeKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := NewTokenConfigResolver(mocks.NewMockKeyCustody(ctrl), zerolog.Nop())
	token := resolverToken()
	token.WipeEnabled = true

	cfg, err := resolver.Resolve(context.Background(), token, true)
	require.NoError(t, err)
	assert.Equal(t, cfg.TreasuryKey, cfg.WipeKey)
}

func TestTokenConfigResolver_Live(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	custody := mocks.NewMockKeyCustody(ctrl)
	custody.EXPECT().GetKey(gomock.Any(), "owner", ports.KeyTypeTreasury, "0.0.100").Return("treasury-key", nil)
	custody.EXPECT().GetKey(gomock.Any(), "owner", ports.KeyTypeSupply, "0.0.100").Return("supply-key", nil)

	resolver := NewTokenConfigResolver(custody, zerolog.Nop())
	cfg, err := resolver.Resolve(ctx, resolverToken(), false)
	require.NoError(t, err)
	assert.Equal(t, "treasury-key", cfg.TreasuryKey)
	assert.Equal(t, "supply-key", cfg.SupplyKey)
	assert.Equal(t, "0.0.300", cfg.Treasury)
}

func TestTokenConfigResolver_CustodyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	custody := mocks.NewMockKeyCustody(ctrl)
	custody.EXPECT().GetKey(gomock.Any(), "owner", ports.KeyTypeTreasury, "0.0.100").
		Return("", errors.New("custody unreachable"))
	custody.EXPECT().GetKey(gomock.Any(), "owner", ports.KeyTypeSupply, "0.0.100").
		Return("supply-key", nil).AnyTimes()

	resolver := NewTokenConfigResolver(custody, zerolog.Nop())
	_, err := resolver.Resolve(context.Background(), resolverToken(), false)
	require.Error(t, err)
	assert.Equal(t, apperror.KindKeyResolution, apperror.KindOf(err))
}
