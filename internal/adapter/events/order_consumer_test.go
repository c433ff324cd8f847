package events

import (
	"context"
	"encoding/json"
	"testing"

	"token-mint-engine/internal/core/domain"
	"token-mint-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderConsumer_HandleOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coord := mocks.NewMockMintCoordinator(ctrl)
	consumer := NewOrderConsumer(nil, coord, zerolog.Nop())

	ctx := context.Background()
	order := domain.MintOrder{
		VPMessageID: "vp-001",
		TokenID:     "0.0.5005",
		Amount:      25,
		Target:      "0.0.9001",
		Memo:        "vp-001",
	}
	payload, err := json.Marshal(order)
	require.NoError(t, err)

	coord.EXPECT().Register(ctx, order).Return(&domain.MintRequest{}, nil)
	coord.EXPECT().Process(ctx, "vp-001").Return(true, nil)

	consumer.handleOrder(ctx, payload)
}

func TestOrderConsumer_HandleOrder_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coord := mocks.NewMockMintCoordinator(ctrl) // must not be called
	consumer := NewOrderConsumer(nil, coord, zerolog.Nop())

	consumer.handleOrder(context.Background(), []byte("not json"))
}

func TestOrderConsumer_HandleRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	coord := mocks.NewMockMintCoordinator(ctrl)
	consumer := NewOrderConsumer(nil, coord, zerolog.Nop())

	ctx := context.Background()
	coord.EXPECT().Retry(ctx, "vp-001").Return(true, nil)

	consumer.handleRetry(ctx, "vp-001")
}
