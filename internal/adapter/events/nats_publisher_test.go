package events

import (
	"context"
	"encoding/json"
	"testing"

	"token-mint-engine/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMintedSubject(t *testing.T) {
	assert.Equal(t, "token.minted.", tokenMintedSubjectPrefix)
}

func TestTokenMintedEvent_Payload(t *testing.T) {
	event := domain.TokenMintedEvent{
		TokenID: "0.0.5005",
		Amount:  10,
		Memo:    "vp-001",
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "0.0.5005", decoded["token_id"])
	assert.Equal(t, float64(10), decoded["amount"])
	assert.Equal(t, "vp-001", decoded["memo"])
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	err := p.PublishTokenMinted(context.Background(), domain.TokenMintedEvent{TokenID: "0.0.1"})
	assert.NoError(t, err)
}
