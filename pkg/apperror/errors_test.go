package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("MNT_002", "Mint amount must be positive", KindInternal),
			expected: "[MNT_002] Mint amount must be positive",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Persistence failure", KindStore, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Persistence failure: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := StoreError(inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := ErrInvalidAmount()
	assert.Nil(t, appErr.Unwrap())
}

func TestLedgerErrors_Kinds(t *testing.T) {
	cause := fmt.Errorf("deadline exceeded")

	tests := []struct {
		name string
		err  *AppError
		code string
		kind Kind
	}{
		{"Timeout", ErrLedgerTimeout(cause), "LED_001", KindTimeout},
		{"Rejected", ErrLedgerRejected(cause), "LED_002", KindDefinite},
		{"Query", ErrLedgerQuery(cause), "LED_003", KindDefinite},
		{"KeyResolution", ErrKeyResolution(cause), "KEY_001", KindKeyResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.kind, tt.err.Kind)
		})
	}
}

func TestKindOf_WrappedChain(t *testing.T) {
	inner := ErrLedgerTimeout(fmt.Errorf("rpc deadline"))
	wrapped := fmt.Errorf("mint batch 3: %w", inner)

	assert.Equal(t, KindTimeout, KindOf(wrapped))
	assert.True(t, IsTimeout(wrapped))
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("plain error")))
	assert.False(t, IsTimeout(fmt.Errorf("timeout-looking message")))
}
