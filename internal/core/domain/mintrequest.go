package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes the two mint paths.
type TokenType string

const (
	TokenTypeFungible    TokenType = "FUNGIBLE"
	TokenTypeNonFungible TokenType = "NON_FUNGIBLE"
)

// MintOrder is the inbound intent to mint: everything the caller knows
// before the token's metadata is resolved.
type MintOrder struct {
	VPMessageID    string `json:"vp_message_id"`
	TokenID        string `json:"token_id"`
	PolicyID       string `json:"policy_id"`
	Amount         int64  `json:"amount"`
	Target         string `json:"target"`
	Memo           string `json:"memo"`
	RelayerAccount string `json:"relayer_account,omitempty"`
}

// MintRequest is one logical "mint N units of token T to account A" request.
// It is created once per correlation key and updated in place until both
// progress flags are false (terminal success) or an unrecoverable error is
// recorded for operator-driven retry.
type MintRequest struct {
	ID             uuid.UUID `json:"id"`
	VPMessageID    string    `json:"vp_message_id"` // external correlation key
	TokenID        string    `json:"token_id"`
	TokenType      TokenType `json:"token_type"`
	Owner          string    `json:"owner"`
	PolicyID       string    `json:"policy_id"`
	Amount         int64     `json:"amount"`
	Target         string    `json:"target"`
	Memo           string    `json:"memo"`
	RelayerAccount string    `json:"relayer_account,omitempty"`

	IsMintNeeded      bool `json:"is_mint_needed"`
	IsTransferNeeded  bool `json:"is_transfer_needed"`
	WasTransferNeeded bool `json:"was_transfer_needed"`

	// Ledger-side cursors recorded before issuing new operations; they bound
	// the reconciler's look-back query on resume.
	StartTransaction string `json:"start_transaction,omitempty"`
	StartSerial      int64  `json:"start_serial,omitempty"`

	Error       *string    `json:"error,omitempty"`
	ProcessDate *time.Time `json:"process_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewMintRequest builds a request with its progress flags set from intent.
// The transfer flag is false when the target already is the treasury.
func NewMintRequest(vpMessageID, tokenID string, tokenType TokenType, owner, policyID string, amount int64, target, treasury, memo string) *MintRequest {
	transferNeeded := target != treasury
	return &MintRequest{
		ID:                uuid.New(),
		VPMessageID:       vpMessageID,
		TokenID:           tokenID,
		TokenType:         tokenType,
		Owner:             owner,
		PolicyID:          policyID,
		Amount:            amount,
		Target:            target,
		Memo:              memo,
		IsMintNeeded:      true,
		IsTransferNeeded:  transferNeeded,
		WasTransferNeeded: transferNeeded,
		CreatedAt:         time.Now().UTC(),
	}
}

// IsComplete reports whether no work remains for the request.
func (r *MintRequest) IsComplete() bool {
	return !r.IsMintNeeded && !r.IsTransferNeeded
}

// RecomputeFlags re-derives the progress flags from the aggregate status of
// the child rows. A phase is still needed iff any child row has that phase in
// a non-terminal state. WasTransferNeeded keeps the original intent auditable.
func (r *MintRequest) RecomputeFlags(rows []MintTransaction) {
	mintNeeded := false
	transferNeeded := false
	for i := range rows {
		if !rows[i].MintStatus.IsResolved() {
			mintNeeded = true
		}
		if !rows[i].TransferStatus.IsResolved() {
			transferNeeded = true
		}
	}
	r.IsMintNeeded = mintNeeded
	r.IsTransferNeeded = transferNeeded && r.WasTransferNeeded
}

// MarkFailed records the last failure for operator inspection.
func (r *MintRequest) MarkFailed(msg string) {
	now := time.Now().UTC()
	r.Error = &msg
	r.ProcessDate = &now
}

// MarkComplete clears failure bookkeeping so a clean terminal state is
// distinguishable from "failed then retried to success".
func (r *MintRequest) MarkComplete() {
	r.Error = nil
	r.ProcessDate = nil
}
