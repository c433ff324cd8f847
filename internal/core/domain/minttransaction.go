package domain

import (
	"time"

	"github.com/google/uuid"
)

// MintTxStatus is the state machine for one phase of a batch unit.
type MintTxStatus string

const (
	// MintTxStatusNone marks a phase that does not apply to the row, e.g.
	// transfer when the target account is the treasury itself.
	MintTxStatusNone    MintTxStatus = "NONE"
	MintTxStatusNew     MintTxStatus = "NEW"
	MintTxStatusPending MintTxStatus = "PENDING"
	MintTxStatusError   MintTxStatus = "ERROR"
	MintTxStatusSuccess MintTxStatus = "SUCCESS"
)

// IsResolved reports whether the phase needs no further work.
func (s MintTxStatus) IsResolved() bool {
	return s == MintTxStatusSuccess || s == MintTxStatusNone
}

// Retryable reports whether the phase is eligible for a fresh submission.
// PENDING is deliberately excluded: its outcome is unknown until reconciled.
func (s MintTxStatus) Retryable() bool {
	return s == MintTxStatusNew || s == MintTxStatusError
}

// MintTransaction is a batch unit: at most BatchSize NFTs, or the whole
// amount for a fungible token. Rows are created once by the planner and
// mutated on retries, never deleted.
type MintTransaction struct {
	ID             uuid.UUID    `json:"id"`
	MintRequestID  uuid.UUID    `json:"mint_request_id"`
	PolicyID       string       `json:"policy_id"`
	Amount         int64        `json:"amount"`
	MintStatus     MintTxStatus `json:"mint_status"`
	TransferStatus MintTxStatus `json:"transfer_status"`

	// Ledger-assigned identifiers, NFT path only. Never longer than Amount.
	Serials []int64 `json:"serials,omitempty"`

	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMintTransaction creates a planned batch row. transferNeeded controls
// whether the transfer phase applies at all.
func NewMintTransaction(requestID uuid.UUID, policyID string, amount int64, transferNeeded bool) *MintTransaction {
	transferStatus := MintTxStatusNone
	if transferNeeded {
		transferStatus = MintTxStatusNew
	}
	return &MintTransaction{
		ID:             uuid.New(),
		MintRequestID:  requestID,
		PolicyID:       policyID,
		Amount:         amount,
		MintStatus:     MintTxStatusNew,
		TransferStatus: transferStatus,
		CreatedAt:      time.Now().UTC(),
	}
}

// Remaining returns how many units of this batch are still unminted.
func (t *MintTransaction) Remaining() int64 {
	return t.Amount - int64(len(t.Serials))
}

// AppendSerials records ledger-assigned serials, capped at the batch amount.
// The overflow (serials that did not fit) is returned to the caller.
func (t *MintTransaction) AppendSerials(serials []int64) []int64 {
	room := t.Remaining()
	if room <= 0 {
		return serials
	}
	if int64(len(serials)) <= room {
		t.Serials = append(t.Serials, serials...)
		return nil
	}
	t.Serials = append(t.Serials, serials[:room]...)
	return serials[room:]
}

// MintComplete reports whether every unit of the batch has a serial.
func (t *MintTransaction) MintComplete() bool {
	return int64(len(t.Serials)) >= t.Amount
}

// MarkMintError records a definitive mint failure for this unit.
func (t *MintTransaction) MarkMintError(msg string) {
	t.MintStatus = MintTxStatusError
	t.Error = &msg
}

// MarkTransferError records a definitive transfer failure for this unit.
func (t *MintTransaction) MarkTransferError(msg string) {
	t.TransferStatus = MintTxStatusError
	t.Error = &msg
}
