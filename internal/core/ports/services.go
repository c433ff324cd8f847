package ports

import (
	"context"

	"token-mint-engine/internal/core/domain"
)

// --- Consumed capabilities (external collaborators) ---

// MintReceipt is the ledger's confirmation of a submitted mint call.
type MintReceipt struct {
	TransactionID string
	// Serials carries the ledger-assigned identifiers, NFT path only.
	Serials []int64
}

// MintEvent is one historical mint record reported by the ledger.
type MintEvent struct {
	TransactionID string
	Memo          string
	Amount        int64
	Serials       []int64
}

// LedgerGateway is the narrow interface over the external ledger. All
// submission errors carry an apperror kind so that a timeout (outcome
// unknown, leave the row PENDING) is distinguishable from a definitive
// rejection (mark the row ERROR and retry fresh).
type LedgerGateway interface {
	// MintFungible creates amount new units in the treasury.
	MintFungible(ctx context.Context, cfg *domain.TokenConfig, amount int64, memo string) (*MintReceipt, error)
	// MintNonFungible creates count new NFTs in the treasury and returns
	// their serials.
	MintNonFungible(ctx context.Context, cfg *domain.TokenConfig, count int64, memo string) (*MintReceipt, error)
	// TransferFungible moves amount units from the treasury to target.
	TransferFungible(ctx context.Context, cfg *domain.TokenConfig, target string, amount int64, memo string) error
	// TransferNonFungible moves the given serials from the treasury to target.
	TransferNonFungible(ctx context.Context, cfg *domain.TokenConfig, target string, serials []int64, memo string) error

	// LatestTransactionID returns the ledger's most recent transaction marker
	// for the account. Captured before submission as the reconciler's
	// look-back anchor.
	LatestTransactionID(ctx context.Context, accountID string) (string, error)
	// MintHistory lists mint events for the token on the treasury account
	// since the given marker, filtered by memo.
	MintHistory(ctx context.Context, cfg *domain.TokenConfig, sinceTransaction, memo string) ([]MintEvent, error)
	// TransferHistory lists outbound transfer events for the token on the
	// treasury account since the given marker, filtered by memo.
	TransferHistory(ctx context.Context, cfg *domain.TokenConfig, sinceTransaction, memo string) ([]MintEvent, error)
	// TreasuryHeldSerials returns which of the given serials the treasury
	// still holds.
	TreasuryHeldSerials(ctx context.Context, cfg *domain.TokenConfig, serials []int64) ([]int64, error)
}

// KeyType identifies a custody key role for a token.
type KeyType string

const (
	KeyTypeTreasury KeyType = "TREASURY"
	KeyTypeSupply   KeyType = "SUPPLY"
	KeyTypeWipe     KeyType = "WIPE"
)

// KeyCustody looks up signing keys held by the wallet service.
type KeyCustody interface {
	GetKey(ctx context.Context, ownerID string, keyType KeyType, tokenID string) (string, error)
}

// NotificationSink receives human-readable progress and outcome reports.
type NotificationSink interface {
	Step(title string, percent int)
	Success(title, message string)
	Error(title, message string)
	Warn(title, message string)
}

// EventPublisher emits engine events to downstream collaborators.
type EventPublisher interface {
	PublishTokenMinted(ctx context.Context, event domain.TokenMintedEvent) error
}

// --- Engine contracts ---

// MintExecutor drives the two phases of a mint request to completion. The
// mint phase always fully completes before the transfer phase begins.
type MintExecutor interface {
	MintPhase(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error
	TransferPhase(ctx context.Context, req *domain.MintRequest, cfg *domain.TokenConfig) error
}

// TokenConfigResolver resolves per-attempt signing material.
type TokenConfigResolver interface {
	Resolve(ctx context.Context, token *domain.Token, dryRun bool) (*domain.TokenConfig, error)
}

// MintCoordinator is the top-level entry point of the engine.
type MintCoordinator interface {
	// Register records a new mint order. Re-registering an existing
	// correlation key returns the stored request unchanged.
	Register(ctx context.Context, order domain.MintOrder) (*domain.MintRequest, error)
	// Process runs one pass for the request identified by its correlation
	// key. It returns false without doing work when the key is already in
	// flight or when nothing remains to do.
	Process(ctx context.Context, requestKey string) (bool, error)
	// Retry clears the persisted error of a failed request and re-runs
	// Process. Operator entry point.
	Retry(ctx context.Context, requestKey string) (bool, error)
}

// TokenRegistry resolves token metadata known to the platform.
type TokenRegistry interface {
	GetToken(ctx context.Context, tokenID string) (*domain.Token, error)
}
