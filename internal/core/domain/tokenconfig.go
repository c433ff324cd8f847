package domain

// Token describes a mintable token as known to the engine.
type Token struct {
	TokenID     string    `json:"token_id"`
	TokenName   string    `json:"token_name"`
	TokenType   TokenType `json:"token_type"`
	Owner       string    `json:"owner"`
	Treasury    string    `json:"treasury"`
	WipeEnabled bool      `json:"wipe_enabled"`
}

// TokenConfig holds the resolved signing material for one mint attempt.
// It is ephemeral and never persisted; dry-run mode synthesizes the keys.
type TokenConfig struct {
	TokenID     string
	TokenName   string
	TokenType   TokenType
	Treasury    string
	TreasuryKey string
	SupplyKey   string
	WipeKey     string
}

// TokenMintedEvent is published after each successful mint ledger call.
type TokenMintedEvent struct {
	TokenID string `json:"token_id"`
	Amount  int64  `json:"amount"`
	Memo    string `json:"memo"`
}
